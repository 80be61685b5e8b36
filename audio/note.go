package audio

import "math"

// noteFrequencies holds equal-tempered MIDI note frequencies, A4 (note 69) = 440 Hz
var noteFrequencies [128]float64

func init() {
	for i := range noteFrequencies {
		noteFrequencies[i] = 440.0 * math.Exp2((float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= len(noteFrequencies) {
		return 0
	}
	return noteFrequencies[midi]
}

// MIDI notes of the background loop
const (
	noteC2 = 36
	noteD2 = 38
	noteF2 = 41
	noteG2 = 43
	noteC4 = 60
	noteD4 = 62
	noteE4 = 64
	noteF4 = 65
	noteG4 = 67
	noteA4 = 69
	noteB4 = 71
	noteC5 = 72
	noteD5 = 74
	noteF5 = 77
)
