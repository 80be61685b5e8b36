package engine

import (
	"github.com/lixenwraith/tilt-maze/engine/fsm"
	"github.com/lixenwraith/tilt-maze/parameter"
)

// State is the gameplay lifecycle phase
type State = fsm.StateID

const (
	StateStartMenu State = iota + 1
	StateIntro
	StatePlaying
	StatePaused
	StateVictory
)

// Event drives lifecycle transitions
type Event = fsm.EventID

const (
	EventStart Event = iota + 1
	EventIntroDone
	EventPause
	EventResume
	EventWin
	EventReset
	EventMenu
)

// ErrIllegalTransition is returned for an event the current state does not accept
var ErrIllegalTransition = fsm.ErrIllegalTransition

var stateNames = map[State]string{
	StateStartMenu: "StartMenu",
	StateIntro:     "Intro",
	StatePlaying:   "Playing",
	StatePaused:    "Paused",
	StateVictory:   "Victory",
}

var eventNames = map[Event]string{
	EventStart:     "Start",
	EventIntroDone: "IntroDone",
	EventPause:     "Pause",
	EventResume:    "Resume",
	EventWin:       "Win",
	EventReset:     "Reset",
	EventMenu:      "Menu",
}

// StateName returns the display name of s
func StateName(s State) string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// NewLifecycle builds the lifecycle table over context T:
//
//	StartMenu -Start->     Intro
//	Intro     -IntroDone-> Playing (also automatic after IntroDuration)
//	Playing   -Pause->     Paused
//	Paused    -Resume->    Playing
//	Playing   -Win->       Victory
//	Intro, Playing, Paused, Victory -Reset-> Intro
//	any       -Menu->      StartMenu
func NewLifecycle[T any]() *fsm.Machine[T] {
	m := fsm.NewMachine[T]()
	for s, name := range stateNames {
		m.AddState(s, name)
	}
	for ev, name := range eventNames {
		m.NameEvent(ev, name)
	}
	m.InitialStateID = StateStartMenu

	m.On(StateStartMenu, EventStart, StateIntro)

	m.On(StateIntro, EventIntroDone, StatePlaying)
	m.AddTransition(StateIntro, fsm.Transition[T]{
		TargetID: StatePlaying,
		Event:    fsm.EventTick,
		Guard:    fsm.StateTimeExceeds(m, parameter.IntroDuration),
	})

	m.On(StatePlaying, EventPause, StatePaused)
	m.On(StatePaused, EventResume, StatePlaying)
	m.On(StatePlaying, EventWin, StateVictory)

	for _, s := range []State{StateIntro, StatePlaying, StatePaused, StateVictory} {
		m.On(s, EventReset, StateIntro)
	}
	for s := range stateNames {
		m.On(s, EventMenu, StateStartMenu)
	}
	return m
}
