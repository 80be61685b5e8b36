package input

import "github.com/lixenwraith/tilt-maze/parameter"

// actionRegistry maps action names used in keymap files to entries
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":        {IntentType: IntentQuit},
	"toggle_mute": {IntentType: IntentToggleMute},
	"start":       {IntentType: IntentStart},
	"pause":       {IntentType: IntentPause},
	"reset":       {IntentType: IntentReset},
	"menu":        {IntentType: IntentMenu},
	"autopilot":   {IntentType: IntentAutopilot},

	"cycle_theme":  {IntentType: IntentTheme},
	"cycle_marble": {IntentType: IntentMarbleColor},

	"tilt_up":    {IntentType: IntentTilt, Dir: DirUp},
	"tilt_down":  {IntentType: IntentTilt, Dir: DirDown},
	"tilt_left":  {IntentType: IntentTilt, Dir: DirLeft},
	"tilt_right": {IntentType: IntentTilt, Dir: DirRight},

	"difficulty_easy":   {IntentType: IntentDifficulty, Difficulty: parameter.Easy},
	"difficulty_medium": {IntentType: IntentDifficulty, Difficulty: parameter.Medium},
	"difficulty_hard":   {IntentType: IntentDifficulty, Difficulty: parameter.Hard},
}
