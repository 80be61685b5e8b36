package render

// Board palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbFloor      = RGB{52, 40, 30} // Dark walnut
	RgbWallDark   = RGB{110, 78, 48}
	RgbWallLight  = RGB{196, 150, 98}
	RgbStart      = RGB{70, 96, 70}

	RgbGoal    = RGB{10, 10, 12}
	RgbGoalRim = RGB{255, 200, 60}

	RgbPath = RGB{100, 150, 255} // Autopilot route
)

// Metal theme
var (
	RgbMetalFloor     = RGB{24, 24, 28}
	RgbMetalWallDark  = RGB{96, 98, 104}
	RgbMetalWallLight = RGB{200, 202, 208}
)

// Marble finishes
var (
	RgbMarbleRed    = RGB{239, 68, 68}
	RgbMarbleGreen  = RGB{34, 197, 94}
	RgbMarbleYellow = RGB{250, 204, 21}
	RgbMarbleBlue   = RGB{59, 130, 246}
)

// UI palette
var (
	RgbStatusText  = RGB{0, 0, 0}
	RgbStatusBg    = RGB{135, 206, 250} // Light sky blue
	RgbAutopilotBg = RGB{144, 238, 144} // Light grass green
	RgbPausedBg    = RGB{255, 165, 0}   // Orange
	RgbVictoryBg   = RGB{255, 215, 0}
	RgbHelpText    = RGB{180, 180, 180}
	RgbNotice      = RGB{255, 255, 200}

	RgbOverlayBg     = RGB{16, 16, 24}
	RgbOverlayBorder = RGB{100, 150, 255}
	RgbOverlayTitle  = RGB{255, 200, 60}
	RgbOverlayText   = RGB{230, 230, 230}
	RgbSelected      = RGB{144, 238, 144}

	RgbGaugeFrame = RGB{90, 90, 110}
	RgbGaugeDot   = RGB{255, 120, 120}
)
