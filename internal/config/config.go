package config

const (
	WindowWidth  = 960
	WindowHeight = 640

	TicksPerSecond = 60

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 30

	// Hover feedback
	HoverToneHz     = 880
	HoverToneMillis = 40
	HoverToneVolume = 0.25

	// Tooltip fade spring
	TooltipFrequency = 8.0
	TooltipDamping   = 1.0
)
