package common

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// TPS is the fixed simulation rate.
	TPS = 60
	// StepSeconds is the physics step for one update.
	StepSeconds = 1.0 / TPS

	Gravity = 900.0
)
