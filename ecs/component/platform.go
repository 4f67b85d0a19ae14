package component

type Platform struct {
	Width  float64
	Bouncy bool
	// Depth is the Y coordinate the platform was generated at.
	Depth     float64
	Irregular bool
}

var PlatformComponent = NewComponent[Platform]()
