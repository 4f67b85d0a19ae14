package common

import "image/color"

var (
	PlayerColor         = color.NRGBA{R: 255, G: 255, A: 255}
	PlatformColor       = color.NRGBA{G: 100, B: 255, A: 255}
	BouncyPlatformColor = color.NRGBA{R: 255, G: 165, A: 255}
	SpikeColor          = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	BackgroundColor     = color.NRGBA{A: 255}
	BackdropColor       = color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	HealthBackColor     = color.NRGBA{R: 255, A: 255}
	HealthFrontColor    = color.NRGBA{G: 255, A: 255}
	TextColor           = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
