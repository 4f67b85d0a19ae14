package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = iota
	LayerHazards
	LayerPlayer
	LayerPlatforms
	LayerParticles
	LayerHUD
)

var RenderLayerComponent = NewComponent[RenderLayer]()
