package component

import "github.com/tanema/gween"

// DamageFlash tints the player while Tween runs. Intensity goes from 1 to 0.
type DamageFlash struct {
	Tween     *gween.Tween
	Intensity float32
}

var DamageFlashComponent = NewComponent[DamageFlash]()
