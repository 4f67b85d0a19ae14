package render

import (
	"math/rand"

	"github.com/milk9111/freefall/common"
)

const (
	backgroundLayers  = 3
	circlesPerLayer   = 10
	backgroundOverlap = 100
)

type backgroundCircle struct {
	x, y     float64
	radius   float64
	parallax float64
	alpha    uint8
}

// Background is a few layers of translucent circles that scroll slower than
// the world and wrap vertically.
type Background struct {
	circles []backgroundCircle
}

func NewBackground(rng *rand.Rand) *Background {
	b := &Background{}
	for layer := 0; layer < backgroundLayers; layer++ {
		for i := 0; i < circlesPerLayer; i++ {
			b.circles = append(b.circles, backgroundCircle{
				radius:   float64(common.RandInt(rng, 20, 80)),
				x:        float64(common.RandInt(rng, -backgroundOverlap, common.ScreenWidth+backgroundOverlap)),
				y:        float64(common.RandInt(rng, -backgroundOverlap, common.ScreenHeight+backgroundOverlap)),
				parallax: 0.2 + float64(layer)*0.2,
				alpha:    uint8(100 - layer*20),
			})
		}
	}
	return b
}

func (b *Background) Len() int {
	return len(b.circles)
}

// Draw paints every circle, first wrapping any that scrolled out of the
// padded view back in from the other side.
func (b *Background) Draw(c Canvas, cameraY float64) {
	const span = common.ScreenHeight + 2*backgroundOverlap
	for i := range b.circles {
		circle := &b.circles[i]
		shift := cameraY * circle.parallax
		for circle.y-shift > common.ScreenHeight+backgroundOverlap {
			circle.y -= span
		}
		for circle.y-shift < -backgroundOverlap {
			circle.y += span
		}
		clr := common.BackdropColor
		clr.A = circle.alpha
		c.FillCircle(circle.x, circle.y-shift, circle.radius, clr)
	}
}
