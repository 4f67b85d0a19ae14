package entity

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// FireColor picks a random red to orange ember color.
func FireColor(rng *rand.Rand) color.NRGBA {
	hue := common.Uniform(rng, 0, 0.1)
	sat := common.Uniform(rng, 0.8, 1)
	val := common.Uniform(rng, 0.8, 1)
	r, g, b := colorful.Hsv(hue*360, sat, val).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func particlePoints(rng *rand.Rand, size float64) []cp.Vector {
	offset := common.Uniform(rng, 0, 2*math.Pi)
	points := make([]cp.Vector, 3)
	for i := range points {
		angle := offset + float64(i)*2*math.Pi/3
		dist := size * common.Uniform(rng, 0.8, 1.2)
		points[i] = cp.Vector{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist}
	}
	return points
}

// NewParticle launches a triangular ember upward from (x, y).
func NewParticle(w *ecs.World, rng *rand.Rand, x, y float64, t prefabs.ParticleTuning) (ecs.Entity, error) {
	b := newBuilder(w, "particle")

	size := common.Uniform(rng, t.MinSize, t.MaxSize)
	mass := size / t.SizePerMass
	points := particlePoints(rng, size)

	body := cp.NewBody(mass, cp.MomentForBox(mass, size, size))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetVelocity(common.Uniform(rng, -t.MaxDrift, t.MaxDrift), -common.Uniform(rng, t.MinLaunch, t.MaxLaunch))
	body.SetAngularVelocity(common.Uniform(rng, -t.MaxSpin, t.MaxSpin))

	shape := newPolyShape(body, points)
	shape.SetElasticity(t.Elasticity)
	shape.SetFriction(t.Friction)

	b.body(&component.PhysicsBody{
		Body:       body,
		Shape:      shape,
		Category:   component.CategoryParticle,
		Mass:       mass,
		Friction:   t.Friction,
		Elasticity: t.Elasticity,
	})
	add(b, component.TransformComponent.Kind(), transformOf(body))
	add(b, component.ParticleComponent.Kind(), &component.Particle{Size: size})
	add(b, component.PolygonComponent.Kind(), &component.Polygon{Points: points, Color: FireColor(rng)})
	add(b, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerParticles})

	return b.done()
}
