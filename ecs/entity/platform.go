package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// PlatformSpec is one generated platform. Points, when set, is an irregular
// outline in body-local coordinates; otherwise the platform is a flat box.
type PlatformSpec struct {
	X      float64
	Y      float64
	Width  float64
	Bouncy bool
	Depth  float64
	Angle  float64
	Points []cp.Vector
}

func (s PlatformSpec) Irregular() bool {
	return len(s.Points) >= 3
}

// NewPlatform creates a static platform body from spec.
func NewPlatform(w *ecs.World, spec PlatformSpec, t prefabs.TerrainTuning) (ecs.Entity, error) {
	b := newBuilder(w, "platform")

	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	body.SetAngle(spec.Angle)

	points := spec.Points
	var shape *cp.Shape
	if spec.Irregular() {
		shape = newPolyShape(body, points)
	} else {
		points = boxPoints(spec.Width, t.Thickness)
		shape = cp.NewBox(body, spec.Width, t.Thickness, 0)
	}

	elasticity := t.Elasticity
	clr := common.PlatformColor
	if spec.Bouncy {
		elasticity = t.BouncyElasticity
		clr = common.BouncyPlatformColor
	}
	shape.SetElasticity(elasticity)
	shape.SetFriction(t.Friction)

	b.body(&component.PhysicsBody{
		Body:       body,
		Shape:      shape,
		Category:   component.CategoryPlatform,
		Static:     true,
		Friction:   t.Friction,
		Elasticity: elasticity,
	})
	add(b, component.TransformComponent.Kind(), transformOf(body))
	add(b, component.PlatformComponent.Kind(), &component.Platform{
		Width:     spec.Width,
		Bouncy:    spec.Bouncy,
		Depth:     spec.Depth,
		Irregular: spec.Irregular(),
	})
	add(b, component.PolygonComponent.Kind(), &component.Polygon{Points: points, Color: clr})
	add(b, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlatforms})

	return b.done()
}
