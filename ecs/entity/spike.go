package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// spikePoints returns the triangle for a wall spike. Left wall spikes point
// right, into the play area, and right wall spikes point left.
func spikePoints(size float64, rightSide bool) []cp.Vector {
	tip := size
	if rightSide {
		tip = -size
	}
	return []cp.Vector{{X: 0, Y: -size}, {X: 0, Y: size}, {X: tip, Y: 0}}
}

func NewSpike(w *ecs.World, x, y float64, rightSide bool, t prefabs.SpikeTuning) (ecs.Entity, error) {
	b := newBuilder(w, "spike")

	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	points := spikePoints(t.Size, rightSide)
	shape := newPolyShape(body, points)

	b.body(&component.PhysicsBody{
		Body:     body,
		Shape:    shape,
		Category: component.CategorySpike,
		Static:   true,
	})
	add(b, component.TransformComponent.Kind(), transformOf(body))
	add(b, component.SpikeComponent.Kind(), &component.Spike{RightSide: rightSide})
	add(b, component.PolygonComponent.Kind(), &component.Polygon{Points: points, Color: common.SpikeColor})
	add(b, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerHazards})

	return b.done()
}

// NewBoundarySpikes lines both side walls with spikes from StartY to EndY.
func NewBoundarySpikes(w *ecs.World, t prefabs.SpikeTuning) ([]ecs.Entity, error) {
	if t.Spacing <= 0 {
		return nil, fmt.Errorf("spike: spacing must be positive, got %v", t.Spacing)
	}
	var spikes []ecs.Entity
	for y := t.StartY; y < t.EndY; y += t.Spacing {
		for _, right := range []bool{false, true} {
			x := 0.0
			if right {
				x = common.ScreenWidth
			}
			e, err := NewSpike(w, x, y, right, t)
			if err != nil {
				return spikes, err
			}
			spikes = append(spikes, e)
		}
	}
	return spikes, nil
}
