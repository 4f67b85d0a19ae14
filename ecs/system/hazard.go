package system

import (
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/entity"
	"github.com/milk9111/freefall/prefabs"
)

// HazardField is the fixed set of wall spikes. It is built once and never
// changes; Visible only filters it for drawing.
type HazardField struct {
	spikes []ecs.Entity
}

func NewHazardField(w *ecs.World, t prefabs.SpikeTuning) (*HazardField, error) {
	spikes, err := entity.NewBoundarySpikes(w, t)
	if err != nil {
		return nil, err
	}
	return &HazardField{spikes: spikes}, nil
}

func (h *HazardField) Len() int {
	if h == nil {
		return 0
	}
	return len(h.spikes)
}

// Visible returns the spikes between one screen above and two screens below
// the camera offset.
func (h *HazardField) Visible(w *ecs.World, cameraY float64) []ecs.Entity {
	if h == nil {
		return nil
	}
	lo := cameraY - common.ScreenHeight
	hi := cameraY + 2*common.ScreenHeight
	var out []ecs.Entity
	for _, e := range h.spikes {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if t.Y >= lo && t.Y <= hi {
			out = append(out, e)
		}
	}
	return out
}
