package system

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// CooldownSystem counts frame-based cooldowns down to zero. The component
// stays on the entity so damage can restart it.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		if cd.Frames > 0 {
			cd.Frames--
		}
	})
}
