package system

import (
	"fmt"

	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// damageFlashSeconds matches the default damage cooldown.
const damageFlashSeconds = 0.5

func startDamageFlash(w *ecs.World, e ecs.Entity) {
	err := ecs.Add(w, e, component.DamageFlashComponent.Kind(), &component.DamageFlash{
		Tween:     gween.New(1, 0, damageFlashSeconds, ease.OutQuad),
		Intensity: 1,
	})
	if err != nil {
		pushError(w, e, fmt.Errorf("damage flash: %w", err))
	}
}

// DamageFlashSystem fades the hit tint and drops it when the tween ends.
type DamageFlashSystem struct{}

func NewDamageFlashSystem() *DamageFlashSystem { return &DamageFlashSystem{} }

func (s *DamageFlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DamageFlashComponent.Kind(), func(e ecs.Entity, f *component.DamageFlash) {
		if f.Tween == nil {
			ecs.Remove(w, e, component.DamageFlashComponent.Kind())
			return
		}
		value, done := f.Tween.Update(float32(common.StepSeconds))
		f.Intensity = value
		if done {
			ecs.Remove(w, e, component.DamageFlashComponent.Kind())
		}
	})
}
