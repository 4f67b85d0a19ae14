package entity

import (
	"fmt"

	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

func NewCamera(w *ecs.World, t prefabs.CameraTuning) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Smoothness: t.Smoothness,
		LookAhead:  t.LookAhead,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
