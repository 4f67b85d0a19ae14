package system

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// playerEntity returns the single live player with its body.
func playerEntity(w *ecs.World) (ecs.Entity, *component.Player, *component.PhysicsBody, bool) {
	e, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return 0, nil, nil, false
	}
	return e, p, pb, true
}

// CameraOffset returns the current vertical scroll, or 0 without a camera.
func CameraOffset(w *ecs.World) float64 {
	e, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	return cam.OffsetY
}

func markForDestroy(w *ecs.World, e ecs.Entity, reason string) {
	if !w.IsAlive(e) || ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
		return
	}
	if err := ecs.Add(w, e, component.PendingDestroyComponent.Kind(), &component.PendingDestroy{Reason: reason}); err != nil {
		pushError(w, e, err)
	}
}

func pushError(w *ecs.World, e ecs.Entity, err error) {
	w.Events().Push(ecs.Event{Kind: ecs.EventError, Entity: e, Data: err})
}
