package system

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// CleanupSystem is the only place entities are removed during play. It runs
// after the physics step so no contact callback can see a released body.
type CleanupSystem struct {
	removed int
}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

// Removed is the total number of entities destroyed so far.
func (s *CleanupSystem) Removed() int {
	return s.removed
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	for _, e := range w.Query(component.PendingDestroyComponent.Kind()) {
		pw.Release(e)
		if w.DestroyEntity(e) {
			s.removed++
		}
	}
}
