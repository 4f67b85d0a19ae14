package system

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// ParticleCullSystem marks particles that drifted past the top of the view.
type ParticleCullSystem struct {
	margin float64
}

func NewParticleCullSystem(t prefabs.ParticleTuning) *ParticleCullSystem {
	return &ParticleCullSystem{margin: t.CullAbove}
}

func (s *ParticleCullSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	limit := CameraOffset(w) - s.margin
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.Particle, pb *component.PhysicsBody) {
		if pb.Body != nil && pb.Body.Position().Y < limit {
			markForDestroy(w, e, "out of view")
		}
	})
}
