package system

import (
	"math"

	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// GroundSystem recomputes CanJump from scratch each frame: the player is
// grounded when it is level with a live platform and not moving vertically.
type GroundSystem struct {
	distance float64
	velocity float64
}

func NewGroundSystem(t prefabs.PlayerTuning) *GroundSystem {
	return &GroundSystem{distance: t.GroundedDistance, velocity: t.GroundedVelocity}
}

func (s *GroundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, p, pb, ok := playerEntity(w)
	if !ok {
		return
	}
	pos := pb.Body.Position()
	vy := pb.Body.Velocity().Y

	p.CanJump = false
	if math.Abs(vy) >= s.velocity {
		return
	}
	for _, e := range LivePlatforms(w) {
		plat, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || plat.Body == nil {
			continue
		}
		if math.Abs(pos.Y-plat.Body.Position().Y) < s.distance {
			p.CanJump = true
			return
		}
	}
}

func (s *GroundSystem) SetTuning(t prefabs.PlayerTuning) {
	s.distance = t.GroundedDistance
	s.velocity = t.GroundedVelocity
}
