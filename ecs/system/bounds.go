package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// BoundsSystem punishes the player for rising out of the top of the view:
// it loses health, ignoring the damage cooldown, and is put back mid-screen
// at rest.
type BoundsSystem struct {
	t prefabs.DamageTuning
}

func NewBoundsSystem(t prefabs.DamageTuning) *BoundsSystem {
	return &BoundsSystem{t: t}
}

func (s *BoundsSystem) SetTuning(t prefabs.DamageTuning) {
	s.t = t
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, p, pb, ok := playerEntity(w)
	if !ok {
		return
	}
	offset := CameraOffset(w)
	if pb.Body.Position().Y >= offset-s.t.OutOfBoundsMargin {
		return
	}

	p.Health -= s.t.OutOfBounds
	pb.Body.SetPosition(cp.Vector{X: common.ScreenWidth / 2, Y: offset + common.ScreenHeight/2})
	pb.Body.SetVelocity(0, 0)
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = pb.Body.Position().X, pb.Body.Position().Y
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventOutOfBounds, Entity: e, Data: ecs.DamageEvent{
		Amount:  s.t.OutOfBounds,
		Applied: true,
		Health:  p.Health,
	}})
}
