package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// NewPlayer creates the player box at its spawn point.
func NewPlayer(w *ecs.World, t prefabs.PlayerTuning) (ecs.Entity, error) {
	b := newBuilder(w, "player")

	body := cp.NewBody(t.Mass, cp.MomentForBox(t.Mass, t.Size, t.Size))
	body.SetPosition(cp.Vector{X: t.SpawnX, Y: t.SpawnY})
	shape := cp.NewBox(body, t.Size, t.Size, 0)
	shape.SetElasticity(t.Elasticity)
	shape.SetFriction(t.Friction)

	b.body(&component.PhysicsBody{
		Body:       body,
		Shape:      shape,
		Category:   component.CategoryPlayer,
		Mass:       t.Mass,
		Friction:   t.Friction,
		Elasticity: t.Elasticity,
	})
	add(b, component.TransformComponent.Kind(), transformOf(body))
	add(b, component.PlayerComponent.Kind(), &component.Player{
		Size:                 t.Size,
		MoveSpeed:            t.MoveSpeed,
		JumpSpeed:            t.JumpSpeed,
		Health:               t.Health,
		MaxHealth:            t.Health,
		MidAirJump:           true,
		DamageCooldownFrames: t.DamageCooldownFrames,
	})
	add(b, component.CooldownComponent.Kind(), &component.Cooldown{})
	add(b, component.InputComponent.Kind(), &component.Input{})
	add(b, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerPlayer})

	return b.done()
}
