package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// Jump launches the player if it is standing on a platform, or spends the
// one-shot mid-air jump otherwise. A grounded jump re-arms the mid-air jump.
// It reports whether velocity was changed.
func Jump(p *component.Player, body *cp.Body) bool {
	if p == nil || body == nil {
		return false
	}
	switch {
	case p.CanJump:
		p.CanJump = false
		p.MidAirJump = true
	case p.MidAirJump:
		p.MidAirJump = false
	default:
		return false
	}
	vel := body.Velocity()
	body.SetVelocity(vel.X, p.JumpSpeed)
	return true
}

// TakeDamage subtracts amount from the player's health unless the damage
// cooldown is still running, then restarts the cooldown. Health may go
// below zero.
func TakeDamage(p *component.Player, cd *component.Cooldown, amount int) bool {
	if p == nil || cd == nil || cd.Frames > 0 {
		return false
	}
	p.Health -= amount
	cd.Frames = p.DamageCooldownFrames
	return true
}

// PlayerControlSystem turns the frame's input into player velocity.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, pb *component.PhysicsBody) {
			if pb.Body == nil {
				return
			}
			if in.JumpPressed {
				Jump(p, pb.Body)
				in.JumpPressed = false
			}
			vel := pb.Body.Velocity()
			pb.Body.SetVelocity(in.MoveX*p.MoveSpeed, vel.Y)
		})
}
