package system

import (
	"fmt"

	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/prefabs"
)

// Effect is what happens when shapes of two categories start touching.
type Effect uint8

const (
	// EffectUnset marks a table hole. A complete table has none.
	EffectUnset Effect = iota
	// EffectCollide resolves the contact normally with no gameplay effect.
	EffectCollide
	// EffectHurtAndConsume damages the player through the cooldown. A hit
	// that lands destroys the hazard and lets it pass through.
	EffectHurtAndConsume
	// EffectHurt damages the player and always resolves the contact.
	EffectHurt
	// EffectConsume destroys the particle and resolves the contact.
	EffectConsume
)

func (e Effect) String() string {
	switch e {
	case EffectCollide:
		return "collide"
	case EffectHurtAndConsume:
		return "hurt_and_consume"
	case EffectHurt:
		return "hurt"
	case EffectConsume:
		return "consume"
	default:
		return "unset"
	}
}

const (
	catNone     = component.CategoryNone
	catPlayer   = component.CategoryPlayer
	catPlatform = component.CategoryPlatform
	catParticle = component.CategoryParticle
	catSpike    = component.CategorySpike
)

// effectTable is indexed by category pair and is symmetric.
var effectTable = [component.CategoryCount][component.CategoryCount]Effect{
	catNone: {
		catNone:     EffectCollide,
		catPlayer:   EffectCollide,
		catPlatform: EffectCollide,
		catParticle: EffectCollide,
		catSpike:    EffectCollide,
	},
	catPlayer: {
		catNone:     EffectCollide,
		catPlayer:   EffectCollide,
		catPlatform: EffectCollide,
		catParticle: EffectHurtAndConsume,
		catSpike:    EffectHurt,
	},
	catPlatform: {
		catNone:     EffectCollide,
		catPlayer:   EffectCollide,
		catPlatform: EffectCollide,
		catParticle: EffectConsume,
		catSpike:    EffectCollide,
	},
	catParticle: {
		catNone:     EffectCollide,
		catPlayer:   EffectHurtAndConsume,
		catPlatform: EffectConsume,
		catParticle: EffectCollide,
		catSpike:    EffectCollide,
	},
	catSpike: {
		catNone:     EffectCollide,
		catPlayer:   EffectHurt,
		catPlatform: EffectCollide,
		catParticle: EffectCollide,
		catSpike:    EffectCollide,
	},
}

// EffectFor looks up the effect for an unordered category pair.
func EffectFor(a, b component.Category) Effect {
	if a >= component.CategoryCount || b >= component.CategoryCount {
		return EffectUnset
	}
	return effectTable[a][b]
}

// CollisionClassifier applies the effect table inside the physics engine's
// contact-begin phase. It only marks entities for removal; CleanupSystem
// releases them after the step.
type CollisionClassifier struct {
	damage prefabs.DamageTuning
}

func NewCollisionClassifier(t prefabs.DamageTuning) *CollisionClassifier {
	return &CollisionClassifier{damage: t}
}

func (c *CollisionClassifier) SetTuning(t prefabs.DamageTuning) {
	c.damage = t
}

// Install registers a contact handler for every pair whose effect is more
// than a plain collision.
func (c *CollisionClassifier) Install(w *ecs.World) error {
	pw := w.PhysicsWorld()
	if pw == nil {
		return fmt.Errorf("collision: %w", ecs.ErrPhysicsNotAttached)
	}
	for a := component.Category(0); a < component.CategoryCount; a++ {
		for b := a; b < component.CategoryCount; b++ {
			switch EffectFor(a, b) {
			case EffectUnset:
				return fmt.Errorf("collision: no effect for %s x %s", a, b)
			case EffectCollide:
				continue
			}
			pw.OnContactBegin(a, b, func(contact ecs.Contact) bool {
				return c.Resolve(w, contact)
			})
		}
	}
	return nil
}

// Resolve applies the effect for contact and reports whether the physics
// engine should resolve it.
func (c *CollisionClassifier) Resolve(w *ecs.World, contact ecs.Contact) bool {
	effect := EffectFor(contact.CategoryA, contact.CategoryB)
	switch effect {
	case EffectHurtAndConsume, EffectHurt, EffectConsume:
	default:
		return true
	}

	hazard, hazardCat := contact.B, contact.CategoryB
	victim, victimCat := contact.A, contact.CategoryA
	if isHazard(contact.CategoryA) {
		hazard, hazardCat = contact.A, contact.CategoryA
		victim, victimCat = contact.B, contact.CategoryB
	}

	// A particle already hit something this step is gone as far as
	// gameplay is concerned.
	if hazardCat == catParticle && ecs.Has(w, hazard, component.PendingDestroyComponent.Kind()) {
		return false
	}

	switch effect {
	case EffectConsume:
		markForDestroy(w, hazard, "hit "+victimCat.String())
		return true
	case EffectHurt:
		c.hurt(w, victim, hazardCat)
		return true
	default:
		if c.hurt(w, victim, hazardCat) {
			markForDestroy(w, hazard, "hit player")
			return false
		}
		return true
	}
}

func isHazard(cat component.Category) bool {
	return cat == catParticle || cat == catSpike
}

func (c *CollisionClassifier) amountFor(cat component.Category) int {
	switch cat {
	case catParticle:
		return c.damage.Particle
	case catSpike:
		return c.damage.Spike
	default:
		return 0
	}
}

func (c *CollisionClassifier) hurt(w *ecs.World, victim ecs.Entity, source component.Category) bool {
	p, ok := ecs.Get(w, victim, component.PlayerComponent.Kind())
	if !ok {
		return false
	}
	cd, ok := ecs.Get(w, victim, component.CooldownComponent.Kind())
	if !ok {
		return false
	}
	amount := c.amountFor(source)
	applied := TakeDamage(p, cd, amount)
	if applied {
		startDamageFlash(w, victim)
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventDamage, Entity: victim, Data: ecs.DamageEvent{
		Source:  source,
		Amount:  amount,
		Applied: applied,
		Health:  p.Health,
	}})
	return applied
}
