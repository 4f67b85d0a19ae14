package system

import (
	"testing"

	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectTableIsCompleteAndSymmetric(t *testing.T) {
	for a := component.Category(0); a < component.CategoryCount; a++ {
		for b := component.Category(0); b < component.CategoryCount; b++ {
			assert.NotEqual(t, EffectUnset, EffectFor(a, b), "%s x %s", a, b)
			assert.Equal(t, EffectFor(a, b), EffectFor(b, a), "%s x %s", a, b)
		}
	}
	assert.Equal(t, EffectUnset, EffectFor(component.CategoryCount, component.CategoryPlayer))
}

func TestEffectFor(t *testing.T) {
	cases := []struct {
		a, b component.Category
		want Effect
	}{
		{component.CategoryPlayer, component.CategoryParticle, EffectHurtAndConsume},
		{component.CategoryPlayer, component.CategorySpike, EffectHurt},
		{component.CategoryPlatform, component.CategoryParticle, EffectConsume},
		{component.CategoryPlayer, component.CategoryPlatform, EffectCollide},
		{component.CategoryParticle, component.CategoryParticle, EffectCollide},
		{component.CategorySpike, component.CategoryParticle, EffectCollide},
	}
	for _, c := range cases {
		t.Run(c.a.String()+"_"+c.b.String(), func(t *testing.T) {
			assert.Equal(t, c.want, EffectFor(c.a, c.b))
			assert.Equal(t, c.want.String(), EffectFor(c.b, c.a).String())
		})
	}
}

func TestInstallRequiresPhysics(t *testing.T) {
	tuning := defaultTuning(t)
	err := NewCollisionClassifier(tuning.Damage).Install(ecs.NewWorld())
	assert.ErrorIs(t, err, ecs.ErrPhysicsNotAttached)
	assert.NoError(t, NewCollisionClassifier(tuning.Damage).Install(newTestWorld(t)))
}

func contact(a ecs.Entity, ca component.Category, b ecs.Entity, cb component.Category) ecs.Contact {
	return ecs.Contact{A: a, B: b, CategoryA: ca, CategoryB: cb}
}

func TestResolveParticleHitsPlayer(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	c := NewCollisionClassifier(tuning.Damage)
	player, p, _ := spawnPlayer(t, w, tuning)
	first := spawnParticle(t, w, tuning, 100, 100)
	second := spawnParticle(t, w, tuning, 200, 100)

	resolve := c.Resolve(w, contact(player, component.CategoryPlayer, first, component.CategoryParticle))
	assert.False(t, resolve, "a landed hit passes through")
	assert.True(t, isPending(w, first))
	assert.Equal(t, tuning.Player.Health-tuning.Damage.Particle, p.Health)
	assert.True(t, ecs.Has(w, player, component.DamageFlashComponent.Kind()))

	// Within the cooldown the second particle bounces off unharmed.
	resolve = c.Resolve(w, contact(second, component.CategoryParticle, player, component.CategoryPlayer))
	assert.True(t, resolve)
	assert.False(t, isPending(w, second))
	assert.Equal(t, tuning.Player.Health-tuning.Damage.Particle, p.Health)

	damage := eventsOf(w, ecs.EventDamage)
	require.Len(t, damage, 2)
	assert.True(t, damage[0].Data.(ecs.DamageEvent).Applied)
	assert.False(t, damage[1].Data.(ecs.DamageEvent).Applied)
	assert.Equal(t, component.CategoryParticle, damage[1].Data.(ecs.DamageEvent).Source)
}

func TestResolveParticleHitsPlatform(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	c := NewCollisionClassifier(tuning.Damage)
	platform := spawnPlatform(t, w, tuning, 400, 300)
	particle := spawnParticle(t, w, tuning, 400, 280)

	assert.True(t, c.Resolve(w, contact(platform, component.CategoryPlatform, particle, component.CategoryParticle)))
	assert.True(t, isPending(w, particle))
	assert.False(t, isPending(w, platform))

	// Once consumed the particle touches nothing else this step.
	player, p, _ := spawnPlayer(t, w, tuning)
	assert.False(t, c.Resolve(w, contact(player, component.CategoryPlayer, particle, component.CategoryParticle)))
	assert.Equal(t, tuning.Player.Health, p.Health)
}

func TestResolveSpikeAlwaysCollides(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	c := NewCollisionClassifier(tuning.Damage)
	player, p, _ := spawnPlayer(t, w, tuning)
	spike := w.CreateEntity()

	assert.True(t, c.Resolve(w, contact(player, component.CategoryPlayer, spike, component.CategorySpike)))
	assert.Equal(t, tuning.Player.Health-tuning.Damage.Spike, p.Health)
	assert.True(t, c.Resolve(w, contact(spike, component.CategorySpike, player, component.CategoryPlayer)))
	assert.Equal(t, tuning.Player.Health-tuning.Damage.Spike, p.Health, "cooldown blocks the second hit")
	assert.False(t, isPending(w, spike), "spikes are never consumed")
}

func TestResolvePlainCollision(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	c := NewCollisionClassifier(tuning.Damage)
	player, p, _ := spawnPlayer(t, w, tuning)
	platform := spawnPlatform(t, w, tuning, 400, 300)

	assert.True(t, c.Resolve(w, contact(player, component.CategoryPlayer, platform, component.CategoryPlatform)))
	assert.Equal(t, tuning.Player.Health, p.Health)
	assert.Zero(t, w.Events().Len())
}
