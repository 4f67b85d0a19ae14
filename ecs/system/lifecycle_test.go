package system

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupReleasesPendingOnce(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	particle := spawnParticle(t, w, tuning, 100, 100)
	keep := spawnPlatform(t, w, tuning, 400, 300)
	pw := w.PhysicsWorld()
	require.Equal(t, 2, pw.Len())

	markForDestroy(w, particle, "first")
	markForDestroy(w, particle, "second")
	pending, ok := ecs.Get(w, particle, component.PendingDestroyComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "first", pending.Reason)

	cleanup := NewCleanupSystem()
	cleanup.Update(w)
	cleanup.Update(w)

	assert.Equal(t, 1, cleanup.Removed())
	assert.False(t, w.IsAlive(particle))
	assert.False(t, pw.Registered(particle))
	assert.True(t, pw.Registered(keep))
	assert.Equal(t, 1, pw.Len())

	markForDestroy(w, particle, "dead")
	assert.False(t, ecs.Has(w, particle, component.PendingDestroyComponent.Kind()))
}

func TestParticleCullSystem(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	spawnCamera(t, w, tuning, 500)
	high := spawnParticle(t, w, tuning, 100, 500-tuning.Particles.CullAbove-1)
	low := spawnParticle(t, w, tuning, 100, 500)

	NewParticleCullSystem(tuning.Particles).Update(w)

	assert.True(t, isPending(w, high))
	assert.False(t, isPending(w, low))
}

func TestGameOverHaltsOnce(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	_, p, _ := spawnPlayer(t, w, tuning)
	gameOver := NewGameOverSystem()

	gameOver.Update(w)
	assert.False(t, w.Halted())

	p.Health = 0
	p.Score = 1234
	p.MaxDepth = 1234
	gameOver.Update(w)
	gameOver.Update(w)

	require.True(t, w.Halted())
	events := eventsOf(w, ecs.EventGameOver)
	require.Len(t, events, 1)
	over := events[0].Data.(ecs.GameOverEvent)
	assert.Equal(t, 12, over.Score)
	assert.Equal(t, 1234.0, over.MaxDepth)
}

func TestBoundsSystemTeleportsAndDamages(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	e, p, pb := spawnPlayer(t, w, tuning)
	p.DamageCooldownFrames = 30
	cd, _ := ecs.Get(w, e, component.CooldownComponent.Kind())
	cd.Frames = 30
	spawnCamera(t, w, tuning, 1000)

	bounds := NewBoundsSystem(tuning.Damage)
	setBody(pb, 250, 1000-tuning.Damage.OutOfBoundsMargin, 0, -300)
	bounds.Update(w)
	assert.Equal(t, tuning.Player.Health, p.Health, "at the margin is still in bounds")

	setBody(pb, 250, 1000-tuning.Damage.OutOfBoundsMargin-1, 40, -300)
	bounds.Update(w)

	assert.Equal(t, tuning.Player.Health-tuning.Damage.OutOfBounds, p.Health, "cooldown does not apply")
	pos := pb.Body.Position()
	assert.Equal(t, 400.0, pos.X)
	assert.Equal(t, 1300.0, pos.Y)
	assert.Zero(t, pb.Body.Velocity().X)
	assert.Zero(t, pb.Body.Velocity().Y)
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.Equal(t, 1300.0, tr.Y)
	assert.Len(t, eventsOf(w, ecs.EventOutOfBounds), 1)
}

func TestGroundSystem(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	_, p, pb := spawnPlayer(t, w, tuning)
	platform := spawnPlatform(t, w, tuning, 400, 500)
	ground := NewGroundSystem(tuning.Player)

	setBody(pb, 400, 480, 0, 0)
	ground.Update(w)
	assert.True(t, p.CanJump)

	setBody(pb, 400, 480, 0, 200)
	ground.Update(w)
	assert.False(t, p.CanJump, "moving vertically is not grounded")

	setBody(pb, 400, 400, 0, 0)
	ground.Update(w)
	assert.False(t, p.CanJump, "too far from any platform")

	setBody(pb, 400, 480, 0, 0)
	markForDestroy(w, platform, "pruned")
	ground.Update(w)
	assert.False(t, p.CanJump, "pending platforms do not count")
}

func TestDamageFlashFades(t *testing.T) {
	tuning := defaultTuning(t)
	w := newTestWorld(t)
	e, _, _ := spawnPlayer(t, w, tuning)
	startDamageFlash(w, e)
	flash := NewDamageFlashSystem()

	flash.Update(w)
	f, ok := ecs.Get(w, e, component.DamageFlashComponent.Kind())
	require.True(t, ok)
	assert.Less(t, f.Intensity, float32(1))
	assert.Greater(t, f.Intensity, float32(0))

	for i := 0; i < 60; i++ {
		flash.Update(w)
	}
	assert.False(t, ecs.Has(w, e, component.DamageFlashComponent.Kind()))
}

func TestDamageFlashOnDeadEntityReportsError(t *testing.T) {
	w := newTestWorld(t)
	e := w.CreateEntity()
	require.True(t, w.DestroyEntity(e))
	w.Events().Drain()

	startDamageFlash(w, e)

	events := eventsOf(w, ecs.EventError)
	require.Len(t, events, 1)
	assert.Equal(t, e, events[0].Entity)
	err, ok := events[0].Data.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, component.ErrEntityNotAlive)
	assert.False(t, ecs.Has(w, e, component.DamageFlashComponent.Kind()))
}

func TestEventLogSystemDrainsAndCounts(t *testing.T) {
	w := newTestWorld(t)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	events := NewEventLogSystem(logger)

	w.Events().Push(ecs.Event{Kind: ecs.EventDifficulty, Data: ecs.DifficultyEvent{Interval: 55}})
	w.Events().Push(ecs.Event{Kind: ecs.EventDamage, Data: ecs.DamageEvent{Amount: 10, Applied: true, Health: 90}})
	w.Events().Push(ecs.Event{Kind: ecs.EventDamage, Data: ecs.DamageEvent{Amount: 10}})
	events.Update(w)

	assert.Zero(t, w.Events().Len())
	assert.Len(t, events.Last(), 3)
	assert.Equal(t, 2, events.Count(ecs.EventDamage))
	assert.Equal(t, 1, events.Count(ecs.EventDifficulty))
	assert.Contains(t, buf.String(), "difficulty")
	assert.Contains(t, buf.String(), "interval=55")

	events.Update(w)
	assert.Empty(t, events.Last())
	assert.Equal(t, 2, events.Count(ecs.EventDamage))
}
