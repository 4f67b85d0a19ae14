package session

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/entity"
	"github.com/milk9111/freefall/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, seed int64) *State {
	t.Helper()
	s, err := New(Options{Seed: seed, Logger: log.New(io.Discard)})
	require.NoError(t, err)
	return s
}

func player(t *testing.T, s *State) (*component.Player, *component.PhysicsBody) {
	t.Helper()
	p, ok := ecs.Get(s.World, s.Player, component.PlayerComponent.Kind())
	require.True(t, ok)
	pb, ok := ecs.Get(s.World, s.Player, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	return p, pb
}

func TestNewBuildsInitialState(t *testing.T) {
	s := newState(t, 1)
	tuning := s.Tuning()

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Frame)
	assert.False(t, snap.Over)
	assert.Equal(t, tuning.Player.Health, snap.Health)
	assert.Equal(t, tuning.Player.Health, snap.MaxHealth)
	assert.Equal(t, tuning.Player.SpawnX, snap.PlayerX)
	assert.Equal(t, tuning.Player.SpawnY, snap.PlayerY)
	assert.Equal(t, 1, snap.Platforms, "only the starting platform exists before the first frame")
	assert.Equal(t, tuning.Particles.SpawnInterval, snap.Interval)
	assert.Positive(t, s.Hazards.Len())
	assert.Equal(t, s.Hazards.Len()+2, s.World.PhysicsWorld().Len())
	assert.Equal(t, int64(1), s.Seed)
	assert.NotEmpty(t, s.RunID)
	assert.NotEqual(t, s.RunID, newState(t, 1).RunID)
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	tuning, err := prefabs.DefaultTuning()
	require.NoError(t, err)
	tuning.Player.Health = 0
	_, err = New(Options{Tuning: &tuning, Logger: log.New(io.Discard)})
	assert.ErrorIs(t, err, prefabs.ErrInvalidTuning)
}

func TestSameSeedSameRun(t *testing.T) {
	a := newState(t, 77)
	b := newState(t, 77)

	for i := 0; i < 300; i++ {
		in := component.Input{MoveX: float64(i%3 - 1), JumpPressed: i%45 == 0}
		ra := a.Step(in)
		rb := b.Step(in)
		require.Equal(t, ra, rb, "frame %d", i)
		require.Equal(t, a.Snapshot(), b.Snapshot(), "frame %d", i)
	}
}

func TestStepClampsInput(t *testing.T) {
	s := newState(t, 2)
	_, pb := player(t, s)

	require.True(t, s.Step(component.Input{MoveX: 5}))
	assert.InDelta(t, s.Tuning().Player.MoveSpeed, pb.Body.Velocity().X, 1e-6)
	assert.Equal(t, 1, s.Frame())
}

func TestPlayerFallsOntoStartingPlatform(t *testing.T) {
	s := newState(t, 3)
	for i := 0; i < 120; i++ {
		require.True(t, s.Step(component.Input{}))
	}
	snap := s.Snapshot()
	start := s.Tuning().Terrain.StartY
	assert.Greater(t, snap.MaxDepth, start-50)
	assert.Positive(t, snap.Score)
	assert.Greater(t, snap.Platforms, 1, "terrain is generated ahead of the camera")
	assert.Positive(t, snap.CameraY)
}

func TestParticleConsumedByPlatform(t *testing.T) {
	s := newState(t, 4)
	tuning := s.Tuning()
	particle, err := entity.NewParticle(s.World, rand.New(rand.NewSource(1)), 300, tuning.Terrain.StartY-50, tuning.Particles)
	require.NoError(t, err)
	pb, ok := ecs.Get(s.World, particle, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	pb.Body.SetVelocity(0, 0)
	pb.Body.SetAngularVelocity(0)

	for i := 0; i < 60 && s.World.IsAlive(particle); i++ {
		s.Step(component.Input{})
	}
	assert.False(t, s.World.IsAlive(particle))
	assert.False(t, s.World.PhysicsWorld().Registered(particle))
}

func TestGameOverFreezesState(t *testing.T) {
	s := newState(t, 5)
	for i := 0; i < 10; i++ {
		require.True(t, s.Step(component.Input{}))
	}
	p, _ := player(t, s)
	p.Health = 0
	before := s.Snapshot()

	assert.False(t, s.Step(component.Input{MoveX: 1, JumpPressed: true}))
	require.True(t, s.Over())
	result := s.Result()
	assert.Equal(t, 10, result.Frame)

	frozen := s.Snapshot()
	assert.Equal(t, frozen.Score, result.Score)
	assert.Equal(t, frozen.MaxDepth, result.MaxDepth)
	assert.Equal(t, before.PlayerY, frozen.PlayerY, "physics does not run after the halt")
	assert.Equal(t, 1, s.Events().Count(ecs.EventGameOver))

	for i := 0; i < 30; i++ {
		assert.False(t, s.Step(component.Input{MoveX: -1, JumpPressed: true}))
	}
	assert.Equal(t, frozen, s.Snapshot())
	assert.Equal(t, 1, s.Events().Count(ecs.EventGameOver))
	assert.Equal(t, 30, s.OverFrames())
}

func TestOutOfBoundsCanEndTheGame(t *testing.T) {
	s := newState(t, 6)
	tuning := s.Tuning()
	require.True(t, s.Step(component.Input{}))

	p, pb := player(t, s)
	p.Health = tuning.Damage.OutOfBounds
	pb.Body.SetPosition(cp.Vector{X: 400, Y: -1000})

	assert.False(t, s.Step(component.Input{}))
	snap := s.Snapshot()
	assert.True(t, snap.Over)
	assert.Equal(t, 0, snap.Health)
	assert.Equal(t, snap.CameraY+300, snap.PlayerY, "halted right after the teleport")
	assert.Equal(t, 1, s.Events().Count(ecs.EventOutOfBounds))
}

func TestApplyTuning(t *testing.T) {
	s := newState(t, 7)
	tuning := s.Tuning()

	bad := tuning
	bad.Camera.Smoothness = 0
	assert.ErrorIs(t, s.ApplyTuning(bad), prefabs.ErrInvalidTuning)
	assert.Equal(t, tuning, s.Tuning())

	next := tuning
	next.Player.MoveSpeed = 320
	next.Camera.Smoothness = 0.5
	next.Damage.Particle = 1
	require.NoError(t, s.ApplyTuning(next))

	p, _ := player(t, s)
	assert.Equal(t, 320.0, p.MoveSpeed)
	cam, ok := ecs.Get(s.World, s.Camera, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 0.5, cam.Smoothness)
	assert.Equal(t, next, s.Tuning())

	require.True(t, s.Step(component.Input{MoveX: 1}))
	_, pb := player(t, s)
	assert.InDelta(t, 320, pb.Body.Velocity().X, 1e-6)
}
