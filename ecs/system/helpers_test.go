package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/entity"
	"github.com/milk9111/freefall/prefabs"
	"github.com/stretchr/testify/require"
)

func defaultTuning(t *testing.T) prefabs.Tuning {
	t.Helper()
	tuning, err := prefabs.DefaultTuning()
	require.NoError(t, err)
	return tuning
}

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(common.Gravity))
	return w
}

func spawnPlayer(t *testing.T, w *ecs.World, tuning prefabs.Tuning) (ecs.Entity, *component.Player, *component.PhysicsBody) {
	t.Helper()
	e, err := entity.NewPlayer(w, tuning.Player)
	require.NoError(t, err)
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	require.True(t, ok)
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	return e, p, pb
}

func spawnParticle(t *testing.T, w *ecs.World, tuning prefabs.Tuning, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewParticle(w, rand.New(rand.NewSource(7)), x, y, tuning.Particles)
	require.NoError(t, err)
	return e
}

func spawnPlatform(t *testing.T, w *ecs.World, tuning prefabs.Tuning, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlatform(w, entity.PlatformSpec{X: x, Y: y, Width: 200, Depth: y}, tuning.Terrain)
	require.NoError(t, err)
	return e
}

func spawnCamera(t *testing.T, w *ecs.World, tuning prefabs.Tuning, offset float64) *component.Camera {
	t.Helper()
	e, err := entity.NewCamera(w, tuning.Camera)
	require.NoError(t, err)
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	require.True(t, ok)
	cam.OffsetY = offset
	return cam
}

func bodyY(pb *component.PhysicsBody) float64 {
	return pb.Body.Position().Y
}

func setBody(pb *component.PhysicsBody, x, y, vx, vy float64) {
	pb.Body.SetPosition(cp.Vector{X: x, Y: y})
	pb.Body.SetVelocity(vx, vy)
}

func isPending(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.PendingDestroyComponent.Kind())
}

func eventsOf(w *ecs.World, kind ecs.EventKind) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}
