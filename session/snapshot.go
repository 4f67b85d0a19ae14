package session

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/system"
)

// Snapshot is a read-only summary of the state after a frame.
type Snapshot struct {
	Frame     int
	Over      bool
	Health    int
	MaxHealth int
	Score     int
	MaxDepth  float64
	PlayerX   float64
	PlayerY   float64
	CameraY   float64
	Platforms int
	Particles int
	Interval  int
}

func (s *State) Snapshot() Snapshot {
	w := s.World
	snap := Snapshot{
		Frame:     w.Frame(),
		Over:      s.over,
		CameraY:   system.CameraOffset(w),
		Platforms: len(system.LivePlatforms(w)),
		Interval:  s.spawner.Interval(),
	}
	if p, ok := ecs.Get(w, s.Player, component.PlayerComponent.Kind()); ok {
		snap.Health = p.Health
		snap.MaxHealth = p.MaxHealth
		snap.Score = system.DisplayScore(p)
		snap.MaxDepth = p.MaxDepth
	}
	if pb, ok := ecs.Get(w, s.Player, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pos := pb.Body.Position()
		snap.PlayerX, snap.PlayerY = pos.X, pos.Y
	}
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, _ *component.Particle) {
		if !ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
			snap.Particles++
		}
	})
	return snap
}
