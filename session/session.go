// Package session owns one run of the game: the world, its systems, and the
// fixed per-frame order they run in.
package session

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/entity"
	"github.com/milk9111/freefall/ecs/system"
	"github.com/milk9111/freefall/prefabs"
)

type Options struct {
	Seed int64
	// Tuning defaults to the embedded tuning.yaml.
	Tuning *prefabs.Tuning
	// Curve defaults to a step curve built from the particle tuning.
	Curve  system.SpawnCurve
	Logger *log.Logger
}

// State is the complete game state passed through the loop. Nothing about a
// run lives outside it.
type State struct {
	World   *ecs.World
	Player  ecs.Entity
	Camera  ecs.Entity
	Hazards *system.HazardField
	// RunID tags the run in logs and saved records. It takes no part in
	// the simulation.
	RunID string
	Seed  int64

	tuning prefabs.Tuning
	rng    *rand.Rand
	logger *log.Logger

	scheduler  *ecs.Scheduler
	classifier *system.CollisionClassifier
	terrain    *system.TerrainSystem
	spawner    *system.ParticleSpawnSystem
	ground     *system.GroundSystem
	bounds     *system.BoundsSystem
	cleanup    *system.CleanupSystem
	events     *system.EventLogSystem

	over       bool
	overFrames int
	result     ecs.GameOverEvent
}

func New(opts Options) (*State, error) {
	tuning := opts.Tuning
	if tuning == nil {
		t, err := prefabs.DefaultTuning()
		if err != nil {
			return nil, err
		}
		tuning = &t
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(common.Gravity))
	s := &State{
		World:  w,
		RunID:  uuid.NewString(),
		Seed:   opts.Seed,
		tuning: *tuning,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
	}

	var err error
	if s.Camera, err = entity.NewCamera(w, tuning.Camera); err != nil {
		return nil, err
	}
	if s.Player, err = entity.NewPlayer(w, tuning.Player); err != nil {
		return nil, err
	}
	if _, err = entity.NewPlatform(w, system.StartingPlatform(tuning.Terrain), tuning.Terrain); err != nil {
		return nil, err
	}
	if s.Hazards, err = system.NewHazardField(w, tuning.Spikes); err != nil {
		return nil, err
	}

	s.classifier = system.NewCollisionClassifier(tuning.Damage)
	if err := s.classifier.Install(w); err != nil {
		return nil, err
	}

	s.terrain = system.NewTerrainSystem(system.NewPlatformGenerator(s.rng, tuning.Terrain), tuning.Terrain)
	s.spawner = system.NewParticleSpawnSystem(s.rng, tuning.Particles, opts.Curve)
	s.ground = system.NewGroundSystem(tuning.Player)
	s.bounds = system.NewBoundsSystem(tuning.Damage)
	s.cleanup = system.NewCleanupSystem()
	s.events = system.NewEventLogSystem(logger)

	// Game over is checked wherever health can change before the frame
	// would otherwise mutate more state.
	s.scheduler = ecs.NewScheduler(
		system.NewPlayerControlSystem(),
		system.NewCameraSystem(),
		system.NewCooldownSystem(),
		system.NewScoreSystem(),
		s.terrain,
		s.spawner,
		s.ground,
		system.NewGameOverSystem(),
		s.bounds,
		system.NewGameOverSystem(),
		system.NewPhysicsSystem(),
		system.NewGameOverSystem(),
		system.NewParticleCullSystem(tuning.Particles),
		s.cleanup,
		system.NewDamageFlashSystem(),
	)

	logger.Debug("session ready", "run", s.RunID, "seed", opts.Seed, "spikes", s.Hazards.Len(), "bodies", w.PhysicsWorld().Len())
	return s, nil
}

// Step runs one frame with the given input and reports whether the game is
// still running. Once the game is over Step only counts OverFrames.
func (s *State) Step(in component.Input) bool {
	if s.over {
		s.overFrames++
		return false
	}
	w := s.World
	if cur, ok := ecs.Get(w, s.Player, component.InputComponent.Kind()); ok {
		cur.MoveX = common.Clamp(in.MoveX, -1, 1)
		cur.JumpPressed = in.JumpPressed
	}

	s.scheduler.Update(w)
	s.events.Update(w)

	if w.Halted() {
		s.over = true
		for _, evt := range s.events.Last() {
			if data, ok := evt.Data.(ecs.GameOverEvent); ok {
				s.result = data
			}
		}
		return false
	}
	w.AdvanceFrame()
	return true
}

func (s *State) Over() bool {
	return s.over
}

// OverFrames is how many steps were taken after the game ended.
func (s *State) OverFrames() int {
	return s.overFrames
}

// Frame is the number of completed frames.
func (s *State) Frame() int {
	return s.World.Frame()
}

// Result is the final run summary. It is only meaningful once Over is true.
func (s *State) Result() ecs.GameOverEvent {
	return s.result
}

func (s *State) Tuning() prefabs.Tuning {
	return s.tuning
}

func (s *State) Logger() *log.Logger {
	return s.logger
}

func (s *State) Events() *system.EventLogSystem {
	return s.events
}

// SpawnInterval is the current particle spawn interval in frames.
func (s *State) SpawnInterval() int {
	return s.spawner.Interval()
}

func (s *State) SetCurve(curve system.SpawnCurve) {
	s.spawner.SetCurve(curve)
}

// ApplyTuning swaps in new tuning mid-run. Existing bodies keep the values
// they were built with; the player's control values and everything spawned
// from now on use the new ones.
func (s *State) ApplyTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("session: apply tuning: %w", err)
	}
	s.tuning = t
	s.terrain.SetTuning(t.Terrain)
	s.spawner.SetTuning(t.Particles)
	s.ground.SetTuning(t.Player)
	s.bounds.SetTuning(t.Damage)
	s.classifier.SetTuning(t.Damage)

	if p, ok := ecs.Get(s.World, s.Player, component.PlayerComponent.Kind()); ok {
		p.MoveSpeed = t.Player.MoveSpeed
		p.JumpSpeed = t.Player.JumpSpeed
		p.DamageCooldownFrames = t.Player.DamageCooldownFrames
	}
	if cam, ok := ecs.Get(s.World, s.Camera, component.CameraComponent.Kind()); ok {
		cam.Smoothness = t.Camera.Smoothness
		cam.LookAhead = t.Camera.LookAhead
	}
	return nil
}
