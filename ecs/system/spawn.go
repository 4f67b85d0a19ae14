package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/entity"
	"github.com/milk9111/freefall/prefabs"
)

// SpawnCurve computes the particle spawn interval after a difficulty ramp.
type SpawnCurve interface {
	Next(interval, ramps int) (int, error)
}

// StepCurve shortens the interval by Step on every ramp, never below Floor.
type StepCurve struct {
	Step  int
	Floor int
}

func (c StepCurve) Next(interval, _ int) (int, error) {
	return max(c.Floor, interval-c.Step), nil
}

var ErrBadInterval = errors.New("spawn: interval must be positive")

// ScriptCurve runs a tengo script to compute the next interval. The script
// sees interval, ramps, step and floor as globals and assigns interval.
type ScriptCurve struct {
	compiled *tengo.Compiled
	step     int
	floor    int
}

func NewScriptCurve(src []byte, step, floor int) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	for name, value := range map[string]any{
		"interval": 0,
		"ramps":    0,
		"step":     step,
		"floor":    floor,
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("spawn: script add %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn: compile difficulty script: %w", err)
	}
	return &ScriptCurve{compiled: compiled, step: step, floor: floor}, nil
}

// LoadScriptCurve compiles the named script from prefabs/scripts.
func LoadScriptCurve(name string, step, floor int) (*ScriptCurve, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("spawn: load %s: %w", name, err)
	}
	return NewScriptCurve(src, step, floor)
}

func (c *ScriptCurve) Next(interval, ramps int) (int, error) {
	if err := c.compiled.Set("interval", interval); err != nil {
		return interval, err
	}
	if err := c.compiled.Set("ramps", ramps); err != nil {
		return interval, err
	}
	if err := c.compiled.Run(); err != nil {
		return interval, fmt.Errorf("spawn: run difficulty script: %w", err)
	}
	next := c.compiled.Get("interval").Int()
	if next <= 0 {
		return interval, fmt.Errorf("%w: script returned %d", ErrBadInterval, next)
	}
	return next, nil
}

// ParticleSpawnSystem drops a particle in below the view each time the
// spawn timer elapses and tightens the interval every ramp period.
type ParticleSpawnSystem struct {
	rng   *rand.Rand
	t     prefabs.ParticleTuning
	curve SpawnCurve

	interval   int
	spawnTimer int
	rampTimer  int
	ramps      int
}

func NewParticleSpawnSystem(rng *rand.Rand, t prefabs.ParticleTuning, curve SpawnCurve) *ParticleSpawnSystem {
	if curve == nil {
		curve = StepCurve{Step: t.RampStep, Floor: t.MinInterval}
	}
	return &ParticleSpawnSystem{rng: rng, t: t, curve: curve, interval: t.SpawnInterval}
}

func (s *ParticleSpawnSystem) Interval() int {
	return s.interval
}

// SetTuning applies new particle tuning. The current interval and timers
// are kept so a reload does not reset the difficulty.
func (s *ParticleSpawnSystem) SetTuning(t prefabs.ParticleTuning) {
	s.t = t
}

func (s *ParticleSpawnSystem) SetCurve(curve SpawnCurve) {
	if curve != nil {
		s.curve = curve
	}
}

func (s *ParticleSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.spawnTimer++
	if s.spawnTimer >= s.interval {
		x := float64(common.RandInt(s.rng, 0, common.ScreenWidth))
		y := CameraOffset(w) + common.ScreenHeight + s.t.SpawnBelow
		if _, err := entity.NewParticle(w, s.rng, x, y, s.t); err != nil {
			w.Events().Push(ecs.Event{Kind: ecs.EventError, Data: err})
		}
		s.spawnTimer = 0
	}

	s.rampTimer++
	if s.rampTimer >= s.t.RampFrames {
		s.rampTimer = 0
		s.ramps++
		next, err := s.curve.Next(s.interval, s.ramps)
		if err != nil {
			w.Events().Push(ecs.Event{Kind: ecs.EventError, Data: err})
			next, _ = StepCurve{Step: s.t.RampStep, Floor: s.t.MinInterval}.Next(s.interval, s.ramps)
		}
		if next != s.interval {
			s.interval = next
			w.Events().Push(ecs.Event{Kind: ecs.EventDifficulty, Data: ecs.DifficultyEvent{Interval: next}})
		}
	}
}
