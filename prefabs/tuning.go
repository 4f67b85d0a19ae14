package prefabs

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const TuningFile = "tuning.yaml"

type Tuning struct {
	Player    PlayerTuning   `yaml:"player"`
	Camera    CameraTuning   `yaml:"camera"`
	Terrain   TerrainTuning  `yaml:"terrain"`
	Spikes    SpikeTuning    `yaml:"spikes"`
	Particles ParticleTuning `yaml:"particles"`
	Damage    DamageTuning   `yaml:"damage"`
}

type PlayerTuning struct {
	Size                 float64 `yaml:"size"`
	Mass                 float64 `yaml:"mass"`
	Elasticity           float64 `yaml:"elasticity"`
	Friction             float64 `yaml:"friction"`
	Health               int     `yaml:"health"`
	JumpSpeed            float64 `yaml:"jump_speed"`
	MoveSpeed            float64 `yaml:"move_speed"`
	DamageCooldownFrames int     `yaml:"damage_cooldown_frames"`
	GroundedDistance     float64 `yaml:"grounded_distance"`
	GroundedVelocity     float64 `yaml:"grounded_velocity"`
	SpawnX               float64 `yaml:"spawn_x"`
	SpawnY               float64 `yaml:"spawn_y"`
}

type CameraTuning struct {
	Smoothness float64 `yaml:"smoothness"`
	LookAhead  float64 `yaml:"look_ahead"`
}

type TerrainTuning struct {
	StartY             float64 `yaml:"start_y"`
	StartWidth         float64 `yaml:"start_width"`
	Gap                float64 `yaml:"gap"`
	GapVariation       float64 `yaml:"gap_variation"`
	WidthVariation     float64 `yaml:"width_variation"`
	DepthScale         float64 `yaml:"depth_scale"`
	BouncyChance       float64 `yaml:"bouncy_chance"`
	Elasticity         float64 `yaml:"elasticity"`
	BouncyElasticity   float64 `yaml:"bouncy_elasticity"`
	Friction           float64 `yaml:"friction"`
	Thickness          float64 `yaml:"thickness"`
	ComplexityDepth    float64 `yaml:"complexity_depth"`
	MaxComplexity      float64 `yaml:"max_complexity"`
	RotationDepth      float64 `yaml:"rotation_depth"`
	MaxRotationDegrees float64 `yaml:"max_rotation_degrees"`
	MinSides           int     `yaml:"min_sides"`
	MaxSides           int     `yaml:"max_sides"`
}

// MaxRotation returns the rotation cap in radians.
func (t TerrainTuning) MaxRotation() float64 {
	return t.MaxRotationDegrees * math.Pi / 180
}

type SpikeTuning struct {
	Spacing float64 `yaml:"spacing"`
	Size    float64 `yaml:"size"`
	StartY  float64 `yaml:"start_y"`
	EndY    float64 `yaml:"end_y"`
}

type ParticleTuning struct {
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	SpawnInterval int     `yaml:"spawn_interval"`
	MinInterval   int     `yaml:"min_interval"`
	RampStep      int     `yaml:"ramp_step"`
	RampFrames    int     `yaml:"ramp_frames"`
	SpawnBelow    float64 `yaml:"spawn_below"`
	CullAbove     float64 `yaml:"cull_above"`
	Elasticity    float64 `yaml:"elasticity"`
	Friction      float64 `yaml:"friction"`
	SizePerMass   float64 `yaml:"size_per_mass"`
	MaxDrift      float64 `yaml:"max_drift"`
	MinLaunch     float64 `yaml:"min_launch"`
	MaxLaunch     float64 `yaml:"max_launch"`
	MaxSpin       float64 `yaml:"max_spin"`
}

type DamageTuning struct {
	Particle          int     `yaml:"particle"`
	Spike             int     `yaml:"spike"`
	OutOfBounds       int     `yaml:"out_of_bounds"`
	OutOfBoundsMargin float64 `yaml:"out_of_bounds_margin"`
}

// LoadSpec decodes a YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads the tuning from path, or from the prefab lookup when path
// is empty, and validates it.
func LoadTuning(path string) (*Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if path == "" {
		t, err = LoadSpec[Tuning](TuningFile)
		if err != nil {
			return nil, err
		}
	} else {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("prefabs: read %s: %w", path, readErr)
		}
		t, err = ParseTuning(data)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", path, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseTuning decodes YAML on top of the embedded defaults, so partial files
// only override what they name.
func ParseTuning(data []byte) (Tuning, error) {
	t, err := DefaultTuning()
	if err != nil {
		return Tuning{}, err
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
	}
	return t, nil
}

// DefaultTuning returns the embedded tuning.
func DefaultTuning() (Tuning, error) {
	data, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		return Tuning{}, fmt.Errorf("prefabs: embedded %s: %w", TuningFile, err)
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal embedded %s: %w", TuningFile, err)
	}
	return t, nil
}

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Player.Size > 0, "player.size must be positive, got %v", t.Player.Size)
	check(t.Player.Mass > 0, "player.mass must be positive, got %v", t.Player.Mass)
	check(t.Player.Health > 0, "player.health must be positive, got %d", t.Player.Health)
	check(t.Player.DamageCooldownFrames >= 0, "player.damage_cooldown_frames must not be negative")
	check(t.Camera.Smoothness > 0 && t.Camera.Smoothness <= 1, "camera.smoothness must be in (0,1], got %v", t.Camera.Smoothness)
	check(t.Terrain.Gap > t.Terrain.GapVariation, "terrain.gap must exceed terrain.gap_variation")
	check(t.Terrain.DepthScale > 0, "terrain.depth_scale must be positive")
	check(t.Terrain.Thickness > 0, "terrain.thickness must be positive")
	check(t.Terrain.WidthVariation >= 0 && t.Terrain.WidthVariation <= 1, "terrain.width_variation must be in [0,1]")
	check(t.Terrain.BouncyChance >= 0 && t.Terrain.BouncyChance <= 1, "terrain.bouncy_chance must be in [0,1]")
	check(t.Terrain.MaxComplexity >= 0 && t.Terrain.MaxComplexity <= 1, "terrain.max_complexity must be in [0,1]")
	check(t.Terrain.ComplexityDepth > 0, "terrain.complexity_depth must be positive")
	check(t.Terrain.RotationDepth > 0, "terrain.rotation_depth must be positive")
	check(t.Terrain.MaxRotationDegrees >= 0 && t.Terrain.MaxRotationDegrees < 90, "terrain.max_rotation_degrees must be in [0,90)")
	check(t.Terrain.MinSides >= 3 && t.Terrain.MinSides <= t.Terrain.MaxSides, "terrain sides must satisfy 3 <= min_sides <= max_sides")
	check(t.Spikes.Spacing > 0, "spikes.spacing must be positive")
	check(t.Spikes.Size > 0, "spikes.size must be positive")
	check(t.Spikes.StartY <= t.Spikes.EndY, "spikes.start_y must not exceed spikes.end_y")
	check(t.Particles.MinSize > 0 && t.Particles.MinSize <= t.Particles.MaxSize, "particles sizes must satisfy 0 < min_size <= max_size")
	check(t.Particles.SpawnInterval > 0, "particles.spawn_interval must be positive")
	check(t.Particles.MinInterval > 0, "particles.min_interval must be positive")
	check(t.Particles.RampFrames > 0, "particles.ramp_frames must be positive")
	check(t.Particles.RampStep >= 0, "particles.ramp_step must not be negative")
	check(t.Particles.SizePerMass > 0, "particles.size_per_mass must be positive")
	check(t.Particles.MinLaunch <= t.Particles.MaxLaunch, "particles.min_launch must not exceed particles.max_launch")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidTuning, errors.Join(errs...))
}
