package prefabs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningMatchesGame(t *testing.T) {
	tuning, err := LoadTuning("")
	require.NoError(t, err)

	assert.Equal(t, 30.0, tuning.Player.Size)
	assert.Equal(t, 100, tuning.Player.Health)
	assert.Equal(t, -400.0, tuning.Player.JumpSpeed)
	assert.Equal(t, 30, tuning.Player.DamageCooldownFrames)
	assert.Equal(t, 0.1, tuning.Camera.Smoothness)
	assert.Equal(t, 550.0, tuning.Terrain.StartY)
	assert.Equal(t, 0.3, tuning.Terrain.BouncyChance)
	assert.InDelta(t, math.Pi/4, tuning.Terrain.MaxRotation(), 1e-12)
	assert.Equal(t, 40.0, tuning.Spikes.Spacing)
	assert.Equal(t, 60, tuning.Particles.SpawnInterval)
	assert.Equal(t, 10, tuning.Particles.MinInterval)
	assert.Equal(t, 10, tuning.Damage.Particle)
	assert.Equal(t, 25, tuning.Damage.Spike)
}

func TestParseTuningOverlaysDefaults(t *testing.T) {
	tuning, err := ParseTuning([]byte("player:\n  health: 50\nparticles:\n  spawn_interval: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, 50, tuning.Player.Health)
	assert.Equal(t, 30, tuning.Particles.SpawnInterval)
	// untouched fields keep their defaults
	assert.Equal(t, 30.0, tuning.Player.Size)
	assert.Equal(t, 150.0, tuning.Terrain.Gap)
	require.NoError(t, tuning.Validate())
}

func TestParseTuningRejectsBadYAML(t *testing.T) {
	_, err := ParseTuning([]byte("player: [unterminated"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_size", func(t *Tuning) { t.Player.Size = 0 }},
		{"smoothness_above_one", func(t *Tuning) { t.Camera.Smoothness = 1.5 }},
		{"bouncy_chance_negative", func(t *Tuning) { t.Terrain.BouncyChance = -0.1 }},
		{"sides_inverted", func(t *Tuning) { t.Terrain.MinSides, t.Terrain.MaxSides = 6, 3 }},
		{"gap_can_go_negative", func(t *Tuning) { t.Terrain.GapVariation = t.Terrain.Gap }},
		{"particle_sizes_inverted", func(t *Tuning) { t.Particles.MinSize = 30 }},
		{"no_spawn_interval", func(t *Tuning) { t.Particles.SpawnInterval = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning, err := DefaultTuning()
			require.NoError(t, err)
			c.mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}

func TestLoadTuningFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("damage:\n  spike: 40\n"), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 40, tuning.Damage.Spike)

	require.NoError(t, os.WriteFile(path, []byte("player:\n  health: -1\n"), 0o644))
	_, err = LoadTuning(path)
	assert.ErrorIs(t, err, ErrInvalidTuning)

	_, err = LoadTuning(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"difficulty.tengo", "scripts/difficulty.tengo", "prefabs/scripts/difficulty.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "interval")
	}
}
