// freefall is an endless-fall platformer: drop through procedurally
// generated platforms while dodging wall spikes and rising embers.
//
// Usage:
//
//	freefall                 - Play in a window (same as "freefall play")
//	freefall play            - Play in a window
//	freefall simulate        - Run the game headless and print the result
//
// Global flags:
//
//	--seed <value>               - RNG seed (0 = random based on time)
//	--debug                      - Debug logging and physics overlay
//	--tuning <path>              - Tuning YAML to use instead of the embedded one
//	--difficulty-script <path>   - Tengo script for the spawn interval curve
//	--watch                      - Reload tuning and script edits while playing
//	--game-over-seconds <n>      - Exit n seconds after game over (0 = wait for Quit)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/freefall/ecs/system"
	"github.com/milk9111/freefall/prefabs"
	"github.com/milk9111/freefall/session"
)

var (
	flagSeed             int64
	flagDebug            bool
	flagTuning           string
	flagDifficultyScript string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "freefall",
	Short: "Fall as far as you can",
	Long: `freefall drops you through an endless shaft of platforms. Embers rise
from below and the walls are lined with spikes. Every unit of depth scores.

Controls:
  Left/Right, A/D   - Move
  Space             - Jump (once more in mid-air)
  Esc               - Quit`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging and physics overlay")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDifficultyScript, "difficulty-script", "", "Path to a tengo difficulty script")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "freefall",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// sessionOptions builds the options shared by every command from the global
// flags.
func sessionOptions(logger *log.Logger) (session.Options, error) {
	opts := session.Options{
		Seed:   resolveSeed(flagSeed),
		Logger: logger,
	}

	tuning, err := prefabs.LoadTuning(flagTuning)
	if err != nil {
		return opts, err
	}
	opts.Tuning = tuning

	if flagDifficultyScript != "" {
		curve, err := loadCurveFile(flagDifficultyScript, tuning.Particles)
		if err != nil {
			return opts, err
		}
		opts.Curve = curve
	}
	return opts, nil
}

func loadCurveFile(path string, t prefabs.ParticleTuning) (*system.ScriptCurve, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read difficulty script: %w", err)
	}
	return system.NewScriptCurve(src, t.RampStep, t.MinInterval)
}
