package main

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/prefabs"
	"github.com/milk9111/freefall/records"
	"github.com/milk9111/freefall/render"
	"github.com/milk9111/freefall/session"
)

var (
	flagWatch           bool
	flagGameOverSeconds float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window and play until health runs out or the window is
closed. The game-over panel closes the game after --game-over-seconds, or
waits for Quit when that is 0.

With --watch, edits to the tuning file (or to prefabs/ when no --tuning is
given) and to the difficulty script are applied while the game runs.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload tuning and difficulty script when they change")
	rootCmd.PersistentFlags().Float64Var(&flagGameOverSeconds, "game-over-seconds", 5, "Seconds the game-over panel stays before exiting (0 = wait for Quit)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagDebug)
	opts, err := sessionOptions(logger)
	if err != nil {
		return err
	}
	state, err := session.New(opts)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(rand.New(rand.NewSource(opts.Seed + 1)))
	renderer.Debug = flagDebug

	game := NewGame(state, renderer, logger)
	game.closeAfter = int(flagGameOverSeconds * common.TPS)
	if book, err := records.Open("freefall"); err != nil {
		logger.Warn("best run will not be saved", "err", err)
	} else {
		game.records = book
		if best, ok := book.Best(); ok {
			logger.Info("best run", "score", best.Score, "depth", best.Depth)
		}
	}
	if flagWatch {
		watcher, err := prefabs.NewWatcher(watchDirs()...)
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			game.Watch(watcher, flagTuning, flagDifficultyScript)
		}
	}

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("freefall")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("exit", "frame", state.Frame(), "score", state.Snapshot().Score)
	return nil
}

// watchDirs lists the directories holding the files that can be reloaded.
func watchDirs() []string {
	seen := map[string]bool{}
	var dirs []string
	add := func(dir string) {
		if dir == "" || seen[dir] {
			return
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	if flagTuning != "" {
		add(filepath.Dir(flagTuning))
	} else {
		add("prefabs")
	}
	if flagDifficultyScript != "" {
		add(filepath.Dir(flagDifficultyScript))
	} else {
		add(filepath.Join("prefabs", "scripts"))
	}
	return dirs
}
