package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/system"
	"github.com/milk9111/freefall/prefabs"
	"github.com/milk9111/freefall/records"
	"github.com/milk9111/freefall/render"
	"github.com/milk9111/freefall/session"
)

type Game struct {
	state    *session.State
	renderer *render.Renderer
	input    *Input
	logger   *log.Logger

	watcher    *prefabs.Watcher
	tuningPath string
	scriptPath string

	records  *records.Book
	gameOver *ebitenui.UI
	quit     bool
	// closeAfter ends the game this many frames after the game-over panel
	// appears. Zero waits for Quit.
	closeAfter int
}

func NewGame(state *session.State, renderer *render.Renderer, logger *log.Logger) *Game {
	return &Game{
		state:    state,
		renderer: renderer,
		input:    NewInput(),
		logger:   logger,
	}
}

// Watch makes the game reload tuning and the difficulty script when the
// watcher reports a change. Empty paths mean the prefabs/ copies.
func (g *Game) Watch(w *prefabs.Watcher, tuningPath, scriptPath string) {
	g.watcher = w
	g.tuningPath = tuningPath
	g.scriptPath = scriptPath
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReload()

	if g.state.Over() {
		if g.gameOver == nil {
			best := g.recordRun()
			g.gameOver = NewGameOverUI(g, g.state.Result(), best)
		}
		g.gameOver.Update()
		g.state.Step(component.Input{})
		if g.closeAfter > 0 && g.state.OverFrames() >= g.closeAfter {
			return ebiten.Termination
		}
		return nil
	}

	g.state.Step(g.input.Poll())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)
	g.renderer.Draw(newScreenCanvas(screen), g.state)
	if g.gameOver != nil {
		g.gameOver.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

// recordRun saves the finished run if it is the best so far and returns the
// best run to show.
func (g *Game) recordRun() records.Run {
	result := g.state.Result()
	run := records.Run{
		ID:    g.state.RunID,
		Seed:  g.state.Seed,
		Frame: result.Frame,
		Score: result.Score,
		Depth: result.MaxDepth,
	}
	if g.records == nil {
		return run
	}
	isBest, err := g.records.Record(run)
	if err != nil {
		g.logger.Warn("save record", "err", err)
	}
	if isBest {
		g.logger.Info("new best", "run", run.ID, "score", run.Score)
	}
	if best, ok := g.records.Best(); ok {
		return best
	}
	return run
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.PollError(); err != nil {
		g.logger.Warn("watch", "err", err)
	}
	for {
		change, ok := g.watcher.Poll()
		if !ok {
			return
		}
		switch {
		case change.Kind == prefabs.ChangeTuning && g.matches(change.Path, g.tuningPath, prefabs.TuningFile):
			g.reloadTuning()
		case change.Kind == prefabs.ChangeScript && g.matches(change.Path, g.scriptPath, "difficulty.tengo"):
			g.reloadCurve()
		}
	}
}

func (g *Game) matches(changed, configured, fallback string) bool {
	if configured != "" {
		return filepath.Clean(changed) == filepath.Clean(configured)
	}
	return filepath.Base(changed) == fallback
}

func (g *Game) reloadTuning() {
	t, err := prefabs.LoadTuning(g.tuningPath)
	if err != nil {
		g.logger.Error("reload tuning", "err", err)
		return
	}
	if err := g.state.ApplyTuning(*t); err != nil {
		g.logger.Error("reload tuning", "err", err)
		return
	}
	g.logger.Info("tuning reloaded", "frame", g.state.Frame())
}

func (g *Game) reloadCurve() {
	t := g.state.Tuning().Particles
	var (
		curve *system.ScriptCurve
		err   error
	)
	if g.scriptPath != "" {
		curve, err = loadCurveFile(g.scriptPath, t)
	} else {
		curve, err = system.LoadScriptCurve("difficulty.tengo", t.RampStep, t.MinInterval)
	}
	if err != nil {
		g.logger.Error("reload difficulty script", "err", err)
		return
	}
	g.state.SetCurve(curve)
	g.logger.Info("difficulty script reloaded", "frame", g.state.Frame())
}
