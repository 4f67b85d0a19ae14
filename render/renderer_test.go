package render

import (
	"image/color"
	"io"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawOp struct {
	kind  string
	y     float64
	text  string
	color color.Color
}

type recordingCanvas struct {
	ops []drawOp
}

func (c *recordingCanvas) FillPolygon(points []cp.Vector, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "polygon", y: points[0].Y, color: clr})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", y: y, color: clr})
}

func (c *recordingCanvas) FillCircle(x, y, r float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "circle", y: y, color: clr})
}

func (c *recordingCanvas) StrokeLine(x1, y1, x2, y2 float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "line", y: y1, color: clr})
}

func (c *recordingCanvas) DrawText(text string, x, y float64, clr color.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", y: y, text: text, color: clr})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func newSession(t *testing.T) *session.State {
	t.Helper()
	s, err := session.New(session.Options{Seed: 11, Logger: log.New(io.Discard)})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.True(t, s.Step(component.Input{}))
	}
	return s
}

func TestRendererDrawOrder(t *testing.T) {
	s := newSession(t)
	r := NewRenderer(rand.New(rand.NewSource(1)))
	canvas := &recordingCanvas{}
	r.Draw(canvas, s)

	require.NotEmpty(t, canvas.ops)
	for i := 0; i < r.background.Len(); i++ {
		assert.Equal(t, "circle", canvas.ops[i].kind, "op %d", i)
	}
	last := canvas.ops[len(canvas.ops)-1]
	assert.Equal(t, "text", last.kind)
	assert.True(t, strings.HasPrefix(last.text, "Score: "), last.text)
	assert.Zero(t, canvas.count("line"), "no physics overlay outside debug")

	// The player box comes before any platform outline.
	playerAt, platformAt := -1, -1
	for i, op := range canvas.ops {
		if op.kind == "rect" && op.color == common.PlayerColor && playerAt < 0 {
			playerAt = i
		}
		if op.kind == "polygon" && op.color == common.PlatformColor && platformAt < 0 {
			platformAt = i
		}
	}
	require.GreaterOrEqual(t, playerAt, 0)
	require.GreaterOrEqual(t, platformAt, 0)
	assert.Less(t, playerAt, platformAt)
}

func TestRendererSkipsPendingEntities(t *testing.T) {
	s := newSession(t)
	r := NewRenderer(rand.New(rand.NewSource(1)))

	before := &recordingCanvas{}
	r.Draw(before, s)

	platforms := s.World.Query(component.PlatformComponent.Kind())
	require.NotEmpty(t, platforms)
	require.NoError(t, ecs.Add(s.World, platforms[0], component.PendingDestroyComponent.Kind(), &component.PendingDestroy{}))

	after := &recordingCanvas{}
	r.Draw(after, s)
	assert.Equal(t, before.count("polygon")-1, after.count("polygon"))
}

func TestRendererDebugOverlay(t *testing.T) {
	s := newSession(t)
	r := NewRenderer(rand.New(rand.NewSource(1)))
	r.Debug = true
	canvas := &recordingCanvas{}
	r.Draw(canvas, s)

	assert.Positive(t, canvas.count("line"))
	last := canvas.ops[len(canvas.ops)-1]
	require.Equal(t, "text", last.kind)
	assert.True(t, strings.HasPrefix(last.text, "frame 5"), last.text)
}

func TestHealthBarFill(t *testing.T) {
	cases := []struct {
		health, max int
		want        float64
	}{
		{100, 100, 50},
		{50, 100, 25},
		{0, 100, 0},
		{-25, 100, 0},
		{150, 100, 50},
		{10, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HealthBarFill(&component.Player{Health: c.health, MaxHealth: c.max}), "%d/%d", c.health, c.max)
	}
	assert.Zero(t, HealthBarFill(nil))
}

func TestScreenPoints(t *testing.T) {
	points := []cp.Vector{{X: 10, Y: 0}, {X: 0, Y: 5}}
	got := ScreenPoints(points, &component.Transform{X: 100, Y: 300, Rotation: math.Pi / 2}, 200)

	require.Len(t, got, 2)
	assert.InDelta(t, 100, got[0].X, 1e-9)
	assert.InDelta(t, 110, got[0].Y, 1e-9)
	assert.InDelta(t, 95, got[1].X, 1e-9)
	assert.InDelta(t, 100, got[1].Y, 1e-9)
}

func TestTint(t *testing.T) {
	base := color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	assert.Equal(t, base, tint(base, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, tint(base, 1))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, tint(base, 3), "amount is clamped")
}

func TestBackgroundWrapsIntoView(t *testing.T) {
	b := NewBackground(rand.New(rand.NewSource(2)))
	require.Equal(t, 30, b.Len())

	for _, cameraY := range []float64{0, 5000, 123456, -800} {
		canvas := &recordingCanvas{}
		b.Draw(canvas, cameraY)
		require.Equal(t, b.Len(), canvas.count("circle"))
		for _, op := range canvas.ops {
			assert.GreaterOrEqual(t, op.y, -float64(backgroundOverlap))
			assert.LessOrEqual(t, op.y, float64(common.ScreenHeight+backgroundOverlap))
		}
	}
}
