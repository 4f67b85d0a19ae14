package render

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/system"
	"github.com/milk9111/freefall/session"
)

const (
	healthBarWidth  = 50
	healthBarHeight = 5
	healthBarGap    = 10
)

// Renderer draws a session back to front: background, hazards, player,
// platforms, particles, HUD.
type Renderer struct {
	background *Background
	// Debug overlays physics shapes and run stats.
	Debug bool
}

func NewRenderer(rng *rand.Rand) *Renderer {
	return &Renderer{background: NewBackground(rng)}
}

func (r *Renderer) Draw(c Canvas, s *session.State) {
	if r == nil || c == nil || s == nil {
		return
	}
	w := s.World
	cameraY := system.CameraOffset(w)

	r.background.Draw(c, cameraY)

	for _, e := range s.Hazards.Visible(w, cameraY) {
		drawPolygon(c, w, e, cameraY)
	}

	drawPlayer(c, w, s.Player, cameraY)

	for _, e := range layered(w, component.LayerPlatforms, component.PlatformComponent.Kind()) {
		drawPolygon(c, w, e, cameraY)
	}
	for _, e := range layered(w, component.LayerParticles, component.ParticleComponent.Kind()) {
		drawPolygon(c, w, e, cameraY)
	}

	if p, ok := ecs.Get(w, s.Player, component.PlayerComponent.Kind()); ok {
		c.DrawText(fmt.Sprintf("Score: %d", system.DisplayScore(p)), 10, 10, common.TextColor)
	}

	if r.Debug {
		DrawPhysicsDebug(c, w.PhysicsWorld().Space(), cameraY)
		snap := s.Snapshot()
		c.DrawText(fmt.Sprintf("frame %d  health %d  platforms %d  particles %d  interval %d",
			snap.Frame, snap.Health, snap.Platforms, snap.Particles, snap.Interval), 10, common.ScreenHeight-20, common.TextColor)
	}
}

// layered returns the entities of kind on the given render layer that are
// not pending removal, ordered by handle.
func layered(w *ecs.World, layer int, kind component.Kind) []ecs.Entity {
	entities := w.Query(kind, component.RenderLayerComponent.Kind(), component.PolygonComponent.Kind())
	out := entities[:0]
	for _, e := range entities {
		rl, _ := ecs.Get(w, e, component.RenderLayerComponent.Kind())
		if rl.Index != layer || ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return uint64(out[i]) < uint64(out[j]) })
	return out
}

// drawPolygon fills e's outline after applying its transform and the
// camera scroll.
func drawPolygon(c Canvas, w *ecs.World, e ecs.Entity, cameraY float64) {
	poly, ok := ecs.Get(w, e, component.PolygonComponent.Kind())
	if !ok || len(poly.Points) < 3 {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	c.FillPolygon(ScreenPoints(poly.Points, t, cameraY), poly.Color)
}

// ScreenPoints rotates and translates local points by t, then scrolls them.
func ScreenPoints(points []cp.Vector, t *component.Transform, cameraY float64) []cp.Vector {
	rot := cp.ForAngle(t.Rotation)
	out := make([]cp.Vector, len(points))
	for i, p := range points {
		v := p.Rotate(rot)
		out[i] = cp.Vector{X: v.X + t.X, Y: v.Y + t.Y - cameraY}
	}
	return out
}

func drawPlayer(c Canvas, w *ecs.World, e ecs.Entity, cameraY float64) {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	x, y := t.X, t.Y-cameraY

	clr := common.PlayerColor
	if flash, ok := ecs.Get(w, e, component.DamageFlashComponent.Kind()); ok {
		clr = tint(clr, flash.Intensity)
	}
	c.FillRect(x-p.Size/2, y-p.Size/2, p.Size, p.Size, clr)

	barX := x - healthBarWidth/2
	barY := y - p.Size/2 - healthBarGap
	c.FillRect(barX, barY, healthBarWidth, healthBarHeight, common.HealthBackColor)
	if fill := HealthBarFill(p); fill > 0 {
		c.FillRect(barX, barY, fill, healthBarHeight, common.HealthFrontColor)
	}
}

// HealthBarFill is the width of the green part of the health bar.
func HealthBarFill(p *component.Player) float64 {
	if p == nil || p.MaxHealth <= 0 || p.Health <= 0 {
		return 0
	}
	return float64(healthBarWidth * min(p.Health, p.MaxHealth) / p.MaxHealth)
}

// tint moves clr toward white by amount in [0,1].
func tint(clr color.NRGBA, amount float32) color.NRGBA {
	a := common.Clamp(float64(amount), 0, 1)
	mix := func(v uint8) uint8 {
		return uint8(common.Lerp(float64(v), 255, a))
	}
	return color.NRGBA{R: mix(clr.R), G: mix(clr.G), B: mix(clr.B), A: clr.A}
}
