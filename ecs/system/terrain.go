package system

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/common"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
	"github.com/milk9111/freefall/ecs/entity"
	"github.com/milk9111/freefall/prefabs"
)

const (
	minPlatformWidth = float64(common.ScreenWidth / 6)
	maxPlatformWidth = float64(common.ScreenWidth / 2)
)

// PlatformGenerator lays out platforms one gap below the previous one. Width
// and gap oscillate with depth; shape irregularity and rotation grow with it.
type PlatformGenerator struct {
	rng   *rand.Rand
	t     prefabs.TerrainTuning
	lastY float64
}

func NewPlatformGenerator(rng *rand.Rand, t prefabs.TerrainTuning) *PlatformGenerator {
	return &PlatformGenerator{rng: rng, t: t, lastY: t.StartY}
}

// LastY is the Y of the lowest platform generated so far.
func (g *PlatformGenerator) LastY() float64 {
	return g.lastY
}

// SetTuning swaps the tuning used for platforms generated from now on.
func (g *PlatformGenerator) SetTuning(t prefabs.TerrainTuning) {
	g.t = t
}

func (g *PlatformGenerator) MinWidth() float64 { return minPlatformWidth }
func (g *PlatformGenerator) MaxWidth() float64 { return maxPlatformWidth }

// Complexity is the chance that a platform at depth gets an irregular shape.
func (g *PlatformGenerator) Complexity(depth float64) float64 {
	return math.Min(g.t.MaxComplexity, depth/g.t.ComplexityDepth)
}

// MaxRotation is the largest rotation magnitude, in radians, at depth.
func (g *PlatformGenerator) MaxRotation(depth float64) float64 {
	return math.Min(g.t.MaxRotation(), depth/g.t.RotationDepth)
}

// Next generates the platform below the last one.
func (g *PlatformGenerator) Next() entity.PlatformSpec {
	x := float64(common.RandInt(g.rng, int(minPlatformWidth), int(common.ScreenWidth-minPlatformWidth)))

	depthFactor := g.lastY / g.t.DepthScale
	base := (minPlatformWidth + maxPlatformWidth) / 2
	width := base + math.Sin(depthFactor)*(maxPlatformWidth-minPlatformWidth)*g.t.WidthVariation
	gap := g.t.Gap + math.Cos(depthFactor)*g.t.GapVariation

	bouncy := g.rng.Float64() < g.t.BouncyChance
	g.lastY += gap
	depth := g.lastY

	spec := entity.PlatformSpec{
		X:      x,
		Y:      g.lastY,
		Width:  width,
		Bouncy: bouncy,
		Depth:  depth,
	}
	if g.rng.Float64() < g.Complexity(depth) {
		spec.Points = g.irregularOutline(width)
	}
	maxRot := g.MaxRotation(depth)
	spec.Angle = common.Uniform(g.rng, -maxRot, maxRot)
	return spec
}

// irregularOutline samples angularly spaced points at random radii around
// the platform centre.
func (g *PlatformGenerator) irregularOutline(width float64) []cp.Vector {
	n := common.RandInt(g.rng, g.t.MinSides, g.t.MaxSides)
	points := make([]cp.Vector, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := common.Uniform(g.rng, width/3, width/2)
		points[i] = cp.Vector{
			X: math.Cos(angle) * radius,
			Y: math.Sin(angle) * g.t.Thickness * common.Uniform(g.rng, 0.8, 1.2),
		}
	}
	return points
}

// StartingPlatform is the flat platform the player lands on first.
func StartingPlatform(t prefabs.TerrainTuning) entity.PlatformSpec {
	return entity.PlatformSpec{
		X:     common.ScreenWidth / 2,
		Y:     t.StartY,
		Width: t.StartWidth,
	}
}

// TerrainSystem keeps platforms generated down to two screens below the
// camera and retires those more than a screen above it.
type TerrainSystem struct {
	gen *PlatformGenerator
	t   prefabs.TerrainTuning
}

func NewTerrainSystem(gen *PlatformGenerator, t prefabs.TerrainTuning) *TerrainSystem {
	return &TerrainSystem{gen: gen, t: t}
}

func (s *TerrainSystem) Generator() *PlatformGenerator {
	return s.gen
}

func (s *TerrainSystem) SetTuning(t prefabs.TerrainTuning) {
	s.t = t
	s.gen.SetTuning(t)
}

func (s *TerrainSystem) Update(w *ecs.World) {
	if w == nil || s.gen == nil {
		return
	}
	offset := CameraOffset(w)
	s.Extend(w, offset)
	s.Prune(w, offset)
}

// Extend generates platforms until the lowest one is at least two screens
// below the camera.
func (s *TerrainSystem) Extend(w *ecs.World, cameraY float64) {
	for s.gen.LastY() < cameraY+2*common.ScreenHeight {
		spec := s.gen.Next()
		e, err := entity.NewPlatform(w, spec, s.t)
		if err != nil {
			w.Events().Push(ecs.Event{Kind: ecs.EventError, Data: err})
			return
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventPlatformSpawned, Entity: e, Data: ecs.PlatformEvent{
			Y:      spec.Y,
			Width:  spec.Width,
			Bouncy: spec.Bouncy,
			Sides:  len(spec.Points),
		}})
	}
}

// Prune marks every platform at or above one screen over the camera for
// removal. Cleanup releases their bodies after the physics step.
func (s *TerrainSystem) Prune(w *ecs.World, cameraY float64) {
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.Platform, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		if pb.Body.Position().Y <= cameraY-common.ScreenHeight {
			markForDestroy(w, e, "pruned")
		}
	})
}

// LivePlatforms returns platforms that are not waiting for removal.
func LivePlatforms(w *ecs.World) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, component.PlatformComponent.Kind(), func(e ecs.Entity, _ *component.Platform) {
		if !ecs.Has(w, e, component.PendingDestroyComponent.Kind()) {
			out = append(out, e)
		}
	})
	return out
}
