package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// builder collects the steps of constructing one physics-backed entity and
// rolls everything back on the first error.
type builder struct {
	w    *ecs.World
	e    ecs.Entity
	name string
	err  error
}

func newBuilder(w *ecs.World, name string) *builder {
	b := &builder{w: w, name: name}
	if w == nil {
		b.err = fmt.Errorf("%s: world is nil", name)
		return b
	}
	if w.PhysicsWorld() == nil {
		b.err = fmt.Errorf("%s: %w", name, ecs.ErrPhysicsNotAttached)
		return b
	}
	b.e = ecs.CreateEntity(w)
	return b
}

// body registers the entity's single body and shape with the physics world
// and records them as its PhysicsBody component.
func (b *builder) body(pb *component.PhysicsBody) {
	if b.err != nil {
		return
	}
	if err := b.w.PhysicsWorld().Register(b.e, pb.Body, pb.Shape, pb.Category); err != nil {
		b.err = fmt.Errorf("%s: register body: %w", b.name, err)
		return
	}
	add(b, component.PhysicsBodyComponent.Kind(), pb)
}

func add[T any](b *builder, kind component.ComponentKind[T], value *T) {
	if b.err != nil {
		return
	}
	if err := ecs.Add(b.w, b.e, kind, value); err != nil {
		b.err = fmt.Errorf("%s: add %s: %w", b.name, kind, err)
	}
}

func (b *builder) done() (ecs.Entity, error) {
	if b.err != nil {
		if b.w != nil && b.e.Valid() {
			b.w.PhysicsWorld().Release(b.e)
			ecs.DestroyEntity(b.w, b.e)
		}
		return 0, b.err
	}
	return b.e, nil
}

func transformOf(body *cp.Body) *component.Transform {
	pos := body.Position()
	return &component.Transform{X: pos.X, Y: pos.Y, Rotation: body.Angle()}
}

// boxPoints returns the outline of a w x h box centred on the origin.
func boxPoints(w, h float64) []cp.Vector {
	hw, hh := w/2, h/2
	return []cp.Vector{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}

func newPolyShape(body *cp.Body, points []cp.Vector) *cp.Shape {
	return cp.NewPolyShape(body, len(points), points, cp.NewTransformIdentity(), 0)
}
