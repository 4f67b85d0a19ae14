package ecs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/freefall/ecs/component"
)

const defaultIterations = 20

var ErrPhysicsNotAttached = errors.New("ecs: physics world not attached")

// Contact is a begin-phase contact between two registered entities. A and B
// follow the order the handler was registered with.
type Contact struct {
	A         Entity
	B         Entity
	CategoryA component.Category
	CategoryB component.Category
}

// ContactBeginFunc decides whether a new contact resolves physically.
type ContactBeginFunc func(c Contact) bool

// PhysicsWorld owns the Chipmunk space and the mapping from shapes to the
// entities that own them.
type PhysicsWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*bodyInfo
	handlers      map[[2]component.Category]ContactBeginFunc
}

type bodyInfo struct {
	body     *cp.Body
	shape    *cp.Shape
	category component.Category
}

// NewPhysicsWorld creates a space with downward (positive Y) gravity.
func NewPhysicsWorld(gravity float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = defaultIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	return &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*bodyInfo),
		handlers:      make(map[[2]component.Category]ContactBeginFunc),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Register adds the body and shape owned by e to the space and tags the
// shape with the category's collision type.
func (pw *PhysicsWorld) Register(e Entity, body *cp.Body, shape *cp.Shape, category component.Category) error {
	if pw == nil || pw.space == nil {
		return ErrPhysicsNotAttached
	}
	if body == nil || shape == nil {
		return fmt.Errorf("physics: register entity %s: nil body or shape", e)
	}
	if _, exists := pw.bodies[e]; exists {
		return fmt.Errorf("physics: entity %s already registered", e)
	}

	shape.SetCollisionType(category.CollisionType())
	shape.UserData = e
	body.UserData = e

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pw.bodies[e] = &bodyInfo{body: body, shape: shape, category: category}
	pw.shapeToEntity[shape] = e
	return nil
}

// Release removes the entity's shape and body from the space. It is safe to
// call more than once and reports whether anything was removed.
func (pw *PhysicsWorld) Release(e Entity) bool {
	if pw == nil || pw.space == nil {
		return false
	}
	info, ok := pw.bodies[e]
	if !ok {
		return false
	}
	if info.shape != nil && pw.space.ContainsShape(info.shape) {
		pw.space.RemoveShape(info.shape)
	}
	if info.body != nil && pw.space.ContainsBody(info.body) {
		pw.space.RemoveBody(info.body)
	}
	delete(pw.shapeToEntity, info.shape)
	delete(pw.bodies, e)
	return true
}

// Registered reports whether e currently owns a body in the space.
func (pw *PhysicsWorld) Registered(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.bodies[e]
	return ok
}

// Len returns the number of registered entities.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.bodies)
}

// EntityForShape resolves a shape back to its owner.
func (pw *PhysicsWorld) EntityForShape(shape *cp.Shape) (Entity, bool) {
	if pw == nil || shape == nil {
		return 0, false
	}
	e, ok := pw.shapeToEntity[shape]
	return e, ok
}

// OnContactBegin installs fn for contacts between categories a and b. The
// callback runs synchronously inside Step; it must not add or remove bodies.
func (pw *PhysicsWorld) OnContactBegin(a, b component.Category, fn ContactBeginFunc) {
	if pw == nil || pw.space == nil || fn == nil {
		return
	}
	key := [2]component.Category{a, b}
	if _, exists := pw.handlers[key]; exists {
		pw.handlers[key] = fn
		return
	}
	pw.handlers[key] = fn

	handler := pw.space.NewCollisionHandler(a.CollisionType(), b.CollisionType())
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		return world.dispatch(key, shapeA, shapeB)
	}
}

func (pw *PhysicsWorld) dispatch(key [2]component.Category, shapeA, shapeB *cp.Shape) bool {
	fn := pw.handlers[key]
	if fn == nil {
		return true
	}
	idA, okA := pw.shapeToEntity[shapeA]
	idB, okB := pw.shapeToEntity[shapeB]
	if !okA || !okB {
		return true
	}
	infoA := pw.bodies[idA]
	infoB := pw.bodies[idB]
	if infoA == nil || infoB == nil {
		return true
	}
	// Shapes may arrive in either order; put them in handler order.
	if infoA.category != key[0] && infoB.category == key[0] {
		idA, idB = idB, idA
		infoA, infoB = infoB, infoA
	}
	return fn(Contact{A: idA, B: idB, CategoryA: infoA.category, CategoryB: infoB.category})
}

// Step advances the physics simulation by dt seconds.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}
