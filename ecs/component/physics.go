package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores the Chipmunk2D body and the single shape an entity owns.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Category   Category
	Static     bool
	Mass       float64
	Friction   float64
	Elasticity float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
