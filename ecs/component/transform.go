package component

// Transform mirrors a body's pose for drawing. Rotation is in radians.
// PhysicsSystem refreshes it after every step for dynamic bodies; static
// bodies keep the pose they were built with.
type Transform struct {
	X, Y     float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
