package component

// Camera is a pure vertical scroll. The offset eases toward the target by
// Smoothness each frame.
type Camera struct {
	OffsetY       float64
	TargetOffsetY float64
	Smoothness    float64
	// LookAhead is how far below the top of the view the target sits.
	LookAhead float64
}

var CameraComponent = NewComponent[Camera]()
