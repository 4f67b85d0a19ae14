package component

// Input stores per-frame input state for an entity.
type Input struct {
	// MoveX is -1 (left), 0 or 1 (right).
	MoveX float64
	// JumpPressed is true only on the frame the jump key went down.
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
