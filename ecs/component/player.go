package component

// Player holds the gameplay state of the falling body. Position and velocity
// live on its PhysicsBody.
type Player struct {
	Size      float64
	MoveSpeed float64
	JumpSpeed float64

	Health    int
	MaxHealth int

	Score    int
	MaxDepth float64

	// CanJump is recomputed every frame from nearby platforms.
	CanJump bool
	// MidAirJump is the one-shot jump re-armed on every grounded jump.
	MidAirJump bool

	DamageCooldownFrames int
}

var PlayerComponent = NewComponent[Player]()
