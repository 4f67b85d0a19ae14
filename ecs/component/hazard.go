package component

// Spike is a static wall hazard. Spikes are generated once and never removed.
type Spike struct {
	RightSide bool
}

var SpikeComponent = NewComponent[Spike]()

// Particle is a falling ember that hurts the player.
type Particle struct {
	Size float64
}

var ParticleComponent = NewComponent[Particle]()
