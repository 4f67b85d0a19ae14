package component

// Cooldown gates damage on the player. Taking a hit sets Frames, and
// CooldownSystem counts it down once per update. The component is never
// removed.
type Cooldown struct {
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
