package ecs

import "fmt"

// Entity is a generational handle. The low 32 bits are the slot, starting at
// 1, and the high 32 bits count how many times the slot has been reused. The
// zero Entity is never alive.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// String formats e as slot/generation, e.g. "12/3".
func (e Entity) String() string {
	return fmt.Sprintf("%d/%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
