package ecs

import "github.com/milk9111/freefall/ecs/component"

// EventKind identifies gameplay event types.
type EventKind string

const (
	EventDamage          EventKind = "damage"
	EventOutOfBounds     EventKind = "out_of_bounds"
	EventPlatformSpawned EventKind = "platform_spawned"
	EventDifficulty      EventKind = "difficulty"
	EventGameOver        EventKind = "game_over"
	EventError           EventKind = "error"
)

// Event is a gameplay event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// DamageEvent records one damage attempt against the player.
type DamageEvent struct {
	Source  component.Category
	Amount  int
	Applied bool
	Health  int
}

// PlatformEvent records a generated platform.
type PlatformEvent struct {
	Y      float64
	Width  float64
	Bouncy bool
	Sides  int
}

// DifficultyEvent records a change in particle spawn interval.
type DifficultyEvent struct {
	Interval int
}

// GameOverEvent records the final run state.
type GameOverEvent struct {
	Frame    int
	Score    int
	MaxDepth float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
