package system

import (
	"github.com/milk9111/freefall/ecs"
)

// GameOverSystem halts the world once the player's health is gone. Nothing
// scheduled after it runs in that frame.
type GameOverSystem struct{}

func NewGameOverSystem() *GameOverSystem {
	return &GameOverSystem{}
}

func (s *GameOverSystem) Update(w *ecs.World) {
	if w == nil || w.Halted() {
		return
	}
	e, p, _, ok := playerEntity(w)
	if !ok || p.Health > 0 {
		return
	}
	w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Entity: e, Data: ecs.GameOverEvent{
		Frame:    w.Frame(),
		Score:    DisplayScore(p),
		MaxDepth: p.MaxDepth,
	}})
	w.Halt()
}
