package system

import (
	"github.com/milk9111/freefall/ecs"
	"github.com/milk9111/freefall/ecs/component"
)

// ScoreSystem adds every new unit of depth the player reaches to its score.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, p *component.Player, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		RecordDepth(p, pb.Body.Position().Y)
	})
}

// RecordDepth updates the deepest point reached. Score never decreases.
func RecordDepth(p *component.Player, y float64) {
	if p == nil || y <= p.MaxDepth {
		return
	}
	p.Score += int(y - p.MaxDepth)
	p.MaxDepth = y
}

// DisplayScore is the score as shown on the HUD.
func DisplayScore(p *component.Player) int {
	if p == nil {
		return 0
	}
	return p.Score / 100
}
