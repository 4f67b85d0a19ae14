package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/freefall/ecs"
)

// EventLogSystem drains the world event queue into the logger. It keeps
// running after a halt so the game-over event is still reported.
type EventLogSystem struct {
	logger *log.Logger
	counts map[ecs.EventKind]int
	last   []ecs.Event
}

func NewEventLogSystem(logger *log.Logger) *EventLogSystem {
	return &EventLogSystem{logger: logger, counts: make(map[ecs.EventKind]int)}
}

// Count is how many events of kind have been seen.
func (s *EventLogSystem) Count(kind ecs.EventKind) int {
	return s.counts[kind]
}

// Last returns the events drained by the most recent Update.
func (s *EventLogSystem) Last() []ecs.Event {
	return s.last
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.last = w.Events().Drain()
	for _, evt := range s.last {
		s.counts[evt.Kind]++
		s.log(w.Frame(), evt)
	}
}

func (s *EventLogSystem) log(frame int, evt ecs.Event) {
	if s.logger == nil {
		return
	}
	switch data := evt.Data.(type) {
	case ecs.DamageEvent:
		if data.Applied {
			s.logger.Debug("damage", "frame", frame, "kind", evt.Kind, "source", data.Source, "amount", data.Amount, "health", data.Health)
		}
	case ecs.PlatformEvent:
		s.logger.Debug("platform", "frame", frame, "entity", evt.Entity, "y", data.Y, "width", data.Width, "bouncy", data.Bouncy, "sides", data.Sides)
	case ecs.DifficultyEvent:
		s.logger.Info("difficulty", "frame", frame, "interval", data.Interval)
	case ecs.GameOverEvent:
		s.logger.Info("game over", "frame", data.Frame, "score", data.Score, "depth", data.MaxDepth)
	case error:
		s.logger.Error("update", "frame", frame, "kind", evt.Kind, "err", data)
	default:
		s.logger.Debug(string(evt.Kind), "frame", frame, "entity", evt.Entity)
	}
}
