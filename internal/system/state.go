// internal/system/state.go
package system

import (
	"log/slog"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
)

// StateSystem переключает фазы матча. Every switch resets the state
// timer and is announced with PhaseChanged.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             *slog.Logger
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log *slog.Logger) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (s *StateSystem) SwitchTo(phase component.Phase) {
	from := s.ecs.Match.Phase
	s.ecs.Match.Phase = phase
	s.ecs.Match.StateTime = 0
	s.log.Info("phase changed", "from", from, "to", phase, "player", s.ecs.Match.ActivePlayer)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from, To: phase},
	})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Match.Phase
}
