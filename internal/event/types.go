// internal/event/types.go
package event

import (
	"go-artillery/internal/component"
	"go-artillery/internal/types"
)

const (
	EntityDestroyed    EventType = "EntityDestroyed"    // Фигура крепости, враг или пушка уничтожены
	ProjectileLaunched EventType = "ProjectileLaunched" // Снаряд выпущен
	TurnEnded          EventType = "TurnEnded"          // Фаза атаки завершена
	PhaseChanged       EventType = "PhaseChanged"
	MatchWon           EventType = "MatchWon"
	RestartRequested   EventType = "RestartRequested"
	QuitRequested      EventType = "QuitRequested"
)

// Destroyed is the payload of EntityDestroyed.
type Destroyed struct {
	ID    types.EntityID
	Kind  component.Kind
	Owner int
}

// Launched is the payload of ProjectileLaunched.
type Launched struct {
	Projectile types.EntityID
	Player     int
	Ammo       component.Ammo
	Angle      float64
}

// TurnResult is the payload of TurnEnded.
type TurnResult struct {
	Player int
	Reason string // "settled", "timeout", "out_of_bounds"
}

// PhaseChange is the payload of PhaseChanged.
type PhaseChange struct {
	From, To component.Phase
}

// Win is the payload of MatchWon.
type Win struct {
	MatchID string
	Winner  int
}
