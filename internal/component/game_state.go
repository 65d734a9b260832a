package component

import "go-artillery/internal/types"

// Phase — фаза матча.
type Phase int

const (
	PhaseStarting Phase = iota
	PhaseWaiting
	PhaseAttacking
	PhaseTransitioning
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseWaiting:
		return "waiting"
	case PhaseAttacking:
		return "attacking"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseDone:
		return "done"
	}
	return "invalid"
}

// MatchState — компонент для хранения состояния матча.
type MatchState struct {
	Phase            Phase
	StateTime        float64 // seconds spent in the current phase
	ActivePlayer     int     // 0 or 1
	ActiveProjectile types.EntityID
	Winner           int // -1 until the match is done
}
