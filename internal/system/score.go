// internal/system/score.go
package system

import (
	"log/slog"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
)

// ScoreSystem начисляет очки за уничтоженные объекты противника.
type ScoreSystem struct {
	ecs *entity.ECS
	log *slog.Logger
}

func NewScoreSystem(ecs *entity.ECS, log *slog.Logger) *ScoreSystem {
	return &ScoreSystem{ecs: ecs, log: log}
}

// OnEvent credits the opponent of whoever owned the destroyed entity.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.EntityDestroyed {
		return
	}
	d, ok := e.Data.(event.Destroyed)
	if !ok || d.Owner < 0 || d.Owner > 1 {
		return
	}

	score := s.ecs.Scores[1-d.Owner]
	switch d.Kind {
	case component.KindEnemy:
		score.Points += config.EnemyKillScore
		score.EnemiesKilled++
	case component.KindFortPiece:
		score.Points += config.PieceKillScore
		score.PiecesDestroyed++
	default:
		return
	}
	s.log.Info("player scored", "player", 1-d.Owner, "points", score.Points)
}

// Reset zeroes both players' scores.
func (s *ScoreSystem) Reset() {
	s.ecs.Scores = [2]*component.PlayerScore{{}, {}}
}
