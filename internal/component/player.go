// internal/component/player.go
package component

// PlayerScore хранит очки игрока за матч.
type PlayerScore struct {
	Points          int
	EnemiesKilled   int
	PiecesDestroyed int
}
