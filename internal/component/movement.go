// component/movement.go
package component

import "go-artillery/internal/physics"

// Kind tags every simulated entity. Contact resolution switches on it.
type Kind int

const (
	KindGround Kind = iota
	KindWall
	KindFortPiece
	KindEnemy
	KindWeapon
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindWall:
		return "wall"
	case KindFortPiece:
		return "fort_piece"
	case KindEnemy:
		return "enemy"
	case KindWeapon:
		return "weapon"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Position — позиция в пикселях.
type Position struct {
	X, Y float64
}

// Body is the base every simulated entity carries: where it is, which
// engine body backs it and whether it is still in play. The engine body
// belongs to the entity and is destroyed together with it.
type Body struct {
	Kind   Kind
	Owner  int // player index, -1 for scenery
	Pos    Position
	Angle  float64
	Handle physics.BodyHandle
	Shape  physics.Shape
	Alive  bool
	Sprite string
	Draw   bool
}
