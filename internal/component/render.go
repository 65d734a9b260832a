// component/render.go
package component

// SpriteSet holds the sprite keys for each damage tier. Empty entries
// mean the piece keeps its previous sprite.
type SpriteSet struct {
	Normal    string
	Damaged   string
	Destroyed string
}

// FortPiece — разрушаемый блок крепости.
type FortPiece struct {
	DefID    string
	Shape    string // "box", "triangle"
	Size     string
	Material string
	Sprites  SpriteSet
}
