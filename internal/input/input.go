// Package input describes the abstract input the match consumes. The
// shell translates device events into these calls.
package input

// Key — игровая клавиша.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyP
	KeyN
	KeyQ
	KeyEscape
	KeyEnter
	KeyLeft
	KeyRight
)

// Point is a pointer position relative to the viewport origin, in pixels.
type Point struct {
	X, Y float64
}

// KeyState answers whether a key is currently held.
type KeyState interface {
	Pressed(k Key) bool
}

// Keys is a KeyState backed by a set. The shell refreshes it every frame.
type Keys map[Key]bool

func (k Keys) Pressed(key Key) bool {
	return k[key]
}
