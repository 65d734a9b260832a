package interfaces

import "go-artillery/internal/input"

// InputHandler receives the abstract input of a match. The shell polls
// the devices and forwards what happened.
type InputHandler interface {
	OnPointerDown(p input.Point)
	OnPointerUp(p input.Point)
	OnPointerMove(p input.Point)
	OnKey(k input.Key, down bool)
}
