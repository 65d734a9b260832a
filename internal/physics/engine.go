// internal/physics/engine.go
package physics

import (
	"errors"
	"math"

	"go-artillery/internal/types"
)

//go:generate go tool mockgen -destination=./mocks/engine_mock.go -package=mocks . Engine

// ErrInvalidShape is returned by CreateBody for shapes the engine cannot build.
var ErrInvalidShape = errors.New("invalid shape")

// BodyHandle identifies a body inside an Engine. Zero is never issued.
type BodyHandle uint32

// Vec2 is a vector in physics meters.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// ShapeKind — вид формы тела.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
	ShapePolygon
)

// Shape describes body geometry in meters. Boxes use half extents,
// polygons use vertices relative to the body origin.
type Shape struct {
	Kind       ShapeKind
	HalfWidth  float64
	HalfHeight float64
	Radius     float64
	Points     []Vec2
}

// BodyDef carries everything needed to create a body.
type BodyDef struct {
	Shape          Shape
	Position       Vec2
	Angle          float64
	Fixed          bool
	Bullet         bool
	Density        float64
	Restitution    float64
	Friction       float64
	AngularDamping float64
	// Bodies sharing a negative Group never collide with each other.
	Group int16
	// Tag is stored on the body and reported back in contacts.
	Tag types.EntityID
}

// Contact is one collision reported by Step: the tags of both bodies and
// their relative speed at the moment of impact.
type Contact struct {
	A, B  types.EntityID
	Speed float64
}

// Engine is the narrow contract the game consumes from a rigid-body
// simulation. Step is synchronous and returns every contact that began
// during the step, in the order the engine reported them.
type Engine interface {
	CreateBody(def BodyDef) (BodyHandle, error)
	DestroyBody(h BodyHandle)
	ApplyImpulse(h BodyHandle, impulse, point Vec2)
	ApplyTorque(h BodyHandle, torque float64)
	Step(dt float64, iterations int) []Contact
	IsSleeping(h BodyHandle) bool
	LinearVelocity(h BodyHandle) Vec2
	AngularVelocity(h BodyHandle) float64
	Position(h BodyHandle) Vec2
	Angle(h BodyHandle) float64
	Mass(h BodyHandle) float64
}

// Validate checks a shape before it reaches an engine.
func (s Shape) Validate() error {
	switch s.Kind {
	case ShapeBox:
		if s.HalfWidth <= 0 || s.HalfHeight <= 0 {
			return ErrInvalidShape
		}
	case ShapeCircle:
		if s.Radius <= 0 {
			return ErrInvalidShape
		}
	case ShapePolygon:
		if len(s.Points) < 3 {
			return ErrInvalidShape
		}
	default:
		return ErrInvalidShape
	}
	return nil
}
