// Package physicstest provides a scriptable in-memory physics.Engine for
// tests that need a whole match without a real simulation.
package physicstest

import (
	"math"

	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// Body is the fake state of one body. Tests may edit it directly.
type Body struct {
	Def      physics.BodyDef
	Pos      physics.Vec2
	Angle    float64
	Vel      physics.Vec2
	Omega    float64
	Sleeping bool
	Impulses []physics.Vec2
	Torques  []float64
}

// Engine integrates velocities without gravity or collisions. Contacts
// are whatever the test queued with QueueContacts.
type Engine struct {
	Bodies    map[physics.BodyHandle]*Body
	Destroyed []physics.BodyHandle
	Steps     int
	// OnStep runs at the end of every Step.
	OnStep func(e *Engine, dt float64)

	next   physics.BodyHandle
	queued [][]physics.Contact
}

var _ physics.Engine = (*Engine)(nil)

func New() *Engine {
	return &Engine{
		Bodies: make(map[physics.BodyHandle]*Body),
		next:   1,
	}
}

func (e *Engine) CreateBody(def physics.BodyDef) (physics.BodyHandle, error) {
	if err := def.Shape.Validate(); err != nil {
		return 0, err
	}
	h := e.next
	e.next++
	e.Bodies[h] = &Body{
		Def:      def,
		Pos:      def.Position,
		Angle:    def.Angle,
		Sleeping: def.Fixed,
	}
	return h, nil
}

func (e *Engine) DestroyBody(h physics.BodyHandle) {
	if _, ok := e.Bodies[h]; !ok {
		return
	}
	delete(e.Bodies, h)
	e.Destroyed = append(e.Destroyed, h)
}

func (e *Engine) ApplyImpulse(h physics.BodyHandle, impulse, point physics.Vec2) {
	b, ok := e.Bodies[h]
	if !ok {
		return
	}
	b.Impulses = append(b.Impulses, impulse)
	if m := e.Mass(h); m > 0 {
		b.Vel.X += impulse.X / m
		b.Vel.Y += impulse.Y / m
		b.Sleeping = false
	}
}

func (e *Engine) ApplyTorque(h physics.BodyHandle, torque float64) {
	if b, ok := e.Bodies[h]; ok {
		b.Torques = append(b.Torques, torque)
	}
}

// QueueContacts makes the next Step report contacts.
func (e *Engine) QueueContacts(contacts ...physics.Contact) {
	e.queued = append(e.queued, contacts)
}

func (e *Engine) Step(dt float64, iterations int) []physics.Contact {
	e.Steps++
	for _, b := range e.Bodies {
		if b.Def.Fixed || b.Sleeping {
			continue
		}
		b.Pos.X += b.Vel.X * dt
		b.Pos.Y += b.Vel.Y * dt
		b.Angle += b.Omega * dt
	}

	var out []physics.Contact
	if len(e.queued) > 0 {
		out = e.queued[0]
		e.queued = e.queued[1:]
	}
	if e.OnStep != nil {
		e.OnStep(e, dt)
	}
	return out
}

// SleepAll stops every body.
func (e *Engine) SleepAll() {
	for _, b := range e.Bodies {
		b.Vel = physics.Vec2{}
		b.Omega = 0
		b.Sleeping = true
	}
}

// ByTag finds the body created for an entity.
func (e *Engine) ByTag(id types.EntityID) *Body {
	for _, b := range e.Bodies {
		if b.Def.Tag == id {
			return b
		}
	}
	return nil
}

func (e *Engine) IsSleeping(h physics.BodyHandle) bool {
	b, ok := e.Bodies[h]
	return !ok || b.Sleeping
}

func (e *Engine) LinearVelocity(h physics.BodyHandle) physics.Vec2 {
	if b, ok := e.Bodies[h]; ok {
		return b.Vel
	}
	return physics.Vec2{}
}

func (e *Engine) AngularVelocity(h physics.BodyHandle) float64 {
	if b, ok := e.Bodies[h]; ok {
		return b.Omega
	}
	return 0
}

func (e *Engine) Position(h physics.BodyHandle) physics.Vec2 {
	if b, ok := e.Bodies[h]; ok {
		return b.Pos
	}
	return physics.Vec2{}
}

func (e *Engine) Angle(h physics.BodyHandle) float64 {
	if b, ok := e.Bodies[h]; ok {
		return b.Angle
	}
	return 0
}

// Mass is density times area; fixed bodies have none.
func (e *Engine) Mass(h physics.BodyHandle) float64 {
	b, ok := e.Bodies[h]
	if !ok || b.Def.Fixed {
		return 0
	}
	return b.Def.Density * area(b.Def.Shape)
}

func area(s physics.Shape) float64 {
	switch s.Kind {
	case physics.ShapeBox:
		return 4 * s.HalfWidth * s.HalfHeight
	case physics.ShapeCircle:
		return math.Pi * s.Radius * s.Radius
	case physics.ShapePolygon:
		sum := 0.0
		for i, p := range s.Points {
			q := s.Points[(i+1)%len(s.Points)]
			sum += p.X*q.Y - q.X*p.Y
		}
		return math.Abs(sum) / 2
	}
	return 0
}
