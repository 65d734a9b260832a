// Package b2 implements physics.Engine on top of the Box2D port.
package b2

import (
	"fmt"

	"github.com/ByteArena/box2d"

	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// Engine owns a Box2D world and hands out integer handles for its bodies.
type Engine struct {
	world    box2d.B2World
	bodies   map[physics.BodyHandle]*box2d.B2Body
	nextID   physics.BodyHandle
	listener *contactQueue
}

var _ physics.Engine = (*Engine)(nil)

// New creates a world with downward gravity (screen coordinates, y grows down).
func New(gravity float64) *Engine {
	e := &Engine{
		world:    box2d.MakeB2World(box2d.MakeB2Vec2(0, gravity)),
		bodies:   make(map[physics.BodyHandle]*box2d.B2Body),
		nextID:   1,
		listener: &contactQueue{},
	}
	e.world.SetContactListener(e.listener)
	return e
}

func (e *Engine) CreateBody(def physics.BodyDef) (physics.BodyHandle, error) {
	if err := def.Shape.Validate(); err != nil {
		return 0, fmt.Errorf("create body for entity %d: %w", def.Tag, err)
	}

	bd := box2d.MakeB2BodyDef()
	if def.Fixed {
		bd.Type = box2d.B2BodyType.B2_staticBody
	} else {
		bd.Type = box2d.B2BodyType.B2_dynamicBody
		bd.Bullet = def.Bullet
	}
	bd.Position.Set(def.Position.X, def.Position.Y)
	bd.Angle = def.Angle
	bd.AngularDamping = def.AngularDamping

	body := e.world.CreateBody(&bd)
	body.SetUserData(def.Tag)

	fd := box2d.MakeB2FixtureDef()
	fd.Friction = def.Friction
	fd.Restitution = def.Restitution
	fd.Filter.GroupIndex = def.Group
	if !def.Fixed {
		fd.Density = def.Density
	}

	switch def.Shape.Kind {
	case physics.ShapeBox:
		shape := box2d.MakeB2PolygonShape()
		shape.SetAsBox(def.Shape.HalfWidth, def.Shape.HalfHeight)
		fd.Shape = &shape
	case physics.ShapeCircle:
		shape := box2d.MakeB2CircleShape()
		shape.M_radius = def.Shape.Radius
		fd.Shape = &shape
	case physics.ShapePolygon:
		verts := make([]box2d.B2Vec2, len(def.Shape.Points))
		for i, p := range def.Shape.Points {
			verts[i] = box2d.MakeB2Vec2(p.X, p.Y)
		}
		shape := box2d.MakeB2PolygonShape()
		shape.Set(verts, len(verts))
		fd.Shape = &shape
	}
	body.CreateFixtureFromDef(&fd)

	h := e.nextID
	e.nextID++
	e.bodies[h] = body
	return h, nil
}

func (e *Engine) DestroyBody(h physics.BodyHandle) {
	body, ok := e.bodies[h]
	if !ok {
		return
	}
	delete(e.bodies, h)
	e.world.DestroyBody(body)
}

func (e *Engine) ApplyImpulse(h physics.BodyHandle, impulse, point physics.Vec2) {
	if body, ok := e.bodies[h]; ok {
		body.ApplyLinearImpulse(box2d.MakeB2Vec2(impulse.X, impulse.Y), box2d.MakeB2Vec2(point.X, point.Y), true)
	}
}

func (e *Engine) ApplyTorque(h physics.BodyHandle, torque float64) {
	if body, ok := e.bodies[h]; ok {
		body.ApplyTorque(torque, true)
	}
}

// Step advances the world and drains the contacts queued during the step.
func (e *Engine) Step(dt float64, iterations int) []physics.Contact {
	e.listener.pending = e.listener.pending[:0]
	e.world.Step(dt, iterations, iterations)

	out := make([]physics.Contact, len(e.listener.pending))
	copy(out, e.listener.pending)
	return out
}

// IsSleeping reports static bodies as sleeping: they never move.
func (e *Engine) IsSleeping(h physics.BodyHandle) bool {
	body, ok := e.bodies[h]
	if !ok {
		return true
	}
	if body.GetType() == box2d.B2BodyType.B2_staticBody {
		return true
	}
	return !body.IsAwake()
}

func (e *Engine) LinearVelocity(h physics.BodyHandle) physics.Vec2 {
	if body, ok := e.bodies[h]; ok {
		v := body.GetLinearVelocity()
		return physics.Vec2{X: v.X, Y: v.Y}
	}
	return physics.Vec2{}
}

func (e *Engine) AngularVelocity(h physics.BodyHandle) float64 {
	if body, ok := e.bodies[h]; ok {
		return body.GetAngularVelocity()
	}
	return 0
}

func (e *Engine) Position(h physics.BodyHandle) physics.Vec2 {
	if body, ok := e.bodies[h]; ok {
		p := body.GetPosition()
		return physics.Vec2{X: p.X, Y: p.Y}
	}
	return physics.Vec2{}
}

func (e *Engine) Angle(h physics.BodyHandle) float64 {
	if body, ok := e.bodies[h]; ok {
		return body.GetAngle()
	}
	return 0
}

func (e *Engine) Mass(h physics.BodyHandle) float64 {
	if body, ok := e.bodies[h]; ok {
		return body.GetMass()
	}
	return 0
}

// BodyCount is used by tests and debug output.
func (e *Engine) BodyCount() int {
	return len(e.bodies)
}

// contactQueue collects begin-contact events while the world steps.
// Box2D forbids mutating the world from inside callbacks, so nothing is
// resolved here.
type contactQueue struct {
	pending []physics.Contact
}

func (q *contactQueue) BeginContact(contact box2d.B2ContactInterface) {
	a := contact.GetFixtureA().GetBody()
	b := contact.GetFixtureB().GetBody()

	va := a.GetLinearVelocity()
	vb := b.GetLinearVelocity()
	speed := physics.Vec2{X: va.X - vb.X, Y: va.Y - vb.Y}.Len()

	q.pending = append(q.pending, physics.Contact{
		A:     tagOf(a),
		B:     tagOf(b),
		Speed: speed,
	})
}

func (q *contactQueue) EndContact(contact box2d.B2ContactInterface) {}

func (q *contactQueue) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (q *contactQueue) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}

func tagOf(body *box2d.B2Body) types.EntityID {
	if id, ok := body.GetUserData().(types.EntityID); ok {
		return id
	}
	return types.NoEntity
}
