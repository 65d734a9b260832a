// internal/system/world.go
package system

import (
	"fmt"
	"log/slog"
	"math"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// BodyOptions are the material parameters of a new body.
type BodyOptions struct {
	Fixed          bool
	Bullet         bool
	Density        float64
	Restitution    float64
	Friction       float64
	AngularDamping float64
	Angle          float64
	Group          int16
	Hidden         bool
}

// WorldSystem владеет телами физического мира. Every body is created and
// destroyed here, so the tracked list and the engine never disagree.
type WorldSystem struct {
	ecs      *entity.ECS
	engine   physics.Engine
	settings config.Settings
	log      *slog.Logger
	objects  []types.EntityID // creation order
}

func NewWorldSystem(ecs *entity.ECS, engine physics.Engine, settings config.Settings, log *slog.Logger) *WorldSystem {
	return &WorldSystem{
		ecs:      ecs,
		engine:   engine,
		settings: settings,
		log:      log,
	}
}

// Init creates the ground and the two side walls.
func (w *WorldSystem) Init() error {
	s := w.settings
	groundX := s.ToMeters(s.LevelWidth / 2)
	groundY := s.ToMeters(s.LevelHeight - s.GroundHeight/2)
	_, err := w.CreateBox(component.KindGround, -1, groundX, groundY,
		s.ToMeters(s.LevelWidth), s.ToMeters(s.GroundHeight),
		BodyOptions{Fixed: true, Density: 1, Restitution: 0.1, Friction: 1})
	if err != nil {
		return fmt.Errorf("create ground: %w", err)
	}

	wallHeight := s.ToMeters(s.LevelHeight)
	for _, x := range []float64{0.2, s.LevelWidthMeters() - 0.2} {
		_, err := w.CreateBox(component.KindWall, -1, x, wallHeight/2, 0.2, wallHeight,
			BodyOptions{Fixed: true, Restitution: 0.2, Friction: 0.9})
		if err != nil {
			return fmt.Errorf("create wall: %w", err)
		}
	}
	return nil
}

// CreateBox creates a box body centred at (x, y) meters.
func (w *WorldSystem) CreateBox(kind component.Kind, owner int, x, y, width, height float64, opt BodyOptions) (types.EntityID, error) {
	shape := physics.Shape{Kind: physics.ShapeBox, HalfWidth: width / 2, HalfHeight: height / 2}
	if opt.AngularDamping == 0 {
		opt.AngularDamping = 0.1
	}
	return w.spawn(kind, owner, shape, physics.Vec2{X: x, Y: y}, opt)
}

// CreateBall creates a circle body. Dynamic balls are bullets so fast
// shots do not tunnel through thin pieces.
func (w *WorldSystem) CreateBall(kind component.Kind, owner int, x, y, radius float64, opt BodyOptions) (types.EntityID, error) {
	shape := physics.Shape{Kind: physics.ShapeCircle, Radius: radius}
	if !opt.Fixed {
		opt.Bullet = true
	}
	if opt.AngularDamping == 0 {
		opt.AngularDamping = 1.0
	}
	return w.spawn(kind, owner, shape, physics.Vec2{X: x, Y: y}, opt)
}

// CreatePoly creates a convex polygon body from vertices relative to (x, y).
func (w *WorldSystem) CreatePoly(kind component.Kind, owner int, x, y float64, points []physics.Vec2, opt BodyOptions) (types.EntityID, error) {
	shape := physics.Shape{Kind: physics.ShapePolygon, Points: points}
	if opt.AngularDamping == 0 {
		opt.AngularDamping = 0.1
	}
	return w.spawn(kind, owner, shape, physics.Vec2{X: x, Y: y}, opt)
}

func (w *WorldSystem) spawn(kind component.Kind, owner int, shape physics.Shape, pos physics.Vec2, opt BodyOptions) (types.EntityID, error) {
	id := w.ecs.NewEntity()
	h, err := w.engine.CreateBody(physics.BodyDef{
		Shape:          shape,
		Position:       pos,
		Angle:          opt.Angle,
		Fixed:          opt.Fixed,
		Bullet:         opt.Bullet,
		Density:        opt.Density,
		Restitution:    opt.Restitution,
		Friction:       opt.Friction,
		AngularDamping: opt.AngularDamping,
		Group:          opt.Group,
		Tag:            id,
	})
	if err != nil {
		return types.NoEntity, fmt.Errorf("spawn %s: %w", kind, err)
	}

	w.ecs.Bodies[id] = &component.Body{
		Kind:   kind,
		Owner:  owner,
		Pos:    component.Position{X: w.settings.ToPixels(pos.X), Y: w.settings.ToPixels(pos.Y)},
		Angle:  opt.Angle,
		Handle: h,
		Shape:  shape,
		Alive:  true,
		Draw:   !opt.Hidden,
	}
	w.objects = append(w.objects, id)
	return id, nil
}

// Step advances the simulation by one fixed step and returns the
// contacts it produced.
func (w *WorldSystem) Step() []physics.Contact {
	return w.engine.Step(w.settings.StepDuration(), w.settings.Iterations)
}

// SyncPositions mirrors engine positions into pixel positions.
func (w *WorldSystem) SyncPositions() {
	for _, id := range w.objects {
		body := w.ecs.Bodies[id]
		if body == nil {
			continue
		}
		p := w.engine.Position(body.Handle)
		body.Pos.X = w.settings.ToPixels(p.X)
		body.Pos.Y = w.settings.ToPixels(p.Y)
		body.Angle = w.engine.Angle(body.Handle)
	}
}

// AllSleeping is true when every tracked body except the ground sleeps.
func (w *WorldSystem) AllSleeping() bool {
	for _, id := range w.objects {
		body := w.ecs.Bodies[id]
		if body == nil || body.Kind == component.KindGround {
			continue
		}
		if !w.engine.IsSleeping(body.Handle) {
			return false
		}
	}
	return true
}

// AllSettled is true when no tracked body moves or spins faster than
// threshold.
func (w *WorldSystem) AllSettled(threshold float64) bool {
	for _, id := range w.objects {
		body := w.ecs.Bodies[id]
		if body == nil {
			continue
		}
		v := w.engine.LinearVelocity(body.Handle)
		omega := w.engine.AngularVelocity(body.Handle)
		if v.Len() > threshold || math.Abs(omega) > threshold {
			return false
		}
	}
	return true
}

// PositionMeters returns the engine position of an entity.
func (w *WorldSystem) PositionMeters(id types.EntityID) (physics.Vec2, bool) {
	body, ok := w.ecs.Bodies[id]
	if !ok {
		return physics.Vec2{}, false
	}
	return w.engine.Position(body.Handle), true
}

// DestroyObject removes an entity from the engine, the tracked list and
// the ECS in one go. Unknown IDs are ignored.
func (w *WorldSystem) DestroyObject(id types.EntityID) {
	body, ok := w.ecs.Bodies[id]
	if !ok {
		return
	}
	w.engine.DestroyBody(body.Handle)
	for i, o := range w.objects {
		if o == id {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
	w.ecs.Remove(id)
}

// Sweep destroys every entity whose Alive flag dropped and returns their IDs.
func (w *WorldSystem) Sweep() []types.EntityID {
	var dead []types.EntityID
	for _, id := range w.objects {
		if body := w.ecs.Bodies[id]; body != nil && !body.Alive {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		w.log.Debug("removing destroyed entity", "id", id, "kind", w.ecs.Bodies[id].Kind)
		w.DestroyObject(id)
	}
	return dead
}

// Clear destroys every body.
func (w *WorldSystem) Clear() {
	for _, id := range w.objects {
		if body := w.ecs.Bodies[id]; body != nil {
			w.engine.DestroyBody(body.Handle)
		}
		w.ecs.Remove(id)
	}
	w.objects = nil
}

// Objects returns the tracked entities in creation order.
func (w *WorldSystem) Objects() []types.EntityID {
	out := make([]types.EntityID, len(w.objects))
	copy(out, w.objects)
	return out
}

// Engine exposes the engine for read-only queries.
func (w *WorldSystem) Engine() physics.Engine {
	return w.engine
}

func (w *WorldSystem) Settings() config.Settings {
	return w.settings
}
