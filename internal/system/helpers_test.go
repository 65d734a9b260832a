package system

import (
	"io"
	"log/slog"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/physics/physicstest"
	"go-artillery/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testWorld struct {
	ecs        *entity.ECS
	engine     *physicstest.Engine
	world      *WorldSystem
	dispatcher *event.Dispatcher
	settings   config.Settings
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	s := config.Default()
	ecs := entity.NewECS()
	engine := physicstest.New()
	return &testWorld{
		ecs:        ecs,
		engine:     engine,
		world:      NewWorldSystem(ecs, engine, s, discardLogger()),
		dispatcher: event.NewDispatcher(),
		settings:   s,
	}
}

// piece creates a wooden box with the given durability.
func (tw *testWorld) piece(t *testing.T, owner int, threshold, minImpact float64) types.EntityID {
	t.Helper()
	id, err := tw.world.CreateBox(component.KindFortPiece, owner, 10, 10, 1, 1, BodyOptions{Density: 1})
	if err != nil {
		t.Fatalf("CreateBox: %v", err)
	}
	tw.ecs.Damages[id] = &component.Damage{DestroyThreshold: threshold, MinImpactVelocity: minImpact}
	tw.ecs.FortPieces[id] = &component.FortPiece{
		Sprites: component.SpriteSet{Normal: "n", Damaged: "d", Destroyed: "x"},
	}
	tw.ecs.Bodies[id].Sprite = "n"
	return id
}

// projectile creates a ball whose cached mass is mass.
func (tw *testWorld) projectile(t *testing.T, owner int, mass float64) types.EntityID {
	t.Helper()
	id, err := tw.world.CreateBall(component.KindProjectile, owner, 5, 5, 1, BodyOptions{Density: 1})
	if err != nil {
		t.Fatalf("CreateBall: %v", err)
	}
	tw.ecs.Projectiles[id] = &component.Projectile{Ammo: component.Ammo{Type: "rock", Details: "small"}, Mass: mass}
	return id
}

type eventLog struct {
	got []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.got = append(l.got, e)
}
