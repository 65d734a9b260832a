package entity

import (
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/types"
)

func TestNewEntity_StableIncreasingIDs(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	if a == types.NoEntity || b == types.NoEntity {
		t.Fatal("NewEntity returned the zero ID")
	}
	if b <= a {
		t.Errorf("ids not increasing: %d then %d", a, b)
	}
}

func TestRemove_DropsAllComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Bodies[id] = &component.Body{Kind: component.KindFortPiece, Alive: true}
	ecs.Damages[id] = &component.Damage{DestroyThreshold: 10}
	ecs.FortPieces[id] = &component.FortPiece{}
	ecs.DamageFlashes[id] = &component.DamageFlash{}

	if kind, ok := ecs.Kind(id); !ok || kind != component.KindFortPiece {
		t.Fatalf("Kind() = %v, %v", kind, ok)
	}
	ecs.Remove(id)

	if _, ok := ecs.Kind(id); ok {
		t.Error("body still present after Remove")
	}
	if len(ecs.Damages)+len(ecs.FortPieces)+len(ecs.DamageFlashes) != 0 {
		t.Error("components left behind after Remove")
	}
	if ecs.IsAlive(id) {
		t.Error("removed entity reported alive")
	}
}

func TestNewECS_MatchDefaults(t *testing.T) {
	ecs := NewECS()
	if ecs.Match.Phase != component.PhaseStarting {
		t.Errorf("Phase = %v, want starting", ecs.Match.Phase)
	}
	if ecs.Match.Winner != -1 {
		t.Errorf("Winner = %d, want -1", ecs.Match.Winner)
	}
}
