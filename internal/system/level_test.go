package system

import (
	"errors"
	"math"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/defs"
)

func TestBuild_DefaultForts(t *testing.T) {
	tw := newTestWorld(t)
	level := NewLevelSystem(tw.ecs, tw.world, discardLogger())
	layout := defs.DefaultFort(tw.settings.LevelHeight - tw.settings.GroundHeight)

	if err := level.Build(layout, layout); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for owner, f := range level.Forts {
		if f.Owner != owner {
			t.Errorf("fort %d owner = %d", owner, f.Owner)
		}
		if len(f.Pieces) != len(layout.Pieces) || len(f.Enemies) != len(layout.Enemies) {
			t.Errorf("fort %d: %d pieces, %d enemies", owner, len(f.Pieces), len(f.Enemies))
		}
		if f.Finished(tw.ecs) {
			t.Errorf("fresh fort %d already finished", owner)
		}
		w := tw.ecs.Weapons[f.Weapon]
		if w == nil {
			t.Fatalf("fort %d has no weapon", owner)
		}
	}

	if tw.ecs.Weapons[level.Forts[0].Weapon].Facing != component.FacingRight {
		t.Error("left weapon does not face right")
	}
	if tw.ecs.Weapons[level.Forts[1].Weapon].Facing != component.FacingLeft {
		t.Error("right weapon does not face left")
	}

	// The right fort mirrors the left one around the level centre.
	for i := range layout.Pieces {
		l := tw.ecs.Bodies[level.Forts[0].Pieces[i]].Pos
		r := tw.ecs.Bodies[level.Forts[1].Pieces[i]].Pos
		if math.Abs(l.X+r.X-tw.settings.LevelWidth) > 1e-6 || math.Abs(l.Y-r.Y) > 1e-6 {
			t.Errorf("piece %d: left %+v right %+v not mirrored", i, l, r)
		}
	}
}

func TestFort_FinishedWhenEnemiesGone(t *testing.T) {
	tw := newTestWorld(t)
	level := NewLevelSystem(tw.ecs, tw.world, discardLogger())
	layout := defs.DefaultFort(560)
	if err := level.Build(layout, layout); err != nil {
		t.Fatal(err)
	}
	fort := level.Forts[1]

	tw.ecs.Bodies[fort.Enemies[0]].Alive = false
	if got := fort.EnemiesRemaining(tw.ecs); got != len(layout.Enemies)-1 {
		t.Errorf("EnemiesRemaining = %d", got)
	}
	for _, id := range fort.Enemies {
		tw.ecs.Bodies[id].Alive = false
	}
	if !fort.Finished(tw.ecs) {
		t.Error("fort with no live enemies not finished")
	}

	removed := tw.world.Sweep()
	level.Prune(removed)
	if len(fort.Enemies) != 0 {
		t.Errorf("enemies left after prune: %v", fort.Enemies)
	}
	if !fort.Finished(tw.ecs) {
		t.Error("empty fort not finished")
	}
	if level.Forts[0].Finished(tw.ecs) {
		t.Error("the other fort was affected")
	}
}

func TestNewWeapon_UnknownAmmo(t *testing.T) {
	tw := newTestWorld(t)
	level := NewLevelSystem(tw.ecs, tw.world, discardLogger())

	_, err := level.NewWeapon(0, "cannon", "grey", component.Ammo{Type: "melon", Details: "huge"})
	if !errors.Is(err, defs.ErrUnknownAmmo) {
		t.Errorf("err = %v, want ErrUnknownAmmo", err)
	}
	_, err = level.NewWeapon(0, "catapult", "grey", defs.AmmoCycle[0])
	if !errors.Is(err, defs.ErrUnknownSkin) {
		t.Errorf("err = %v, want ErrUnknownSkin", err)
	}
	if len(tw.ecs.Weapons) != 0 {
		t.Error("a weapon was created despite the error")
	}
}

func TestBuild_BadLayout(t *testing.T) {
	tw := newTestWorld(t)
	level := NewLevelSystem(tw.ecs, tw.world, discardLogger())
	bad := defs.FortLayout{
		Pieces:  []defs.PiecePlacement{{Shape: "box", Size: "giant", Material: "wood"}},
		Enemies: []defs.EnemyPlacement{{Species: "monkey", Size: "small"}},
	}
	if err := level.Build(bad, bad); !errors.Is(err, defs.ErrUnknownPiece) {
		t.Errorf("err = %v, want ErrUnknownPiece", err)
	}
}
