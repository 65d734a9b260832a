package system

import (
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/event"
	"go-artillery/internal/physics"
)

// damageFactor 10 and mass 4 make a 100 m/s hit worth 40 damage.
func newResolver(tw *testWorld) *ContactResolver {
	return NewContactResolver(tw.ecs, tw.engine, tw.dispatcher, 10, discardLogger())
}

func TestResolve_ThreeHitsDestroyPiece(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	log := &eventLog{}
	tw.dispatcher.Subscribe(event.EntityDestroyed, log)

	target := tw.piece(t, 1, 100, 0)
	striker := tw.projectile(t, 0, 4)
	hit := []physics.Contact{{A: striker, B: target, Speed: 100}}

	steps := []struct {
		damage float64
		tier   component.Tier
		alive  bool
		sprite string
	}{
		{40, component.TierDamaged, true, "d"},
		{80, component.TierCrumbling, true, "x"},
		{120, component.TierRuined, false, "x"},
	}
	for i, want := range steps {
		r.Resolve(hit)
		dmg := tw.ecs.Damages[target]
		body := tw.ecs.Bodies[target]
		if dmg.Damage != want.damage {
			t.Errorf("hit %d: damage = %v, want %v", i+1, dmg.Damage, want.damage)
		}
		if dmg.Tier() != want.tier {
			t.Errorf("hit %d: tier = %v, want %v", i+1, dmg.Tier(), want.tier)
		}
		if body.Alive != want.alive {
			t.Errorf("hit %d: alive = %v, want %v", i+1, body.Alive, want.alive)
		}
		if body.Sprite != want.sprite {
			t.Errorf("hit %d: sprite = %q, want %q", i+1, body.Sprite, want.sprite)
		}
	}

	if len(log.got) != 1 {
		t.Fatalf("EntityDestroyed dispatched %d times, want 1", len(log.got))
	}
	d := log.got[0].Data.(event.Destroyed)
	if d.ID != target || d.Owner != 1 || d.Kind != component.KindFortPiece {
		t.Errorf("payload = %+v", d)
	}
}

func TestApply_SlowHitIsNoop(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	target := tw.piece(t, 1, 100, 3)
	striker := tw.projectile(t, 0, 4)

	for _, v := range []float64{0, 1, 2.99, 3} {
		r.Apply(striker, target, v)
	}
	if got := tw.ecs.Damages[target].Damage; got != 0 {
		t.Errorf("damage = %v after hits at or below min impact velocity", got)
	}
	if _, ok := tw.ecs.DamageFlashes[target]; ok {
		t.Error("no-op hit started a damage flash")
	}
}

func TestApply_ExactAccumulation(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	target := tw.piece(t, 1, 1000, 1)
	striker := tw.projectile(t, 0, 2.5)

	prev := 0.0
	for _, v := range []float64{1.5, 7, 3.25, 20} {
		r.Apply(striker, target, v)
		got := tw.ecs.Damages[target].Damage
		want := prev + v*2.5/10
		if got != want {
			t.Fatalf("after v=%v damage = %v, want %v", v, got, want)
		}
		if got < prev {
			t.Fatalf("damage decreased: %v -> %v", prev, got)
		}
		prev = got
	}
}

func TestApply_DeadStaysDead(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	log := &eventLog{}
	tw.dispatcher.Subscribe(event.EntityDestroyed, log)

	target := tw.piece(t, 1, 10, 0)
	striker := tw.projectile(t, 0, 4)
	r.Apply(striker, target, 100)
	r.Apply(striker, target, 100)
	r.Apply(striker, target, 1)

	if tw.ecs.Bodies[target].Alive {
		t.Error("destroyed piece revived")
	}
	if len(log.got) != 1 {
		t.Errorf("destroyed notified %d times", len(log.got))
	}
}

func TestResolve_RepeatedContactsNotDeduplicated(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	target := tw.piece(t, 1, 1000, 0)
	striker := tw.projectile(t, 0, 4)

	c := physics.Contact{A: target, B: striker, Speed: 10}
	r.Resolve([]physics.Contact{c, c, c})

	if got := tw.ecs.Damages[target].Damage; got != 12 {
		t.Errorf("damage = %v, want 12", got)
	}
}

func TestApply_IgnoresUnknownAndScenery(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	striker := tw.projectile(t, 0, 4)
	ground, err := tw.world.CreateBox(component.KindGround, -1, 0, 0, 10, 1, BodyOptions{Fixed: true})
	if err != nil {
		t.Fatal(err)
	}
	target := tw.piece(t, 1, 100, 0)

	// Unknown entity IDs on either side are dropped.
	r.Resolve([]physics.Contact{{A: 9999, B: target, Speed: 50}, {A: striker, B: 9999, Speed: 50}})
	// Ground neither strikes nor takes damage.
	r.Resolve([]physics.Contact{{A: ground, B: striker, Speed: 50}})
	// A fort piece is not a striker.
	r.Apply(target, striker, 50)

	if got := tw.ecs.Damages[target].Damage; got != 0 {
		t.Errorf("target damage = %v", got)
	}
}

func TestApply_EnemyKeepsSprite(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	striker := tw.projectile(t, 0, 4)
	enemy, err := tw.world.CreateBox(component.KindEnemy, 1, 0, 0, 1, 1, BodyOptions{Density: 1})
	if err != nil {
		t.Fatal(err)
	}
	tw.ecs.Bodies[enemy].Sprite = "monkey"
	tw.ecs.Damages[enemy] = &component.Damage{DestroyThreshold: 20, MinImpactVelocity: 1}

	r.Apply(striker, enemy, 30) // 12 damage
	if !tw.ecs.Bodies[enemy].Alive || tw.ecs.Bodies[enemy].Sprite != "monkey" {
		t.Fatalf("enemy after first hit: %+v", tw.ecs.Bodies[enemy])
	}
	r.Apply(striker, enemy, 30)
	if tw.ecs.Bodies[enemy].Alive {
		t.Error("enemy survived 24 damage with threshold 20")
	}
}

func TestApply_WeaponStrikesWithEngineMass(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	weapon, err := tw.world.CreateBox(component.KindWeapon, 0, 0, 0, 2, 1, BodyOptions{Density: 3})
	if err != nil {
		t.Fatal(err)
	}
	target := tw.piece(t, 1, 1000, 0)

	r.Apply(weapon, target, 10)
	// mass = 3 * 2 * 1
	if got := tw.ecs.Damages[target].Damage; got != 6 {
		t.Errorf("damage = %v, want 6", got)
	}
}

func TestApply_MasslessStrikeLeavesNoFlash(t *testing.T) {
	tw := newTestWorld(t)
	r := newResolver(tw)
	weapon, err := tw.world.CreateBox(component.KindWeapon, 0, 0, 0, 2, 1, BodyOptions{Fixed: true, Density: 3})
	if err != nil {
		t.Fatal(err)
	}
	target := tw.piece(t, 1, 1000, 0)

	r.Apply(weapon, target, 10)
	if got := tw.ecs.Damages[target].Damage; got != 0 {
		t.Errorf("damage = %v, want 0 from a fixed striker", got)
	}
	if _, ok := tw.ecs.DamageFlashes[target]; ok {
		t.Error("flash started for a hit that dealt no damage")
	}
}
