package system

import (
	"math"
	"testing"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/event"
	"go-artillery/internal/input"
	"go-artillery/internal/types"
)

type launcherRig struct {
	*testWorld
	camera   *CameraSystem
	launcher *Launcher
	weapons  [2]types.EntityID
}

func newLauncherRig(t *testing.T) *launcherRig {
	t.Helper()
	tw := newTestWorld(t)
	log := discardLogger()
	camera := NewCameraSystem(tw.ecs, tw.settings.LevelWidth, tw.settings.LevelHeight, config.ScreenWidth, config.ScreenHeight, tw.settings.CameraScrollSpeed)
	projectiles := NewProjectileSystem(tw.ecs, tw.world, log)
	level := NewLevelSystem(tw.ecs, tw.world, log)

	rig := &launcherRig{testWorld: tw, camera: camera}
	for owner := 0; owner < 2; owner++ {
		id, err := level.NewWeapon(owner, "cannon", "grey", defs.AmmoCycle[0])
		if err != nil {
			t.Fatalf("NewWeapon(%d): %v", owner, err)
		}
		rig.weapons[owner] = id
	}
	rig.launcher = NewLauncher(tw.ecs, tw.settings, camera, projectiles, tw.dispatcher, log)
	rig.launcher.SetWeapons(rig.weapons[0], rig.weapons[1])
	return rig
}

func TestAimAngle(t *testing.T) {
	pivot := input.Point{X: 100, Y: 100}
	tests := []struct {
		name    string
		facing  component.Facing
		pointer input.Point
		want    float64
	}{
		{"right up", component.FacingRight, input.Point{X: 200, Y: 0}, -math.Pi / 4},
		{"right below snaps flat", component.FacingRight, input.Point{X: 200, Y: 200}, 0},
		{"right behind clamps up", component.FacingRight, input.Point{X: 0, Y: 0}, -math.Pi / 2},
		{"right straight back", component.FacingRight, input.Point{X: 0, Y: 100}, 0},
		{"left up", component.FacingLeft, input.Point{X: 0, Y: 0}, math.Pi / 4},
		{"left behind clamps up", component.FacingLeft, input.Point{X: 200, Y: 0}, math.Pi / 2},
		{"left below snaps flat", component.FacingLeft, input.Point{X: 0, Y: 200}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AimAngle(tt.facing, pivot, tt.pointer)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AimAngle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAimAngle_AlwaysInRange(t *testing.T) {
	pivot := input.Point{X: 480, Y: 300}
	for x := -500.0; x <= 1500; x += 37 {
		for y := -500.0; y <= 1100; y += 41 {
			p := input.Point{X: x, Y: y}
			if a := AimAngle(component.FacingRight, pivot, p); a < -math.Pi/2 || a > 0 {
				t.Fatalf("right angle %v out of range for %+v", a, p)
			}
			if a := AimAngle(component.FacingLeft, pivot, p); a < 0 || a > math.Pi/2 {
				t.Fatalf("left angle %v out of range for %+v", a, p)
			}
		}
	}
}

func TestLaunchVectors_FlatShotRight(t *testing.T) {
	w := &component.Weapon{
		Facing:       component.FacingRight,
		Power:        200,
		LaunchOffset: component.Position{X: 92, Y: 24},
	}
	pos, impulse := LaunchVectors(w, 470, 500, 20)

	if impulse.X != 200 || impulse.Y != 0 {
		t.Errorf("impulse = %+v, want (200, 0)", impulse)
	}
	if dx := pos.X*20 - 470; math.Abs(dx-92) > 1e-9 {
		t.Errorf("muzzle offset = %v px, want 92", dx)
	}
	if dy := pos.Y*20 - 500; math.Abs(dy-24) > 1e-9 {
		t.Errorf("muzzle height offset = %v px, want 24", dy)
	}
}

func TestLaunchVectors_LeftNegatesImpulse(t *testing.T) {
	w := &component.Weapon{
		Facing:       component.FacingLeft,
		Angle:        0.3,
		Power:        200,
		LaunchOffset: component.Position{X: 92, Y: 24},
	}
	pos, impulse := LaunchVectors(w, 1900, 500, 20)

	if math.Abs(impulse.X+200*math.Cos(0.3)) > 1e-9 || math.Abs(impulse.Y+200*math.Sin(0.3)) > 1e-9 {
		t.Errorf("impulse = %+v", impulse)
	}
	if pos.X != 1900.0/20 {
		t.Errorf("left muzzle moved forward: x = %v", pos.X)
	}
}

func TestLaunch_SpawnsProjectile(t *testing.T) {
	rig := newLauncherRig(t)
	log := &eventLog{}
	rig.dispatcher.Subscribe(event.ProjectileLaunched, log)

	rig.launcher.PrepareLaunch()
	pivot, ok := rig.launcher.Pivot()
	if !ok {
		t.Fatal("no pivot for the active weapon")
	}
	// Straight up and to the right at 45 degrees.
	rig.launcher.Aim(input.Point{X: pivot.X + 100, Y: pivot.Y - 100})

	id, fired, err := rig.launcher.Launch()
	if err != nil || !fired {
		t.Fatalf("Launch() = %v, %v, %v", id, fired, err)
	}
	if rig.launcher.Aiming() {
		t.Error("still aiming after launch")
	}
	if _, ok := rig.ecs.Projectiles[id]; !ok {
		t.Fatal("projectile component missing")
	}

	body := rig.engine.ByTag(id)
	if len(body.Impulses) != 1 || len(body.Torques) != 1 {
		t.Fatalf("impulses %v, torques %v", body.Impulses, body.Torques)
	}
	imp := body.Impulses[0]
	if math.Abs(imp.X-200*math.Cos(-math.Pi/4)) > 1e-9 || math.Abs(imp.Y-200*math.Sin(-math.Pi/4)) > 1e-9 {
		t.Errorf("impulse = %+v", imp)
	}
	if body.Torques[0] != config.LaunchTorque {
		t.Errorf("torque = %v, want %v", body.Torques[0], config.LaunchTorque)
	}
	if rig.camera.Mode() != component.CameraFollowing {
		t.Errorf("camera mode = %v, want following", rig.camera.Mode())
	}
	if len(log.got) != 1 {
		t.Errorf("ProjectileLaunched dispatched %d times", len(log.got))
	}
}

func TestLaunch_LeftPlayerSpinsBackwards(t *testing.T) {
	rig := newLauncherRig(t)
	rig.ecs.Match.ActivePlayer = 1

	rig.launcher.PrepareLaunch()
	id, fired, err := rig.launcher.Launch()
	if err != nil || !fired {
		t.Fatalf("Launch() = %v, %v, %v", id, fired, err)
	}
	body := rig.engine.ByTag(id)
	if body.Impulses[0].X >= 0 {
		t.Errorf("left shot impulse x = %v, want negative", body.Impulses[0].X)
	}
	if body.Torques[0] != -config.LaunchTorque {
		t.Errorf("torque = %v, want %v", body.Torques[0], -config.LaunchTorque)
	}
}

func TestLaunch_NotAimingDoesNothing(t *testing.T) {
	rig := newLauncherRig(t)
	before := len(rig.engine.Bodies)

	rig.launcher.PrepareLaunch()
	rig.launcher.Abort()
	if _, fired, err := rig.launcher.Launch(); fired || err != nil {
		t.Fatalf("Launch after Abort fired=%v err=%v", fired, err)
	}
	if len(rig.engine.Bodies) != before {
		t.Error("a body was created without aiming")
	}
}

func TestAim_OnlyWhileAiming(t *testing.T) {
	rig := newLauncherRig(t)
	_, w := rig.launcher.Current()
	pivot, _ := rig.launcher.Pivot()

	rig.launcher.Aim(input.Point{X: pivot.X + 100, Y: pivot.Y - 100})
	if w.Angle != 0 {
		t.Errorf("angle changed to %v without aiming", w.Angle)
	}

	rig.launcher.PrepareLaunch()
	rig.launcher.Aim(input.Point{X: pivot.X + 100, Y: pivot.Y - 100})
	if math.Abs(w.Angle+math.Pi/4) > 1e-9 {
		t.Errorf("angle = %v, want -π/4", w.Angle)
	}

	rig.launcher.Update(component.PhaseAttacking)
	if rig.launcher.Aiming() {
		t.Error("aiming survived leaving the waiting phase")
	}
}

func TestChangeWeapon_Wraps(t *testing.T) {
	rig := newLauncherRig(t)
	_, w := rig.launcher.Current()

	want := []component.Ammo{
		{Type: "banana", Details: "single"},
		{Type: "rock", Details: "small"},
		{Type: "banana", Details: "single"},
	}
	for i, ammo := range want {
		rig.launcher.ChangeWeapon()
		if w.Ammo != ammo {
			t.Errorf("change %d: ammo = %v, want %v", i+1, w.Ammo, ammo)
		}
	}

	// The other player's weapon is untouched.
	other := rig.ecs.Weapons[rig.weapons[1]]
	if other.Ammo != defs.AmmoCycle[0] {
		t.Errorf("inactive weapon ammo = %v", other.Ammo)
	}
}

func TestLaunch_MuzzleClearsGround(t *testing.T) {
	angles := map[component.Facing][]float64{
		component.FacingRight: {0, -0.3, -math.Pi / 4, -1.2, -math.Pi / 2},
		component.FacingLeft:  {0, 0.3, math.Pi / 4, 1.2, math.Pi / 2},
	}
	for player := 0; player < 2; player++ {
		rig := newLauncherRig(t)
		rig.ecs.Match.ActivePlayer = player
		groundTop := rig.settings.ToMeters(rig.settings.LevelHeight - rig.settings.GroundHeight)

		_, w := rig.launcher.Current()
		for _, angle := range angles[w.Facing] {
			w.Angle = angle
			rig.launcher.PrepareLaunch()
			id, fired, err := rig.launcher.Launch()
			if err != nil || !fired {
				t.Fatalf("player %d angle %.2f: Launch() = %v, %v, %v", player, angle, id, fired, err)
			}
			def, err := defs.LookupAmmo(w.Ammo)
			if err != nil {
				t.Fatal(err)
			}
			if bottom := rig.engine.ByTag(id).Pos.Y + def.Radius; bottom >= groundTop {
				t.Errorf("player %d angle %.2f: projectile bottom %.3f m at or below ground %.3f m", player, angle, bottom, groundTop)
			}
		}
	}
}

func TestLaunch_ProjectileSharesWeaponGroup(t *testing.T) {
	rig := newLauncherRig(t)
	for player := 0; player < 2; player++ {
		rig.ecs.Match.ActivePlayer = player
		rig.launcher.PrepareLaunch()
		id, fired, err := rig.launcher.Launch()
		if err != nil || !fired {
			t.Fatalf("Launch() = %v, %v, %v", id, fired, err)
		}

		own := rig.engine.ByTag(rig.weapons[player]).Def.Group
		other := rig.engine.ByTag(rig.weapons[1-player]).Def.Group
		shot := rig.engine.ByTag(id).Def.Group
		if own >= 0 {
			t.Errorf("player %d weapon group = %d, want negative", player, own)
		}
		if shot != own {
			t.Errorf("player %d projectile group = %d, want %d", player, shot, own)
		}
		if other == own {
			t.Errorf("both weapons share group %d", own)
		}
	}
}
