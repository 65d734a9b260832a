package system

import (
	"fmt"
	"log/slog"
	"math"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/input"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// Launcher turns a pointer drag into a launch angle for the active
// player's weapon and fires projectiles from it.
type Launcher struct {
	ecs         *entity.ECS
	settings    config.Settings
	camera      *CameraSystem
	projectiles *ProjectileSystem
	dispatcher  *event.Dispatcher
	log         *slog.Logger

	weapons [2]types.EntityID
	aiming  bool
}

func NewLauncher(ecs *entity.ECS, settings config.Settings, camera *CameraSystem, projectiles *ProjectileSystem, dispatcher *event.Dispatcher, log *slog.Logger) *Launcher {
	return &Launcher{
		ecs:         ecs,
		settings:    settings,
		camera:      camera,
		projectiles: projectiles,
		dispatcher:  dispatcher,
		log:         log,
	}
}

// SetWeapons registers the weapon entity of each player.
func (l *Launcher) SetWeapons(left, right types.EntityID) {
	l.weapons = [2]types.EntityID{left, right}
}

// Current returns the active player's weapon and its entity ID.
func (l *Launcher) Current() (types.EntityID, *component.Weapon) {
	id := l.weapons[l.ecs.Match.ActivePlayer]
	return id, l.ecs.Weapons[id]
}

func (l *Launcher) Aiming() bool {
	return l.aiming
}

// PrepareLaunch starts aiming. The angle follows the pointer from here on.
func (l *Launcher) PrepareLaunch() {
	l.aiming = true
}

// Abort stops aiming; a later pointer release will not fire.
func (l *Launcher) Abort() {
	l.aiming = false
}

// Pivot returns the screen position the weapon rotates around.
func (l *Launcher) Pivot() (input.Point, bool) {
	id, w := l.Current()
	body, ok := l.ecs.Bodies[id]
	if w == nil || !ok {
		return input.Point{}, false
	}
	x := body.Pos.X + w.AxisOffset.X
	if w.Facing == component.FacingLeft {
		x = body.Pos.X - w.AxisOffset.X
	}
	y := body.Pos.Y + w.AxisOffset.Y
	return input.Point{X: x - l.camera.Position.X, Y: y - l.camera.Position.Y}, true
}

// Aim recomputes the weapon angle from a pointer position given relative
// to the viewport. Out of range angles are clamped, never rejected.
func (l *Launcher) Aim(pointer input.Point) {
	if !l.aiming {
		return
	}
	_, w := l.Current()
	pivot, ok := l.Pivot()
	if !ok {
		return
	}
	w.Angle = AimAngle(w.Facing, pivot, pointer)
}

// AimAngle maps a pointer to a launch angle: [-π/2, 0] facing right and
// [0, π/2] facing left.
func AimAngle(facing component.Facing, pivot, pointer input.Point) float64 {
	if facing == component.FacingLeft {
		angle := math.Atan2(pivot.Y-pointer.Y, pivot.X-pointer.X)
		if angle < 0 {
			return 0
		}
		if angle > math.Pi/2 {
			return math.Pi / 2
		}
		return angle
	}

	angle := math.Atan2(pointer.Y-pivot.Y, pointer.X-pivot.X)
	if angle > 0 && angle <= math.Pi {
		return 0
	}
	if angle < -math.Pi/2 {
		return -math.Pi / 2
	}
	return angle
}

// LaunchVectors computes the muzzle position (meters) and impulse of a
// shot from a weapon whose sprite origin is at pixel position (x, y).
func LaunchVectors(w *component.Weapon, x, y, scale float64) (pos, impulse physics.Vec2) {
	theta := w.Angle
	pos = physics.Vec2{X: x / scale, Y: (y + w.LaunchOffset.Y) / scale}
	impulse = physics.Vec2{X: w.Power * math.Cos(theta), Y: w.Power * math.Sin(theta)}

	if w.Facing == component.FacingRight {
		pos.X += w.LaunchOffset.X * math.Cos(theta) / scale
	} else {
		impulse.X = -impulse.X
		impulse.Y = -impulse.Y
	}
	return pos, impulse
}

// Launch fires the active weapon if the player is aiming. It reports
// whether a projectile was created.
func (l *Launcher) Launch() (types.EntityID, bool, error) {
	if !l.aiming {
		return types.NoEntity, false, nil
	}
	l.aiming = false

	id, w := l.Current()
	body, ok := l.ecs.Bodies[id]
	if w == nil || !ok || !body.Alive {
		return types.NoEntity, false, nil
	}

	pos, impulse := LaunchVectors(w, body.Pos.X+w.Origin.X, body.Pos.Y+w.Origin.Y, l.settings.ScalingFactor)
	player := l.ecs.Match.ActivePlayer
	projectile, err := l.projectiles.Spawn(player, pos, impulse, w.Ammo)
	if err != nil {
		return types.NoEntity, false, fmt.Errorf("launch: %w", err)
	}

	l.log.Info("fire!!!", "player", player, "angle", fmt.Sprintf("%.2f", -w.Angle*180/math.Pi), "ammo", w.Ammo.String())
	l.camera.Follow(projectile)
	l.dispatcher.Dispatch(event.Event{
		Type: event.ProjectileLaunched,
		Data: event.Launched{Projectile: projectile, Player: player, Ammo: w.Ammo, Angle: w.Angle},
	})
	return projectile, true, nil
}

// ChangeWeapon cycles the active weapon's ammunition through defs.AmmoCycle.
func (l *Launcher) ChangeWeapon() {
	_, w := l.Current()
	if w == nil {
		return
	}
	w.AmmoIndex = (w.AmmoIndex + 1) % len(defs.AmmoCycle)
	w.Ammo = defs.AmmoCycle[w.AmmoIndex]
	l.log.Debug("ammo changed", "player", l.ecs.Match.ActivePlayer, "ammo", w.Ammo.String())
}

// Update drops a stale aim once the match has left the waiting phase.
func (l *Launcher) Update(phase component.Phase) {
	if phase != component.PhaseWaiting {
		l.aiming = false
	}
}
