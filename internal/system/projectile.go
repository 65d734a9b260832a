// internal/system/projectile.go
package system

import (
	"fmt"
	"log/slog"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// ProjectileSystem создаёт и удаляет снаряды.
type ProjectileSystem struct {
	ecs   *entity.ECS
	world *WorldSystem
	log   *slog.Logger
}

func NewProjectileSystem(ecs *entity.ECS, world *WorldSystem, log *slog.Logger) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, world: world, log: log}
}

// Spawn creates a projectile at pos (meters), kicks it with impulse and
// spins it in the direction of travel.
func (s *ProjectileSystem) Spawn(owner int, pos, impulse physics.Vec2, ammo component.Ammo) (types.EntityID, error) {
	def, err := defs.LookupAmmo(ammo)
	if err != nil {
		return types.NoEntity, err
	}

	id, err := s.world.CreateBall(component.KindProjectile, owner, pos.X, pos.Y, def.Radius, BodyOptions{
		Density:        def.Density,
		Restitution:    def.Restitution,
		Friction:       def.Friction,
		AngularDamping: 1.0,
		Group:          collisionGroup(owner),
	})
	if err != nil {
		return types.NoEntity, fmt.Errorf("spawn projectile %s: %w", ammo, err)
	}

	body := s.ecs.Bodies[id]
	body.Sprite = def.Sprite
	engine := s.world.Engine()
	s.ecs.Projectiles[id] = &component.Projectile{
		Ammo: ammo,
		Mass: engine.Mass(body.Handle),
	}

	engine.ApplyImpulse(body.Handle, impulse, pos)
	torque := config.LaunchTorque
	if impulse.X < 0 {
		torque = -torque
	}
	engine.ApplyTorque(body.Handle, torque)

	s.log.Debug("projectile spawned", "id", id, "ammo", ammo.String(), "mass", s.ecs.Projectiles[id].Mass)
	return id, nil
}

// Destroy removes a projectile from the world.
func (s *ProjectileSystem) Destroy(id types.EntityID) {
	if _, ok := s.ecs.Projectiles[id]; !ok {
		return
	}
	s.world.DestroyObject(id)
}

// X returns the horizontal engine position of a projectile in meters.
func (s *ProjectileSystem) X(id types.EntityID) (float64, bool) {
	p, ok := s.world.PositionMeters(id)
	return p.X, ok
}
