// internal/system/contact.go
package system

import (
	"log/slog"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// ContactResolver turns collisions into damage. Projectiles and weapons
// strike; fort pieces, enemies and weapons take the hit.
type ContactResolver struct {
	ecs          *entity.ECS
	engine       physics.Engine
	dispatcher   *event.Dispatcher
	damageFactor float64
	log          *slog.Logger
}

func NewContactResolver(ecs *entity.ECS, engine physics.Engine, dispatcher *event.Dispatcher, damageFactor float64, log *slog.Logger) *ContactResolver {
	return &ContactResolver{
		ecs:          ecs,
		engine:       engine,
		dispatcher:   dispatcher,
		damageFactor: damageFactor,
		log:          log,
	}
}

// Resolve applies every contact of a step in order. Each reported
// contact counts, even repeats for the same pair.
func (r *ContactResolver) Resolve(contacts []physics.Contact) {
	for _, c := range contacts {
		r.Apply(c.A, c.B, c.Speed)
		r.Apply(c.B, c.A, c.Speed)
	}
}

// Apply resolves one directed hit of striker on target.
func (r *ContactResolver) Apply(striker, target types.EntityID, speed float64) {
	kind, ok := r.ecs.Kind(striker)
	if !ok || (kind != component.KindProjectile && kind != component.KindWeapon) {
		return
	}

	body, ok := r.ecs.Bodies[target]
	if !ok || !body.Alive {
		return
	}
	dmg, ok := r.ecs.Damages[target]
	if !ok {
		return
	}

	switch body.Kind {
	case component.KindFortPiece:
		r.accumulate(striker, target, body, dmg, speed)
		if piece, ok := r.ecs.FortPieces[target]; ok {
			updateSprite(body, piece, dmg)
		}
		r.destroyIfExceeded(target, body, dmg)
	case component.KindEnemy, component.KindWeapon:
		r.accumulate(striker, target, body, dmg, speed)
		r.destroyIfExceeded(target, body, dmg)
	default:
		// Anything else is scenery or a kind added later.
	}
}

func (r *ContactResolver) accumulate(striker, target types.EntityID, body *component.Body, dmg *component.Damage, speed float64) {
	if speed <= dmg.MinImpactVelocity {
		return
	}
	added := speed * r.strikerMass(striker) / r.damageFactor
	if added <= 0 {
		return
	}
	dmg.Damage += added
	r.ecs.DamageFlashes[target] = &component.DamageFlash{
		Timer:    DamageFlashDuration,
		Duration: DamageFlashDuration,
	}
	r.log.Debug("impact", "target", target, "kind", body.Kind, "speed", speed, "damage", dmg.Damage)
}

func (r *ContactResolver) strikerMass(striker types.EntityID) float64 {
	if p, ok := r.ecs.Projectiles[striker]; ok {
		return p.Mass
	}
	return r.engine.Mass(r.ecs.Bodies[striker].Handle)
}

func (r *ContactResolver) destroyIfExceeded(target types.EntityID, body *component.Body, dmg *component.Damage) {
	if !dmg.Exceeded() {
		return
	}
	body.Alive = false
	r.log.Info("destroyed", "target", target, "kind", body.Kind, "owner", body.Owner)
	r.dispatcher.Dispatch(event.Event{
		Type: event.EntityDestroyed,
		Data: event.Destroyed{ID: target, Kind: body.Kind, Owner: body.Owner},
	})
}

// updateSprite picks the sprite of the current tier. Tiers without a
// sprite leave the current one in place.
func updateSprite(body *component.Body, piece *component.FortPiece, dmg *component.Damage) {
	var sprite string
	switch dmg.Tier() {
	case component.TierIntact:
		sprite = piece.Sprites.Normal
	case component.TierDamaged:
		sprite = piece.Sprites.Damaged
	case component.TierCrumbling:
		sprite = piece.Sprites.Destroyed
	}
	if sprite != "" {
		body.Sprite = sprite
	}
}
