package entity

import (
	"go-artillery/internal/component"
	"go-artillery/internal/types"
)

// ECS is the entity arena of one match. Entities are addressed by a
// stable EntityID; the physics engine only ever sees that ID.
type ECS struct {
	NextID        types.EntityID
	Bodies        map[types.EntityID]*component.Body
	Damages       map[types.EntityID]*component.Damage
	FortPieces    map[types.EntityID]*component.FortPiece
	Enemies       map[types.EntityID]*component.Enemy
	Weapons       map[types.EntityID]*component.Weapon
	Projectiles   map[types.EntityID]*component.Projectile
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Scores        [2]*component.PlayerScore
	Match         *component.MatchState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Bodies:        make(map[types.EntityID]*component.Body),
		Damages:       make(map[types.EntityID]*component.Damage),
		FortPieces:    make(map[types.EntityID]*component.FortPiece),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Weapons:       make(map[types.EntityID]*component.Weapon),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Scores:        [2]*component.PlayerScore{{}, {}},
		Match: &component.MatchState{
			Phase:  component.PhaseStarting,
			Winner: -1,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Kind returns the kind tag of an entity and whether the entity exists.
func (ecs *ECS) Kind(id types.EntityID) (component.Kind, bool) {
	body, ok := ecs.Bodies[id]
	if !ok {
		return 0, false
	}
	return body.Kind, true
}

// IsAlive reports whether id exists and is still in play.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	body, ok := ecs.Bodies[id]
	return ok && body.Alive
}

// Remove drops every component of id. It does not touch the physics
// engine; callers go through WorldSystem.DestroyObject.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Bodies, id)
	delete(ecs.Damages, id)
	delete(ecs.FortPieces, id)
	delete(ecs.Enemies, id)
	delete(ecs.Weapons, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DamageFlashes, id)
}
