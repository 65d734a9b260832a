// internal/system/level.go
package system

import (
	"fmt"
	"log/slog"

	"go-artillery/internal/component"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// Fort is one player's side: its pieces, defenders and weapon.
type Fort struct {
	Owner   int
	Pieces  []types.EntityID
	Enemies []types.EntityID
	Weapon  types.EntityID
}

// LevelSystem строит крепости и следит за их состоянием.
type LevelSystem struct {
	ecs   *entity.ECS
	world *WorldSystem
	log   *slog.Logger
	Forts [2]*Fort
}

func NewLevelSystem(ecs *entity.ECS, world *WorldSystem, log *slog.Logger) *LevelSystem {
	return &LevelSystem{ecs: ecs, world: world, log: log}
}

// Build creates both forts. The right fort is the mirror image of its
// layout.
func (l *LevelSystem) Build(left, right defs.FortLayout) error {
	for owner, layout := range []defs.FortLayout{left, right} {
		fort, err := l.buildFort(owner, layout)
		if err != nil {
			return fmt.Errorf("build fort %d: %w", owner, err)
		}
		l.Forts[owner] = fort
	}
	return nil
}

func (l *LevelSystem) buildFort(owner int, layout defs.FortLayout) (*Fort, error) {
	fort := &Fort{Owner: owner}

	for i, p := range layout.Pieces {
		id, err := l.addPiece(owner, p)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
		fort.Pieces = append(fort.Pieces, id)
	}

	for i, e := range layout.Enemies {
		id, err := l.addEnemy(owner, e)
		if err != nil {
			return nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		fort.Enemies = append(fort.Enemies, id)
	}

	weapon, err := l.NewWeapon(owner, "cannon", "grey", defs.AmmoCycle[0])
	if err != nil {
		return nil, err
	}
	fort.Weapon = weapon

	l.log.Info("fort built", "owner", owner, "pieces", len(fort.Pieces), "enemies", len(fort.Enemies))
	return fort, nil
}

// fortX converts a layout x, measured from the outer edge of the fort,
// into a level x in pixels.
func (l *LevelSystem) fortX(owner int, x float64) float64 {
	s := l.world.Settings()
	if owner == 1 {
		return s.LevelWidth - s.LevelPadding - x
	}
	return s.LevelPadding + x
}

func (l *LevelSystem) addPiece(owner int, p defs.PiecePlacement) (types.EntityID, error) {
	def, mat, err := defs.LookupPiece(p.Shape, p.Size, p.Material)
	if err != nil {
		return types.NoEntity, err
	}
	s := l.world.Settings()
	x := s.ToMeters(l.fortX(owner, p.X))
	y := s.ToMeters(p.Y)
	angle := p.Angle
	if owner == 1 {
		angle = -angle
	}
	opt := BodyOptions{
		Density:     mat.Density,
		Restitution: mat.Restitution,
		Friction:    mat.Friction,
		Angle:       angle,
	}

	var id types.EntityID
	if len(def.Points) > 0 {
		points := make([]physics.Vec2, len(def.Points))
		for i, pt := range def.Points {
			px := pt.X
			if owner == 1 {
				px = -px
			}
			points[i] = physics.Vec2{X: s.ToMeters(px), Y: s.ToMeters(pt.Y)}
		}
		id, err = l.world.CreatePoly(component.KindFortPiece, owner, x, y, points, opt)
	} else {
		id, err = l.world.CreateBox(component.KindFortPiece, owner, x, y, s.ToMeters(def.Width), s.ToMeters(def.Height), opt)
	}
	if err != nil {
		return types.NoEntity, err
	}

	sprites := defs.PieceSprites(def, p.Material)
	l.ecs.Bodies[id].Sprite = sprites.Normal
	l.ecs.FortPieces[id] = &component.FortPiece{
		DefID:    p.Shape + "/" + p.Size,
		Shape:    p.Shape,
		Size:     p.Size,
		Material: p.Material,
		Sprites:  sprites,
	}
	l.ecs.Damages[id] = &component.Damage{
		DestroyThreshold:  mat.DestroyThreshold,
		MinImpactVelocity: mat.MinImpactVelocity,
	}
	return id, nil
}

func (l *LevelSystem) addEnemy(owner int, e defs.EnemyPlacement) (types.EntityID, error) {
	def, err := defs.LookupEnemy(e.Species, e.Size)
	if err != nil {
		return types.NoEntity, err
	}
	s := l.world.Settings()
	id, err := l.world.CreateBox(component.KindEnemy, owner,
		s.ToMeters(l.fortX(owner, e.X)), s.ToMeters(e.Y),
		s.ToMeters(def.Width), s.ToMeters(def.Height),
		BodyOptions{Density: def.Density, Restitution: def.Restitution, Friction: def.Friction})
	if err != nil {
		return types.NoEntity, err
	}
	l.ecs.Bodies[id].Sprite = def.Sprite
	l.ecs.Enemies[id] = &component.Enemy{DefID: def.ID, Species: def.Species, Size: def.Size}
	l.ecs.Damages[id] = &component.Damage{
		DestroyThreshold:  def.DestroyThreshold,
		MinImpactVelocity: def.MinImpactVelocity,
	}
	return id, nil
}

// NewWeapon places the weapon of owner in front of its fort. The left
// weapon faces right and the right one faces left.
func (l *LevelSystem) NewWeapon(owner int, skin, typ string, ammo component.Ammo) (types.EntityID, error) {
	def, err := defs.LookupWeapon(skin, typ)
	if err != nil {
		return types.NoEntity, err
	}
	if _, err := defs.LookupAmmo(ammo); err != nil {
		return types.NoEntity, fmt.Errorf("weapon %s/%s: %w", skin, typ, err)
	}

	s := l.world.Settings()
	facing := component.FacingRight
	x := s.FortWidth + s.LevelPadding + 50
	if owner == 1 {
		facing = component.FacingLeft
		x = s.LevelWidth - s.FortWidth - s.LevelPadding - def.Width + 42
	}
	y := s.LevelHeight - s.GroundHeight - def.BarrelHeight/2

	id, err := l.world.CreateBox(component.KindWeapon, owner, s.ToMeters(x), s.ToMeters(y),
		s.ToMeters(def.Width), s.ToMeters(def.BarrelHeight),
		BodyOptions{
			Fixed:       true,
			Density:     def.Density,
			Restitution: def.Restitution,
			Friction:    def.Friction,
			Group:       collisionGroup(owner),
		})
	if err != nil {
		return types.NoEntity, err
	}

	// the sprite stands on the ground and is taller than the body
	origin := component.Position{X: -def.Width / 2, Y: def.BarrelHeight/2 - def.Height}

	l.ecs.Bodies[id].Sprite = def.Sprite
	l.ecs.Weapons[id] = &component.Weapon{
		Skin:         def.Skin + "/" + def.Type,
		Facing:       facing,
		Power:        def.Power,
		Ammo:         ammo,
		AmmoIndex:    defs.AmmoIndex(ammo),
		Origin:       origin,
		AxisOffset:   def.AxisOffset,
		LaunchOffset: def.LaunchOffset,
		BarrelHeight: def.BarrelHeight,
	}
	l.ecs.Damages[id] = &component.Damage{
		DestroyThreshold:  def.DestroyThreshold,
		MinImpactVelocity: def.MinImpactVelocity,
	}
	return id, nil
}

// collisionGroup is shared by a player's weapon and its projectiles, so a
// shot never collides with the cannon it leaves.
func collisionGroup(owner int) int16 {
	return int16(-(owner + 1))
}

// Finished reports whether no live enemy is left in the fort.
func (f *Fort) Finished(ecs *entity.ECS) bool {
	return f.EnemiesRemaining(ecs) == 0
}

// EnemiesRemaining counts the fort's live enemies.
func (f *Fort) EnemiesRemaining(ecs *entity.ECS) int {
	n := 0
	for _, id := range f.Enemies {
		if ecs.IsAlive(id) {
			n++
		}
	}
	return n
}

// Prune drops removed entities from the forts' lists.
func (l *LevelSystem) Prune(removed []types.EntityID) {
	if len(removed) == 0 {
		return
	}
	gone := make(map[types.EntityID]struct{}, len(removed))
	for _, id := range removed {
		gone[id] = struct{}{}
	}
	for _, f := range l.Forts {
		if f == nil {
			continue
		}
		f.Pieces = without(f.Pieces, gone)
		f.Enemies = without(f.Enemies, gone)
	}
}

func without(ids []types.EntityID, gone map[types.EntityID]struct{}) []types.EntityID {
	out := ids[:0]
	for _, id := range ids {
		if _, ok := gone[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Update mirrors the engine state into pixel positions.
func (l *LevelSystem) Update() {
	l.world.SyncPositions()
}
