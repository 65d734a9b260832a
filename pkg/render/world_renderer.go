package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/component"
	"go-artillery/internal/entity"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// WorldRenderer рисует тела уровня с учётом позиции камеры.
type WorldRenderer struct {
	colors  BodyColors
	scale   float64 // pixels per meter
	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewWorldRenderer(colors BodyColors, scalingFactor float64) *WorldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &WorldRenderer{
		colors:  colors,
		scale:   scalingFactor,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 16),
		fillIs:  make([]uint16, 0, 16),
	}
}

// Draw paints every visible body. cam is the top-left corner of the view
// in level pixels.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, cam component.Position) {
	screen.Fill(r.colors.Background)

	// scenery first so pieces and projectiles end up on top
	for _, pass := range []func(component.Kind) bool{
		func(k component.Kind) bool { return k == component.KindGround || k == component.KindWall },
		func(k component.Kind) bool { return k == component.KindFortPiece || k == component.KindEnemy },
		func(k component.Kind) bool { return k == component.KindWeapon || k == component.KindProjectile },
	} {
		for id, body := range ecs.Bodies {
			if !body.Draw || !pass(body.Kind) {
				continue
			}
			r.drawBody(screen, ecs, id, body, cam)
		}
	}
}

func (r *WorldRenderer) drawBody(screen *ebiten.Image, ecs *entity.ECS, id types.EntityID, body *component.Body, cam component.Position) {
	clr := r.bodyColor(ecs, id, body)
	cx := body.Pos.X - cam.X
	cy := body.Pos.Y - cam.Y

	switch body.Shape.Kind {
	case physics.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(body.Shape.Radius*r.scale), clr, true)
		// a spoke, so the spin is visible
		dx := math.Cos(body.Angle) * body.Shape.Radius * r.scale
		dy := math.Sin(body.Angle) * body.Shape.Radius * r.scale
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx+dx), float32(cy+dy), 2, Shade(clr, 0.5), true)
	case physics.ShapeBox:
		hw, hh := body.Shape.HalfWidth, body.Shape.HalfHeight
		r.fillPolygon(screen, []physics.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}, cx, cy, body.Angle, clr)
	case physics.ShapePolygon:
		r.fillPolygon(screen, body.Shape.Points, cx, cy, body.Angle, clr)
	}

	if w, ok := ecs.Weapons[id]; ok {
		r.drawBarrel(screen, body, w, cx, cy)
	}
}

// fillPolygon fills local vertices (meters) rotated by angle around the
// screen point (cx, cy).
func (r *WorldRenderer) fillPolygon(screen *ebiten.Image, points []physics.Vec2, cx, cy, angle float64, clr color.RGBA) {
	sin, cos := math.Sincos(angle)
	path := vector.Path{}
	for i, p := range points {
		x := cx + (p.X*cos-p.Y*sin)*r.scale
		y := cy + (p.X*sin+p.Y*cos)*r.scale
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(clr.R) / 255
		r.fillVs[i].ColorG = float32(clr.G) / 255
		r.fillVs[i].ColorB = float32(clr.B) / 255
		r.fillVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *WorldRenderer) drawBarrel(screen *ebiten.Image, body *component.Body, w *component.Weapon, cx, cy float64) {
	px := cx + w.AxisOffset.X
	dir := 1.0
	if w.Facing == component.FacingLeft {
		px = cx - w.AxisOffset.X
		dir = -1
	}
	py := cy + w.AxisOffset.Y
	length := w.LaunchOffset.X - w.AxisOffset.X
	ex := px + dir*math.Cos(w.Angle)*length
	ey := py + dir*math.Sin(w.Angle)*length
	vector.StrokeLine(screen, float32(px), float32(py), float32(ex), float32(ey), float32(w.BarrelHeight/3), Shade(r.colors.Weapon, 0.7), true)
	vector.DrawFilledCircle(screen, float32(px), float32(py), float32(w.BarrelHeight/4), r.colors.Weapon, true)
}

// DrawAim draws a guide from the pivot to the pointer, both in screen
// coordinates.
func (r *WorldRenderer) DrawAim(screen *ebiten.Image, pivotX, pivotY, pointerX, pointerY float64) {
	vector.StrokeLine(screen, float32(pivotX), float32(pivotY), float32(pointerX), float32(pointerY), 2, r.colors.AimLine, true)
}

func (r *WorldRenderer) bodyColor(ecs *entity.ECS, id types.EntityID, body *component.Body) color.RGBA {
	var clr color.RGBA
	switch body.Kind {
	case component.KindGround:
		clr = r.colors.Ground
	case component.KindWall:
		clr = r.colors.Wall
	case component.KindEnemy:
		clr = r.colors.Enemy
	case component.KindWeapon:
		clr = r.colors.Weapon
	case component.KindProjectile:
		clr = r.colors.Projectile
		if p, ok := ecs.Projectiles[id]; ok && p.Ammo.Type == "banana" {
			clr = r.colors.Banana
		}
	case component.KindFortPiece:
		clr = r.colors.Wood
		if piece, ok := ecs.FortPieces[id]; ok && piece.Material == "rock" {
			clr = r.colors.Rock
		}
	}

	if dmg, ok := ecs.Damages[id]; ok && body.Kind == component.KindFortPiece {
		if tier := int(dmg.Tier()); tier < len(r.colors.TierShade) {
			clr = Shade(clr, r.colors.TierShade[tier])
		}
	}
	if flash, ok := ecs.DamageFlashes[id]; ok && flash.Duration > 0 {
		clr = Flash(clr, flash.Timer/flash.Duration)
	}
	return clr
}
