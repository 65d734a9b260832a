// pkg/render/color.go
package render

import (
	"image/color"

	"go-artillery/internal/utils"
)

// BodyColors holds the fill colour of every kind of body.
type BodyColors struct {
	Background color.RGBA
	Ground     color.RGBA
	Wall       color.RGBA
	Wood       color.RGBA
	Rock       color.RGBA
	Enemy      color.RGBA
	Weapon     color.RGBA
	Projectile color.RGBA
	Banana     color.RGBA
	AimLine    color.RGBA
	// TierShade darkens pieces by damage tier, indexed by component.Tier.
	TierShade []float64
}

// Shade scales the brightness of a colour by f.
func Shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// Flash blends a colour towards white; t=1 is pure white.
func Flash(c color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(utils.Lerp(float64(c.R), 255, t)),
		G: uint8(utils.Lerp(float64(c.G), 255, t)),
		B: uint8(utils.Lerp(float64(c.B), 255, t)),
		A: c.A,
	}
}
