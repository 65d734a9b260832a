package defs

import (
	"fmt"
	"math"

	"go-artillery/internal/component"
)

// WeaponDefinition holds all the static data for a weapon skin.
type WeaponDefinition struct {
	Skin         string
	Type         string
	Sprite       string
	Width        float64
	Height       float64
	BarrelHeight float64
	Density      float64
	Restitution  float64
	Friction     float64
	Power        float64
	AxisOffset   component.Position
	LaunchOffset component.Position
	// Weapons soak damage but are never knocked out.
	DestroyThreshold  float64
	MinImpactVelocity float64
}

var weaponSkins = map[string]map[string]WeaponDefinition{
	"cannon": {
		"grey": {
			Skin: "cannon", Type: "grey", Sprite: "cannon",
			Width: 92, Height: 60, BarrelHeight: 41,
			Density: 2.0, Restitution: 0.1, Friction: 1.0,
			Power:             200,
			AxisOffset:        component.Position{X: 30, Y: 0},
			LaunchOffset:      component.Position{X: 92, Y: 24},
			DestroyThreshold:  math.Inf(1),
			MinImpactVelocity: 0,
		},
	},
}

// LookupWeapon returns the definition of a weapon skin/type pair.
func LookupWeapon(skin, typ string) (WeaponDefinition, error) {
	if byType, ok := weaponSkins[skin]; ok {
		if def, ok := byType[typ]; ok {
			return def, nil
		}
	}
	return WeaponDefinition{}, fmt.Errorf("%w: %s/%s", ErrUnknownSkin, skin, typ)
}
