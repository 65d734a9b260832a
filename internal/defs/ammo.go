package defs

import (
	"fmt"

	"go-artillery/internal/component"
)

// AmmoDefinition describes one projectile kind: its sprite box in pixels
// and its body in meters.
type AmmoDefinition struct {
	Sprite      string
	Width       float64
	Height      float64
	Radius      float64
	Density     float64
	Restitution float64
	Friction    float64
}

var ammunition = map[string]map[string]AmmoDefinition{
	"rock": {
		"small": {Sprite: "rock", Width: 40, Height: 40, Radius: 1, Density: 2.0, Restitution: 0.1, Friction: 1.25},
	},
	"banana": {
		"single": {Sprite: "banana", Width: 34, Height: 27, Radius: 0.75, Density: 1.5, Restitution: 0, Friction: 1.0},
	},
}

// AmmoCycle is the order ChangeWeapon walks through. It wraps.
var AmmoCycle = []component.Ammo{
	{Type: "rock", Details: "small"},
	{Type: "banana", Details: "single"},
}

// LookupAmmo returns the definition for a, or ErrUnknownAmmo.
func LookupAmmo(a component.Ammo) (AmmoDefinition, error) {
	if byDetails, ok := ammunition[a.Type]; ok {
		if def, ok := byDetails[a.Details]; ok {
			return def, nil
		}
	}
	return AmmoDefinition{}, fmt.Errorf("%w: %s", ErrUnknownAmmo, a)
}

// AmmoIndex returns the position of a in AmmoCycle, or -1.
func AmmoIndex(a component.Ammo) int {
	for i, c := range AmmoCycle {
		if c == a {
			return i
		}
	}
	return -1
}
