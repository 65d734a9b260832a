// internal/defs/types.go
package defs

import "errors"

var (
	ErrUnknownAmmo   = errors.New("unknown ammunition")
	ErrUnknownPiece  = errors.New("unknown fort piece")
	ErrUnknownEnemy  = errors.New("unknown enemy")
	ErrUnknownSkin   = errors.New("unknown weapon skin")
	ErrInvalidLayout = errors.New("invalid fort layout")
)

// Material holds the physical and durability properties shared by all
// pieces made of it.
type Material struct {
	Density           float64 `json:"density"`
	Restitution       float64 `json:"restitution"`
	Friction          float64 `json:"friction"`
	DestroyThreshold  float64 `json:"destroy_threshold"`
	MinImpactVelocity float64 `json:"min_impact_velocity"`
}

// Materials is keyed by material name.
var Materials = map[string]Material{
	"wood": {Density: 1.0, Restitution: 0.2, Friction: 0.9, DestroyThreshold: 30, MinImpactVelocity: 2},
	"rock": {Density: 2.0, Restitution: 0.1, Friction: 1.0, DestroyThreshold: 60, MinImpactVelocity: 3},
}
