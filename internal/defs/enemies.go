// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID                string  `json:"id"`
	Species           string  `json:"species"`
	Size              string  `json:"size"`
	Sprite            string  `json:"sprite"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	Density           float64 `json:"density"`
	Restitution       float64 `json:"restitution"`
	Friction          float64 `json:"friction"`
	DestroyThreshold  float64 `json:"destroy_threshold"`
	MinImpactVelocity float64 `json:"min_impact_velocity"`
}

// EnemyDefs is the library of all enemy definitions, mapped by their ID.
var EnemyDefs = map[string]EnemyDefinition{
	"monkey/small":  {ID: "monkey/small", Species: "monkey", Size: "small", Sprite: "monkey", Width: 27, Height: 35, Density: 0.8, Restitution: 0.2, Friction: 0.9, DestroyThreshold: 10, MinImpactVelocity: 1},
	"monkey/medium": {ID: "monkey/medium", Species: "monkey", Size: "medium", Sprite: "monkey", Width: 40, Height: 53, Density: 0.8, Restitution: 0.2, Friction: 0.9, DestroyThreshold: 20, MinImpactVelocity: 1},
	"monkey/large":  {ID: "monkey/large", Species: "monkey", Size: "large", Sprite: "monkey", Width: 53, Height: 70, Density: 0.8, Restitution: 0.2, Friction: 0.9, DestroyThreshold: 30, MinImpactVelocity: 1.5},
}

// LookupEnemy returns the definition of species/size.
func LookupEnemy(species, size string) (EnemyDefinition, error) {
	def, ok := EnemyDefs[species+"/"+size]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %s/%s", ErrUnknownEnemy, species, size)
	}
	return def, nil
}
