// internal/component/projectile.go
package component

// Ammo selects a projectile from the ammunition table.
type Ammo struct {
	Type    string // "rock", "banana"
	Details string // "small", "single"
}

func (a Ammo) String() string {
	return a.Type + "/" + a.Details
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	Ammo Ammo
	Mass float64 // read back from the engine after creation
}
