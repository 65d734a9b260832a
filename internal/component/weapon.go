package component

// Facing is the direction a weapon fires.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Weapon — пушка крепости. Angle is signed radians: [-π/2, 0] when facing
// right, [0, π/2] when facing left.
type Weapon struct {
	Skin         string
	Angle        float64
	Facing       Facing
	Power        float64
	Ammo         Ammo
	AmmoIndex    int
	Origin       Position // body centre to the sprite's top-left corner, pixels
	AxisOffset   Position // body origin to pivot, pixels
	LaunchOffset Position // sprite origin to muzzle, pixels
	BarrelHeight float64
}
