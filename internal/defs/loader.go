// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// PiecePlacement is one piece as the fort editor exports it. X is measured
// from the outer edge of the fort, Y from the top of the level, in pixels.
type PiecePlacement struct {
	Shape    string  `json:"shape"`
	Size     string  `json:"size"`
	Material string  `json:"material"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Angle    float64 `json:"angle"`
}

// EnemyPlacement is one defender as the fort editor exports it.
type EnemyPlacement struct {
	Species string  `json:"species"`
	Size    string  `json:"size"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// FortLayout is the editor's export format.
type FortLayout struct {
	Pieces  []PiecePlacement `json:"pieces"`
	Enemies []EnemyPlacement `json:"enemies"`
}

// LoadFortLayout reads a fort exported by the editor and validates it
// against the catalogues and the fort width.
func LoadFortLayout(path string, fortWidth float64) (FortLayout, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return FortLayout{}, fmt.Errorf("failed to read fort file: %w", err)
	}

	var layout FortLayout
	if err := json.Unmarshal(file, &layout); err != nil {
		return FortLayout{}, fmt.Errorf("failed to unmarshal fort: %w", err)
	}
	if err := layout.Validate(fortWidth); err != nil {
		return FortLayout{}, fmt.Errorf("fort %s: %w", path, err)
	}
	return layout, nil
}

// Validate applies the editor's rules: at least one enemy, every piece
// known and inside the fort.
func (l FortLayout) Validate(fortWidth float64) error {
	if len(l.Enemies) < 1 {
		return fmt.Errorf("%w: at least one monkey is required", ErrInvalidLayout)
	}
	for i, p := range l.Pieces {
		if _, _, err := LookupPiece(p.Shape, p.Size, p.Material); err != nil {
			return fmt.Errorf("piece %d: %w", i, err)
		}
		if p.X < 0 || p.X > fortWidth {
			return fmt.Errorf("%w: piece %d at x=%v outside the fort", ErrInvalidLayout, i, p.X)
		}
	}
	for i, e := range l.Enemies {
		if _, err := LookupEnemy(e.Species, e.Size); err != nil {
			return fmt.Errorf("enemy %d: %w", i, err)
		}
		if e.X < 0 || e.X > fortWidth {
			return fmt.Errorf("%w: enemy %d at x=%v outside the fort", ErrInvalidLayout, i, e.X)
		}
	}
	return nil
}

// DefaultFort is the layout used when no fort file is given. groundY is
// the top of the ground in pixels.
func DefaultFort(groundY float64) FortLayout {
	return FortLayout{
		Pieces: []PiecePlacement{
			{Shape: "box", Size: "short", Material: "wood", X: 60, Y: groundY - 25},
			{Shape: "box", Size: "long", Material: "wood", X: 150, Y: groundY - 50},
			{Shape: "box", Size: "long", Material: "wood", X: 250, Y: groundY - 50},
			{Shape: "box", Size: "wide", Material: "wood", X: 200, Y: groundY - 110},
			{Shape: "triangle", Size: "small", Material: "wood", X: 200, Y: groundY - 140},
			{Shape: "box", Size: "square", Material: "rock", X: 330, Y: groundY - 20},
		},
		Enemies: []EnemyPlacement{
			{Species: "monkey", Size: "medium", X: 200, Y: groundY - 26.5},
			{Species: "monkey", Size: "small", X: 330, Y: groundY - 57.5},
		},
	}
}
