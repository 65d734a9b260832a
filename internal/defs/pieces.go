package defs

import (
	"fmt"

	"go-artillery/internal/component"
)

// PieceDefinition is a fort piece shape in pixels. Triangles use Points
// relative to the piece centre.
type PieceDefinition struct {
	Shape  string
	Size   string
	Width  float64
	Height float64
	Points []component.Position
}

var pieceShapes = map[string]map[string]PieceDefinition{
	"box": {
		"long":   {Shape: "box", Size: "long", Width: 20, Height: 100},
		"short":  {Shape: "box", Size: "short", Width: 20, Height: 50},
		"wide":   {Shape: "box", Size: "wide", Width: 120, Height: 20},
		"square": {Shape: "box", Size: "square", Width: 40, Height: 40},
	},
	"triangle": {
		"small": {Shape: "triangle", Size: "small", Width: 40, Height: 40, Points: []component.Position{
			{X: -20, Y: 20}, {X: 20, Y: 20}, {X: 0, Y: -20},
		}},
	},
}

// LookupPiece returns the shape definition and material of a piece.
func LookupPiece(shape, size, material string) (PieceDefinition, Material, error) {
	mat, ok := Materials[material]
	if !ok {
		return PieceDefinition{}, Material{}, fmt.Errorf("%w: material %q", ErrUnknownPiece, material)
	}
	if bySize, ok := pieceShapes[shape]; ok {
		if def, ok := bySize[size]; ok {
			return def, mat, nil
		}
	}
	return PieceDefinition{}, Material{}, fmt.Errorf("%w: %s/%s", ErrUnknownPiece, shape, size)
}

// PieceSprites builds the tiered sprite keys of a piece.
func PieceSprites(def PieceDefinition, material string) component.SpriteSet {
	base := material + "_" + def.Shape + "_" + def.Size
	return component.SpriteSet{
		Normal:    base,
		Damaged:   base + "_damaged",
		Destroyed: base + "_destroyed",
	}
}
