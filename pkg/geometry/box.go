package geometry

import "math"

// Box represents an axis-aligned bounding box
type Box struct {
	Min Point
	Max Point
}

// NewBox creates an empty bounding box ready to be extended
func NewBox() Box {
	return Box{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *Box) Extend(point Point) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b Box) Size() Point {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b Box) Center() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// MaxRange returns the largest per-axis extent of the box
func (b Box) MaxRange() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}

// Diagonal returns the length of the bounding box diagonal
func (b Box) Diagonal() float64 {
	return b.Size().Length()
}

// Degenerate reports whether the box has no volume at all,
// including the single-point and empty cases
func (b Box) Degenerate() bool {
	return b.Min == b.Max
}

// Corners returns the 8 corners of the bounding box
func (b Box) Corners() [8]Point {
	return [8]Point{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}
