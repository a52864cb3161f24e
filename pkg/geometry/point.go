package geometry

import "math"

// Point represents a point in 3D space
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new 3D point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
		Z: p.Z + other.Z,
	}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
		Z: p.Z - other.Z,
	}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{
		X: p.X * scalar,
		Y: p.Y * scalar,
		Z: p.Z * scalar,
	}
}

// Length returns the magnitude of the point treated as a vector
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{
		X: math.Min(p.X, other.X),
		Y: math.Min(p.Y, other.Y),
		Z: math.Min(p.Z, other.Z),
	}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{
		X: math.Max(p.X, other.X),
		Y: math.Max(p.Y, other.Y),
		Z: math.Max(p.Z, other.Z),
	}
}
