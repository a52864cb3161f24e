package plot

import (
	"image/color"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// ItemView adapts a slice of arbitrary items for rendering. The viewer
// only ever sees coordinates, colors, labels and extrema; it never
// inspects the items themselves.
//
// Min and Max must return consistent per-axis extrema over the whole
// slice. The viewer trusts them without validation.
type ItemView[T any] interface {
	// Point returns the 3D coordinates of the item at index.
	Point(items []T, index int) geometry.Point

	// Color returns the fill color for the item at index.
	Color(items []T, index int) color.Color

	// Label returns an optional label for the item at index.
	// An empty string means no label is drawn.
	Label(items []T, index int) string

	// Min returns the component-wise minimum over all items.
	Min(items []T) geometry.Point

	// Max returns the component-wise maximum over all items.
	Max(items []T) geometry.Point
}

// PointView is a minimal ItemView over plain points. All points share
// one fill color and carry no labels.
type PointView struct {
	Fill color.Color
}

func (v PointView) Point(items []geometry.Point, index int) geometry.Point {
	return items[index]
}

func (v PointView) Color(items []geometry.Point, index int) color.Color {
	if v.Fill == nil {
		return color.RGBA{R: 0, G: 180, B: 255, A: 255}
	}
	return v.Fill
}

func (v PointView) Label(items []geometry.Point, index int) string {
	return ""
}

func (v PointView) Min(items []geometry.Point) geometry.Point {
	box := geometry.NewBox()
	for _, p := range items {
		box.Extend(p)
	}
	return box.Min
}

func (v PointView) Max(items []geometry.Point) geometry.Point {
	box := geometry.NewBox()
	for _, p := range items {
		box.Extend(p)
	}
	return box.Max
}
