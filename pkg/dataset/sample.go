package dataset

import (
	"image/color"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// Sample is one loaded data point with an optional label.
type Sample struct {
	Point geometry.Point
	Label string
}

// Bounds returns the bounding box over a set of samples.
func Bounds(samples []Sample) geometry.Box {
	box := geometry.NewBox()
	for _, s := range samples {
		box.Extend(s.Point)
	}
	return box
}

// SampleView adapts a sample slice for the viewer, coloring each point
// by its height: low z renders cold (blue), high z warm (red). The z
// range is captured once at construction; build a new view after
// replacing the dataset.
type SampleView struct {
	minZ, maxZ float64
}

// NewSampleView creates a view for the given samples.
func NewSampleView(samples []Sample) SampleView {
	box := Bounds(samples)
	return SampleView{minZ: box.Min.Z, maxZ: box.Max.Z}
}

func (v SampleView) Point(items []Sample, index int) geometry.Point {
	return items[index].Point
}

func (v SampleView) Color(items []Sample, index int) color.Color {
	t := 0.5
	if v.maxZ-v.minZ > 1e-9 {
		t = (items[index].Point.Z - v.minZ) / (v.maxZ - v.minZ)
	}
	return color.RGBA{
		R: uint8(60 + 195*t),
		G: 90,
		B: uint8(255 - 195*t),
		A: 255,
	}
}

func (v SampleView) Label(items []Sample, index int) string {
	return items[index].Label
}

func (v SampleView) Min(items []Sample) geometry.Point {
	return Bounds(items).Min
}

func (v SampleView) Max(items []Sample) geometry.Point {
	return Bounds(items).Max
}
