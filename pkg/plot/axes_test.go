package plot

import (
	"testing"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

func TestAxesSkippedForDegenerateBounds(t *testing.T) {
	p := NewPlot[geometry.Point]()
	p.Resize(800, 600)
	p.SetDataset([]geometry.Point{geometry.NewPoint(1, 1, 1)}, PointView{})

	surface := &recordSurface{}
	p.drawAxes(surface)

	if surface.lines != 0 || len(surface.texts) != 0 {
		t.Errorf("drawAxes failed: degenerate bounds drew %d lines, %d texts",
			surface.lines, len(surface.texts))
	}
}

func TestAxesFarCorner(t *testing.T) {
	p := NewPlot[geometry.Point]()
	p.Resize(800, 600)
	p.SetDataset(testPoints(), PointView{})
	// With no rotation the depth of a corner is its centered z, so the
	// far corner is one of the z=min corners; ties keep the first,
	// which is (0, 0, 0).
	p.Camera.RotationX = 0
	p.Camera.RotationY = 0

	surface := &recordSurface{}
	p.drawAxes(surface)

	if surface.lines != 3 {
		t.Fatalf("drawAxes failed: expected 3 axis lines, got %d", surface.lines)
	}

	found := false
	for _, s := range surface.texts {
		if s == "(0.0, 0.0, 0.0)" {
			found = true
		}
	}
	if !found {
		t.Errorf("drawAxes failed: far corner label missing, got %v", surface.texts)
	}
}

func TestAxesLabels(t *testing.T) {
	p := NewPlot[geometry.Point]()
	p.Resize(800, 600)
	p.SetDataset(testPoints(), PointView{})

	surface := &recordSurface{}
	p.drawAxes(surface)

	for _, name := range axisNames {
		found := false
		for _, s := range surface.texts {
			if s == name {
				found = true
			}
		}
		if !found {
			t.Errorf("drawAxes failed: axis name %q not drawn", name)
		}
	}
}

func TestAxesPerspectiveExcludesNearCorners(t *testing.T) {
	// After centering, the corners sit at z = ±100. The near face is
	// behind the viewer plane and must be excluded from far-corner
	// candidacy, while the far face still anchors the axes.
	wide := []geometry.Point{
		geometry.NewPoint(0, 0, 0),
		geometry.NewPoint(1, 1, 200),
	}

	p := NewPlot[geometry.Point]()
	p.Resize(800, 600)
	p.SetDataset(wide, PointView{})
	p.Camera = Camera{BaseScale: 1, UserZoom: 1, Perspective: true}

	surface := &recordSurface{}
	p.drawAxes(surface)

	found := false
	for _, s := range surface.texts {
		if s == "(0.0, 0.0, 0.0)" {
			found = true
		}
	}
	if !found {
		t.Errorf("drawAxes failed: expected far corner (0,0,0), got %v", surface.texts)
	}
}

func TestFormatCoord(t *testing.T) {
	cases := map[float64]string{
		0:       "0.0",
		10:      "10.0",
		-2.5625: "-2.6",
		1234.5:  "1,234.5",
		1000000: "1,000,000.0",
	}

	for v, expected := range cases {
		if got := formatCoord(v); got != expected {
			t.Errorf("formatCoord failed: expected %q, got %q", expected, got)
		}
	}
}
