package plot

import (
	"math"
	"testing"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

func TestProjectOrthographic(t *testing.T) {
	cam := Camera{BaseScale: 1, UserZoom: 1}

	sp, ok := cam.Project(5, 3, 0, 200, 200)
	if !ok {
		t.Fatalf("Project failed: point rejected in orthographic mode")
	}

	if sp.X != 105 || sp.Y != 97 {
		t.Errorf("Project failed: expected (105, 97), got (%d, %d)", sp.X, sp.Y)
	}
	if sp.Factor != 1.0 {
		t.Errorf("Project failed: expected factor 1.0, got %v", sp.Factor)
	}
	if math.Abs(sp.Depth) > 1e-10 {
		t.Errorf("Project failed: expected depth 0, got %v", sp.Depth)
	}
}

func TestProjectPerspectiveFactor(t *testing.T) {
	cam := Camera{BaseScale: 1, UserZoom: 1, Perspective: true}

	// With no rotation the rotated z equals the input z.
	sp, ok := cam.Project(0, 0, 15, 200, 200)
	if !ok {
		t.Fatalf("Project failed: point at z=15 rejected")
	}

	expected := viewerDistance / (viewerDistance - 15)
	if math.Abs(sp.Factor-expected) > 1e-10 {
		t.Errorf("Project failed: expected factor %v, got %v", expected, sp.Factor)
	}
}

func TestProjectRejectsPointBehindViewer(t *testing.T) {
	cam := Camera{BaseScale: 1, UserZoom: 1, Perspective: true}

	for _, z := range []float64{viewerDistance - 0.1, viewerDistance, 100} {
		if _, ok := cam.Project(0, 0, z, 200, 200); ok {
			t.Errorf("Project failed: point at z=%v not rejected", z)
		}
	}

	// Without perspective the same point projects fine.
	cam.Perspective = false
	if _, ok := cam.Project(0, 0, 100, 200, 200); !ok {
		t.Errorf("Project failed: orthographic point rejected")
	}
}

func TestProjectRotation(t *testing.T) {
	cam := Camera{BaseScale: 1, UserZoom: 1, RotationY: math.Pi / 2}

	// A quarter turn around Y maps +z onto +x.
	sp, ok := cam.Project(0, 0, 10, 200, 200)
	if !ok {
		t.Fatalf("Project failed: rotated point rejected")
	}
	if sp.X != 110 || sp.Y != 100 {
		t.Errorf("Project failed: expected (110, 100), got (%d, %d)", sp.X, sp.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := NewCamera()

	// Zooming out hard must stop at the lower bound.
	for i := 0; i < 50; i++ {
		cam.Zoom(5)
	}
	if cam.UserZoom < 0.1 {
		t.Errorf("Zoom failed: user zoom %v dropped below 0.1", cam.UserZoom)
	}

	cam.UserZoom = 1.0
	cam.Zoom(-1)
	if math.Abs(cam.UserZoom-1.1) > 1e-10 {
		t.Errorf("Zoom failed: expected 1.1 after one notch in, got %v", cam.UserZoom)
	}
}

func TestRotateAccumulates(t *testing.T) {
	cam := Camera{}
	cam.Rotate(0.5, -0.25)
	cam.Rotate(0.5, -0.25)

	if math.Abs(cam.RotationY-1.0) > 1e-10 {
		t.Errorf("Rotate failed: expected RotationY 1.0, got %v", cam.RotationY)
	}
	if math.Abs(cam.RotationX+0.5) > 1e-10 {
		t.Errorf("Rotate failed: expected RotationX -0.5, got %v", cam.RotationX)
	}
}

func TestFitToViewZeroViewport(t *testing.T) {
	cam := NewCamera()
	bounds := geometry.Box{Max: geometry.NewPoint(10, 10, 10)}

	cam.FitToView(bounds, 0, 600, 100)
	if cam.BaseScale != 1.0 {
		t.Errorf("FitToView failed: expected 1.0 for zero width, got %v", cam.BaseScale)
	}

	cam.FitToView(bounds, 800, 0, 100)
	if cam.BaseScale != 1.0 {
		t.Errorf("FitToView failed: expected 1.0 for zero height, got %v", cam.BaseScale)
	}

	cam.FitToView(bounds, 800, 600, 0)
	if cam.BaseScale != 1.0 {
		t.Errorf("FitToView failed: expected 1.0 for empty dataset, got %v", cam.BaseScale)
	}
}

func TestFitToViewDegenerateData(t *testing.T) {
	cam := NewCamera()
	p := geometry.NewPoint(3, 3, 3)
	bounds := geometry.Box{Min: p, Max: p}

	cam.FitToView(bounds, 800, 600, 1)
	if cam.BaseScale != 50.0 {
		t.Errorf("FitToView failed: expected fallback 50.0, got %v", cam.BaseScale)
	}
}

func TestFitToView(t *testing.T) {
	cam := NewCamera()
	bounds := geometry.Box{Max: geometry.NewPoint(10, 0, 0)}

	cam.FitToView(bounds, 800, 600, 2)

	// 0.8 * min(800, 600) / 10
	expected := 48.0
	if math.Abs(cam.BaseScale-expected) > 1e-10 {
		t.Errorf("FitToView failed: expected %v, got %v", expected, cam.BaseScale)
	}
}
