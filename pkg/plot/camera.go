package plot

import (
	"math"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// viewerDistance is the fixed distance between the viewer and the
// projection plane used for perspective projection.
const viewerDistance = 30.0

// Camera holds the rotation, scaling and projection state of a view.
//
// BaseScale is the auto-fit factor computed from the dataset extent and
// the viewport size. UserZoom is a multiplicative factor on top of it,
// controlled by the mouse wheel. The effective scale is the product of
// the two, so auto-fit and user zoom stay independent.
type Camera struct {
	RotationX float64 // rotation around the X axis in radians
	RotationY float64 // rotation around the Y axis in radians

	BaseScale   float64
	UserZoom    float64
	Perspective bool
}

// ScreenPoint is the result of projecting a 3D point onto the viewport.
type ScreenPoint struct {
	X, Y   int
	Depth  float64 // rotated z, used for painter's-algorithm sorting
	Factor float64 // perspective magnification, 1.0 when orthographic
}

// NewCamera creates a camera with the default viewing angle.
func NewCamera() Camera {
	return Camera{
		RotationX: math.Pi / 6,
		RotationY: math.Pi / 4,
		BaseScale: 1.0,
		UserZoom:  1.0,
	}
}

// EffectiveScale returns the combined auto-fit and user zoom factor.
func (c *Camera) EffectiveScale() float64 {
	return c.BaseScale * c.UserZoom
}

// Rotate adds the given radian deltas to the rotation angles. dx spins
// the view around the Y axis, dy around the X axis. Angles are
// unbounded; they wrap implicitly through the trig functions.
func (c *Camera) Rotate(dx, dy float64) {
	c.RotationY += dx
	c.RotationX += dy
}

// Zoom applies the given number of wheel notches to the user zoom.
// Positive notches zoom out, negative notches zoom in. The zoom never
// drops below 0.1 so it cannot reach zero or go negative.
func (c *Camera) Zoom(notches float64) {
	c.UserZoom *= 1.0 - notches*0.1
	c.UserZoom = math.Max(0.1, c.UserZoom)
}

// FitToView recomputes the base scale so that a dataset with the given
// bounds fills about 80% of the smaller viewport dimension. A zero-area
// viewport or an empty dataset keeps the neutral scale 1.0, and a
// dataset with no volume gets a fixed scale so a single point is still
// visible.
func (c *Camera) FitToView(bounds geometry.Box, width, height, items int) {
	if width == 0 || height == 0 || items == 0 {
		c.BaseScale = 1.0
		return
	}

	maxRange := bounds.MaxRange()
	if maxRange < 1e-9 {
		c.BaseScale = 50.0
		return
	}

	target := float64(min(width, height)) * 0.80
	c.BaseScale = target / maxRange
}

// Project rotates and projects a 3D point, already expressed relative
// to the dataset midpoint, onto the viewport. It returns false when
// perspective is active and the point falls behind the viewer; such
// points are simply left out of the frame.
func (c *Camera) Project(x, y, z float64, width, height int) (ScreenPoint, bool) {
	centerX := width / 2
	centerY := height / 2

	cosX := math.Cos(c.RotationX)
	sinX := math.Sin(c.RotationX)
	cosY := math.Cos(c.RotationY)
	sinY := math.Sin(c.RotationY)

	// Rotate around X, then around Y.
	y1 := y*cosX - z*sinX
	z1 := y*sinX + z*cosX
	x2 := x*cosY + z1*sinY
	z2 := z1*cosY - x*sinY

	factor := 1.0
	if c.Perspective {
		if viewerDistance-z2 <= 0.1 {
			return ScreenPoint{}, false
		}
		factor = viewerDistance / (viewerDistance - z2)
	}

	scale := c.EffectiveScale() * factor
	return ScreenPoint{
		X:      int(float64(centerX) + x2*scale),
		Y:      int(float64(centerY) - y1*scale), // screen Y grows downward
		Depth:  z2,
		Factor: factor,
	}, true
}
