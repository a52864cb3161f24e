package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

var axisColor = color.RGBA{R: 192, G: 192, B: 192, A: 255}

var axisNames = [3]string{"X", "Y", "Z"}

// Screen offsets for the axis name beside each axis midpoint.
var axisNameOffsets = [3]struct{ dx, dy int }{
	{-4, -8},
	{8, 4},
	{-4, -8},
}

func component(p geometry.Point, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func setComponent(p *geometry.Point, axis int, v float64) {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
}

// drawAxes draws the three axis lines anchored on the bounding-box
// corner farthest from the viewer, so they extend toward the data
// instead of covering it. Farthest means smallest post-rotation depth
// under this engine's sign convention.
func (p *Plot[T]) drawAxes(s Surface) {
	if p.bounds.Degenerate() {
		return
	}

	var far geometry.Point
	minDepth := math.Inf(1)
	found := false
	for _, corner := range p.bounds.Corners() {
		if sp, ok := p.project(corner); ok && sp.Depth < minDepth {
			minDepth = sp.Depth
			far = corner
			found = true
		}
	}
	if !found {
		// All corners rejected by the perspective cutoff.
		return
	}

	origin, ok := p.project(far)
	if !ok {
		return
	}

	s.SetStroke(axisColor, 1.5)
	s.SetFont(12, false)

	s.Text(fmt.Sprintf("(%s, %s, %s)",
		formatCoord(far.X), formatCoord(far.Y), formatCoord(far.Z)),
		origin.X-20, origin.Y+15)

	for axis := 0; axis < 3; axis++ {
		// The adjacent corner flips this axis between min and max.
		adjacent := far
		if component(far, axis) == component(p.bounds.Min, axis) {
			setComponent(&adjacent, axis, component(p.bounds.Max, axis))
		} else {
			setComponent(&adjacent, axis, component(p.bounds.Min, axis))
		}
		midpoint := far
		setComponent(&midpoint, axis,
			(component(far, axis)+component(adjacent, axis))/2)

		end, ok := p.project(adjacent)
		if !ok {
			continue
		}

		s.Line(origin.X, origin.Y, end.X, end.Y)
		s.Text(formatCoord(component(adjacent, axis)), end.X-8, end.Y+15)

		if mid, ok := p.project(midpoint); ok {
			off := axisNameOffsets[axis]
			s.Text(axisNames[axis], mid.X+off.dx, mid.Y+off.dy)
		}
	}
}
