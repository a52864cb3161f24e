package plot

import (
	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// dragRotateStep converts one pixel of mouse drag into radians.
const dragRotateStep = 0.01

// Plot projects a dataset of 3D-positioned items onto a 2D surface.
// It owns the camera, the dataset extrema and the per-frame point
// buffer. A Plot is not safe for concurrent use; all calls are
// expected on the host toolkit's event thread.
type Plot[T any] struct {
	items  []T
	view   ItemView[T]
	bounds geometry.Box
	mids   geometry.Point

	width  int
	height int

	Camera Camera

	points []ProjectedPoint // reused across frames
}

// NewPlot creates an empty plot with the default camera.
func NewPlot[T any]() *Plot[T] {
	return &Plot[T]{Camera: NewCamera()}
}

// SetDataset replaces the dataset and its adapter.
func (p *Plot[T]) SetDataset(items []T, view ItemView[T]) {
	p.items = items
	p.view = view
	p.DatasetChanged()
}

// DatasetChanged recomputes the extrema, the projection midpoint and
// the base scale. Call it after mutating the dataset in place.
func (p *Plot[T]) DatasetChanged() {
	if len(p.items) == 0 || p.view == nil {
		p.bounds = geometry.Box{}
	} else {
		p.bounds = geometry.Box{
			Min: p.view.Min(p.items),
			Max: p.view.Max(p.items),
		}
	}
	p.mids = p.bounds.Center()
	p.Camera.FitToView(p.bounds, p.width, p.height, len(p.items))
}

// Resize tells the plot its viewport size and refits the base scale.
func (p *Plot[T]) Resize(width, height int) {
	p.width = width
	p.height = height
	p.Camera.FitToView(p.bounds, p.width, p.height, len(p.items))
}

// Drag applies a mouse drag of the given pixel deltas as rotation.
func (p *Plot[T]) Drag(dx, dy float64) {
	p.Camera.Rotate(dx*dragRotateStep, dy*dragRotateStep)
}

// Scroll applies the given number of wheel notches as zoom.
func (p *Plot[T]) Scroll(notches float64) {
	p.Camera.Zoom(notches)
}

// TogglePerspective switches between perspective and orthographic
// projection.
func (p *Plot[T]) TogglePerspective() {
	p.Camera.Perspective = !p.Camera.Perspective
}

// PerspectiveEnabled reports whether perspective projection is active.
func (p *Plot[T]) PerspectiveEnabled() bool {
	return p.Camera.Perspective
}

// Bounds returns the current dataset extrema.
func (p *Plot[T]) Bounds() geometry.Box {
	return p.bounds
}

// Len returns the number of items in the dataset.
func (p *Plot[T]) Len() int {
	return len(p.items)
}

// project maps an absolute dataset coordinate onto the viewport. All
// projection happens relative to the dataset midpoint, so the data is
// centered regardless of its absolute coordinate magnitude.
func (p *Plot[T]) project(pt geometry.Point) (ScreenPoint, bool) {
	rel := pt.Sub(p.mids)
	return p.Camera.Project(rel.X, rel.Y, rel.Z, p.width, p.height)
}
