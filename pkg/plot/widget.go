package plot

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var widgetBackground = color.RGBA{R: 64, G: 64, B: 64, A: 255}

// Viewer is a fyne widget that renders a Plot and feeds mouse input
// back into it: dragging rotates, the wheel zooms. All state lives on
// the fyne event thread; there is no concurrent writer.
type Viewer[T any] struct {
	widget.BaseWidget
	plot      *Plot[T]
	dragStart *fyne.Position
}

// NewViewer creates an empty viewer. Use SetDataset to give it data.
func NewViewer[T any]() *Viewer[T] {
	v := &Viewer[T]{plot: NewPlot[T]()}
	v.ExtendBaseWidget(v)
	return v
}

// SetDataset replaces the dataset and its adapter and redraws.
func (v *Viewer[T]) SetDataset(items []T, view ItemView[T]) {
	v.plot.SetDataset(items, view)
	v.Refresh()
}

// DatasetChanged recomputes extrema and scale after an in-place
// dataset mutation and redraws.
func (v *Viewer[T]) DatasetChanged() {
	v.plot.DatasetChanged()
	v.Refresh()
}

// TogglePerspective switches the projection mode and redraws.
func (v *Viewer[T]) TogglePerspective() {
	v.plot.TogglePerspective()
	v.Refresh()
}

// PerspectiveEnabled reports whether perspective projection is active.
func (v *Viewer[T]) PerspectiveEnabled() bool {
	return v.plot.PerspectiveEnabled()
}

// Plot exposes the underlying plot, mainly for camera presets.
func (v *Viewer[T]) Plot() *Plot[T] {
	return v.plot
}

// Dragged rotates the view by the drag delta since the last event.
func (v *Viewer[T]) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		dx := float64(event.Position.X - v.dragStart.X)
		dy := float64(event.Position.Y - v.dragStart.Y)
		v.plot.Drag(dx, dy)
		v.Refresh()
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd ends the current rotation gesture.
func (v *Viewer[T]) DragEnd() {
	v.dragStart = nil
}

// Scrolled zooms one notch per scroll event.
func (v *Viewer[T]) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY == 0 {
		return
	}
	notches := 1.0
	if event.Scrolled.DY > 0 {
		notches = -1.0 // scrolling up zooms in
	}
	v.plot.Scroll(notches)
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget.
func (v *Viewer[T]) CreateRenderer() fyne.WidgetRenderer {
	return &viewerRenderer[T]{
		viewer:  v,
		objects: []fyne.CanvasObject{},
	}
}

// viewerRenderer implements fyne.WidgetRenderer by replaying a frame
// into fyne canvas primitives.
type viewerRenderer[T any] struct {
	viewer  *Viewer[T]
	objects []fyne.CanvasObject
}

func (r *viewerRenderer[T]) Layout(size fyne.Size) {
	r.viewer.plot.Resize(int(size.Width), int(size.Height))
	r.Refresh()
}

func (r *viewerRenderer[T]) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *viewerRenderer[T]) Refresh() {
	size := r.viewer.Size()

	background := canvas.NewRectangle(widgetBackground)
	background.Resize(size)

	surface := &canvasSurface{}
	r.viewer.plot.Render(surface)

	r.objects = append([]fyne.CanvasObject{background}, surface.objects...)
	canvas.Refresh(r.viewer)
}

func (r *viewerRenderer[T]) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *viewerRenderer[T]) Destroy() {}

// canvasSurface is a Surface that emits fyne canvas objects instead of
// touching pixels. Antialiasing comes from the fyne driver.
type canvasSurface struct {
	objects     []fyne.CanvasObject
	stroke      color.Color
	strokeWidth float32
	fontSize    float32
	bold        bool
}

func (s *canvasSurface) SetStroke(c color.Color, width float32) {
	s.stroke = c
	s.strokeWidth = width
}

func (s *canvasSurface) SetFont(size float32, bold bool) {
	s.fontSize = size
	s.bold = bold
}

func (s *canvasSurface) Line(x1, y1, x2, y2 int) {
	line := canvas.NewLine(s.stroke)
	line.StrokeWidth = s.strokeWidth
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) FillCircle(cx, cy, diameter int) {
	circle := canvas.NewCircle(s.stroke)
	d := float32(diameter)
	circle.Resize(fyne.NewSize(d, d))
	circle.Move(fyne.NewPos(float32(cx)-d/2, float32(cy)-d/2))
	s.objects = append(s.objects, circle)
}

func (s *canvasSurface) Text(str string, x, y int) {
	text := canvas.NewText(str, s.stroke)
	text.TextSize = s.fontSize
	text.TextStyle = fyne.TextStyle{Bold: s.bold}
	// Surface text is baseline-anchored, canvas.Text is top-anchored.
	text.Move(fyne.NewPos(float32(x), float32(y)-s.fontSize))
	s.objects = append(s.objects, text)
}
