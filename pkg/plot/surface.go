package plot

import "image/color"

// Surface is the drawing target the viewer renders onto. It is the
// only way the viewer touches pixels; the host owns the surface's
// lifecycle. The stroke color also colors text and filled circles.
type Surface interface {
	// SetStroke sets the color and line width for subsequent drawing.
	SetStroke(c color.Color, width float32)

	// SetFont sets the size and weight for subsequent text.
	SetFont(size float32, bold bool)

	// Line draws a line between two screen points.
	Line(x1, y1, x2, y2 int)

	// FillCircle draws a filled circle centered on the given screen
	// point with the given diameter.
	FillCircle(cx, cy, diameter int)

	// Text draws a string with its baseline starting at the given
	// screen point.
	Text(s string, x, y int)
}
