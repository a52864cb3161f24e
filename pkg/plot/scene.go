package plot

import (
	"image/color"
	"sort"
)

// ProjectedPoint is a screen-space primitive built for one frame.
type ProjectedPoint struct {
	X, Y  int
	Depth float64
	Size  int
	Color color.Color
	Label string
}

// buildScene projects every item into screen space and sorts the
// result back-to-front (painter's algorithm): points with smaller
// rotated z are farther from the viewer and draw first, so nearer
// points overpaint them. Points rejected by the perspective cutoff are
// left out of the frame. The returned slice is owned by the plot and
// reused on the next frame.
func (p *Plot[T]) buildScene() []ProjectedPoint {
	p.points = p.points[:0]

	for i := range p.items {
		sp, ok := p.project(p.view.Point(p.items, i))
		if !ok {
			continue
		}

		size := int(6 * sp.Factor)
		if size < 2 {
			size = 2
		} else if size > 15 {
			size = 15
		}

		p.points = append(p.points, ProjectedPoint{
			X:     sp.X,
			Y:     sp.Y,
			Depth: sp.Depth,
			Size:  size,
			Color: p.view.Color(p.items, i),
			Label: p.view.Label(p.items, i),
		})
	}

	sort.Slice(p.points, func(i, j int) bool {
		return p.points[i].Depth < p.points[j].Depth
	})

	return p.points
}
