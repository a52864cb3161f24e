package plot

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

var hudColor = color.White

// Render draws one complete frame onto the surface: axes in the
// background, then the depth-sorted points, then the HUD. Every frame
// is recomputed from the current state, so a degenerate frame heals
// itself on the next redraw.
func (p *Plot[T]) Render(s Surface) {
	p.drawAxes(s)

	if len(p.items) == 0 {
		s.SetStroke(hudColor, 1)
		s.SetFont(12, false)
		s.Text("No data to display.", p.width/2-50, p.height/2)
		return
	}

	for _, pp := range p.buildScene() {
		s.SetStroke(pp.Color, 1)
		s.FillCircle(pp.X, pp.Y, pp.Size)
		if strings.TrimSpace(pp.Label) != "" {
			s.Text(pp.Label, pp.X+pp.Size, pp.Y-pp.Size)
		}
	}

	p.drawHUD(s)
}

func (p *Plot[T]) drawHUD(s Surface) {
	s.SetStroke(hudColor, 1)
	s.SetFont(12, false)

	s.Text(fmt.Sprintf("Rotation (Pitch/Yaw): %.1f°, %.1f°",
		p.Camera.RotationX*180/math.Pi, p.Camera.RotationY*180/math.Pi), 10, 20)
	s.Text(fmt.Sprintf("Zoom: %.2fx", p.Camera.UserZoom), 10, 40)

	mode := "Orthographic"
	if p.Camera.Perspective {
		mode = "Perspective"
	}
	s.Text(fmt.Sprintf("Projection: %s (D=%.1f)", mode, viewerDistance), 10, 60)

	s.SetFont(12, true)
	s.Text("Controls: Drag mouse (LMB) to rotate, use mouse wheel to zoom.", 10, p.height-10)
}
