package plot

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a Surface that draws into an in-memory RGBA image. It is
// used for headless rendering (PNG snapshots) and in tests. Lines are
// drawn with Bresenham's algorithm at one pixel width; text uses a
// fixed 7x13 bitmap face, so the requested font size is ignored.
type Raster struct {
	img    *image.RGBA
	stroke color.RGBA
}

// NewRaster creates a raster surface of the given size, filled with
// the viewer's dark background.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	background := color.RGBA{R: 64, G: 64, B: 64, A: 255}
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Raster{img: img}
}

// Image returns the underlying image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) SetStroke(c color.Color, width float32) {
	r.stroke = color.RGBAModel.Convert(c).(color.RGBA)
}

func (r *Raster) SetFont(size float32, bold bool) {}

// Line draws a line using Bresenham's algorithm.
func (r *Raster) Line(x1, y1, x2, y2 int) {
	bounds := r.img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			r.img.SetRGBA(x1, y1, r.stroke)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillCircle fills a circle by scanning its bounding square.
func (r *Raster) FillCircle(cx, cy, diameter int) {
	bounds := r.img.Bounds()
	radius := float64(diameter) / 2

	for y := cy - diameter/2 - 1; y <= cy+diameter/2+1; y++ {
		for x := cx - diameter/2 - 1; x <= cx+diameter/2+1; x++ {
			if x < 0 || x >= bounds.Max.X || y < 0 || y >= bounds.Max.Y {
				continue
			}
			fx := float64(x - cx)
			fy := float64(y - cy)
			if fx*fx+fy*fy <= radius*radius {
				r.img.SetRGBA(x, y, r.stroke)
			}
		}
	}
}

func (r *Raster) Text(s string, x, y int) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.stroke),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
