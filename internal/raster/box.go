package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/boxshadow/internal/filter"
)

// arcK is the cubic Bézier control distance for a quarter circle of radius 1.
const arcK = 0.5522847498

// FillBox paints the box into mask with alpha a.
//
// With cornerRadius <= 0 the box is filled pixel-exact. Otherwise the box
// is rasterised with anti-aliased rounded corners; the radius is limited to
// half the shorter side.
func FillBox(mask *filter.AlphaBuffer, box image.Rectangle, cornerRadius float64, a uint8) {
	box = box.Intersect(image.Rect(0, 0, mask.Width(), mask.Height()))
	if box.Empty() {
		return
	}

	maxRadius := float64(min(box.Dx(), box.Dy())) / 2
	cornerRadius = math.Min(cornerRadius, maxRadius)
	if cornerRadius <= 0 {
		mask.FillRect(box, a)
		return
	}

	w, h := mask.Width(), mask.Height()
	r := vector.NewRasterizer(w, h)
	addRoundedBox(r, box, float32(cornerRadius))

	dst := &image.Alpha{
		Pix:    mask.Data(),
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: a}), image.Point{})
}

// addRoundedBox traces a clockwise rounded rectangle.
func addRoundedBox(r *vector.Rasterizer, box image.Rectangle, rad float32) {
	x0, y0 := float32(box.Min.X), float32(box.Min.Y)
	x1, y1 := float32(box.Max.X), float32(box.Max.Y)
	k := rad * (1 - arcK)

	r.MoveTo(x0+rad, y0)
	r.LineTo(x1-rad, y0)
	r.CubeTo(x1-k, y0, x1, y0+k, x1, y0+rad)
	r.LineTo(x1, y1-rad)
	r.CubeTo(x1, y1-k, x1-k, y1, x1-rad, y1)
	r.LineTo(x0+rad, y1)
	r.CubeTo(x0+k, y1, x0, y1-k, x0, y1-rad)
	r.LineTo(x0, y0+rad)
	r.CubeTo(x0, y0+k, x0+k, y0, x0+rad, y0)
	r.ClosePath()
}
