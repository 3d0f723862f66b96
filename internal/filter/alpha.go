package filter

import "image"

// AlphaBuffer is an owned 8-bit coverage raster, one byte per pixel in
// row-major order. Blur passes never write into their source buffer.
type AlphaBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewAlphaBuffer creates a zeroed buffer. Negative dimensions yield an
// empty buffer.
func NewAlphaBuffer(width, height int) *AlphaBuffer {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &AlphaBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the buffer.
func (b *AlphaBuffer) Width() int { return b.width }

// Height returns the height of the buffer.
func (b *AlphaBuffer) Height() int { return b.height }

// Data returns the raw alpha bytes.
func (b *AlphaBuffer) Data() []uint8 { return b.data }

// Empty reports whether the buffer has no pixels.
func (b *AlphaBuffer) Empty() bool { return b.width == 0 || b.height == 0 }

// Index returns the offset of pixel (x, y) in Data.
func (b *AlphaBuffer) Index(x, y int) int { return y*b.width + x }

// Row returns row y as a slice aliasing the buffer.
func (b *AlphaBuffer) Row(y int) []uint8 {
	i := b.Index(0, y)
	return b.data[i : i+b.width]
}

// At returns the alpha at (x, y), or 0 outside the buffer.
func (b *AlphaBuffer) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[b.Index(x, y)]
}

// Set stores alpha at (x, y). Out-of-range writes are ignored.
func (b *AlphaBuffer) Set(x, y int, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[b.Index(x, y)] = a
}

// FillRect sets every pixel of r, clipped to the buffer, to a.
func (b *AlphaBuffer) FillRect(r image.Rectangle, a uint8) {
	r = r.Intersect(image.Rect(0, 0, b.width, b.height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b.Row(y)[r.Min.X:r.Max.X]
		for x := range row {
			row[x] = a
		}
	}
}

// Clone returns a deep copy.
func (b *AlphaBuffer) Clone() *AlphaBuffer {
	c := NewAlphaBuffer(b.width, b.height)
	copy(c.data, b.data)
	return c
}

// transposeInto writes the transpose of b into dst, which must be
// b.height×b.width.
func (b *AlphaBuffer) transposeInto(dst *AlphaBuffer) {
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		for x, a := range row {
			dst.data[x*dst.width+y] = a
		}
	}
}

// Sum returns the total alpha of all pixels.
func (b *AlphaBuffer) Sum() uint64 {
	var s uint64
	for _, a := range b.data {
		s += uint64(a)
	}
	return s
}

// NonZero returns the number of pixels with non-zero alpha.
func (b *AlphaBuffer) NonZero() int {
	n := 0
	for _, a := range b.data {
		if a != 0 {
			n++
		}
	}
	return n
}
