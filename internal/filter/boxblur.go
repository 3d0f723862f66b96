package filter

// BoxBlurRows applies one horizontal box blur of width boxSize to src and
// returns the result in a new buffer. src is not modified.
//
// boxSize must be odd; even values are rounded up and values below 1 are
// treated as 1.
func BoxBlurRows(src *AlphaBuffer, boxSize int) *AlphaBuffer {
	dst := NewAlphaBuffer(src.width, src.height)
	boxBlurRowsInto(src, dst, boxSize)
	return dst
}

// boxBlurRowsInto blurs every row of src into the same-sized dst.
//
// The window sum is updated in O(1) per pixel: the entering sample is added
// and the leaving sample subtracted. Samples outside the row contribute
// nothing while the divisor stays boxSize, so alpha fades toward the row
// ends. Shadow masks keep those pixels inside the padding border.
func boxBlurRowsInto(src, dst *AlphaBuffer, boxSize int) {
	if boxSize < 1 {
		boxSize = 1
	}
	if boxSize%2 == 0 {
		boxSize++
	}
	radius := (boxSize - 1) / 2
	width := src.width

	for y := 0; y < src.height; y++ {
		in := src.Row(y)
		out := dst.Row(y)

		sum := 0
		for x := 0; x < radius && x < width; x++ {
			sum += int(in[x])
		}

		for x := 0; x < width; x++ {
			if enter := x + radius; enter < width {
				sum += int(in[enter])
			}
			if leave := x - radius - 1; leave >= 0 {
				sum -= int(in[leave])
			}
			out[x] = uint8((sum + radius) / boxSize)
		}
	}
}
