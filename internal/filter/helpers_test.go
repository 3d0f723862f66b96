package filter

import (
	"image"
	"strconv"
)

// Test helper functions shared across filter tests.

// filledBox returns a mask of the box padded by pad on every side, with the
// box filled with alpha a.
func filledBox(w, h, pad int, a uint8) *AlphaBuffer {
	buf := NewAlphaBuffer(w+2*pad, h+2*pad)
	buf.FillRect(image.Rect(pad, pad, pad+w, pad+h), a)
	return buf
}

// alphaOf builds a width×height buffer from row-major values.
func alphaOf(width, height int, values ...uint8) *AlphaBuffer {
	buf := NewAlphaBuffer(width, height)
	copy(buf.Data(), values)
	return buf
}

// rowOf builds a single-row buffer.
func rowOf(values ...uint8) *AlphaBuffer {
	return alphaOf(len(values), 1, values...)
}

// transposed returns the transpose of b in a new buffer.
func transposed(b *AlphaBuffer) *AlphaBuffer {
	t := NewAlphaBuffer(b.Height(), b.Width())
	b.transposeInto(t)
	return t
}

func benchName(w, h, r int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h) + "_r" + strconv.Itoa(r)
}
