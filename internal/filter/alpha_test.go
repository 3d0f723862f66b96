package filter

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlphaBufferTranspose(t *testing.T) {
	b := alphaOf(3, 2,
		1, 2, 3,
		4, 5, 6,
	)
	tr := transposed(b)
	if tr.Width() != 2 || tr.Height() != 3 {
		t.Fatalf("transpose size = %dx%d, want 2x3", tr.Width(), tr.Height())
	}
	want := []uint8{
		1, 4,
		2, 5,
		3, 6,
	}
	if diff := cmp.Diff(want, tr.Data()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b.Data(), transposed(tr).Data()); diff != "" {
		t.Errorf("double transpose is not identity (-want +got):\n%s", diff)
	}
}

func TestAlphaBufferFillRectClips(t *testing.T) {
	b := NewAlphaBuffer(4, 4)
	b.FillRect(image.Rect(2, 2, 10, 10), 9)

	if b.NonZero() != 4 {
		t.Errorf("NonZero() = %d, want 4", b.NonZero())
	}
	if b.Sum() != 36 {
		t.Errorf("Sum() = %d, want 36", b.Sum())
	}
	if b.At(1, 1) != 0 || b.At(3, 3) != 9 {
		t.Errorf("unexpected fill: At(1,1)=%d At(3,3)=%d", b.At(1, 1), b.At(3, 3))
	}
}

func TestAlphaBufferBounds(t *testing.T) {
	b := NewAlphaBuffer(2, 2)
	b.Set(-1, 0, 5)
	b.Set(2, 1, 5)
	if b.NonZero() != 0 {
		t.Error("out-of-range Set wrote into the buffer")
	}
	if b.At(5, 5) != 0 {
		t.Error("out-of-range At should return 0")
	}
	if !NewAlphaBuffer(-3, 4).Empty() {
		t.Error("negative dimensions should give an empty buffer")
	}
}

func TestAlphaBufferCloneIsDeep(t *testing.T) {
	b := alphaOf(2, 1, 10, 20)
	c := b.Clone()
	c.Set(0, 0, 99)
	if b.At(0, 0) != 10 {
		t.Error("Clone shares memory with the source")
	}
	if diff := cmp.Diff([]uint8{99, 20}, c.Data()); diff != "" {
		t.Errorf("clone data mismatch (-want +got):\n%s", diff)
	}
}
