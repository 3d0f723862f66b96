package filter

// BlurAlpha blurs src with every pass of profile and returns a new buffer.
// src is not modified, and identical inputs produce identical bytes.
//
// Each pass blurs rows, then transposes, blurs rows again and transposes
// back, so every scan walks memory linearly. Two buffers per orientation
// are swapped between passes; nothing is blurred in place.
func BlurAlpha(src *AlphaBuffer, profile *BlurProfile) *AlphaBuffer {
	cur := src.Clone()
	if cur.Empty() || profile.Identity() {
		return cur
	}

	spare := NewAlphaBuffer(cur.width, cur.height)
	tcur := NewAlphaBuffer(cur.height, cur.width)
	tspare := NewAlphaBuffer(cur.height, cur.width)

	for _, size := range profile.BoxSizes {
		if size <= 1 {
			continue
		}

		// Horizontal pass.
		boxBlurRowsInto(cur, spare, size)
		cur, spare = spare, cur

		// Vertical pass on the transposed image.
		cur.transposeInto(tcur)
		boxBlurRowsInto(tcur, tspare, size)
		tcur, tspare = tspare, tcur
		tcur.transposeInto(cur)
	}

	return cur
}

// BlurAlphaRadius blurs src with the cached profile for radius and passes.
func BlurAlphaRadius(src *AlphaBuffer, radius, passes int) *AlphaBuffer {
	return BlurAlpha(src, CachedProfile(radius, passes))
}
