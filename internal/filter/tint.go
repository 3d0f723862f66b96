package filter

// Tint colours a mask with the straight (non-premultiplied) colour
// (r, g, b, a) using source-in compositing and returns premultiplied RGBA
// bytes, four per mask pixel.
//
// For mask alpha m the output is alpha = m*a/255 and
// channel = c*m/255*a/255, rounded to nearest. With an opaque colour the
// output alpha equals the mask alpha.
func Tint(mask *AlphaBuffer, r, g, b, a uint8) []uint8 {
	out := make([]uint8, len(mask.data)*4)
	TintInto(out, mask, r, g, b, a)
	return out
}

// TintInto is Tint writing into dst, which must hold 4 bytes per mask pixel.
func TintInto(dst []uint8, mask *AlphaBuffer, r, g, b, a uint8) {
	const (
		half255   = 127
		half65025 = 65025 / 2
	)
	ca := uint32(a)
	cr := uint32(r) * ca
	cg := uint32(g) * ca
	cb := uint32(b) * ca

	for i, m := range mask.data {
		o := dst[i*4 : i*4+4 : i*4+4]
		if m == 0 {
			o[0], o[1], o[2], o[3] = 0, 0, 0, 0
			continue
		}
		mv := uint32(m)
		o[0] = uint8((cr*mv + half65025) / 65025)
		o[1] = uint8((cg*mv + half65025) / 65025)
		o[2] = uint8((cb*mv + half65025) / 65025)
		o[3] = uint8((ca*mv + half255) / 255)
	}
}
