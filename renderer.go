package boxshadow

import "image"

// shadowLayer is one shadow added to a Renderer.
type shadowLayer struct {
	offset image.Point
	radius int
	color  RGBA
}

// Renderer composes several shadows of one box into a single texture, the
// way window decorations stack a tight contrast shadow over a wide soft one.
// Without an explicit size the canvas is just large enough for every layer;
// with one the box is centred. Layers are drawn in the order they were
// added, source-over.
//
// A Renderer is not safe for concurrent use; the MaskCache it shares is.
type Renderer struct {
	opts   rendererOptions
	layers []shadowLayer
}

// NewRenderer creates a renderer configured by opts.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// AddShadow adds a shadow layer.
func (r *Renderer) AddShadow(offset image.Point, radius int, c RGBA) {
	r.layers = append(r.layers, shadowLayer{offset: offset, radius: radius, color: c})
}

// Size returns the logical canvas size used by Render.
func (r *Renderer) Size() image.Point {
	size, _ := r.layout()
	return size
}

// BoxRect returns the logical rectangle of the box inside the canvas.
func (r *Renderer) BoxRect() image.Rectangle {
	_, origin := r.layout()
	return image.Rectangle{Min: origin, Max: origin.Add(r.opts.boxSize)}
}

// layout returns the canvas size and the box position. An explicit size
// centres the box and clips whatever does not fit. Otherwise the canvas
// grows until every layer's shadow lies inside it: the box sits at the
// largest ShadowTextureOrigin of the layers and the far side gets the
// largest overhang past the box.
func (r *Renderer) layout() (size, origin image.Point) {
	box := r.opts.boxSize
	if r.opts.size.X > 0 && r.opts.size.Y > 0 {
		size = r.opts.size
		return size, size.Sub(box).Div(2)
	}
	if len(r.layers) == 0 {
		return image.Point{}, image.Point{}
	}
	var far image.Point
	for _, l := range r.layers {
		o := ShadowTextureOrigin(l.radius, l.offset)
		need := MinimumShadowTextureSize(box, l.radius, l.offset).Sub(box).Sub(o)
		origin.X = max(origin.X, o.X)
		origin.Y = max(origin.Y, o.Y)
		far.X = max(far.X, need.X)
		far.Y = max(far.Y, need.Y)
	}
	return box.Add(origin).Add(far), origin
}

// Render draws every layer into a new premultiplied pixmap sized
// Size() * DevicePixelRatio.
func (r *Renderer) Render() *Pixmap {
	base := ShadowSpec{
		BoxSize:          r.opts.boxSize,
		DevicePixelRatio: r.opts.dpr,
		BorderRadius:     r.opts.borderRadius,
		Passes:           r.opts.passes,
	}.normalized()

	logical, pos := r.layout()
	size := scalePoint(logical, base.DevicePixelRatio)
	canvas := NewPixmap(size.X, size.Y)
	canvas.dpr = base.DevicePixelRatio
	if canvas.Empty() || base.BoxSize.X <= 0 || base.BoxSize.Y <= 0 {
		return canvas
	}

	dst := canvas.rgba()
	for _, l := range r.layers {
		s := base
		s.Offset = l.offset
		s.Radius = l.radius
		s.Color = l.color
		s = s.normalized()

		var shadow *Pixmap
		if r.opts.masks != nil {
			shadow = tint(r.opts.masks.mask(s), s)
		} else {
			shadow = tint(buildMask(s), s)
		}
		blit(dst, ShadowRect(pos, s), shadow)
	}

	Logger().Debug("boxshadow: rendered shadow texture",
		"layers", len(r.layers), "size", size, "dpr", base.DevicePixelRatio)
	return canvas
}
