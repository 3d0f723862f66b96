package boxshadow

import "image"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := boxshadow.NewRenderer(
//	    boxshadow.WithBoxSize(image.Pt(64, 64)),
//	    boxshadow.WithBorderRadius(3),
//	    boxshadow.WithDevicePixelRatio(2),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	size         image.Point
	boxSize      image.Point
	borderRadius float64
	dpr          float64
	passes       int
	masks        *MaskCache
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		dpr:    1,
		passes: DefaultPasses,
	}
}

// WithSize sets the logical canvas size. When unset, the renderer uses the
// smallest canvas that holds the box and every added shadow.
func WithSize(size image.Point) RendererOption {
	return func(o *rendererOptions) {
		o.size = size
	}
}

// WithBoxSize sets the logical size of the box casting the shadows.
func WithBoxSize(size image.Point) RendererOption {
	return func(o *rendererOptions) {
		o.boxSize = size
	}
}

// WithBorderRadius rounds the corners of the box.
func WithBorderRadius(radius float64) RendererOption {
	return func(o *rendererOptions) {
		o.borderRadius = radius
	}
}

// WithDevicePixelRatio renders at the given device pixel ratio.
func WithDevicePixelRatio(dpr float64) RendererOption {
	return func(o *rendererOptions) {
		o.dpr = dpr
	}
}

// WithPasses sets the number of box blur passes per shadow.
func WithPasses(passes int) RendererOption {
	return func(o *rendererOptions) {
		o.passes = passes
	}
}

// WithMaskCache shares blurred masks between renderers. Colour variants of
// the same shadow (active, inactive, hover) then blur only once.
func WithMaskCache(c *MaskCache) RendererOption {
	return func(o *rendererOptions) {
		o.masks = c
	}
}
