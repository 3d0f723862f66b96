// Package boxshadow synthesises soft box shadows for window decorations.
//
// # Overview
//
// A shadow is rendered by filling the box into an 8-bit alpha mask padded
// by the blur radius, blurring the mask with three box blurs that
// approximate a Gaussian, and tinting the result with the shadow colour.
// The output is a premultiplied RGBA Pixmap at device resolution that the
// caller blits 1:1 behind the window.
//
// # Quick Start
//
//	spec := boxshadow.ShadowSpec{
//	    BoxSize:          image.Pt(100, 60),
//	    Offset:           image.Pt(0, 6),
//	    Radius:           24,
//	    Color:            boxshadow.Black.WithAlpha(0.5),
//	    DevicePixelRatio: 2,
//	}
//	shadow := boxshadow.Render(spec)  // or:
//	boxshadow.Draw(dst, image.Pt(40, 40), spec)
//
// # Caching
//
// The blur is the expensive part and does not depend on the colour.
// MaskCache keys masks by box size, radius, pass count, device pixel ratio
// and border radius, so active, inactive and hover variants of a shadow
// share one blur. Renderer stacks several shadows into one texture and can
// share a MaskCache between instances.
//
// # Coordinate System
//
// Box sizes, offsets and radii are logical pixels. Pixmaps and the
// destination passed to Draw are addressed in device pixels; logical values
// are multiplied by the device pixel ratio and rounded.
//
// # Concurrency
//
// Every function allocates its own buffers and is safe for concurrent use.
package boxshadow
