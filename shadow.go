package boxshadow

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/boxshadow/internal/filter"
	"github.com/gogpu/boxshadow/internal/raster"
)

// DefaultPasses is the number of box blurs used when ShadowSpec.Passes is 0.
const DefaultPasses = filter.DefaultPasses

// AlphaMask is an owned 8-bit coverage buffer, one byte per device pixel.
type AlphaMask = filter.AlphaBuffer

// BlurProfile lists the box widths approximating a Gaussian blur.
type BlurProfile = filter.BlurProfile

// NewBlurProfile computes the box widths for radius and passCount.
// radius < 0 is treated as 0 and passCount < 1 as 1.
func NewBlurProfile(radius, passCount int) *BlurProfile {
	return filter.NewBlurProfile(radius, passCount)
}

// BlurAlpha returns a blurred copy of mask. mask is not modified.
func BlurAlpha(mask *AlphaMask, radius, passCount int) *AlphaMask {
	return filter.BlurAlphaRadius(mask, radius, passCount)
}

// ShadowSpec describes one box shadow. Sizes, offsets and radii are in
// logical (device-independent) pixels.
type ShadowSpec struct {
	// BoxSize is the size of the shape casting the shadow.
	BoxSize image.Point

	// Offset moves the shadow relative to the box.
	Offset image.Point

	// Radius is the blur radius; the shadow image is padded by it on
	// every side.
	Radius int

	// Color is the straight shadow colour.
	Color RGBA

	// DevicePixelRatio is the number of device pixels per logical pixel.
	// Values below 1 are treated as 1.
	DevicePixelRatio float64

	// BorderRadius rounds the corners of the box. Zero gives a sharp box.
	BorderRadius float64

	// Passes is the number of box blur passes; 0 means DefaultPasses.
	Passes int
}

// normalized returns s with every field clamped to a usable value.
func (s ShadowSpec) normalized() ShadowSpec {
	if s.Radius < 0 {
		Logger().Warn("boxshadow: negative radius clamped to 0", "radius", s.Radius)
		s.Radius = 0
	}
	if !(s.DevicePixelRatio >= 1) { // also catches NaN
		if s.DevicePixelRatio != 0 {
			Logger().Warn("boxshadow: device pixel ratio clamped to 1", "dpr", s.DevicePixelRatio)
		}
		s.DevicePixelRatio = 1
	}
	if s.Passes == 0 {
		s.Passes = DefaultPasses
	} else if s.Passes < 1 {
		s.Passes = 1
	}
	if s.BorderRadius < 0 {
		s.BorderRadius = 0
	}
	return s
}

// deviceGeometry holds the mask layout in device pixels.
type deviceGeometry struct {
	box     image.Point
	padding int
}

func (g deviceGeometry) size() image.Point {
	return g.box.Add(image.Pt(2*g.padding, 2*g.padding))
}

func (g deviceGeometry) empty() bool {
	return g.box.X <= 0 || g.box.Y <= 0
}

// geometry scales s, which must be normalized, to device pixels. The padded
// size is scaled as a whole so the image is round((BoxSize + 2*Radius) * dpr);
// the box takes what is left after the scaled padding.
func (s ShadowSpec) geometry() deviceGeometry {
	if s.BoxSize.X <= 0 || s.BoxSize.Y <= 0 {
		return deviceGeometry{}
	}
	padding := scale(s.Radius, s.DevicePixelRatio)
	size := scalePoint(s.BoxSize.Add(image.Pt(2*s.Radius, 2*s.Radius)), s.DevicePixelRatio)
	return deviceGeometry{
		box:     image.Pt(max(size.X-2*padding, 1), max(size.Y-2*padding, 1)),
		padding: padding,
	}
}

func scale(v int, dpr float64) int {
	return int(math.Round(float64(v) * dpr))
}

func scalePoint(p image.Point, dpr float64) image.Point {
	return image.Pt(scale(p.X, dpr), scale(p.Y, dpr))
}

// Mask returns the blurred, colour-independent shadow mask for spec in
// device pixels: (BoxSize + 2*Radius) * DevicePixelRatio. A box with a
// non-positive dimension gives an empty mask.
func Mask(spec ShadowSpec) *AlphaMask {
	return buildMask(spec.normalized())
}

// buildMask expects a normalized spec.
func buildMask(s ShadowSpec) *AlphaMask {
	g := s.geometry()
	if g.empty() {
		return filter.NewAlphaBuffer(0, 0)
	}

	size := g.size()
	mask := filter.NewAlphaBuffer(size.X, size.Y)
	box := image.Rectangle{Min: image.Pt(g.padding, g.padding)}
	box.Max = box.Min.Add(g.box)
	raster.FillBox(mask, box, s.BorderRadius*s.DevicePixelRatio, 0xff)

	return filter.BlurAlpha(mask, filter.CachedProfile(g.padding, s.Passes))
}

// Render synthesises the premultiplied shadow image for spec. The result is
// sized (BoxSize + 2*Radius) * DevicePixelRatio and is owned by the caller.
func Render(spec ShadowSpec) *Pixmap {
	s := spec.normalized()
	return tint(buildMask(s), s)
}

// tint colours mask with s.Color into a new pixmap.
func tint(mask *AlphaMask, s ShadowSpec) *Pixmap {
	pm := NewPixmap(mask.Width(), mask.Height())
	pm.dpr = s.DevicePixelRatio
	if pm.Empty() {
		return pm
	}
	r, g, b, a := s.Color.bytes()
	filter.TintInto(pm.data, mask, r, g, b, a)
	return pm
}

// ShadowRect returns where the shadow of a box whose top-left corner is at
// pos lands, in logical pixels: the box expanded by Radius and translated
// by Offset.
func ShadowRect(pos image.Point, spec ShadowSpec) image.Rectangle {
	s := spec.normalized()
	box := image.Rectangle{Min: pos, Max: pos.Add(s.BoxSize)}
	return box.Inset(-s.Radius).Add(s.Offset)
}

// deviceRect maps a logical shadow rectangle to device pixels, sized to
// match a shadow image exactly so the blit is 1:1.
func deviceRect(logical image.Rectangle, shadow *Pixmap) image.Rectangle {
	origin := scalePoint(logical.Min, shadow.dpr)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(shadow.width, shadow.height))}
}

// Draw composites the shadow of a box at logical position pos onto dst,
// which is addressed in device pixels. The shadow is drawn source-over at
// ShadowRect scaled by the device pixel ratio without resampling.
func Draw(dst draw.Image, pos image.Point, spec ShadowSpec) {
	s := spec.normalized()
	shadow := tint(buildMask(s), s)
	if shadow.Empty() {
		return
	}
	blit(dst, ShadowRect(pos, s), shadow)
}

func blit(dst draw.Image, logical image.Rectangle, shadow *Pixmap) {
	r := deviceRect(logical, shadow)
	draw.Draw(dst, r, shadow.rgba(), image.Point{}, draw.Over)
}

// MinimumBoxSize returns the smallest box that still shows a shadow of the
// given radius with a solid centre: 2*radius+1 in each direction.
func MinimumBoxSize(radius int) image.Point {
	n := 2*max(radius, 0) + 1
	return image.Pt(n, n)
}

// MinimumShadowTextureSize returns the size of a canvas that holds both the
// box and its shadow with the given radius and offset, when the box is placed
// at ShadowTextureOrigin: boxSize + 2*radius + |offset| per axis.
func MinimumShadowTextureSize(boxSize image.Point, radius int, offset image.Point) image.Point {
	pad := 2 * max(radius, 0)
	return image.Pt(
		boxSize.X+pad+absInt(offset.X),
		boxSize.Y+pad+absInt(offset.Y),
	)
}

// ShadowTextureOrigin returns where the box goes in a canvas of
// MinimumShadowTextureSize: radius in from the edge, plus the offset on the
// side the shadow is shifted towards.
func ShadowTextureOrigin(radius int, offset image.Point) image.Point {
	r := max(radius, 0)
	return image.Pt(r+max(-offset.X, 0), r+max(-offset.Y, 0))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
