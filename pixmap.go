package boxshadow

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a premultiplied RGBA raster in device pixels, 4 bytes per pixel.
// Shadow images are returned as Pixmaps; callers own them.
type Pixmap struct {
	width  int
	height int
	data   []uint8
	dpr    float64
}

// NewPixmap creates a transparent pixmap with the given device dimensions.
// Non-positive dimensions give an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		dpr:    1,
	}
}

// Width returns the width of the pixmap in device pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in device pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Empty reports whether the pixmap has no pixels.
func (p *Pixmap) Empty() bool {
	return p.width == 0 || p.height == 0
}

// DevicePixelRatio returns the number of device pixels per logical pixel.
func (p *Pixmap) DevicePixelRatio() float64 {
	return p.dpr
}

// Data returns the raw premultiplied RGBA bytes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// PixelAt returns the premultiplied pixel at (x, y), or transparent outside
// the pixmap.
func (p *Pixmap) PixelAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// ToImage copies the pixmap into an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// rgba returns an image.RGBA view sharing the pixmap's memory.
func (p *Pixmap) rgba() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.rgba()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(r >> 8)
	p.data[i+1] = uint8(g >> 8)
	p.data[i+2] = uint8(b >> 8)
	p.data[i+3] = uint8(a >> 8)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
