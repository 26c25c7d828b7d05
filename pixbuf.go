package mandel

import (
	"image"
	"image/color"
)

// PixelBuffer is a width x height grid of RGB pixels stored row-major,
// 3 bytes per pixel, in a single slice.
//
// PixelBuffer implements image.Image and draw.Image so it can be encoded
// or drawn on directly. Pixel (x, y) starts at byte 3·(y·width + x).
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewPixelBuffer creates a black buffer with the given dimensions.
// Non-positive dimensions produce an empty buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		return &PixelBuffer{}
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// Width returns the width of the buffer in pixels.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer in pixels.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Data returns the raw RGB bytes.
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// SetRGB sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *PixelBuffer) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 3
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// RGBAt returns the color of a single pixel, or black when out of bounds.
func (p *PixelBuffer) RGBAt(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return RGB{}
	}
	i := (y*p.width + x) * 3
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Invert replaces every channel byte b by 255−b.
// Applying Invert twice restores the original buffer.
func (p *PixelBuffer) Invert() {
	for i, b := range p.data {
		p.data[i] = 255 - b
	}
}

// Clone returns a deep copy of the buffer.
func (p *PixelBuffer) Clone() *PixelBuffer {
	c := &PixelBuffer{width: p.width, height: p.height}
	if p.data != nil {
		c.data = make([]uint8, len(p.data))
		copy(c.data, p.data)
	}
	return c
}

// ToImage converts the buffer to an opaque image.RGBA.
func (p *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+3, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// Set implements the draw.Image interface. Alpha is ignored.
func (p *PixelBuffer) Set(x, y int, c color.Color) {
	r, g, b, _ := c.RGBA()
	p.SetRGB(x, y, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return rgbModel
}

var rgbModel = color.ModelFunc(func(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
})
