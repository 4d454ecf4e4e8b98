package scribble

import (
	"image"
	"image/color"
)

// bytesPerPixel is the size of one RGBA8 pixel.
const bytesPerPixel = 4

// Pixmap is a fixed-size RGBA pixel buffer.
//
// Pixels are stored row-major with the origin at the top-left corner,
// 4 bytes per pixel in R, G, B, A order. The buffer is never resized in
// place; a new size means a new Pixmap.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap filled with opaque white.
// Negative dimensions are treated as zero, which yields an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)

	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
	p.Fill(255, 255, 255, 255)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * bytesPerPixel
}

// Data returns the raw pixel data (RGBA format).
//
// The returned slice aliases the pixmap. Uploaders must finish with it
// before the next redraw mutates it again.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// contains reports whether (x, y) addresses a pixel of p.
func (p *Pixmap) contains(x, y int64) bool {
	return x >= 0 && x < int64(p.width) && y >= 0 && y < int64(p.height)
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are silently ignored.
func (p *Pixmap) SetPixel(x, y int64, r, g, b, a uint8) {
	if !p.contains(x, y) {
		return
	}
	i := (int(y)*p.width + int(x)) * bytesPerPixel
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the pixmap return the zero color.
func (p *Pixmap) GetPixel(x, y int64) color.RGBA {
	if !p.contains(x, y) {
		return color.RGBA{}
	}
	i := (int(y)*p.width + int(x)) * bytesPerPixel
	return color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(r, g, b, a uint8) {
	for i := 0; i < len(p.data); i += bytesPerPixel {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage copies the pixmap into a new image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(int64(x), int64(y))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
