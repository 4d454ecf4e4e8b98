package scribble

import (
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

var opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"regular", 8, 4, 8, 4},
		{"single pixel", 1, 1, 1, 1},
		{"zero width", 0, 5, 0, 5},
		{"zero both", 0, 0, 0, 0},
		{"negative", -3, 7, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(tt.width, tt.height)
			if pm.Width() != tt.wantW || pm.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", pm.Width(), pm.Height(), tt.wantW, tt.wantH)
			}
			if got, want := len(pm.Data()), tt.wantW*tt.wantH*4; got != want {
				t.Fatalf("len(Data()) = %d, want %d", got, want)
			}
			if got, want := pm.Stride(), tt.wantW*4; got != want {
				t.Errorf("Stride() = %d, want %d", got, want)
			}
			for i, v := range pm.Data() {
				if v != 255 {
					t.Fatalf("Data()[%d] = %d, want 255 (opaque white)", i, v)
				}
			}
		})
	}
}

func TestPixmapSetPixel(t *testing.T) {
	pm := NewPixmap(10, 6)

	pm.SetPixel(3, 4, 10, 20, 30, 40)

	i := (4*10 + 3) * 4
	data := pm.Data()
	if data[i+0] != 10 || data[i+1] != 20 || data[i+2] != 30 || data[i+3] != 40 {
		t.Errorf("raw data = (%d, %d, %d, %d), want (10, 20, 30, 40)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	want := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	if got := pm.GetPixel(3, 4); got != want {
		t.Errorf("GetPixel(3, 4) = %v, want %v", got, want)
	}
	if got := pm.GetPixel(4, 3); got != opaqueWhite {
		t.Errorf("GetPixel(4, 3) = %v, want untouched white", got)
	}
}

func TestPixmapSetPixel_AllInBounds(t *testing.T) {
	pm := NewPixmap(5, 3)
	for y := int64(0); y < 3; y++ {
		for x := int64(0); x < 5; x++ {
			r, g := uint8(x), uint8(y)
			pm.SetPixel(x, y, r, g, 7, 255)
			want := color.RGBA{R: r, G: g, B: 7, A: 255}
			if got := pm.GetPixel(x, y); got != want {
				t.Errorf("GetPixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestPixmapSetPixel_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPixmapSetPixel_OutOfBounds(t *testing.T) {
	// Non-square so that a check of y against the width would be caught.
	pm := NewPixmap(10, 4)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int64 }{
		{-1, 0}, {10, 0}, {0, -1}, {0, 4},
		{5, 4}, {5, 9}, // y beyond height but below width
		{-100, -100}, {100, 100},
		{1 << 40, 1}, {1, 1 << 40},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, 255, 0, 0, 255)
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestPixmapSetPixel_TallPixmap(t *testing.T) {
	// y may exceed the width as long as it is below the height.
	pm := NewPixmap(2, 8)
	pm.SetPixel(1, 7, 0, 0, 0, 255)

	want := color.RGBA{A: 255}
	if got := pm.GetPixel(1, 7); got != want {
		t.Errorf("GetPixel(1, 7) = %v, want %v", got, want)
	}
}

func TestPixmapSetPixel_Empty(t *testing.T) {
	pm := NewPixmap(0, 0)
	// Must not panic.
	pm.SetPixel(0, 0, 1, 2, 3, 4)
	if got := pm.GetPixel(0, 0); got != (color.RGBA{}) {
		t.Errorf("GetPixel(0, 0) on empty pixmap = %v, want zero", got)
	}
}

func TestPixmapFill(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Fill(1, 2, 3, 4)

	want := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	for y := int64(0); y < 3; y++ {
		for x := int64(0); x < 3; x++ {
			if got := pm.GetPixel(x, y); got != want {
				t.Fatalf("GetPixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(4, 2)
	pm.SetPixel(2, 1, 9, 8, 7, 255)

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("Bounds() = %v, want (0,0)-(4,2)", img.Bounds())
	}
	if got, want := img.RGBAAt(2, 1), (color.RGBA{R: 9, G: 8, B: 7, A: 255}); got != want {
		t.Errorf("RGBAAt(2, 1) = %v, want %v", got, want)
	}

	// The image is a copy.
	img.Pix[0] = 0
	if pm.Data()[0] != 255 {
		t.Error("ToImage() aliases the pixmap data, want a copy")
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(1, 1, 0, 0, 255, 255)

	if pm.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,2)", pm.Bounds())
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not color.RGBAModel")
	}
	r, g, b, a := pm.At(1, 1).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("At(1, 1).RGBA() = (%d, %d, %d, %d), want (0, 0, 65535, 65535)", r, g, b, a)
	}
}

func TestPixmapStrideAddressesRows(t *testing.T) {
	pm := NewPixmap(7, 3)
	pm.SetPixel(5, 2, 1, 2, 3, 4)

	i := 2*pm.Stride() + 5*4
	if got := pm.Data()[i : i+4]; got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 4 {
		t.Errorf("Data()[2*Stride()+5*4:] = %v, want [1 2 3 4]", got)
	}
}
