// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble"
)

var (
	_ gpucontext.Texture        = (*mockTexture)(nil)
	_ gpucontext.TextureCreator = (*mockCreator)(nil)
	_ gpucontext.TextureDrawer  = (*mockDrawer)(nil)
)

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	tex := &mockTexture{width: width, height: height}
	tex.data = append(tex.data, data...)
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator      *mockCreator
	drawnTexture gpucontext.Texture
	drawnX       float32
	drawnY       float32
	drawCount    int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawnTexture = tex
	m.drawnX = x
	m.drawnY = y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

// updateOnlyTexture can be uploaded to but not drawn.
type updateOnlyTexture struct{}

func (updateOnlyTexture) UpdateData([]byte) error { return nil }

func TestRenderToLifecycle(t *testing.T) {
	c, sc := newTestCanvas(t, 8, 8)
	dc := &mockDrawer{creator: &mockCreator{}}

	// First render creates the texture from the current pixels.
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if got := len(dc.creator.textures); got != 1 {
		t.Fatalf("created %d textures, want 1", got)
	}
	first := dc.creator.textures[0]
	if first.width != 8 || first.height != 8 || len(first.data) != 8*8*4 {
		t.Errorf("texture = %dx%d len %d, want 8x8 len 256", first.width, first.height, len(first.data))
	}
	if dc.drawnTexture != first {
		t.Error("drawn texture is not the created one")
	}
	if c.Texture() != first {
		t.Error("Texture() is not the created texture")
	}

	// Idle frames draw the same texture without uploading.
	for range 2 {
		if err := c.RenderTo(dc); err != nil {
			t.Fatalf("RenderTo() error = %v", err)
		}
	}
	if got := len(dc.creator.textures); got != 1 {
		t.Errorf("created %d textures after idle frames, want 1", got)
	}
	if first.updated != 0 {
		t.Errorf("updated = %d after idle frames, want 0", first.updated)
	}

	// A stroke uploads into the existing texture.
	sc.Handle(scribble.ButtonChanged{Button: scribble.ButtonPrimary, Pressed: true})
	sc.Handle(scribble.PointerMoved{X: 1, Y: 1})
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if first.updated != 1 {
		t.Errorf("updated = %d after stroke, want 1", first.updated)
	}
	if i := (1*8 + 1) * 4; first.data[i] != 255 || first.data[i+1] != 0 {
		t.Errorf("uploaded pixel (1,1) = %v, want red", first.data[i:i+4])
	}

	// A resize creates a new texture and destroys the old one.
	sc.Handle(scribble.Resized{Width: 4, Height: 4})
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() error = %v", err)
	}
	if got := len(dc.creator.textures); got != 2 {
		t.Fatalf("created %d textures after resize, want 2", got)
	}
	second := dc.creator.textures[1]
	if second.width != 4 || second.height != 4 {
		t.Errorf("second texture = %dx%d, want 4x4", second.width, second.height)
	}
	for i, v := range second.data {
		if v != 255 {
			t.Fatalf("second texture data[%d] = %d, want 255 (white)", i, v)
		}
	}
	if !first.destroyed {
		t.Error("old texture not destroyed after the new one was created")
	}
	if second.destroyed {
		t.Error("new texture destroyed")
	}
	if c.oldTexture != nil {
		t.Error("retired texture still pending destruction")
	}

	if dc.drawCount != 5 {
		t.Errorf("drawCount = %d, want 5", dc.drawCount)
	}
	if c.Uploads() != 3 {
		t.Errorf("Uploads() = %d, want 3", c.Uploads())
	}
}

func TestRenderToPosition(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4)
	dc := &mockDrawer{creator: &mockCreator{}}

	if err := c.RenderToPosition(dc, 3, 7); err != nil {
		t.Fatalf("RenderToPosition() error = %v", err)
	}
	if dc.drawnX != 3 || dc.drawnY != 7 {
		t.Errorf("drawn at (%v, %v), want (3, 7)", dc.drawnX, dc.drawnY)
	}
}

func TestRenderToNilCreator(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4)
	dc := &mockDrawer{}

	if err := c.RenderTo(dc); !errors.Is(err, ErrInvalidRenderer) {
		t.Errorf("RenderTo() error = %v, want ErrInvalidRenderer", err)
	}
	if dc.drawCount != 0 {
		t.Errorf("drawCount = %d, want 0", dc.drawCount)
	}
}

func TestRenderToCreationFailure(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4)
	dc := &mockDrawer{creator: &mockCreator{failNext: true}}

	if err := c.RenderTo(dc); err == nil {
		t.Fatal("RenderTo() error = nil, want creation failure")
	}
	if _, pending := c.Texture().(*pendingTexture); !pending {
		t.Errorf("Texture() = %T after failure, want *pendingTexture", c.Texture())
	}

	// The next frame retries.
	if err := c.RenderTo(dc); err != nil {
		t.Fatalf("RenderTo() retry error = %v", err)
	}
	if got := len(dc.creator.textures); got != 1 {
		t.Errorf("created %d textures, want 1", got)
	}
}

func TestRenderToInvalidTexture(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4)
	c.texture = updateOnlyTexture{}
	dc := &mockDrawer{creator: &mockCreator{}}

	if err := c.RenderTo(dc); !errors.Is(err, ErrInvalidTexture) {
		t.Errorf("RenderTo() error = %v, want ErrInvalidTexture", err)
	}
	if dc.drawCount != 0 {
		t.Errorf("drawCount = %d, want 0", dc.drawCount)
	}
}
