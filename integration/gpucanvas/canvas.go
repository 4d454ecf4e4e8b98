// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/scribble"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gpucanvas: canvas is closed")

	// ErrNilCanvas is returned when New is given a nil scribble canvas.
	ErrNilCanvas = errors.New("gpucanvas: nil scribble canvas")

	// ErrEmptyCanvas is returned when the scribble canvas has no pixels.
	ErrEmptyCanvas = errors.New("gpucanvas: canvas has zero size")
)

// Format is the texture format of uploaded pixmaps.
const Format = gputypes.TextureFormatRGBA8Unorm

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// textureUpdater matches gpucontext.TextureUpdater.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// Canvas uploads a scribble.Canvas to a GPU texture.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	sc         *scribble.Canvas
	texture    any // *pendingTexture until RenderTo creates the real one
	oldTexture any // previous texture awaiting deferred destruction
	width      int // size of texture
	height     int
	uploads    int
	closed     bool
}

// New creates a Canvas presenting sc.
func New(sc *scribble.Canvas) (*Canvas, error) {
	if sc == nil {
		return nil, ErrNilCanvas
	}
	w, h := sc.Size()
	return &Canvas{sc: sc, width: w, height: h}, nil
}

// MustNew is like New but panics on error.
func MustNew(sc *scribble.Canvas) *Canvas {
	c, err := New(sc)
	if err != nil {
		panic(err)
	}
	return c
}

// Scribble returns the wrapped canvas, or nil once closed.
func (c *Canvas) Scribble() *scribble.Canvas {
	if c.closed {
		return nil
	}
	return c.sc
}

// Size returns the dimensions of the current texture.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Uploads returns how many times pixel data has been sent to a texture.
func (c *Canvas) Uploads() int {
	return c.uploads
}

// Flush advances the scribble canvas by one frame and uploads the pixmap
// if it changed. It returns the texture to draw.
//
// The texture is created lazily: the first Flush returns a placeholder
// that RenderTo turns into a GPU texture.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	data := c.sc.Redraw()
	w, h := c.sc.Size()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrEmptyCanvas, w, h)
	}

	// The old texture may still be referenced by in-flight command
	// buffers. It is destroyed in RenderToEx once a new texture exists.
	if w != c.width || h != c.height {
		if c.texture != nil {
			c.retire(c.texture)
			c.texture = nil
		}
		c.width, c.height = w, h
		scribble.Logger().Debug("gpucanvas: texture size changed", "width", w, "height", h)
	}

	if !c.sc.Dirty() && c.texture != nil {
		return c.texture, nil
	}

	switch tex := c.texture.(type) {
	case nil, *pendingTexture:
		c.texture = &pendingTexture{width: w, height: h, data: data}
	case textureUpdater:
		if err := tex.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpucanvas: texture update failed: %w", err)
		}
		c.uploads++
	}

	c.sc.MarkClean()
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases the textures. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	c.oldTexture = nil
	destroy(c.texture)
	c.texture = nil

	c.sc = nil
	return nil
}

// retire schedules tex for destruction, destroying any texture already
// waiting.
func (c *Canvas) retire(tex any) {
	if _, pending := tex.(*pendingTexture); pending {
		return
	}
	destroy(c.oldTexture)
	c.oldTexture = tex
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds the data needed to create a real texture once a
// texture creator is available (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
