// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble"
)

// Rendering errors.
var (
	// ErrInvalidTexture is returned when a texture does not implement
	// gpucontext.Texture.
	ErrInvalidTexture = errors.New("gpucanvas: texture must implement gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("gpucanvas: draw context has no texture creator")
)

// RenderOptions controls where the canvas is drawn.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0)
	X, Y float32
}

// DefaultRenderOptions returns options drawing at the window origin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{}
}

// RenderTo flushes the canvas and draws it at (0, 0).
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToEx(dc, DefaultRenderOptions())
}

// RenderToPosition is RenderTo at a given position.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	return c.RenderToEx(dc, RenderOptions{X: x, Y: y})
}

// RenderToEx flushes the canvas and draws it with opts.
func (c *Canvas) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA waits for the GPU, so the old texture is no
		// longer referenced once it returns.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gpucanvas: NewTextureFromRGBA failed: %w", err)
		}
		c.texture = realTex
		c.uploads++
		tex = realTex

		destroy(c.oldTexture)
		c.oldTexture = nil
		scribble.Logger().Info("gpucanvas: texture created",
			"width", pending.width, "height", pending.height, "format", Format)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, opts.X, opts.Y)
}
