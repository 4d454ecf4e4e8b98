// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpucanvas presents a scribble canvas in a gogpu window.
//
// The data flow is:
//
//	scribble.Canvas (strokes) -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas wraps a scribble.Canvas and manages the texture upload pipeline:
//
//   - Flush runs one Redraw and uploads the pixmap if it changed
//   - RenderTo flushes and draws the texture to a gogpu window
//   - A resize of the scribble canvas recreates the texture
//
// # Usage
//
//	sc := scribble.NewCanvas(800, 600)
//	canvas, _ := gpucanvas.New(sc)
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Input dispatch and rendering
// must happen on the same goroutine, or be externally synchronized.
//
// # Integration Without Circular Imports
//
// This package only depends on gpucontext interfaces, never on gogpu
// itself, so hosts other than gogpu can drive it.
package gpucanvas
