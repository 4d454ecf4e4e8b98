// Package scribble rasterizes freehand pointer strokes into an in-memory
// RGBA pixel buffer.
//
// # Overview
//
// scribble is the software core of a minimal drawing surface. A host
// (window system, GPU surface, test harness) feeds it pointer samples and
// button transitions and, once per display refresh, asks it to redraw.
// The redraw turns the samples collected since the previous frame into
// connected line segments and returns the raw pixel bytes, ready to be
// uploaded to a texture.
//
// # Quick Start
//
//	import "github.com/gogpu/scribble"
//
//	cv := scribble.NewCanvas(800, 600)
//
//	cv.Handle(scribble.ButtonChanged{Button: scribble.ButtonPrimary, Pressed: true})
//	cv.Handle(scribble.PointerMoved{X: 10, Y: 10})
//	cv.Handle(scribble.PointerMoved{X: 120.4, Y: 64.7})
//
//	pixels := cv.Redraw() // RGBA8, row-major, len = 800*600*4
//
// # Architecture
//
// The package is organized leaves first:
//   - Pixmap: fixed-size RGBA8 buffer with clipped pixel writes
//   - Line, DrawLine, RoundToward: the line rasterizer
//   - Accumulator: per-frame sample buffering and segment stitching
//   - Canvas: the session state object that hosts dispatch events into
//
// Presentation lives outside the package; see integration/gpucanvas for
// the gogpu texture upload.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pointer samples use the same space, in pixels
//
// # Concurrency
//
// Nothing in the package blocks. Canvas, Accumulator and Pixmap are not
// safe for concurrent use; hosts drive them from their event loop thread.
package scribble

// Version is the current version of the library.
const Version = "0.1.0"
