// Package recording captures scribble input as commands that can be
// replayed into a canvas.
//
// A Recording is a frame-by-frame script of pointer, button and resize
// events. Replaying it into a fresh canvas reproduces the exact pixels
// the live session produced, since rasterization depends only on the
// event sequence and on where frame boundaries fall.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	rec.Press(10, 10)
//	rec.Frame()
//	rec.MoveTo(200, 120)
//	rec.Frame()
//	rec.Release()
//	rec.Frame()
//
//	cv := rec.FinishRecording().Render()
//	img := cv.Pixmap().ToImage()
package recording
