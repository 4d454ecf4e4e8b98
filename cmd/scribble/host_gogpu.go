//go:build !sdl2

package main

import (
	"errors"
	"log/slog"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/integration/gpucanvas"
)

const hostName = "gogpu"

// runHost presents the session canvas in a gogpu window. Input callbacks
// and OnDraw run on the main thread, so the canvas needs no locking.
func runHost(c *cli, s *session) error {
	sc := s.sc
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(c.Title).
		WithSize(c.Width, c.Height).
		WithContinuousRender(true))

	canvas, err := gpucanvas.New(sc)
	if err != nil {
		return err
	}

	events := app.EventSource()
	events.OnMouseMove(func(x, y float64) {
		s.handle(scribble.PointerMoved{X: x, Y: y})
	})
	events.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		s.handle(scribble.ButtonChanged{Button: pointerButton(button), Pressed: true})
		s.handle(scribble.PointerMoved{X: x, Y: y})
	})
	events.OnMouseRelease(func(button gpucontext.MouseButton, _, _ float64) {
		s.handle(scribble.ButtonChanged{Button: pointerButton(button), Pressed: false})
	})
	events.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeySpace {
			s.clear()
		}
	})

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if cw, ch := sc.Size(); cw != w || ch != h {
			s.handle(scribble.Resized{Width: w, Height: h})
		}
		err := canvas.RenderTo(dc.AsTextureDrawer())
		if !errors.Is(err, gpucanvas.ErrCanvasClosed) {
			s.frame()
		}
		if err != nil {
			slog.Error("render failed", "error", err)
		}
	})

	app.OnClose(func() {
		if err := canvas.Close(); err != nil {
			slog.Error("close failed", "error", err)
		}
	})

	return app.Run()
}

func pointerButton(b gpucontext.MouseButton) scribble.Button {
	switch b {
	case gpucontext.MouseButtonLeft:
		return scribble.ButtonPrimary
	case gpucontext.MouseButtonRight:
		return scribble.ButtonSecondary
	default:
		return scribble.ButtonMiddle
	}
}
