//go:build sdl2

package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/scribble"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	hostName  = "sdl2"
	targetFPS = 60
)

type sdlWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int
}

// runHost presents the session canvas in an SDL2 window until it is closed.
func runHost(c *cli, s *session) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	wind, err := newSDLWindow(c.Title, c.Width, c.Height)
	if err != nil {
		return err
	}
	defer wind.destroy()

	sync := newFrameSynchronizer(targetFPS)
	for {
		if quit := wind.pollEvents(s); quit {
			return nil
		}
		if err := wind.present(s); err != nil {
			return err
		}
		sync.maySleep()
	}
}

func newSDLWindow(title string, width, height int) (*sdlWindow, error) {
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, fmt.Errorf("sdl create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("sdl create renderer: %w", err)
	}

	return &sdlWindow{window: window, renderer: renderer}, nil
}

// pollEvents drains the SDL queue into the session and reports whether
// the window was closed.
func (wind *sdlWindow) pollEvents(s *session) bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.MouseMotionEvent:
			s.handle(scribble.PointerMoved{X: float64(ev.X), Y: float64(ev.Y)})

		case *sdl.MouseButtonEvent:
			s.handle(scribble.ButtonChanged{
				Button:  sdlButton(ev.Button),
				Pressed: ev.State == sdl.PRESSED,
			})
			// The press position is the first sample of the stroke.
			if ev.State == sdl.PRESSED {
				s.handle(scribble.PointerMoved{X: float64(ev.X), Y: float64(ev.Y)})
			}

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				break
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				quit = true
			case sdl.K_SPACE:
				s.clear()
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.handle(scribble.Resized{Width: int(ev.Data1), Height: int(ev.Data2)})
			}
		}
	}
	return quit
}

// present runs one Redraw and shows the pixmap.
func (wind *sdlWindow) present(s *session) error {
	sc := s.sc
	data := sc.Redraw()
	s.frame()
	w, h := sc.Size()
	if w == 0 || h == 0 {
		return nil
	}

	if wind.texture == nil || wind.texW != w || wind.texH != h {
		if wind.texture != nil {
			_ = wind.texture.Destroy()
		}
		// ABGR8888 is R, G, B, A in memory on little-endian hosts.
		tex, err := wind.renderer.CreateTexture(
			sdl.PIXELFORMAT_ABGR8888,
			sdl.TEXTUREACCESS_STREAMING,
			int32(w),
			int32(h),
		)
		if err != nil {
			return fmt.Errorf("sdl create texture: %w", err)
		}
		wind.texture, wind.texW, wind.texH = tex, w, h
		slog.Debug("sdl texture created", "width", w, "height", h)
	}

	if sc.Dirty() {
		pixels, pitch, err := wind.texture.Lock(nil)
		if err != nil {
			return fmt.Errorf("sdl lock texture: %w", err)
		}
		stride := sc.Pixmap().Stride()
		for row := range h {
			copy(pixels[row*pitch:row*pitch+stride], data[row*stride:(row+1)*stride])
		}
		wind.texture.Unlock()
		sc.MarkClean()
	}

	_ = wind.renderer.Clear()
	_ = wind.renderer.Copy(wind.texture, nil, nil)
	wind.renderer.Present()
	return nil
}

func (wind *sdlWindow) destroy() {
	if wind.texture != nil {
		_ = wind.texture.Destroy()
	}
	_ = wind.renderer.Destroy()
	_ = wind.window.Destroy()
}

func sdlButton(b uint8) scribble.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return scribble.ButtonPrimary
	case sdl.BUTTON_RIGHT:
		return scribble.ButtonSecondary
	default:
		return scribble.ButtonMiddle
	}
}

// frameSynchronizer sleeps away the rest of each frame.
type frameSynchronizer struct {
	prevTicks, usPerFrame int64
}

func newFrameSynchronizer(targetFPS float64) *frameSynchronizer {
	return &frameSynchronizer{
		prevTicks:  int64(sdl.GetTicks()) * 1000,
		usPerFrame: int64(1000000.0 / targetFPS),
	}
}

func (fs *frameSynchronizer) maySleep() {
	cur := int64(sdl.GetTicks()) * 1000
	if cur < fs.prevTicks {
		return
	}
	diff := fs.usPerFrame - (cur - fs.prevTicks)
	if diff > 1000 {
		sdl.Delay(uint32(diff / 1000))
	}
	fs.prevTicks += fs.usPerFrame
}
