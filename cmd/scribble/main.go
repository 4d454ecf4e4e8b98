// Command scribble opens a window and draws freehand strokes with the
// primary pointer button.
//
// Usage:
//
//	scribble [--width=800] [--height=600] [--color=red] [--verbose] [--verify]
//
// The default build presents through gogpu. Build with -tags sdl2 to use
// an SDL2 window instead.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gogpu/scribble"
)

type cli struct {
	Width   int    `help:"Initial window width in pixels" default:"800"`
	Height  int    `help:"Initial window height in pixels" default:"600"`
	Title   string `help:"Window title" default:"scribble"`
	Color   string `help:"Stroke color, a CSS name or #rrggbb" default:"red"`
	Verbose bool   `help:"Log stroke and texture events" short:"v"`
	Verify  bool   `help:"On exit, replay the recorded input and check it reproduces the canvas"`

	Version kong.VersionFlag `help:"Print version and exit"`

	strokeColor scribble.Color
}

func (c *cli) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	col, err := scribble.ParseColor(c.Color)
	if err != nil {
		return err
	}
	c.strokeColor = col
	return nil
}

func (c *cli) Run() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	scribble.SetLogger(logger)

	sc := scribble.NewCanvas(c.Width, c.Height, scribble.WithColor(c.strokeColor))
	slog.Info("starting", "host", hostName, "width", c.Width, "height", c.Height, "color", c.strokeColor)

	s := newSession(sc, c.Verify)
	if err := runHost(c, s); err != nil {
		return err
	}
	return s.verify()
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("scribble"),
		kong.Description("Draw freehand strokes with the mouse."),
		kong.Vars{"version": scribble.Version},
	)
	kctx.FatalIfErrorf(kctx.Run())
}
