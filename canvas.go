package scribble

import "github.com/google/uuid"

// Canvas is the drawing session: a pixmap, the stroke accumulator feeding
// it, and the stroke color.
//
// Hosts dispatch input with Handle and call Redraw once per display
// refresh. Handle only updates state; pixels change in Redraw, or in
// Resize, which starts over on a blank pixmap.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	pixmap *Pixmap
	acc    Accumulator
	color  Color

	newID    func() string
	strokeID string

	// dirty is set when pixels changed since the last MarkClean.
	dirty bool
}

// NewCanvas creates a canvas with an opaque white pixmap of the given size.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	return &Canvas{
		pixmap: pixmap,
		color:  options.color,
		newID:  options.newID,
		dirty:  true, // first frame must be uploaded
	}
}

// Pixmap returns the current pixel buffer. A Resize replaces it.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Accumulator returns the stroke state.
func (c *Canvas) Accumulator() *Accumulator {
	return &c.acc
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixmap.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixmap.Height()
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.pixmap.Width(), c.pixmap.Height()
}

// Color returns the stroke color.
func (c *Canvas) Color() Color {
	return c.color
}

// SetColor changes the stroke color for segments drawn from now on.
func (c *Canvas) SetColor(col Color) {
	c.color = col
}

// StrokeID returns the ID of the stroke in progress, or "" between strokes.
func (c *Canvas) StrokeID() string {
	return c.strokeID
}

// Handle applies one input event.
func (c *Canvas) Handle(ev Event) {
	switch ev := ev.(type) {
	case PointerMoved:
		c.acc.Move(Sample{X: ev.X, Y: ev.Y})
	case ButtonChanged:
		if ev.Button == ButtonPrimary {
			c.acc.SetButton(ev.Pressed)
		}
	case Resized:
		c.Resize(ev.Width, ev.Height)
	}
}

// Resize replaces the pixmap with an opaque white one of the new size.
// Previous drawing is discarded. Non-positive sizes are ignored, as
// window systems report them while minimized.
func (c *Canvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		Logger().Warn("scribble: resize ignored", "width", width, "height", height)
		return
	}
	c.pixmap = NewPixmap(width, height)
	c.dirty = true
	Logger().Debug("scribble: canvas resized", "width", width, "height", height)
}

// Redraw converts the samples gathered since the previous call into
// pixels and returns the pixmap bytes for upload.
//
// The returned slice aliases the pixmap; it is valid until the next
// Redraw or Resize.
func (c *Canvas) Redraw() []uint8 {
	_, wasAnchored := c.acc.Anchor()
	pending := c.acc.Pending()

	calls := c.acc.Tick(c.pixmap, c.color)
	if calls > 0 {
		c.dirty = true
	}

	_, anchored := c.acc.Anchor()
	switch {
	case !wasAnchored && anchored:
		c.strokeID = c.newID()
		Logger().Debug("scribble: stroke begin", "stroke", c.strokeID, "samples", pending)
	case wasAnchored && anchored && calls > 0:
		Logger().Debug("scribble: stroke continue", "stroke", c.strokeID, "segments", calls)
	case !anchored && c.strokeID != "":
		Logger().Debug("scribble: stroke end", "stroke", c.strokeID, "segments", calls)
		c.strokeID = ""
	}

	return c.pixmap.Data()
}

// Dirty reports whether pixels changed since the last MarkClean.
func (c *Canvas) Dirty() bool {
	return c.dirty
}

// MarkClean records that the current pixels have been uploaded.
func (c *Canvas) MarkClean() {
	c.dirty = false
}

// newStrokeID returns a random stroke identifier.
func newStrokeID() string {
	return uuid.NewString()
}
