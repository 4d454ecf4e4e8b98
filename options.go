package scribble

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default red strokes
//	cv := scribble.NewCanvas(800, 600)
//
//	// Navy strokes
//	cv := scribble.NewCanvas(800, 600, scribble.WithColor(scribble.RGB(0, 0, 128)))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	color  Color
	newID  func() string
	pixmap *Pixmap
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		color: Red,
		newID: newStrokeID,
	}
}

// WithColor sets the stroke color. The default is Red.
func WithColor(c Color) Option {
	return func(o *canvasOptions) {
		o.color = c
	}
}

// WithPixmap makes the Canvas draw into an existing pixmap instead of
// allocating a white one. The canvas takes its dimensions from pm.
func WithPixmap(pm *Pixmap) Option {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithStrokeIDs replaces the stroke ID generator. Tests use it to get
// deterministic IDs.
func WithStrokeIDs(gen func() string) Option {
	return func(o *canvasOptions) {
		if gen != nil {
			o.newID = gen
		}
	}
}
