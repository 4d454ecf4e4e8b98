package recording

import (
	"errors"

	"github.com/gogpu/scribble"
)

// ErrNilCanvas is returned by Playback when given a nil canvas.
var ErrNilCanvas = errors.New("recording: nil canvas")

// Recorder captures input events as commands. Use FinishRecording to
// obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	frames        int
}

// NewRecorder creates a Recorder for a canvas of the given initial size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Handle records one input event. Hosts call it next to Canvas.Handle
// and call Frame next to Canvas.Redraw.
func (r *Recorder) Handle(ev scribble.Event) {
	if cmd := commandFromEvent(ev); cmd != nil {
		r.commands = append(r.commands, cmd)
	}
}

// MoveTo records a pointer move.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveCommand{X: x, Y: y})
}

// Press records a primary button press at (x, y). The button goes down
// first so the position counts as a sample.
func (r *Recorder) Press(x, y float64) {
	r.commands = append(r.commands, ButtonCommand{Button: scribble.ButtonPrimary, Pressed: true})
	r.MoveTo(x, y)
}

// Release records a primary button release.
func (r *Recorder) Release() {
	r.commands = append(r.commands, ButtonCommand{Button: scribble.ButtonPrimary, Pressed: false})
}

// Resize records a resize.
func (r *Recorder) Resize(width, height int) {
	r.commands = append(r.commands, ResizeCommand{Width: width, Height: height})
}

// Frame records a display refresh.
func (r *Recorder) Frame() {
	r.commands = append(r.commands, FrameCommand{})
	r.frames++
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
		frames:   r.frames,
	}
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	frames        int
}

// Width returns the initial canvas width.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the initial canvas height.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Frames returns the number of recorded display refreshes.
func (r *Recording) Frames() int {
	return r.frames
}

// Playback replays the recording into cv, calling Redraw at every frame
// boundary. Commands after the last frame are applied but not drawn.
func (r *Recording) Playback(cv *scribble.Canvas) error {
	if cv == nil {
		return ErrNilCanvas
	}
	r.play(cv)
	return nil
}

// Render replays the recording into a new canvas of the recorded size.
func (r *Recording) Render(opts ...scribble.Option) *scribble.Canvas {
	cv := scribble.NewCanvas(r.width, r.height, opts...)
	r.play(cv)
	return cv
}

func (r *Recording) play(cv *scribble.Canvas) {
	for _, cmd := range r.commands {
		if _, ok := cmd.(FrameCommand); ok {
			cv.Redraw()
			continue
		}
		if ev, ok := event(cmd); ok {
			cv.Handle(ev)
		}
	}
	scribble.Logger().Debug("recording: playback done", "commands", len(r.commands), "frames", r.frames)
}
