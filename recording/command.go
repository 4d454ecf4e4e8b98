package recording

import "github.com/gogpu/scribble"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdMove   CommandType = iota // Pointer moved
	CmdButton                    // Button pressed or released
	CmdResize                    // Drawable resized
	CmdFrame                     // Display refresh
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdMove:   "Move",
	CmdButton: "Button",
	CmdResize: "Resize",
	CmdFrame:  "Frame",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// MoveCommand records a pointer position.
type MoveCommand struct {
	X, Y float64
}

// ButtonCommand records a button transition.
type ButtonCommand struct {
	Button  scribble.Button
	Pressed bool
}

// ResizeCommand records a new drawable size.
type ResizeCommand struct {
	Width, Height int
}

// FrameCommand marks a display refresh: everything before it is drawn by
// one Redraw.
type FrameCommand struct{}

func (MoveCommand) Type() CommandType   { return CmdMove }
func (ButtonCommand) Type() CommandType { return CmdButton }
func (ResizeCommand) Type() CommandType { return CmdResize }
func (FrameCommand) Type() CommandType  { return CmdFrame }

// commandFromEvent converts a scribble event to its command.
func commandFromEvent(ev scribble.Event) Command {
	switch ev := ev.(type) {
	case scribble.PointerMoved:
		return MoveCommand{X: ev.X, Y: ev.Y}
	case scribble.ButtonChanged:
		return ButtonCommand{Button: ev.Button, Pressed: ev.Pressed}
	case scribble.Resized:
		return ResizeCommand{Width: ev.Width, Height: ev.Height}
	}
	return nil
}

// event converts a non-frame command back to a scribble event.
func event(cmd Command) (scribble.Event, bool) {
	switch c := cmd.(type) {
	case MoveCommand:
		return scribble.PointerMoved{X: c.X, Y: c.Y}, true
	case ButtonCommand:
		return scribble.ButtonChanged{Button: c.Button, Pressed: c.Pressed}, true
	case ResizeCommand:
		return scribble.Resized{Width: c.Width, Height: c.Height}, true
	}
	return nil, false
}
