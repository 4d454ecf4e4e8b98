package scribble

import "fmt"

// Button identifies a pointer button.
type Button uint8

// Pointer buttons. Only ButtonPrimary draws.
const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
}

// Event is an input notification a host dispatches into a Canvas.
// The set of events is closed: PointerMoved, ButtonChanged and Resized.
type Event interface {
	isEvent()
}

// PointerMoved reports a pointer position in pixmap pixel space.
type PointerMoved struct {
	X, Y float64
}

// ButtonChanged reports a button press or release.
type ButtonChanged struct {
	Button  Button
	Pressed bool
}

// Resized reports a new drawable size in pixels.
type Resized struct {
	Width, Height int
}

func (PointerMoved) isEvent()  {}
func (ButtonChanged) isEvent() {}
func (Resized) isEvent()       {}
