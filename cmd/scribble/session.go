package main

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/gogpu/scribble"
	"github.com/gogpu/scribble/recording"
)

var errReplayMismatch = errors.New("replayed session differs from the live canvas")

// session routes host input into the canvas and, when verifying, into a
// recorder as well.
type session struct {
	sc  *scribble.Canvas
	rec *recording.Recorder // nil unless verifying
}

func newSession(sc *scribble.Canvas, verify bool) *session {
	s := &session{sc: sc}
	if verify {
		w, h := sc.Size()
		s.rec = recording.NewRecorder(w, h)
	}
	return s
}

func (s *session) handle(ev scribble.Event) {
	s.sc.Handle(ev)
	if s.rec != nil {
		s.rec.Handle(ev)
	}
}

// clear starts over on a blank canvas of the same size.
func (s *session) clear() {
	w, h := s.sc.Size()
	s.handle(scribble.Resized{Width: w, Height: h})
}

// frame records that the host ran Redraw.
func (s *session) frame() {
	if s.rec != nil {
		s.rec.Frame()
	}
}

// verify replays the recorded input into a fresh canvas and checks that
// it produces the live pixels.
func (s *session) verify() error {
	if s.rec == nil {
		return nil
	}
	r := s.rec.FinishRecording()
	replay := r.Render(scribble.WithColor(s.sc.Color()))
	if !bytes.Equal(replay.Pixmap().Data(), s.sc.Pixmap().Data()) {
		return errReplayMismatch
	}
	slog.Info("replay verified", "commands", len(r.Commands()), "frames", r.Frames())
	return nil
}
