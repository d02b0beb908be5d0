// Package session tracks the points captured by the protractor overlay and
// turns them into per-frame geometry.
package session

import (
	"errors"
	"log/slog"

	"protractor/geom"
)

// Stage is how many points of a measurement have been captured.
type Stage int

const (
	Empty    Stage = iota // waiting for the start point
	HasBegin              // waiting for the vertex
	HasCross              // end follows the cursor
	Complete              // all three points captured
)

func (s Stage) String() string {
	switch s {
	case Empty:
		return "empty"
	case HasBegin:
		return "begin"
	case HasCross:
		return "cross"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Session holds the begin, cross (vertex) and end points in capture order.
// It is owned by the game loop and not safe for concurrent use.
type Session struct {
	points [3]geom.Point
	n      int
	log    *slog.Logger
}

// New returns an empty session. A nil logger discards output.
func New(log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{log: log}
}

// Stage returns the current capture stage.
func (s *Session) Stage() Stage { return Stage(s.n) }

// Points returns a copy of the captured points in order.
func (s *Session) Points() []geom.Point {
	return append([]geom.Point(nil), s.points[:s.n]...)
}

// Last returns the most recently captured point.
func (s *Session) Last() (geom.Point, bool) {
	if s.n == 0 {
		return geom.Point{}, false
	}
	return s.points[s.n-1], true
}

// Capture records p as the next point. Capturing after a complete
// measurement starts a new one with p as its begin point.
func (s *Session) Capture(p geom.Point) Stage {
	if s.n == len(s.points) {
		s.n = 0
	}
	s.points[s.n] = p
	s.n++
	s.log.Info("point captured", "stage", s.Stage(), "x", p.X, "y", p.Y)
	return s.Stage()
}

// Undo drops the last captured point. It reports false if there was none.
func (s *Session) Undo() bool {
	if s.n == 0 {
		return false
	}
	s.n--
	s.log.Debug("capture undone", "stage", s.Stage())
	return true
}

// Reset drops every captured point.
func (s *Session) Reset() {
	s.n = 0
}

// Frame is the geometry to draw for one frame.
type Frame struct {
	Stage  Stage
	Cursor geom.Point

	Begin, Cross, End geom.Point
	// Live is true when End is the cursor rather than a captured point.
	Live bool

	// Measured is true when Measurement holds a valid result. Err explains
	// why it is false once begin and cross are known.
	Measured    bool
	Measurement geom.Measurement
	Err         error

	// Check rays, filled when guides are requested and a measurement exists:
	// the begin arm turned by the measured angle with geom.Rotate, and the
	// two rays geom.SplitByAngle places around the bisector.
	RotateGuide    geom.Point
	HasRotateGuide bool
	SplitGuides    [2]geom.Point
	HasSplitGuides bool
}

// Frame computes the frame for the current cursor position. radius is the
// bisector marker distance and the length of the guide rays.
func (s *Session) Frame(cursor geom.Point, radius float64, guides bool) Frame {
	f := Frame{Stage: s.Stage(), Cursor: cursor}
	switch s.n {
	case 0:
		return f
	case 1:
		f.Begin = s.points[0]
		return f
	case 2:
		f.Begin, f.Cross, f.End, f.Live = s.points[0], s.points[1], cursor, true
	default:
		f.Begin, f.Cross, f.End = s.points[0], s.points[1], s.points[2]
	}

	m, err := geom.Measure(f.Begin, f.Cross, f.End, radius)
	if err != nil {
		f.Err = err
		if !errors.Is(err, geom.ErrDivisionByZero) && !errors.Is(err, geom.ErrDomain) {
			s.log.Warn("measure failed", "err", err)
		}
		return f
	}
	f.Measured, f.Measurement = true, m

	if guides {
		s.guides(&f, radius)
	}
	return f
}

func (s *Session) guides(f *Frame, radius float64) {
	m := f.Measurement
	arm, err := f.Begin.Sub(f.Cross)
	if err != nil {
		return
	}
	if r, err := geom.Rotate(arm, m.Degrees, m.Signed < 0); err == nil {
		f.RotateGuide, f.HasRotateGuide = f.Cross.Offset(r.Scale(radius)), true
	} else {
		s.log.Debug("rotate guide skipped", "err", err)
	}

	if !m.HasBisector {
		return
	}
	half, err := m.Bisector.Sub(f.Cross)
	if err != nil {
		return
	}
	a, b, err := geom.SplitByAngle(half, m.Degrees/2)
	if err != nil {
		s.log.Debug("split guides skipped", "err", err)
		return
	}
	f.SplitGuides = [2]geom.Point{f.Cross.Offset(a.Scale(radius)), f.Cross.Offset(b.Scale(radius))}
	f.HasSplitGuides = true
}
