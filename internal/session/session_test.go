package session

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"protractor/geom"
)

func TestSession_CaptureCycle(t *testing.T) {
	s := New(nil)
	if s.Stage() != Empty {
		t.Fatalf("new session stage = %v", s.Stage())
	}

	steps := []struct {
		p    geom.Point
		want Stage
	}{
		{geom.Pt(0, 0), HasBegin},
		{geom.Pt(10, 0), HasCross},
		{geom.Pt(10, 10), Complete},
		{geom.Pt(5, 5), HasBegin},
	}
	for i, st := range steps {
		if got := s.Capture(st.p); got != st.want {
			t.Errorf("capture %d stage = %v, want %v", i, got, st.want)
		}
	}
	if pts := s.Points(); len(pts) != 1 || pts[0] != geom.Pt(5, 5) {
		t.Errorf("after restart points = %v", pts)
	}
}

func TestSession_Undo(t *testing.T) {
	s := New(nil)
	if s.Undo() {
		t.Error("Undo on empty session reported true")
	}
	s.Capture(geom.Pt(1, 1))
	s.Capture(geom.Pt(2, 2))
	if !s.Undo() || s.Stage() != HasBegin {
		t.Errorf("after undo stage = %v", s.Stage())
	}
	if last, ok := s.Last(); !ok || last != geom.Pt(1, 1) {
		t.Errorf("Last() = %v, %v", last, ok)
	}
	s.Reset()
	if _, ok := s.Last(); ok || s.Stage() != Empty {
		t.Error("Reset left points behind")
	}
}

func TestSession_PointsIsCopy(t *testing.T) {
	s := New(nil)
	s.Capture(geom.Pt(1, 1))
	pts := s.Points()
	pts[0] = geom.Pt(9, 9)
	if last, _ := s.Last(); last != geom.Pt(1, 1) {
		t.Error("Points() exposed internal storage")
	}
}

func TestSession_Frame(t *testing.T) {
	s := New(nil)
	cursor := geom.Pt(10, 10)

	f := s.Frame(cursor, geom.DefaultMarkerRadius, false)
	if f.Stage != Empty || f.Measured || f.Err != nil {
		t.Errorf("empty frame = %+v", f)
	}

	s.Capture(geom.Pt(0, 0))
	f = s.Frame(cursor, geom.DefaultMarkerRadius, false)
	if f.Begin != geom.Pt(0, 0) || f.Measured {
		t.Errorf("begin frame = %+v", f)
	}

	s.Capture(geom.Pt(10, 0))
	f = s.Frame(cursor, geom.DefaultMarkerRadius, false)
	if !f.Live || f.End != cursor || !f.Measured {
		t.Fatalf("live frame = %+v", f)
	}
	if math.Abs(f.Measurement.Degrees-90) > 1e-9 {
		t.Errorf("live angle = %v, want 90", f.Measurement.Degrees)
	}
	if f.HasRotateGuide || f.HasSplitGuides {
		t.Error("guides computed without being requested")
	}

	s.Capture(geom.Pt(20, 0))
	f = s.Frame(cursor, geom.DefaultMarkerRadius, false)
	if f.Live || f.End != geom.Pt(20, 0) {
		t.Errorf("complete frame end = %v, live %v", f.End, f.Live)
	}
	if !f.Measured || f.Measurement.Kind != geom.Straight || f.Measurement.HasBisector {
		t.Errorf("straight frame = %+v", f.Measurement)
	}
}

func TestSession_FrameDegenerate(t *testing.T) {
	s := New(nil)
	s.Capture(geom.Pt(0, 0))
	s.Capture(geom.Pt(10, 0))

	f := s.Frame(geom.Pt(10, 0), geom.DefaultMarkerRadius, true)
	if f.Measured || !errors.Is(f.Err, geom.ErrDivisionByZero) {
		t.Errorf("cursor on vertex: measured %v, err %v", f.Measured, f.Err)
	}
	if f.HasRotateGuide || f.HasSplitGuides {
		t.Error("guides computed for a degenerate frame")
	}
}

func TestSession_FrameGuides(t *testing.T) {
	s := New(nil)
	s.Capture(geom.Pt(10, 0))
	s.Capture(geom.Pt(0, 0))
	s.Capture(geom.Pt(0, -10))

	f := s.Frame(geom.Pt(0, 0), 20, true)
	if !f.HasRotateGuide {
		t.Fatal("no rotate guide")
	}
	// The begin arm lies on an axis, so the check ray lands on the end arm.
	if math.Abs(f.RotateGuide.X) > 1e-9 || math.Abs(f.RotateGuide.Y+20) > 1e-9 {
		t.Errorf("RotateGuide = %v, want (0, -20)", f.RotateGuide)
	}
	if !f.HasSplitGuides {
		t.Fatal("no split guides")
	}
	for _, g := range f.SplitGuides {
		if math.IsNaN(g.X) || math.IsNaN(g.Y) {
			t.Errorf("split guide %v is NaN", g)
		}
	}
}

func TestStatus(t *testing.T) {
	s := New(nil)
	if got := Status(s.Frame(geom.Pt(3, 4), 50, false)); !strings.Contains(got, "start point") || !strings.Contains(got, "Cursor: 3, 4") {
		t.Errorf("empty status = %q", got)
	}

	s.Capture(geom.Pt(10, 0))
	s.Capture(geom.Pt(0, 0))
	got := Status(s.Frame(geom.Pt(0, 10), 50, false))
	for _, want := range []string{"end point", "Angle: 90.00°", "right"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q does not contain %q", got, want)
		}
	}

	got = Status(s.Frame(geom.Pt(0, 0), 50, false))
	if !strings.Contains(got, "undefined") {
		t.Errorf("degenerate status = %q", got)
	}
}

func TestStage_String(t *testing.T) {
	for st, want := range map[Stage]string{Empty: "empty", HasBegin: "begin", HasCross: "cross", Complete: "complete", Stage(9): "unknown"} {
		if got := st.String(); got != want {
			t.Errorf("Stage(%d).String() = %q, want %q", int(st), got, want)
		}
	}
}

func TestFade(t *testing.T) {
	f := Fade{From: 1, To: 127, Duration: 300 * time.Millisecond}
	if f.Value() != 1 || f.Done() {
		t.Fatalf("initial value = %v", f.Value())
	}

	prev := f.Value()
	for i := 0; i < 17; i++ {
		v := f.Step(time.Second / 60)
		if v < prev {
			t.Fatalf("fade went backwards: %v after %v", v, prev)
		}
		prev = v
	}
	if prev <= 64 || prev >= 127 {
		t.Errorf("value after 283ms = %v, want past the midpoint but not done", prev)
	}
	if got := f.Step(20 * time.Millisecond); got != 127 || !f.Done() {
		t.Errorf("final value = %v, done %v", got, f.Done())
	}
	if got := f.Step(time.Second); got != 127 {
		t.Errorf("value after the end = %v", got)
	}

	instant := Fade{From: 0, To: 5}
	if instant.Value() != 5 || !instant.Done() {
		t.Error("zero duration fade not immediately done")
	}
}
