package session

import (
	"errors"
	"fmt"
	"strings"

	"protractor/geom"
)

// Status returns the HUD text for f.
func Status(f Frame) string {
	var b strings.Builder
	switch f.Stage {
	case Empty:
		b.WriteString("Click the start point.")
	case HasBegin:
		b.WriteString("Click the vertex.")
	case HasCross:
		b.WriteString("Click the end point.")
	case Complete:
		b.WriteString("Click to start a new measurement.")
	}
	b.WriteString("  Right click: undo  G: guides  Q: quit\n")

	switch {
	case f.Measured:
		m := f.Measurement
		fmt.Fprintf(&b, "Angle: %.2f° (%.4f rad, %s)  Signed: %+.2f°", m.Degrees, m.Radians, m.Kind, geom.Degrees(m.Signed))
	case errors.Is(f.Err, geom.ErrDivisionByZero):
		b.WriteString("Angle: undefined, a point sits on the vertex")
	case f.Err != nil:
		fmt.Fprintf(&b, "Angle: undefined (%v)", f.Err)
	default:
		fmt.Fprintf(&b, "Cursor: %.0f, %.0f", f.Cursor.X, f.Cursor.Y)
	}
	return b.String()
}
