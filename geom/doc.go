// Package geom is the 2D vector geometry behind the protractor overlay.
//
// # Overview
//
// geom provides a validated vector type, Vector2D, and the handful of
// operations the overlay needs to measure an angle between three clicked
// screen points:
//
//   - AngleBetween: unsigned angle between two vectors, in [0, π]
//   - Rotate: unit vector a given number of degrees away from another
//   - SplitByAngle: the pair of vectors on either side of a vector
//   - HalfAnglePoint: the bisector marker position at a vertex
//   - Measure: all of the above for one begin/vertex/end triple
//
// geom never draws and holds no state besides an optional logger.
//
// # Quick Start
//
//	begin, cross, end := geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)
//	m, err := geom.Measure(begin, cross, end, geom.DefaultMarkerRadius)
//	if err != nil {
//	    // coincident points: skip this frame
//	}
//	fmt.Printf("%.1f° %s\n", m.Degrees, m.Kind)
//
// # Errors
//
// Operations never return NaN. Degenerate input is reported with the
// sentinel errors ErrDivisionByZero (zero-length vectors, antiparallel
// arms) and ErrDomain (inverse trigonometric arguments outside [-1, 1]).
// Invalid components are reported as *InvalidComponentError, wrong
// dynamically typed operands as *TypeMismatchError. Use errors.Is and
// errors.As to inspect them.
//
// # Concurrency
//
// All functions are safe for concurrent use. The mutating methods
// (*Vector2D).Normalize, SetX and SetY change their receiver and need
// external synchronization if the same vector is shared.
package geom
