package geom

import (
	"errors"
	"math"

	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// AngleKind classifies a measured angle.
type AngleKind int

const (
	Acute AngleKind = iota
	Right
	Obtuse
	Straight
)

// RightTolerance is the distance in degrees from 90 (and from 180) within
// which an angle is reported as Right (or Straight).
const RightTolerance = 0.05

func (k AngleKind) String() string {
	switch k {
	case Acute:
		return "acute"
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	case Straight:
		return "straight"
	}
	return "unknown"
}

// Measurement is the angle formed at a vertex by two arms.
type Measurement struct {
	Radians float64 // unsigned, in [0, π]
	Degrees float64
	// Signed is the oriented angle from the begin arm to the end arm in
	// (-π, π], positive counter-clockwise in a y-up frame (so clockwise on
	// a y-down screen).
	Signed float64
	Kind   AngleKind

	// Bisector is the marker point radius units from the vertex. It is
	// only meaningful when HasBisector is true; a straight angle has none.
	Bisector    Point
	HasBisector bool
}

// Measure measures the angle at cross between the arms towards begin and
// end, and places the bisector marker radius units from cross.
//
// Zero-length arms fail with ErrDivisionByZero. Antiparallel arms are not an
// error here: they measure π with HasBisector false.
func Measure(begin, cross, end Point, radius float64) (Measurement, error) {
	v1, err := arm(begin, cross)
	if err != nil {
		return Measurement{}, err
	}
	v2, err := arm(end, cross)
	if err != nil {
		return Measurement{}, err
	}
	rad, err := AngleBetween(v1, v2)
	if err != nil {
		return Measurement{}, err
	}

	m := Measurement{
		Radians: rad,
		Degrees: Degrees(rad),
		Signed:  xy.AngleBetweenOriented(coord(v1.Point()), gogeom.Coord{0, 0}, coord(v2.Point())),
	}
	m.Kind = classify(m.Degrees, v1, v2)

	p, err := HalfAnglePoint(begin, cross, end, radius)
	switch {
	case err == nil:
		m.Bisector, m.HasBisector = p, true
	case errors.Is(err, ErrDivisionByZero):
		m.Kind = Straight
	default:
		return Measurement{}, err
	}
	return m, nil
}

// classify works on the unit arms so that coordinate scale cannot overflow
// the dot products behind xy.IsAcute and xy.IsObtuse.
func classify(degrees float64, v1, v2 Vector2D) AngleKind {
	a, o, b := coord(v1.Point()), gogeom.Coord{0, 0}, coord(v2.Point())
	switch {
	case math.Abs(degrees-180) <= RightTolerance:
		return Straight
	case math.Abs(degrees-90) <= RightTolerance:
		return Right
	case xy.IsAcute(a, o, b):
		return Acute
	case xy.IsObtuse(a, o, b):
		return Obtuse
	}
	return Right
}

func coord(p Point) gogeom.Coord {
	return gogeom.Coord{p.X, p.Y}
}
