package geom

import "fmt"

// DefaultMarkerRadius is the distance, in screen units, between the vertex
// and the bisector marker.
const DefaultMarkerRadius = 50.0

// Point is a screen-space coordinate pair. Unlike Vector2D it carries no
// invariant; converting it with Vector validates it.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vector returns p as a position vector.
func (p Point) Vector() (Vector2D, error) {
	return NewVector2D(p.X, p.Y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) (Vector2D, error) {
	return NewVector2D(p.X-q.X, p.Y-q.Y)
}

// Offset returns p moved by v.
func (p Point) Offset(v Vector2D) Point {
	return Point{X: p.X + v.x, Y: p.Y + v.y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// HalfAnglePoint returns the point on the bisector of the angle at cross,
// radius units away from cross. begin and end are the far ends of the two
// arms.
//
// It fails with ErrDivisionByZero when begin or end coincides with cross,
// or when the arms point in exactly opposite directions and the bisector is
// undefined.
func HalfAnglePoint(begin, cross, end Point, radius float64) (Point, error) {
	if err := checkFinite("radius", radius); err != nil {
		return Point{}, err
	}
	half, err := bisector(begin, cross, end)
	if err != nil {
		return Point{}, err
	}
	return cross.Offset(half.Scale(radius)), nil
}

// bisector returns the unit direction that halves the angle at cross.
func bisector(begin, cross, end Point) (Vector2D, error) {
	v1, err := arm(begin, cross)
	if err != nil {
		return Vector2D{}, err
	}
	v2, err := arm(end, cross)
	if err != nil {
		return Vector2D{}, err
	}
	half, err := v1.Add(v2).Normalized()
	if err != nil {
		Logger().Debug("geom: antiparallel arms have no bisector", "begin", begin, "cross", cross, "end", end)
		return Vector2D{}, err
	}
	return half, nil
}

// arm returns the unit vector from cross towards tip.
func arm(tip, cross Point) (Vector2D, error) {
	d, err := tip.Sub(cross)
	if err != nil {
		return Vector2D{}, err
	}
	return d.Normalized()
}
