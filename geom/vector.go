package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Vector2D is a 2D vector with finite components.
//
// The zero value is the zero vector. Components can only be changed through
// SetX and SetY, which keep the finiteness invariant. Vector2D is a small
// value type; copy it freely. Normalize, SetX and SetY mutate their receiver,
// so a single instance must not be shared between goroutines without
// synchronization.
type Vector2D struct {
	x, y float64
}

// NewVector2D returns the vector (x, y), or an *InvalidComponentError if
// either component is NaN or infinite.
func NewVector2D(x, y float64) (Vector2D, error) {
	if err := checkFinite("x", x); err != nil {
		return Vector2D{}, err
	}
	if err := checkFinite("y", y); err != nil {
		return Vector2D{}, err
	}
	return Vector2D{x: x, y: y}, nil
}

// MustVector2D is like NewVector2D but panics on invalid components.
func MustVector2D(x, y float64) Vector2D {
	v, err := NewVector2D(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// FromNumbers builds a vector from any integer or floating point pair, such
// as the int cursor position reported by a windowing library.
func FromNumbers[T constraints.Integer | constraints.Float](x, y T) (Vector2D, error) {
	return NewVector2D(float64(x), float64(y))
}

// ParseVector2D converts two dynamically typed values into a vector. It
// accepts Go numbers, numeric strings, json.Number, booleans (true is 1,
// false is 0) and fmt.Stringer values whose text is a number. Anything else,
// including nil and non-finite results, fails with *InvalidComponentError.
func ParseVector2D(x, y any) (Vector2D, error) {
	fx, err := toComponent("x", x)
	if err != nil {
		return Vector2D{}, err
	}
	fy, err := toComponent("y", y)
	if err != nil {
		return Vector2D{}, err
	}
	return Vector2D{x: fx, y: fy}, nil
}

// X returns the x component.
func (v Vector2D) X() float64 { return v.x }

// Y returns the y component.
func (v Vector2D) Y() float64 { return v.y }

// SetX replaces the x component. An invalid value leaves v unchanged.
func (v *Vector2D) SetX(x float64) error {
	if err := checkFinite("x", x); err != nil {
		return err
	}
	v.x = x
	return nil
}

// SetY replaces the y component. An invalid value leaves v unchanged.
func (v *Vector2D) SetY(y float64) error {
	if err := checkFinite("y", y); err != nil {
		return err
	}
	v.y = y
	return nil
}

// Magnitude returns the Euclidean length sqrt(x² + y²), without
// intermediate overflow or underflow. It is +Inf only when the true length
// exceeds the float64 range.
func (v Vector2D) Magnitude() float64 {
	return math.Hypot(v.x, v.y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.x == 0 && v.y == 0
}

// Normalized returns a unit vector with the direction of v. It fails with
// ErrDivisionByZero for the zero vector instead of returning NaN components.
func (v Vector2D) Normalized() (Vector2D, error) {
	m := v.Magnitude()
	if m == 0 {
		Logger().Debug("geom: normalize zero vector")
		return Vector2D{}, ErrDivisionByZero
	}
	if math.IsInf(m, 0) {
		// Both components are finite, so half of each has a finite length.
		h := Vector2D{x: v.x / 2, y: v.y / 2}
		m = h.Magnitude()
		return Vector2D{x: h.x / m, y: h.y / m}, nil
	}
	return Vector2D{x: v.x / m, y: v.y / m}, nil
}

// Normalize scales v to unit length in place and returns v for chaining.
// On ErrDivisionByZero v is left unchanged. Use Normalized when the original
// vector is still needed.
func (v *Vector2D) Normalize() (*Vector2D, error) {
	n, err := v.Normalized()
	if err != nil {
		return v, err
	}
	*v = n
	return v, nil
}

// Add returns v + w. Add, Sub and Scale do not check for overflow: a result
// beyond the float64 range has infinite components. AddValue and ScaleValue
// report that case as *InvalidComponentError instead.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D{x: v.x + w.x, y: v.y + w.y}
}

// Sub returns v - w.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D{x: v.x - w.x, y: v.y - w.y}
}

// Scale returns v multiplied by k.
func (v Vector2D) Scale(k float64) Vector2D {
	return Vector2D{x: v.x * k, y: v.y * k}
}

// Dot returns the dot product of v and w.
func (v Vector2D) Dot(w Vector2D) float64 {
	return v.x*w.x + v.y*w.y
}

// AddValue is Add for an operand of unknown static type. other must be a
// Vector2D or a non-nil *Vector2D. A sum that overflows fails with
// *InvalidComponentError.
func (v Vector2D) AddValue(other any) (Vector2D, error) {
	switch w := other.(type) {
	case Vector2D:
		return NewVector2D(v.x+w.x, v.y+w.y)
	case *Vector2D:
		if w != nil {
			return NewVector2D(v.x+w.x, v.y+w.y)
		}
	}
	return Vector2D{}, &TypeMismatchError{Op: "add", Value: other}
}

// ScaleValue is Scale for an operand of unknown static type. k must be one
// of Go's integer or floating point types; strings, booleans and other
// types fail with *TypeMismatchError. A non-finite factor or a product that
// overflows fails with *InvalidComponentError.
func (v Vector2D) ScaleValue(k any) (Vector2D, error) {
	f, err := scalar(k)
	if err != nil {
		return Vector2D{}, err
	}
	return NewVector2D(v.x*f, v.y*f)
}

// Approx reports whether v and w differ by at most eps in each component.
func (v Vector2D) Approx(w Vector2D, eps float64) bool {
	return math.Abs(v.x-w.x) <= eps && math.Abs(v.y-w.y) <= eps
}

// Point returns v as a screen-space point.
func (v Vector2D) Point() Point {
	return Point{X: v.x, Y: v.y}
}

func (v Vector2D) String() string {
	return fmt.Sprintf("Vector2D(%g, %g)", v.x, v.y)
}

func clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
