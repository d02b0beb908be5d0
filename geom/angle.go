package geom

import "math"

// DomainTolerance is how far an inverse trigonometric argument may drift
// outside [-1, 1] through rounding and still be clamped instead of rejected.
const DomainTolerance = 1e-9

// unitRatio clamps r into [-1, 1]. Values further out than DomainTolerance,
// and NaN, fail with ErrDomain.
func unitRatio(r float64) (float64, error) {
	if math.IsNaN(r) || math.Abs(r) > 1+DomainTolerance {
		Logger().Debug("geom: ratio outside inverse trig domain", "ratio", r)
		return 0, ErrDomain
	}
	return clamp(r, -1, 1), nil
}

// AngleBetween returns the unsigned angle between v1 and v2 in radians,
// in [0, π].
//
// Both vectors are normalized before the dot product, so the result does not
// depend on their scale. The cosine ratio is clamped to [-1, 1] before acos,
// so nearly parallel or antiparallel vectors give 0 or π rather than NaN.
// Either vector having zero magnitude fails with ErrDivisionByZero.
func AngleBetween(v1, v2 Vector2D) (float64, error) {
	n1, err1 := v1.Normalized()
	n2, err2 := v2.Normalized()
	if err1 != nil || err2 != nil {
		Logger().Debug("geom: angle with zero vector", "v1", v1, "v2", v2)
		return 0, ErrDivisionByZero
	}
	r, err := unitRatio(n1.Dot(n2))
	if err != nil {
		return 0, err
	}
	return math.Acos(r), nil
}

// Rotate returns the unit vector degrees away from v. clockwise selects the
// sign of θ: true uses +θ, false uses -θ.
//
// The y component is computed as y·cosθ - x·sinθ, not the rotation matrix
// row x·sinθ + y·cosθ. For vectors on an axis the result is still θ away
// from v, although the rotational sense differs between the x and y axes;
// for other directions it is not a rotation at all (a diagonal vector maps
// onto its own line). SplitByAngle is a separate formulation with different
// output.
// FIXME: decide with the overlay owners whether to switch to the standard
// matrix; the HUD guide line is the only consumer.
//
// The result is always normalized, so a zero v fails with ErrDivisionByZero.
func Rotate(v Vector2D, degrees float64, clockwise bool) (Vector2D, error) {
	theta := Radians(degrees)
	if !clockwise {
		theta = -theta
	}
	n, err := v.Normalized()
	if err != nil {
		return Vector2D{}, err
	}
	cos, sin := math.Cos(theta), math.Sin(theta)
	raw := Vector2D{
		x: n.x*cos - n.y*sin,
		y: n.y*cos - n.x*sin,
	}
	return raw.Normalized()
}

// SplitByAngle returns two vectors on either side of v, found by shifting
// the angle decomposition of v's unit components by degrees:
//
//	a = asin(x/|v|), b = acos(y/|v|), h = degrees in radians
//	first  = (sin(a-h), cos(b-h))
//	second = (sin(a+h), cos(b+h))
//
// The results are not normalized. Callers typically pass half of the angle
// they want to span. A zero v fails with ErrDivisionByZero; component ratios
// outside the asin/acos domain fail with ErrDomain.
func SplitByAngle(v Vector2D, degrees float64) (Vector2D, Vector2D, error) {
	n, err := v.Normalized()
	if err != nil {
		Logger().Debug("geom: split zero vector")
		return Vector2D{}, Vector2D{}, err
	}
	rx, err := unitRatio(n.x)
	if err != nil {
		return Vector2D{}, Vector2D{}, err
	}
	ry, err := unitRatio(n.y)
	if err != nil {
		return Vector2D{}, Vector2D{}, err
	}

	a, b, h := math.Asin(rx), math.Acos(ry), Radians(degrees)
	first := Vector2D{x: math.Sin(a - h), y: math.Cos(b - h)}
	second := Vector2D{x: math.Sin(a + h), y: math.Cos(b + h)}
	return first, second, nil
}
