package geom

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

func checkFinite(axis string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &InvalidComponentError{Axis: axis, Value: f}
	}
	return nil
}

// toComponent converts a dynamically typed value to a finite float64.
// Numbers, numeric strings, json.Number and booleans (true is 1) convert;
// a fmt.Stringer converts through its text.
func toComponent(axis string, value any) (float64, error) {
	if value == nil {
		return 0, &InvalidComponentError{Axis: axis, Value: value}
	}
	in := value
	if s, ok := value.(fmt.Stringer); ok {
		in = s.String()
	}
	f, err := cast.ToFloat64E(in)
	if err != nil {
		return 0, &InvalidComponentError{Axis: axis, Value: value, Err: err}
	}
	if err := checkFinite(axis, f); err != nil {
		return 0, &InvalidComponentError{Axis: axis, Value: value}
	}
	return f, nil
}

// scalar converts a scale factor. Only Go integer and floating point types
// are factors.
func scalar(k any) (float64, error) {
	switch k.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
	default:
		return 0, &TypeMismatchError{Op: "scale", Value: k}
	}
	f, err := cast.ToFloat64E(k)
	if err != nil {
		return 0, &TypeMismatchError{Op: "scale", Value: k}
	}
	if err := checkFinite("scale", f); err != nil {
		return 0, err
	}
	return f, nil
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
