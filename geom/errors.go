package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors for geom package.
var (
	// ErrInvalidComponent is returned when a vector component is not a finite real number.
	ErrInvalidComponent = errors.New("geom: invalid vector component")

	// ErrTypeMismatch is returned when an operand has the wrong type for an operation.
	ErrTypeMismatch = errors.New("geom: operand type mismatch")

	// ErrDivisionByZero is returned when a zero magnitude is needed as a divisor,
	// including the bisector of two antiparallel arms.
	ErrDivisionByZero = errors.New("geom: division by zero magnitude")

	// ErrDomain is returned when an inverse trigonometric argument is outside [-1, 1].
	ErrDomain = errors.New("geom: argument outside inverse trigonometric domain")
)

// InvalidComponentError reports the axis and value that failed validation.
type InvalidComponentError struct {
	Axis  string // "x", "y" or "scale"
	Value any
	Err   error // underlying conversion error, if any
}

func (e *InvalidComponentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geom: invalid %s component %#v: %v", e.Axis, e.Value, e.Err)
	}
	return fmt.Sprintf("geom: invalid %s component %#v", e.Axis, e.Value)
}

// Is makes errors.Is(err, ErrInvalidComponent) true.
func (e *InvalidComponentError) Is(target error) bool {
	return target == ErrInvalidComponent
}

func (e *InvalidComponentError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned by the dynamically typed operations when the
// operand cannot take part in Op.
type TypeMismatchError struct {
	Op    string
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("geom: %s: unsupported operand type %T", e.Op, e.Value)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
