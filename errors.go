package mobius

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a Strip is constructed with a
// parameter outside its valid range.
var ErrInvalidParameter = errors.New("mobius: invalid parameter")

// ParameterError describes a rejected construction parameter.
// It matches ErrInvalidParameter under errors.Is.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("mobius: invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
