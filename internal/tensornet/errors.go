package tensornet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented indicates a mode that is part of the
	// enumeration but has no parameter record yet.
	ErrNotImplemented = errors.New("tensornet: integration mode not yet implemented")

	// ErrUnknownMode indicates a mode value outside the enumeration.
	ErrUnknownMode = errors.New("tensornet: unknown integration mode")

	// ErrNotPositive indicates a parameter field that failed the
	// positivity test.
	ErrNotPositive = errors.New("tensornet: parameter must be positive")

	// ErrFieldMismatch indicates a field map that does not match the
	// declared field set of the target parameter record.
	ErrFieldMismatch = errors.New("tensornet: field mismatch")
)

// UnknownModeError names the offending mode value.
type UnknownModeError struct {
	Mode IntegrationMode
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("tensornet: invalid mode %q", string(e.Mode))
}

func (e *UnknownModeError) Unwrap() error { return ErrUnknownMode }

// PositivityError reports a non-positive parameter field by its
// display name.
type PositivityError struct {
	Name string
}

func (e *PositivityError) Error() string {
	return e.Name + " must be positive!"
}

func (e *PositivityError) Unwrap() error { return ErrNotPositive }

// FieldError reports a missing, unknown, or mistyped field supplied
// to GenerateParameters.
type FieldError struct {
	Mode   IntegrationMode
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("tensornet: mode %s: field %q %s", string(e.Mode), e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrFieldMismatch }

// positivityTest rejects values that are not strictly positive. The
// display name ends up verbatim in the error message.
func positivityTest[T int | float64](value T, name string) error {
	if value <= 0 {
		return &PositivityError{Name: name}
	}
	return nil
}
