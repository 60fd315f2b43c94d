// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// EmptyInputError signals that no text remained after trimming and
// zone-suffix stripping. It carries the user-facing guidance message.
type EmptyInputError struct{}

// Error implements the error interface
func (e *EmptyInputError) Error() string {
	return "please enter a time value, e.g. \"now\", \"1548854618\" or \"2019-01-30 21:24,utc\""
}

// UnrecognizedFormatError signals that every pipeline candidate declined
// or produced an invalid instant for the given text.
type UnrecognizedFormatError struct {
	Text string
}

// Error implements the error interface
func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("Could not find date format for %s", e.Text)
}

// InvalidZoneError signals that a textual zone specifier could not be
// resolved to either a fixed offset or a known named zone.
type InvalidZoneError struct {
	Spec string
}

// Error implements the error interface
func (e *InvalidZoneError) Error() string {
	return fmt.Sprintf("unknown timezone specifier: %s", e.Spec)
}

// IsEmptyInput checks if an error is an EmptyInputError
func IsEmptyInput(err error) bool {
	var emptyErr *EmptyInputError
	return errors.As(err, &emptyErr)
}

// IsUnrecognizedFormat checks if an error is an UnrecognizedFormatError
func IsUnrecognizedFormat(err error) bool {
	var formatErr *UnrecognizedFormatError
	return errors.As(err, &formatErr)
}

// IsInvalidZone checks if an error is an InvalidZoneError
func IsInvalidZone(err error) bool {
	var zoneErr *InvalidZoneError
	return errors.As(err, &zoneErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
