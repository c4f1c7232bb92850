package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind of the core.
var (
	// ErrInvalidValue reports a negative, above-max or max-below-current assignment.
	ErrInvalidValue = errors.New("invalid value")
	// ErrEmptySourceSet reports an aggregate built without any source.
	ErrEmptySourceSet = errors.New("empty source set")
	// ErrDuplicateSource reports a source registered twice in a recursive aggregate.
	ErrDuplicateSource = errors.New("duplicate source")
	// ErrCapacityReached reports a registration beyond the configured capacity.
	ErrCapacityReached = errors.New("capacity reached")
	// ErrNullOperand reports arithmetic on an absent operand.
	ErrNullOperand = errors.New("null operand")
	// ErrUnsupportedNumericType reports a value outside the supported representations.
	ErrUnsupportedNumericType = errors.New("unsupported numeric type")
	// ErrNoDataYet reports a prediction requested before any sample was observed.
	ErrNoDataYet = errors.New("no data yet")
	// ErrUnableToPredict reports a degenerate termination forecast.
	ErrUnableToPredict = errors.New("unable to predict")
)

// ValueError describes a rejected value assignment. It always unwraps to
// ErrInvalidValue.
type ValueError struct {
	// Field is the name of the assigned quantity (e.g. "current", "max").
	Field string
	// Value is the textual form of the rejected value.
	Value string
	// Reason explains the violated invariant.
	Reason string
}

// Error returns a formatted message describing the rejected value.
func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidValue.
func (e *ValueError) Unwrap() error { return ErrInvalidValue }

// NewValueError creates a ValueError for the given field. The value is
// rendered with fmt, so any numeric representation can be passed.
func NewValueError(field string, value any, format string, a ...any) error {
	return &ValueError{
		Field:  field,
		Value:  fmt.Sprint(value),
		Reason: fmt.Sprintf(format, a...),
	}
}

// CapacityError reports a registration attempted once Capacity entries are
// already registered.
type CapacityError struct {
	Capacity int
}

// Error returns a formatted message describing the capacity limit.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity reached: already %d entries registered", e.Capacity)
}

// Unwrap returns ErrCapacityReached.
func (e *CapacityError) Unwrap() error { return ErrCapacityReached }

// PredictionError explains why a termination forecast could not be produced.
type PredictionError struct {
	// Reason is a short description of the degenerate situation.
	Reason string
	// Iterations is the number of secant iterations performed before failing.
	Iterations int
}

// Error returns a formatted message describing the prediction failure.
func (e *PredictionError) Error() string {
	return fmt.Sprintf("unable to predict after %d iterations: %s", e.Iterations, e.Reason)
}

// Unwrap returns ErrUnableToPredict.
func (e *PredictionError) Unwrap() error { return ErrUnableToPredict }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsPredictionUnavailable reports whether err is one of the conditions a
// forecasting caller should treat as "prediction temporarily unavailable"
// rather than a failure.
func IsPredictionUnavailable(err error) bool {
	return errors.Is(err, ErrNoDataYet) || errors.Is(err, ErrUnableToPredict)
}
