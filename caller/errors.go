package caller

import "errors"

var (
	// ErrOutOfBounds is returned for a negative depth or one beyond the stack.
	ErrOutOfBounds = errors.New("invocation depth out of bounds")
	// ErrUnresolved is returned when no strategy can name the caller.
	ErrUnresolved = errors.New("caller cannot be resolved")
	// ErrUnavailable is returned when a strategy failed its capability check
	// or calibration.
	ErrUnavailable = errors.New("caller strategy unavailable")
)
