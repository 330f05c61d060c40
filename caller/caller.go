package caller

import "fmt"

// Name returns the symbol of the function that called the caller of Name,
// or "" when it cannot be resolved.
//
//go:noinline
func Name() string {
	id, err := Default().resolve(0)
	if err != nil {
		return ""
	}

	return id.Function
}

// NameAt is Name for depth levels further up the stack.
//
//go:noinline
func NameAt(depth int) (string, error) {
	if err := checkDepth(depth); err != nil {
		return "", err
	}

	id, err := Default().resolve(depth)
	if err != nil {
		return "", err
	}

	return id.Function, nil
}

// Identify returns the identity of the function that called the caller of
// Identify. It fails with ErrUnresolved when no strategy can answer.
//
//go:noinline
func Identify() (Identity, error) {
	return Default().identify(0)
}

// IdentifyAt is Identify for depth levels further up the stack.
//
//go:noinline
func IdentifyAt(depth int) (Identity, error) {
	if err := checkDepth(depth); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	return Default().identify(depth)
}

// Package returns the import path of the package of the function that
// called the caller of Package.
//
//go:noinline
func Package() (string, error) {
	return Default().packageOf(0)
}

// PackageAt is Package for depth levels further up the stack.
//
//go:noinline
func PackageAt(depth int) (string, error) {
	if err := checkDepth(depth); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	return Default().packageOf(depth)
}

// Calibrations reports how the process-wide resolver was calibrated.
func Calibrations() []Calibration {
	return Default().Calibrations()
}
