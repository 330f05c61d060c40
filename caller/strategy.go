package caller

import (
	"fmt"
	"runtime"
)

// Strategy names of the built-in strategies.
const (
	StrategyRuntime = "runtime"
	StrategyStack   = "stack"
)

// Strategy looks up frames of the calling goroutine.
//
// frameAt(skip) returns the frame skip levels above the strategy's own
// internals. How many internal frames a strategy adds is not part of the
// contract; calibration measures it.
type Strategy interface {
	// Name identifies the strategy in calibrations and identities.
	Name() string
	// Check reports whether the strategy can run in this process.
	Check() error

	frameAt(skip int) (Identity, error)
}

// RuntimeStrategy returns the strategy backed by runtime.Callers.
func RuntimeStrategy() Strategy {
	return &runtimeStrategy{}
}

type runtimeStrategy struct{}

func (*runtimeStrategy) Name() string { return StrategyRuntime }

func (*runtimeStrategy) Check() error {
	var pc [1]uintptr
	if runtime.Callers(1, pc[:]) == 0 {
		return fmt.Errorf("%w: runtime.Callers recorded no frames", ErrUnavailable)
	}

	return nil
}

//go:noinline
func (*runtimeStrategy) frameAt(skip int) (Identity, error) {
	if skip < 0 {
		return Identity{}, fmt.Errorf("%w: index %d", ErrOutOfBounds, skip)
	}

	var pc [1]uintptr
	if runtime.Callers(skip, pc[:]) == 0 {
		return Identity{}, fmt.Errorf("%w: no frame at index %d", ErrOutOfBounds, skip)
	}

	frame, _ := runtime.CallersFrames(pc[:]).Next()
	if frame.Function == "" {
		return Identity{}, fmt.Errorf("%w: no symbol at index %d", ErrOutOfBounds, skip)
	}

	return newIdentity(frame.Function, frame.File, frame.Line, StrategyRuntime), nil
}
