package caller

import (
	"errors"
	"fmt"
	"sync"

	"github.com/reflectkit/introspector/logging"
)

// Resolver resolves callers with a fixed, calibrated set of strategies.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	bound        []boundStrategy
	calibrations []Calibration
}

type boundStrategy struct {
	strategy Strategy
	offset   int
}

// New calibrates the configured strategies and returns a Resolver using the
// available ones in order of preference.
func New(opts ...Option) *Resolver {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.strategies == nil {
		cfg.strategies, _ = StrategiesByName("auto")
	}

	log := logging.OrNoop(cfg.logger)

	r := &Resolver{}
	for _, s := range cfg.strategies {
		c := calibrate(s, log)
		r.calibrations = append(r.calibrations, c)

		if c.Available {
			r.bound = append(r.bound, boundStrategy{strategy: s, offset: c.Offset})
		}
	}

	return r
}

var defaultResolver = sync.OnceValue(func() *Resolver { return New() })

// Default returns the process-wide Resolver, calibrated on first use.
func Default() *Resolver {
	return defaultResolver()
}

// Calibrations returns the calibration outcome of every configured strategy.
func (r *Resolver) Calibrations() []Calibration {
	out := make([]Calibration, len(r.calibrations))
	copy(out, r.calibrations)

	return out
}

// Name returns the symbol of the caller, or "" when it cannot be resolved.
//
//go:noinline
func (r *Resolver) Name() string {
	id, err := r.resolve(0)
	if err != nil {
		return ""
	}

	return id.Function
}

// NameAt returns the symbol of the function depth levels above the caller.
//
//go:noinline
func (r *Resolver) NameAt(depth int) (string, error) {
	if err := checkDepth(depth); err != nil {
		return "", err
	}

	id, err := r.resolve(depth)
	if err != nil {
		return "", err
	}

	return id.Function, nil
}

// Identify returns the caller's identity or an error wrapping ErrUnresolved.
//
//go:noinline
func (r *Resolver) Identify() (Identity, error) {
	return r.identify(0)
}

// IdentifyAt returns the identity of the function depth levels above the caller.
//
//go:noinline
func (r *Resolver) IdentifyAt(depth int) (Identity, error) {
	if err := checkDepth(depth); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	return r.identify(depth)
}

// Package returns the import path of the caller's package.
//
//go:noinline
func (r *Resolver) Package() (string, error) {
	return r.packageOf(0)
}

// PackageAt returns the import path of the package depth levels above the caller.
//
//go:noinline
func (r *Resolver) PackageAt(depth int) (string, error) {
	if err := checkDepth(depth); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	return r.packageOf(depth)
}

//go:noinline
func (r *Resolver) packageOf(depth int) (string, error) {
	id, err := r.identify(depth + 1)
	if err != nil {
		return "", err
	}

	return id.Package, nil
}

//go:noinline
func (r *Resolver) identify(depth int) (Identity, error) {
	id, err := r.resolve(depth + 1)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	return id, nil
}

// checkDepth rejects a negative depth as given by the caller, before any
// wrapper adds its own indirection to it.
func checkDepth(depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: depth %d is negative", ErrOutOfBounds, depth)
	}

	return nil
}

// resolve must be called directly from an exported entry point; every
// unexported wrapper in between adds one to depth.
//
//go:noinline
func (r *Resolver) resolve(depth int) (Identity, error) {
	if err := checkDepth(depth); err != nil {
		return Identity{}, err
	}

	var errs []error
	for _, b := range r.bound {
		id, err := b.strategy.frameAt(depth + b.offset + 1)
		if err == nil {
			return id, nil
		}

		errs = append(errs, fmt.Errorf("%s: %w", b.strategy.Name(), err))
	}

	if len(errs) == 0 {
		return Identity{}, ErrUnavailable
	}

	return Identity{}, errors.Join(errs...)
}
