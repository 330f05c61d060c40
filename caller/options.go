package caller

import "github.com/reflectkit/introspector/logging"

type config struct {
	strategies []Strategy
	logger     logging.Logger
}

// Option configures a Resolver.
type Option func(*config)

// WithStrategies replaces the strategies, in order of preference.
// The default is RuntimeStrategy followed by StackStrategy.
func WithStrategies(strategies ...Strategy) Option {
	return func(c *config) {
		c.strategies = strategies
	}
}

// WithLogger sets the logger receiving calibration messages.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// StrategiesByName maps "auto", "runtime" or "stack" onto a strategy list.
func StrategiesByName(name string) ([]Strategy, bool) {
	switch name {
	case "", "auto":
		return []Strategy{RuntimeStrategy(), StackStrategy()}, true
	case StrategyRuntime:
		return []Strategy{RuntimeStrategy()}, true
	case StrategyStack:
		return []Strategy{StackStrategy()}, true
	default:
		return nil, false
	}
}
