package caller

import (
	"fmt"
	"reflect"
	"runtime"
	"time"

	"github.com/reflectkit/introspector/logging"
)

const (
	// MaxCalibrationDepth bounds the skips tried while calibrating a strategy.
	MaxCalibrationDepth = 8

	// entryIndirections covers the exported entry point and the depth-aware
	// resolve call that sit between a caller and a strategy lookup.
	entryIndirections = 2
)

// Calibration is the published outcome of calibrating one strategy.
type Calibration struct {
	Strategy  string
	Offset    int
	Available bool
	// Reason explains why the strategy is unavailable.
	Reason string
}

func (c Calibration) String() string {
	if !c.Available {
		return fmt.Sprintf("%s: unavailable (%s)", c.Strategy, c.Reason)
	}

	return fmt.Sprintf("%s: offset %d", c.Strategy, c.Offset)
}

// calibrate measures how many frames s adds between its own lookup and the
// frame that invokes it. Failures never escape: a strategy that cannot find
// the calibrator within MaxCalibrationDepth, fails its check, or panics is marked
// unavailable.
//
//go:noinline
func calibrate(s Strategy, log logging.Logger) (c Calibration) {
	c.Strategy = s.Name()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			c = Calibration{Strategy: s.Name(), Reason: fmt.Sprintf("panic: %v", r)}
		}

		fields := []logging.Field{
			logging.String("strategy", c.Strategy),
			logging.Bool("available", c.Available),
			logging.Duration("elapsed", time.Since(start)),
		}
		if c.Available {
			log.Debug("caller strategy calibrated", append(fields, logging.Int("offset", c.Offset))...)
		} else {
			log.Warn("caller strategy unavailable", append(fields, logging.String("reason", c.Reason))...)
		}
	}()

	if err := s.Check(); err != nil {
		c.Reason = err.Error()
		return c
	}

	self := runtime.FuncForPC(reflect.ValueOf(calibrate).Pointer()).Name()
	for d := 0; d <= MaxCalibrationDepth; d++ {
		id, err := s.frameAt(d)
		if err != nil {
			continue
		}

		if id.Function == self {
			c.Offset = d + entryIndirections
			c.Available = true
			return c
		}
	}

	c.Reason = fmt.Sprintf("calibrator frame not found within %d frames", MaxCalibrationDepth+1)

	return c
}
