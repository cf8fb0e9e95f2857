package profiler

import (
	"time"

	"go.uber.org/zap"
)

// ProfilerBuilderOption defines a function that modifies the profiler during
// construction.
type ProfilerBuilderOption func(*Profiler)

// WithLogger sets the logger frame stats are reported to. Defaults to the
// package-wide logger.
//
// Parameters:
//   - log: the zap logger to use
//
// Returns:
//   - ProfilerBuilderOption: the option
func WithLogger(log *zap.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		if log != nil {
			p.log = log
		}
	}
}

// WithUpdateInterval sets how often frame stats are logged. Intervals <= 0
// are ignored.
//
// Parameters:
//   - interval: the logging interval
//
// Returns:
//   - ProfilerBuilderOption: the option
func WithUpdateInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}
