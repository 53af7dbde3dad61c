package intvec

import "github.com/hupe1980/intvec/resource"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	rc               *resource.Controller
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Vector at Init.
//
// Options stay in effect until Cleanup; a re-initialized vector starts from
// the defaults again.
type Option func(*options)

// WithLogger configures structured logging of allocations.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &intvec.BasicMetricsCollector{}
//	v, _ := intvec.New(16, intvec.WithMetricsCollector(metrics))
//	// ... perform operations ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, Peak capacity: %d\n", stats.GrowCount, stats.PeakCapacity)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController reserves every buffer the vector allocates against rc.
// Several vectors may share one controller to enforce a common memory budget.
// A refused reservation surfaces as an *AllocationError.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}
