package usecase

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures the ambient dependencies of a use case.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	metrics LedgerMetrics
	now     func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		logger:  zerolog.Nop(),
		metrics: nopMetrics{},
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m LedgerMetrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithClock overrides the wall clock used for reports and provisioning.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
