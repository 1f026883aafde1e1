package ladder

import (
	"io"
	"log/slog"
)

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the structured logger. Nil keeps the default, which
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMetrics sets the collectors the Processor updates.
func WithMetrics(m *Metrics) Option {
	return func(p *Processor) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithDeferredPrecompute batches precomputation: AddWord no longer
// precomputes, and a population run precomputes once after its last
// insertion. Queries between AddWord and Precompute return ErrStale.
func WithDeferredPrecompute() Option {
	return func(p *Processor) { p.deferred = true }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
