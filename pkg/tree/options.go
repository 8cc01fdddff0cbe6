package tree

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/arbor/pkg/telemetry"
)

// Option configures a Materializer or a Session.
type Option func(*options)

type options struct {
	id       string
	ctx      context.Context
	logger   *slog.Logger
	recorder *telemetry.Recorder
	tracer   trace.Tracer
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecorder enables Prometheus lifecycle metrics.
func WithRecorder(r *telemetry.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// WithTracer enables spans around mounts, unmounts and region swaps.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithContext sets the parent context for spans.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithID sets the session identifier used in logs and span attributes.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}
