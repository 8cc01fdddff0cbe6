package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(WithRegistry(reg))

	r.Materialized("primitive", 3)
	r.Materialized("primitive", 0)
	r.Materialized("reactive", 2)
	r.Teardown()
	r.Teardown()
	r.Sweep()
	r.RegionSwap(5 * time.Millisecond)
	r.Reconciled()
	r.InvalidChild()
	r.MountOpened()
	r.MountOpened()
	r.MountClosed()

	assert.Equal(t, 3.0, testutil.ToFloat64(r.materialized.WithLabelValues("primitive")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.materialized.WithLabelValues("reactive")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.teardowns))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.sweeps))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.regionSwaps))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.reconciliations))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.invalidChildren))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.activeMounts))
	assert.Equal(t, 1, testutil.CollectAndCount(r.swapDuration))
}

func TestRecorderOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("ui"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)
	r.Teardown()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "app_ui_teardowns_total")
	assert.Contains(t, names, "app_ui_active_mounts")
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Materialized("x", 1)
		r.Teardown()
		r.Sweep()
		r.RegionSwap(time.Second)
		r.Reconciled()
		r.InvalidChild()
		r.MountOpened()
		r.MountClosed()
	})
}

type recordingSpan struct {
	noop.Span
	ended  bool
	status codes.Code
	errs   []error
}

func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }

func TestEndSpan(t *testing.T) {
	ok := &recordingSpan{}
	EndSpan(ok, nil)
	assert.True(t, ok.ended)
	assert.Equal(t, codes.Ok, ok.status)

	boom := errors.New("boom")
	failed := &recordingSpan{}
	EndSpan(failed, boom)
	assert.True(t, failed.ended)
	assert.Equal(t, codes.Error, failed.status)
	assert.Equal(t, []error{boom}, failed.errs)
}

func TestStartSpanWithoutTracer(t *testing.T) {
	parent := &recordingSpan{}
	ctx := trace.ContextWithSpan(context.Background(), parent)

	gotCtx, span := StartSpan(ctx, nil, "arbor.test")
	assert.Same(t, parent, trace.SpanFromContext(gotCtx), "context is returned unchanged")
	_, isParent := span.(*recordingSpan)
	assert.False(t, isParent, "the parent span is never handed out")

	EndSpan(span, nil)
	assert.False(t, parent.ended)
}

func TestStartSpanWithTracer(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	var missing context.Context
	ctx, span := StartSpan(missing, tracer, "arbor.test")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	EndSpan(span, nil)
}

func TestTracer(t *testing.T) {
	assert.NotNil(t, Tracer(""))
	assert.NotNil(t, Tracer("custom"))
}
