package vtl

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for vtl spans.
const defaultTracerName = "vtl"

// TracingConfig configures span recording.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "vtl").
	TracerName string

	// TracerProvider creates the tracer. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// TracingOption configures tracing.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.TracerProvider = tp
	}
}

var (
	tracer   trace.Tracer
	tracerMu sync.RWMutex
)

// EnableTracing records a span for every Render, RenderHook, TestEffect
// and registry sweep:
//   - vtl.render, vtl.render_hook: the synchronous mount
//   - vtl.test_effect: from the call until the promise settles
//   - vtl.cleanup: one sweep, with an event per disposer that panicked
//
// Example:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
//	vtl.EnableTracing(vtl.WithTracerProvider(tp))
func EnableTracing(opts ...TracingOption) {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	tracerMu.Lock()
	tracer = tp.Tracer(config.TracerName)
	tracerMu.Unlock()
}

// DisableTracing stops recording spans.
func DisableTracing() {
	tracerMu.Lock()
	tracer = nil
	tracerMu.Unlock()
}

// startSpan starts a span, or returns a non-recording span when tracing
// is off.
func startSpan(name string, attrs ...attribute.KeyValue) trace.Span {
	tracerMu.RLock()
	t := tracer
	tracerMu.RUnlock()
	if t == nil {
		return trace.SpanFromContext(context.Background())
	}
	_, span := t.Start(context.Background(), name, trace.WithAttributes(attrs...))
	return span
}

// endSpan records the outcome and ends span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// endSpanPanic ends span for a panic that is about to be re-raised.
func endSpanPanic(span trace.Span, r any) {
	endSpan(span, fmt.Errorf("panic: %v", r))
}
