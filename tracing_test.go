package vtl_test

import (
	"testing"

	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	vtl.EnableTracing(vtl.WithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))))
	t.Cleanup(vtl.DisableTracing)
	return rec
}

func spanNamed(spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func TestTracingSpans(t *testing.T) {
	rec := recordSpans(t)
	reg := vtl.NewMountRegistry()

	vtl.Render(func() any { return vdom.P("traced") }, vtl.Options{Registry: reg})
	vtl.RenderHookFunc(func() int { return 1 }, vtl.HookOptions[struct{}]{Registry: reg})
	vtl.TestEffect(func(done func(int)) { done(1) })
	vtl.TestEffect(func(done func(int)) { panic("effect failed") })
	vtl.Render(func() any {
		vango.OnCleanup(func() { panic("dispose failed") })
		return nil
	}, vtl.Options{Registry: reg})
	reg.Sweep()

	ended := rec.Ended()
	tests := []struct {
		name   string
		status codes.Code
	}{
		{"vtl.render", codes.Ok},
		{"vtl.render_hook", codes.Ok},
		{"vtl.cleanup", codes.Unset},
	}
	for _, tt := range tests {
		s := spanNamed(ended, tt.name)
		if s == nil {
			t.Errorf("no %s span", tt.name)
			continue
		}
		if s.Status().Code != tt.status {
			t.Errorf("%s status = %v, want %v", tt.name, s.Status().Code, tt.status)
		}
	}

	var ok, failed int
	for _, s := range ended {
		if s.Name() != "vtl.test_effect" {
			continue
		}
		switch s.Status().Code {
		case codes.Ok:
			ok++
		case codes.Error:
			failed++
		}
	}
	if ok != 1 || failed != 1 {
		t.Errorf("test_effect spans: %d ok, %d failed, want 1 and 1", ok, failed)
	}

	cleanup := spanNamed(ended, "vtl.cleanup")
	if cleanup != nil && len(cleanup.Events()) != 1 {
		t.Errorf("cleanup span has %d events, want 1", len(cleanup.Events()))
	}
}

func TestTracingRenderPanic(t *testing.T) {
	rec := recordSpans(t)

	func() {
		defer func() { recover() }()
		vtl.Render(func() any { panic("render failed") }, vtl.Options{Registry: vtl.NewMountRegistry()})
	}()

	s := spanNamed(rec.Ended(), "vtl.render")
	if s == nil {
		t.Fatal("no vtl.render span")
	}
	if s.Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", s.Status().Code)
	}
}

func TestTracingDisabled(t *testing.T) {
	rec := recordSpans(t)
	vtl.DisableTracing()

	vtl.Render(func() any { return nil }, vtl.Options{T: t})
	if n := len(rec.Ended()); n != 0 {
		t.Errorf("recorded %d spans with tracing off", n)
	}
}
