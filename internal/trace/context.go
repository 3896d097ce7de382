package trace

import "context"

type tracerKey struct{}

type spanKey struct{}

// FromContext returns the tracer carried by ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx. A nil tracer is stored as Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// SpanContext is the span that new spans and points attach to. Instrument
// is the library-relative path of the file being parsed; empty outside a
// per-file span.
type SpanContext struct {
	SpanID     uint64
	Instrument string
}

// CurrentSpan returns the span context stored in ctx, zero when absent.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanKey{}).(SpanContext)
	return sc
}

// WithSpanContext stores sc in ctx. An empty Instrument inherits the one
// already in ctx, so pass spans nested in a file span keep the file name.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	if sc.Instrument == "" {
		sc.Instrument = CurrentSpan(ctx).Instrument
	}
	return context.WithValue(ctx, spanKey{}, sc)
}

// PointHere emits a point event under the span in ctx. The instrument name
// is used as detail when detail is empty.
func PointHere(ctx context.Context, scope Scope, name, detail string) {
	sc := CurrentSpan(ctx)
	if detail == "" {
		detail = sc.Instrument
	}
	Point(FromContext(ctx), scope, name, detail, sc.SpanID)
}
