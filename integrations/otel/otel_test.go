package otel_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/aponysus/outcome/aggregate"
	otelobs "github.com/aponysus/outcome/integrations/otel"
	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/result"
)

func setup(t *testing.T, opts ...otelobs.Option) (*aggregate.Aggregator, *tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	agg := aggregate.New(aggregate.WithName("orders"), aggregate.WithObserver(otelobs.New(opts...)))
	return agg, sr, tp
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestClassify_AddsEventAndErrorStatus(t *testing.T) {
	agg, sr, tp := setup(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "checkout")
	agg.Classify(ctx, message.MustWarning("slow", ""), message.MustError("declined", ""))
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("spans=%d want 1", len(ended))
	}
	events := ended[0].Events()
	if len(events) != 1 || events[0].Name != otelobs.EventClassify {
		t.Fatalf("events=%+v", events)
	}
	attrs := attrMap(events[0].Attributes)
	if attrs["outcome.kind"].AsString() != "error" {
		t.Fatalf("kind=%v want error", attrs["outcome.kind"].AsString())
	}
	if attrs["outcome.aggregator"].AsString() != "orders" {
		t.Fatalf("aggregator=%v", attrs["outcome.aggregator"].AsString())
	}
	gotCodes := attrs["outcome.codes"].AsStringSlice()
	if len(gotCodes) != 2 || gotCodes[0] != "slow" || gotCodes[1] != "declined" {
		t.Fatalf("codes=%v", gotCodes)
	}

	st := ended[0].Status()
	if st.Code != codes.Error || st.Description != "declined" {
		t.Fatalf("status=%+v", st)
	}
}

func TestMerge_PartialLeavesStatusUnset(t *testing.T) {
	agg, sr, tp := setup(t)

	ctx, span := tp.Tracer("test").Start(context.Background(), "batch")
	agg.Merge(ctx, result.Success(), result.Partial(), result.Error())
	span.End()

	s := sr.Ended()[0]
	if s.Status().Code != codes.Unset {
		t.Fatalf("status=%v want unset", s.Status().Code)
	}
	events := s.Events()
	if len(events) != 1 || events[0].Name != otelobs.EventMerge {
		t.Fatalf("events=%+v", events)
	}
	attrs := attrMap(events[0].Attributes)
	if attrs["outcome.decided_by"].AsInt64() != 1 || attrs["outcome.inputs"].AsInt64() != 3 {
		t.Fatalf("decided_by=%v inputs=%v", attrs["outcome.decided_by"].AsInt64(), attrs["outcome.inputs"].AsInt64())
	}
}

func TestWithoutStatus(t *testing.T) {
	agg, sr, tp := setup(t, otelobs.WithoutStatus())

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	agg.Merge(ctx, result.Error())
	span.End()

	if code := sr.Ended()[0].Status().Code; code != codes.Unset {
		t.Fatalf("status=%v want unset", code)
	}
}

func TestNoSpanInContext(t *testing.T) {
	agg, sr, _ := setup(t)
	agg.Classify(context.Background(), message.MustError("e", ""))
	if n := len(sr.Ended()); n != 0 {
		t.Fatalf("spans=%d want 0", n)
	}
}
