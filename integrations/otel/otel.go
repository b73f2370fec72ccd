// Package otel records aggregation outcomes on the active OpenTelemetry span.
package otel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

const (
	EventClassify = "outcome.classify"
	EventMerge    = "outcome.merge"
)

// Observer adds one span event per classify or merge. Error outcomes also
// set the span status to codes.Error; other outcomes leave it alone.
type Observer struct {
	setStatus bool
}

var _ observe.Observer = (*Observer)(nil)

// Option configures an Observer.
type Option func(*Observer)

// WithoutStatus stops the observer from touching span status.
func WithoutStatus() Option {
	return func(o *Observer) {
		o.setStatus = false
	}
}

// New returns an Observer.
func New(opts ...Option) *Observer {
	o := &Observer{setStatus: true}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *Observer) OnClassify(ctx context.Context, ev observe.ClassifyEvent) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := resultAttributes(ev.Aggregator, ev.Operation, ev.Result)
	span.AddEvent(EventClassify, trace.WithTimestamp(ev.End), trace.WithAttributes(attrs...))
	o.status(span, ev.Result)
}

func (o *Observer) OnMerge(ctx context.Context, ev observe.MergeEvent) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := append(resultAttributes(ev.Aggregator, ev.Operation, ev.Result),
		attribute.Int("outcome.inputs", len(ev.Trace.Steps)),
		attribute.Int("outcome.decided_by", ev.Trace.DecidedBy),
	)
	span.AddEvent(EventMerge, trace.WithTimestamp(ev.End), trace.WithAttributes(attrs...))
	o.status(span, ev.Result)
}

func (o *Observer) status(span trace.Span, r result.Result) {
	if !o.setStatus || !r.IsError() {
		return
	}
	span.SetStatus(codes.Error, errorSummary(r))
}

func resultAttributes(aggregator, operation string, r result.Result) []attribute.KeyValue {
	msgCodes := make([]string, 0, r.Len())
	for _, m := range r.All() {
		msgCodes = append(msgCodes, m.Code())
	}
	attrs := []attribute.KeyValue{
		attribute.String("outcome.aggregator", aggregator),
		attribute.String("outcome.kind", r.Kind().String()),
		attribute.Int("outcome.messages", r.Len()),
		attribute.StringSlice("outcome.codes", msgCodes),
	}
	if operation != "" {
		attrs = append(attrs, attribute.String("outcome.operation", operation))
	}
	return attrs
}

// errorSummary joins the codes of error messages, or falls back to the kind.
func errorSummary(r result.Result) string {
	var b strings.Builder
	for _, m := range r.All() {
		if m.Kind() != message.KindError {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Code())
	}
	if b.Len() == 0 {
		return r.Kind().String()
	}
	return b.String()
}
