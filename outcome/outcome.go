// Package outcome is the short entry point: aliases for the core types and
// helpers that run through the default aggregator.
package outcome

import (
	"context"

	"github.com/aponysus/outcome/aggregate"
	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

type (
	Message = message.Message
	Result  = result.Result
	Trace   = observe.Trace
)

// Init sets the global default aggregator.
// It must be called before Classify/Merge are used.
func Init(agg *aggregate.Aggregator) {
	aggregate.SetGlobal(agg)
}

// Classify derives a Result from msgs using the default aggregator.
func Classify(ctx context.Context, msgs ...Message) Result {
	return aggregate.Default().Classify(ctx, msgs...)
}

// Merge combines outcomes, in order, using the default aggregator.
func Merge(ctx context.Context, outcomes ...Result) Result {
	return aggregate.Default().Merge(ctx, outcomes...)
}

// MergeWithTrace is Merge that also returns the merge Trace.
func MergeWithTrace(ctx context.Context, outcomes ...Result) (Result, Trace) {
	ctx, capture := observe.RecordTrace(ctx)
	r := aggregate.Default().Merge(ctx, outcomes...)
	var tr Trace
	if t := capture.Trace(); t != nil {
		tr = *t
	}
	return r, tr
}

// ClassifyValue is Classify carrying output.
func ClassifyValue[T any](ctx context.Context, output T, msgs ...Message) result.WithOutput[T] {
	return aggregate.ClassifyWithOutput(ctx, aggregate.Default(), output, msgs...)
}

// MergeValue is Merge carrying output.
func MergeValue[T any](ctx context.Context, output T, outcomes ...Result) result.WithOutput[T] {
	return aggregate.MergeWithOutput(ctx, aggregate.Default(), output, outcomes...)
}
