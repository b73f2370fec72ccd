// Package aggregate runs the result aggregation algorithms and reports each
// run to an observe.Observer.
//
// The returned Results are exactly those of result.FromMessages and
// result.FromOutcomes; observers only see them.
package aggregate

import (
	"context"
	"strings"
	"time"

	"github.com/aponysus/outcome/internal"
	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
	"github.com/aponysus/outcome/timestamp"
)

// DefaultName labels aggregators built without WithName.
const DefaultName = "default"

// Aggregator classifies message collections and merges outcomes.
// It is safe for concurrent use.
type Aggregator struct {
	name     string
	observer observe.Observer
	clock    timestamp.Clock
}

type aggregatorConfig struct {
	opts Options
}

// Options configures an Aggregator.
type Options struct {
	Name     string
	Observer observe.Observer
	Clock    timestamp.Clock
}

// Option configures an Aggregator.
type Option func(*aggregatorConfig)

// WithName sets the label reported to observers.
func WithName(name string) Option {
	return func(c *aggregatorConfig) {
		c.opts.Name = name
	}
}

// WithObserver sets the observer. Calling it more than once fans out to all of them.
func WithObserver(o observe.Observer) Option {
	return func(c *aggregatorConfig) {
		if c.opts.Observer == nil {
			c.opts.Observer = o
			return
		}
		c.opts.Observer = observe.Combine(c.opts.Observer, o)
	}
}

// WithClock sets the time source used for event timestamps.
func WithClock(clock timestamp.Clock) Option {
	return func(c *aggregatorConfig) {
		c.opts.Clock = clock
	}
}

// New creates an Aggregator from opts.
func New(opts ...Option) *Aggregator {
	cfg := &aggregatorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return NewFromOptions(cfg.opts)
}

// NewFromOptions creates an Aggregator from a config struct.
func NewFromOptions(opts Options) *Aggregator {
	a := &Aggregator{
		name:     strings.TrimSpace(opts.Name),
		observer: opts.Observer,
		clock:    opts.Clock,
	}
	if a.name == "" {
		a.name = DefaultName
	}
	if internal.IsTypedNil(a.observer) {
		a.observer = observe.NoopObserver{}
	}
	if internal.IsTypedNil(a.clock) {
		a.clock = timestamp.SystemClock{}
	}
	return a
}

// Name returns the label reported to observers.
func (a *Aggregator) Name() string {
	if a == nil {
		return DefaultName
	}
	return a.name
}

// Classify returns result.FromMessages(msgs...) and reports it.
func (a *Aggregator) Classify(ctx context.Context, msgs ...message.Message) result.Result {
	if a == nil {
		return result.FromMessages(msgs...)
	}
	start := a.now()
	res := result.FromMessages(msgs...)

	op, _ := observe.OperationFromContext(ctx)
	a.observer.OnClassify(ctx, observe.ClassifyEvent{
		Aggregator: a.name,
		Operation:  op,
		Start:      start,
		End:        a.now(),
		Result:     res,
	})
	return res
}

// Merge returns result.FromOutcomes(outcomes...) and reports it together
// with its trace. If ctx carries an observe.TraceCapture the trace is stored there too.
func (a *Aggregator) Merge(ctx context.Context, outcomes ...result.Result) result.Result {
	if a == nil {
		return result.FromOutcomes(outcomes...)
	}
	start := a.now()
	res := result.FromOutcomes(outcomes...)
	tr := observe.BuildTrace(outcomes...)

	if capture, ok := observe.TraceCaptureFromContext(ctx); ok {
		observe.StoreTrace(capture, tr)
	}

	op, _ := observe.OperationFromContext(ctx)
	a.observer.OnMerge(ctx, observe.MergeEvent{
		Aggregator: a.name,
		Operation:  op,
		Start:      start,
		End:        a.now(),
		Result:     res,
		Trace:      tr,
	})
	return res
}

// ClassifyWithOutput is Classify carrying output.
func ClassifyWithOutput[T any](ctx context.Context, a *Aggregator, output T, msgs ...message.Message) result.WithOutput[T] {
	return result.Widen(a.Classify(ctx, msgs...), output)
}

// MergeWithOutput is Merge carrying output.
func MergeWithOutput[T any](ctx context.Context, a *Aggregator, output T, outcomes ...result.Result) result.WithOutput[T] {
	return result.Widen(a.Merge(ctx, outcomes...), output)
}

func (a *Aggregator) now() time.Time {
	return a.clock.Now().Time()
}
