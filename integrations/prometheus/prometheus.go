// Package prometheus exports aggregation outcomes as Prometheus metrics.
package prometheus

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

const (
	stageClassify = "classify"
	stageMerge    = "merge"
)

// Observer counts results and messages per aggregator.
type Observer struct {
	results  *prometheus.CounterVec
	messages *prometheus.CounterVec
	sizes    *prometheus.HistogramVec
}

var _ observe.Observer = (*Observer)(nil)

type config struct {
	namespace string
	buckets   []float64
}

// Option configures an Observer.
type Option func(*config)

// WithNamespace prefixes every metric name.
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithBuckets sets the message-count histogram buckets.
func WithBuckets(b []float64) Option {
	return func(c *config) {
		c.buckets = b
	}
}

// New creates an Observer and registers its collectors on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, opts ...Option) (*Observer, error) {
	cfg := &config{buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64}}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "outcome_results_total",
			Help:      "Aggregated results, labeled by stage, aggregator, operation and kind.",
		}, []string{"stage", "aggregator", "operation", "kind"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "outcome_messages_total",
			Help:      "Messages carried by classified results, labeled by message kind.",
		}, []string{"aggregator", "kind"}),
		sizes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "outcome_result_messages",
			Help:      "Number of messages per aggregated result.",
			Buckets:   cfg.buckets,
		}, []string{"stage", "aggregator"}),
	}

	for _, c := range []prometheus.Collector{o.results, o.messages, o.sizes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, opts ...Option) *Observer {
	o, err := New(reg, opts...)
	if err != nil {
		panic("prometheus.MustNew: " + err.Error())
	}
	return o
}

func (o *Observer) OnClassify(_ context.Context, ev observe.ClassifyEvent) {
	o.record(stageClassify, ev.Aggregator, ev.Operation, ev.Result)
	for _, m := range ev.Result.All() {
		o.messages.WithLabelValues(ev.Aggregator, m.Kind().String()).Inc()
	}
}

func (o *Observer) OnMerge(_ context.Context, ev observe.MergeEvent) {
	o.record(stageMerge, ev.Aggregator, ev.Operation, ev.Result)
}

func (o *Observer) record(stage, aggregator, operation string, r result.Result) {
	o.results.WithLabelValues(stage, aggregator, operation, r.Kind().String()).Inc()
	o.sizes.WithLabelValues(stage, aggregator).Observe(float64(r.Len()))
}
