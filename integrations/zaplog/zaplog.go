// Package zaplog reports aggregation events as structured zap logs.
package zaplog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

// Observer logs every classify and merge event.
//
// Success outcomes log at Debug, Partial at Warn, Error at Error.
type Observer struct {
	log *zap.Logger
}

var _ observe.Observer = (*Observer)(nil)

// New returns an Observer writing to log. A nil log discards everything.
func New(log *zap.Logger) *Observer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Observer{log: log}
}

func (o *Observer) OnClassify(_ context.Context, ev observe.ClassifyEvent) {
	fields := append(baseFields(ev.Aggregator, ev.Operation, ev.Result),
		zap.Duration("took", ev.End.Sub(ev.Start)),
	)
	o.log.Log(Level(ev.Result.Kind()), "outcome classified", fields...)
}

func (o *Observer) OnMerge(_ context.Context, ev observe.MergeEvent) {
	fields := append(baseFields(ev.Aggregator, ev.Operation, ev.Result),
		zap.Int("inputs", len(ev.Trace.Steps)),
		zap.Int("decided_by", ev.Trace.DecidedBy),
		zap.Duration("took", ev.End.Sub(ev.Start)),
	)
	o.log.Log(Level(ev.Result.Kind()), "outcomes merged", fields...)
}

// Level maps an outcome kind to the level it is logged at.
func Level(k result.Kind) zapcore.Level {
	switch k {
	case result.KindSuccess:
		return zapcore.DebugLevel
	case result.KindPartial:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func baseFields(aggregator, operation string, r result.Result) []zap.Field {
	fields := make([]zap.Field, 0, 8)
	fields = append(fields,
		zap.String("aggregator", aggregator),
		zap.Stringer("outcome", r.Kind()),
		zap.Int("messages", r.Len()),
		zap.Strings("codes", codes(r)),
	)
	if operation != "" {
		fields = append(fields, zap.String("operation", operation))
	}
	if n := r.Count(message.KindError); n > 0 {
		fields = append(fields, zap.Int("errors", n))
	}
	return fields
}

func codes(r result.Result) []string {
	out := make([]string, 0, r.Len())
	for _, m := range r.All() {
		out = append(out, m.Code())
	}
	return out
}
