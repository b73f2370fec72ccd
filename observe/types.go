// Package observe defines the hooks an aggregate.Aggregator reports to.
//
// Observers never change the Result being produced; they only see it.
package observe

import (
	"context"
	"time"

	"github.com/aponysus/outcome/result"
)

// ClassifyEvent describes one classification of a message collection.
type ClassifyEvent struct {
	Aggregator string
	Operation  string
	Start      time.Time
	End        time.Time

	Result result.Result
}

// MergeEvent describes one merge of prior outcomes.
type MergeEvent struct {
	Aggregator string
	Operation  string
	Start      time.Time
	End        time.Time

	Result result.Result
	Trace  Trace
}

// Observer receives a callback for every aggregation.
//
// Implementations must be safe for concurrent use.
type Observer interface {
	OnClassify(ctx context.Context, ev ClassifyEvent)
	OnMerge(ctx context.Context, ev MergeEvent)
}
