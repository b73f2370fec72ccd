package observe

import (
	"context"

	"github.com/aponysus/outcome/internal"
)

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnClassify(context.Context, ClassifyEvent) {}
func (BaseObserver) OnMerge(context.Context, MergeEvent)       {}

// MultiObserver fans out events to multiple observers.
// Nil and typed-nil entries are skipped.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnClassify(ctx context.Context, ev ClassifyEvent) {
	for _, o := range m.Observers {
		if !internal.IsTypedNil(o) {
			o.OnClassify(ctx, ev)
		}
	}
}

func (m MultiObserver) OnMerge(ctx context.Context, ev MergeEvent) {
	for _, o := range m.Observers {
		if !internal.IsTypedNil(o) {
			o.OnMerge(ctx, ev)
		}
	}
}

// Combine returns a single Observer for obs, dropping nil entries.
// It returns NoopObserver when nothing is left.
func Combine(obs ...Observer) Observer {
	kept := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if !internal.IsTypedNil(o) {
			kept = append(kept, o)
		}
	}
	switch len(kept) {
	case 0:
		return NoopObserver{}
	case 1:
		return kept[0]
	default:
		return MultiObserver{Observers: kept}
	}
}
