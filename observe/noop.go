package observe

import "context"

// NoopObserver implements Observer with no-op methods.
type NoopObserver struct{}

func (NoopObserver) OnClassify(context.Context, ClassifyEvent) {}
func (NoopObserver) OnMerge(context.Context, MergeEvent)       {}
