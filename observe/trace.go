package observe

import (
	"context"
	"sync/atomic"

	"github.com/aponysus/outcome/result"
)

// Step records one input of a merge.
type Step struct {
	Index        int
	Kind         result.Kind
	Running      result.Kind // merged kind after this input
	MessageCount int
}

// Trace explains how a merge arrived at its kind.
type Trace struct {
	Steps        []Step
	Kind         result.Kind
	MessageCount int

	// DecidedBy is the index of the input whose kind was kept, or -1 when
	// every input was Success.
	DecidedBy int
}

// BuildTrace describes result.FromOutcomes(outcomes...).
func BuildTrace(outcomes ...result.Result) Trace {
	decider := result.Decider(outcomes...)
	tr := Trace{
		Steps:     make([]Step, 0, len(outcomes)),
		Kind:      result.KindSuccess,
		DecidedBy: decider,
	}
	if decider >= 0 {
		tr.Kind = outcomes[decider].Kind()
	}

	for i, o := range outcomes {
		running := result.KindSuccess
		if decider >= 0 && i >= decider {
			running = tr.Kind
		}
		tr.Steps = append(tr.Steps, Step{
			Index:        i,
			Kind:         o.Kind(),
			Running:      running,
			MessageCount: o.Len(),
		})
		tr.MessageCount += o.Len()
	}
	return tr
}

// TraceCapture holds the trace of a merge after it completes.
type TraceCapture struct {
	tr atomic.Pointer[Trace]
}

// Trace returns the captured trace, or nil if no merge has been recorded.
// It is thread-safe.
func (c *TraceCapture) Trace() *Trace {
	if c == nil {
		return nil
	}
	return c.tr.Load()
}

type traceCaptureKey struct{}

// RecordTrace returns a derived context that requests trace capture for merges
// run with it, plus a holder for retrieving the trace. The last merge wins.
func RecordTrace(ctx context.Context) (context.Context, *TraceCapture) {
	if ctx == nil {
		ctx = context.Background()
	}
	capture := &TraceCapture{}
	return context.WithValue(ctx, traceCaptureKey{}, capture), capture
}

// TraceCaptureFromContext returns the capture (if requested).
func TraceCaptureFromContext(ctx context.Context) (*TraceCapture, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(traceCaptureKey{}).(*TraceCapture)
	return c, ok && c != nil
}

// StoreTrace publishes a finished trace into the capture.
//
// This is primarily used by the aggregator.
func StoreTrace(capture *TraceCapture, tr Trace) {
	if capture == nil {
		return
	}
	capture.tr.Store(&tr)
}
