package observe_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/observe"
	"github.com/aponysus/outcome/result"
)

func TestNoopObserver_HandlesEvents(t *testing.T) {
	obs := observe.NoopObserver{}
	ctx := context.Background()

	obs.OnClassify(ctx, observe.ClassifyEvent{Result: result.Success()})
	obs.OnMerge(ctx, observe.MergeEvent{Result: result.Error()})
}

func TestBaseObserver_HandlesEvents(t *testing.T) {
	obs := observe.BaseObserver{}
	ctx := context.Background()

	obs.OnClassify(ctx, observe.ClassifyEvent{Result: result.Success()})
	obs.OnMerge(ctx, observe.MergeEvent{Result: result.Partial()})
}

type countingObserver struct {
	observe.BaseObserver

	mu       sync.Mutex
	classify int
	merge    int
}

func (c *countingObserver) OnClassify(context.Context, observe.ClassifyEvent) {
	c.mu.Lock()
	c.classify++
	c.mu.Unlock()
}

func (c *countingObserver) OnMerge(context.Context, observe.MergeEvent) {
	c.mu.Lock()
	c.merge++
	c.mu.Unlock()
}

func TestMultiObserver_FansOutAndSkipsNil(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	var typedNil *countingObserver

	multi := observe.MultiObserver{Observers: []observe.Observer{a, nil, typedNil, b}}
	multi.OnClassify(context.Background(), observe.ClassifyEvent{})
	multi.OnMerge(context.Background(), observe.MergeEvent{})
	multi.OnMerge(context.Background(), observe.MergeEvent{})

	for i, c := range []*countingObserver{a, b} {
		if c.classify != 1 || c.merge != 2 {
			t.Fatalf("observer %d: classify=%d merge=%d want 1,2", i, c.classify, c.merge)
		}
	}
}

func TestCombine(t *testing.T) {
	if _, ok := observe.Combine().(observe.NoopObserver); !ok {
		t.Fatal("expected NoopObserver for no observers")
	}
	var typedNil *countingObserver
	if _, ok := observe.Combine(nil, typedNil).(observe.NoopObserver); !ok {
		t.Fatal("expected NoopObserver when only nil observers")
	}

	a := &countingObserver{}
	if got := observe.Combine(nil, a); got != observe.Observer(a) {
		t.Fatalf("expected single observer to be returned as-is, got %T", got)
	}
	if _, ok := observe.Combine(a, &countingObserver{}).(observe.MultiObserver); !ok {
		t.Fatal("expected MultiObserver for two observers")
	}
}

func TestOperationContext(t *testing.T) {
	ctx := observe.WithOperation(context.Background(), "  checkout ")
	got, ok := observe.OperationFromContext(ctx)
	if !ok || got != "checkout" {
		t.Fatalf("operation=%q,%v want checkout,true", got, ok)
	}

	blank := observe.WithOperation(context.Background(), " ")
	if _, ok := observe.OperationFromContext(blank); ok {
		t.Fatal("blank operation should not be stored")
	}
}

func TestBuildTrace(t *testing.T) {
	s := result.Success(message.MustSuccess("s", ""))
	e := result.Error(message.MustError("e1", ""), message.MustError("e2", ""))
	p := result.Partial()

	tr := observe.BuildTrace(s, e, p)
	if tr.Kind != result.KindError || tr.DecidedBy != 1 {
		t.Fatalf("kind=%v decided_by=%d want error,1", tr.Kind, tr.DecidedBy)
	}
	if tr.MessageCount != 3 {
		t.Fatalf("message_count=%d want 3", tr.MessageCount)
	}
	wantRunning := []result.Kind{result.KindSuccess, result.KindError, result.KindError}
	for i, st := range tr.Steps {
		if st.Index != i || st.Running != wantRunning[i] {
			t.Fatalf("step %d: %+v want running %v", i, st, wantRunning[i])
		}
	}
	if tr.Steps[2].Kind != result.KindPartial {
		t.Fatalf("step 2 kind=%v want partial", tr.Steps[2].Kind)
	}
	if got := result.FromOutcomes(s, e, p).Kind(); got != tr.Kind {
		t.Fatalf("trace kind=%v disagrees with merge kind %v", tr.Kind, got)
	}

	empty := observe.BuildTrace()
	if empty.Kind != result.KindSuccess || empty.DecidedBy != -1 || len(empty.Steps) != 0 {
		t.Fatalf("empty trace=%+v", empty)
	}
}

func TestTraceCapture(t *testing.T) {
	var nilCapture *observe.TraceCapture
	if nilCapture.Trace() != nil {
		t.Fatal("nil capture should return nil trace")
	}
	observe.StoreTrace(nil, observe.Trace{})

	ctx, capture := observe.RecordTrace(context.Background())
	if capture.Trace() != nil {
		t.Fatal("expected no trace before store")
	}
	got, ok := observe.TraceCaptureFromContext(ctx)
	if !ok || got != capture {
		t.Fatal("expected capture in context")
	}
	if _, ok := observe.TraceCaptureFromContext(context.Background()); ok {
		t.Fatal("unexpected capture in background context")
	}

	observe.StoreTrace(capture, observe.BuildTrace(result.Partial()))
	if tr := capture.Trace(); tr == nil || tr.Kind != result.KindPartial {
		t.Fatalf("captured trace=%v", tr)
	}
}
