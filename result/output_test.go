package result

import (
	"testing"

	"github.com/aponysus/outcome/message"
)

type sample struct {
	ID   int
	Name string
}

func TestWithOutput_WithoutPayload(t *testing.T) {
	created, err := NewWithOutput[*sample](KindSuccess, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range []WithOutput[*sample]{
		created,
		SuccessWithOutput[*sample](nil),
		FromMessagesWithOutput[*sample](nil),
	} {
		if r.Kind() != KindSuccess {
			t.Fatalf("kind=%v want %v", r.Kind(), KindSuccess)
		}
		assertFlags(t, r.Kind(), r.IsSuccess(), r.IsError(), r.IsPartial())
		if r.HasOutput() {
			t.Fatal("expected no output")
		}
		if r.Len() != 0 || len(r.Messages()) != 0 {
			t.Fatalf("expected no messages, got %d", r.Len())
		}
	}
}

func TestWithOutput_WithPayload(t *testing.T) {
	out := &sample{ID: 1, Name: "sample object"}
	msgs := sampleMessages()

	cases := []struct {
		kind    Kind
		factory func(*sample, ...message.Message) WithOutput[*sample]
	}{
		{kind: KindSuccess, factory: SuccessWithOutput[*sample]},
		{kind: KindError, factory: ErrorWithOutput[*sample]},
		{kind: KindPartial, factory: PartialWithOutput[*sample]},
	}

	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			created, err := NewWithOutput(tc.kind, out, msgs...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, r := range []WithOutput[*sample]{created, tc.factory(out, msgs...)} {
				if r.Kind() != tc.kind {
					t.Fatalf("kind=%v want %v", r.Kind(), tc.kind)
				}
				assertFlags(t, r.Kind(), r.IsSuccess(), r.IsError(), r.IsPartial())
				got, ok := r.Output()
				if !ok || got != out {
					t.Fatalf("output=%v,%v want same pointer", got, ok)
				}
				if r.Len() != 4 || r.Count(message.KindError) != 1 {
					t.Fatalf("len=%d errors=%d", r.Len(), r.Count(message.KindError))
				}
				if r.String() != tc.kind.String() {
					t.Fatalf("String()=%q want %q", r.String(), tc.kind.String())
				}
			}
		})
	}
}

func TestWithOutput_ZeroValuePayloadIsPresent(t *testing.T) {
	r := SuccessWithOutput(0)
	if v, ok := r.Output(); !ok || v != 0 {
		t.Fatalf("output=%v,%v want 0,true", v, ok)
	}
	s := SuccessWithOutput(sample{})
	if !s.HasOutput() {
		t.Fatal("struct value payload should be present")
	}
	var nilMap map[string]int
	if SuccessWithOutput(nilMap).HasOutput() {
		t.Fatal("nil map payload should be absent")
	}
}

func TestNarrowAndWiden(t *testing.T) {
	out := &sample{ID: 2}
	w := PartialWithOutput(out, sampleMessages()...)

	narrowed := w.Narrow()
	if narrowed.Kind() != w.Kind() {
		t.Fatalf("narrowed kind=%v want %v", narrowed.Kind(), w.Kind())
	}
	assertCodes(t, narrowed, "success", "information", "warning", "error")

	widened := Widen(narrowed, out)
	if widened.Kind() != KindPartial {
		t.Fatalf("widened kind=%v want %v", widened.Kind(), KindPartial)
	}
	if got, ok := widened.Output(); !ok || got != out {
		t.Fatalf("widened output=%v,%v want %v,true", got, ok, out)
	}
	assertCodes(t, widened.Narrow(), "success", "information", "warning", "error")

	empty := WidenEmpty[*sample](narrowed)
	if empty.HasOutput() {
		t.Fatal("WidenEmpty should have no output")
	}
	if got, _ := empty.Output(); got != nil {
		t.Fatalf("WidenEmpty output=%v want nil", got)
	}
	if empty.Kind() != KindPartial || empty.Len() != 4 {
		t.Fatalf("WidenEmpty kind=%v len=%d", empty.Kind(), empty.Len())
	}
}

func TestWithOutput_All(t *testing.T) {
	w := ErrorWithOutput("x", message.MustError("e1", ""), message.MustError("e2", ""))
	n := 0
	for _, m := range w.All() {
		if m.Kind() != message.KindError {
			t.Fatalf("kind=%v want error", m.Kind())
		}
		n++
	}
	if n != 2 || w.Bool() {
		t.Fatalf("n=%d bool=%v", n, w.Bool())
	}
}
