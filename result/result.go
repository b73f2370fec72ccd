// Package result defines Result, the aggregate outcome of a process, and the
// algorithms that derive one outcome from messages or from prior outcomes.
//
// Everything in this package is a pure function over immutable values.
package result

import (
	"iter"
	"slices"

	"github.com/aponysus/outcome/message"
)

// Result is an immutable outcome: a Kind plus an ordered sequence of messages.
//
// The zero Result is not valid; build one with New, Success, Error, Partial,
// FromBool or the aggregation functions.
type Result struct {
	kind     Kind
	messages []message.Message
}

// New validates kind and returns a Result carrying a copy of msgs.
func New(kind Kind, msgs ...message.Message) (Result, error) {
	if !kind.Valid() {
		return Result{}, &InvalidKindError{Kind: kind}
	}
	return build(kind, msgs), nil
}

// Success returns a Result of KindSuccess.
func Success(msgs ...message.Message) Result { return build(KindSuccess, msgs) }

// Error returns a Result of KindError.
func Error(msgs ...message.Message) Result { return build(KindError, msgs) }

// Partial returns a Result of KindPartial.
func Partial(msgs ...message.Message) Result { return build(KindPartial, msgs) }

// FromBool maps true to Success and false to Error, both without messages.
func FromBool(ok bool) Result {
	if ok {
		return Success()
	}
	return Error()
}

// build copies msgs so later caller mutations do not leak into the Result.
// The copy is never nil.
func build(kind Kind, msgs []message.Message) Result {
	own := make([]message.Message, len(msgs))
	copy(own, msgs)
	return Result{kind: kind, messages: own}
}

func (r Result) Kind() Kind { return r.kind }

func (r Result) IsSuccess() bool { return r.kind == KindSuccess }

func (r Result) IsError() bool { return r.kind == KindError }

func (r Result) IsPartial() bool { return r.kind == KindPartial }

// Bool reports IsSuccess. It is a convenience for call sites that only care
// about success; it does not distinguish Error from Partial.
func (r Result) Bool() bool { return r.IsSuccess() }

// Messages returns a copy of the messages in insertion order. It is never nil.
func (r Result) Messages() []message.Message {
	if r.messages == nil {
		return []message.Message{}
	}
	return slices.Clone(r.messages)
}

// Len returns the number of messages.
func (r Result) Len() int { return len(r.messages) }

// All iterates over the messages in insertion order without copying.
func (r Result) All() iter.Seq2[int, message.Message] {
	return func(yield func(int, message.Message) bool) {
		for i, m := range r.messages {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Count returns the number of messages of kind k.
func (r Result) Count(k message.Kind) int {
	n := 0
	for _, m := range r.messages {
		if m.Kind() == k {
			n++
		}
	}
	return n
}

func (r Result) String() string {
	return r.kind.String()
}
