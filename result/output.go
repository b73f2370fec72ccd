package result

import (
	"iter"

	"github.com/aponysus/outcome/internal"
	"github.com/aponysus/outcome/message"
)

// WithOutput is a Result that may also carry an output payload.
//
// An output is present when one was supplied and it is not a nil pointer,
// map, slice, func, chan or interface.
type WithOutput[T any] struct {
	res       Result
	output    T
	hasOutput bool
}

// NewWithOutput validates kind and returns a WithOutput carrying output and a copy of msgs.
func NewWithOutput[T any](kind Kind, output T, msgs ...message.Message) (WithOutput[T], error) {
	res, err := New(kind, msgs...)
	if err != nil {
		return WithOutput[T]{}, err
	}
	return Widen(res, output), nil
}

func SuccessWithOutput[T any](output T, msgs ...message.Message) WithOutput[T] {
	return Widen(Success(msgs...), output)
}

func ErrorWithOutput[T any](output T, msgs ...message.Message) WithOutput[T] {
	return Widen(Error(msgs...), output)
}

func PartialWithOutput[T any](output T, msgs ...message.Message) WithOutput[T] {
	return Widen(Partial(msgs...), output)
}

// FromBoolWithOutput is FromBool without a payload.
func FromBoolWithOutput[T any](ok bool) WithOutput[T] {
	return WidenEmpty[T](FromBool(ok))
}

// FromMessagesWithOutput is FromMessages carrying output.
func FromMessagesWithOutput[T any](output T, msgs ...message.Message) WithOutput[T] {
	return Widen(FromMessages(msgs...), output)
}

// FromOutcomeWithOutput is FromOutcome carrying output.
func FromOutcomeWithOutput[T any](output T, prior Result) WithOutput[T] {
	return Widen(FromOutcome(prior), output)
}

// FromOutcomesWithOutput is FromOutcomes carrying output.
func FromOutcomesWithOutput[T any](output T, outcomes ...Result) WithOutput[T] {
	return Widen(FromOutcomes(outcomes...), output)
}

// Widen attaches output to r. Kind and messages are shared, not copied.
func Widen[T any](r Result, output T) WithOutput[T] {
	return WithOutput[T]{
		res:       FromOutcome(r),
		output:    output,
		hasOutput: !internal.IsTypedNil(output),
	}
}

// WidenEmpty converts r into a WithOutput with no payload.
func WidenEmpty[T any](r Result) WithOutput[T] {
	return WithOutput[T]{res: FromOutcome(r)}
}

// Narrow drops the payload. Kind and messages are shared, not copied.
func (w WithOutput[T]) Narrow() Result { return FromOutcome(w.res) }

// Output returns the payload and whether one is present.
func (w WithOutput[T]) Output() (T, bool) { return w.output, w.hasOutput }

func (w WithOutput[T]) HasOutput() bool { return w.hasOutput }

func (w WithOutput[T]) Kind() Kind { return w.res.kind }

func (w WithOutput[T]) IsSuccess() bool { return w.res.IsSuccess() }

func (w WithOutput[T]) IsError() bool { return w.res.IsError() }

func (w WithOutput[T]) IsPartial() bool { return w.res.IsPartial() }

func (w WithOutput[T]) Bool() bool { return w.res.Bool() }

func (w WithOutput[T]) Messages() []message.Message { return w.res.Messages() }

func (w WithOutput[T]) Len() int { return w.res.Len() }

func (w WithOutput[T]) All() iter.Seq2[int, message.Message] { return w.res.All() }

func (w WithOutput[T]) Count(k message.Kind) int { return w.res.Count(k) }

func (w WithOutput[T]) String() string { return w.res.String() }
