package result

import "github.com/aponysus/outcome/message"

// FromMessages classifies msgs into a Result.
//
// Rules, in order:
//   - no messages: Success.
//   - at least one Error message: Partial if there is also a Success message, Error otherwise.
//   - otherwise Success, including sets made only of Warning or Information messages.
//
// The Result carries msgs verbatim: same order, same count.
func FromMessages(msgs ...message.Message) Result {
	return build(Classify(msgs), msgs)
}

// Classify returns the Kind FromMessages would assign to msgs.
func Classify(msgs []message.Message) Kind {
	if len(msgs) == 0 {
		return KindSuccess
	}

	var hasError, hasSuccess bool
	for _, m := range msgs {
		switch m.Kind() {
		case message.KindError:
			hasError = true
		case message.KindSuccess:
			hasSuccess = true
		}
	}

	if !hasError {
		return KindSuccess
	}
	if hasSuccess {
		return KindPartial
	}
	return KindError
}

// FromOutcome re-wraps prior: kind and messages are carried unchanged.
func FromOutcome(prior Result) Result {
	return Result{kind: prior.kind, messages: prior.messagesOrEmpty()}
}

// FromOutcomes merges outcomes into one Result.
//
// Messages are concatenated in input order. The kind is that of the first
// outcome whose kind is not Success, so the first non-Success kind sticks:
// [Error, Partial] merges to Error and [Partial, Error] to Partial. This is
// not a severity ranking. Outcomes with an invalid kind, such as the zero
// Result, are passed over like Success, so the merged kind is always valid.
// No outcomes merge to Success with no messages.
func FromOutcomes(outcomes ...Result) Result {
	kind, _ := combine(outcomes)
	return Result{kind: kind, messages: concat(outcomes)}
}

// Decider returns the index of the outcome whose kind FromOutcomes keeps,
// or -1 when the merged kind is Success.
func Decider(outcomes ...Result) int {
	_, idx := combine(outcomes)
	return idx
}

func combine(outcomes []Result) (Kind, int) {
	for i, o := range outcomes {
		if o.kind.Valid() && o.kind != KindSuccess {
			return o.kind, i
		}
	}
	return KindSuccess, -1
}

func concat(outcomes []Result) []message.Message {
	total := 0
	for _, o := range outcomes {
		total += len(o.messages)
	}
	out := make([]message.Message, 0, total)
	for _, o := range outcomes {
		out = append(out, o.messages...)
	}
	return out
}

func (r Result) messagesOrEmpty() []message.Message {
	if r.messages == nil {
		return []message.Message{}
	}
	return r.messages
}
