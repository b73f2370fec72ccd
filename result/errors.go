package result

import (
	"errors"
	"fmt"
)

// ErrInvalidKind matches any *InvalidKindError.
var ErrInvalidKind = errors.New("outcome: invalid result kind")

// InvalidKindError reports a result kind outside the declared set.
//
// Text is set when the kind came from ParseKind and could not be mapped.
type InvalidKindError struct {
	Kind Kind
	Text string
}

func (e *InvalidKindError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Text != "" {
		return fmt.Sprintf("outcome: invalid result kind %q", e.Text)
	}
	return fmt.Sprintf("outcome: invalid result kind %d", uint8(e.Kind))
}

func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}
