package message

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind matches any *InvalidKindError.
	ErrInvalidKind = errors.New("outcome: invalid message kind")
	// ErrInvalidArgument matches any *ArgumentError.
	ErrInvalidArgument = errors.New("outcome: invalid message argument")
)

// InvalidKindError reports a message kind outside the declared set.
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
		return fmt.Sprintf("outcome: invalid message kind %q", e.Text)
	}
	return fmt.Sprintf("outcome: invalid message kind %d", uint8(e.Kind))
}

func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}

// ArgumentError reports an invalid Message argument, identified by Name.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("outcome: invalid message argument: %s must not be empty", e.Name)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
