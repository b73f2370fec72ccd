// Package message defines Message, a classified and coded diagnostic unit.
//
// Codes are opaque caller-defined identifiers; this package only checks
// that they are not blank.
package message

import "strings"

// Message is an immutable diagnostic: a Kind, a code and an optional description.
//
// Use New or one of the kind-specific constructors; the zero Message is not valid.
type Message struct {
	kind        Kind
	code        string
	description string
}

// New validates kind and code and returns a Message.
// An empty description means the message has none.
func New(kind Kind, code, description string) (Message, error) {
	if !kind.Valid() {
		return Message{}, &InvalidKindError{Kind: kind}
	}
	if strings.TrimSpace(code) == "" {
		return Message{}, &ArgumentError{Name: "code"}
	}
	return Message{kind: kind, code: code, description: description}, nil
}

func NewSuccess(code, description string) (Message, error) {
	return New(KindSuccess, code, description)
}

func NewWarning(code, description string) (Message, error) {
	return New(KindWarning, code, description)
}

func NewError(code, description string) (Message, error) {
	return New(KindError, code, description)
}

func NewInformation(code, description string) (Message, error) {
	return New(KindInformation, code, description)
}

// MustNew is like New but panics on validation failure.
// It is meant for package-level messages built from constant codes.
func MustNew(kind Kind, code, description string) Message {
	m, err := New(kind, code, description)
	if err != nil {
		panic("message.MustNew: " + err.Error())
	}
	return m
}

func MustSuccess(code, description string) Message {
	return MustNew(KindSuccess, code, description)
}

func MustWarning(code, description string) Message {
	return MustNew(KindWarning, code, description)
}

func MustError(code, description string) Message {
	return MustNew(KindError, code, description)
}

func MustInformation(code, description string) Message {
	return MustNew(KindInformation, code, description)
}

func (m Message) Kind() Kind { return m.kind }

func (m Message) Code() string { return m.code }

// Description returns the description, or "" when there is none.
func (m Message) Description() string { return m.description }

func (m Message) HasDescription() bool { return m.description != "" }

func (m Message) String() string {
	if m.description == "" {
		return m.kind.String() + " " + m.code
	}
	return m.kind.String() + " " + m.code + ": " + m.description
}
