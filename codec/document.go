// Package codec converts Results to and from wire documents.
//
// Decoding goes through message.New and result.New, so a document can never
// produce a Result that construction would have rejected.
package codec

import (
	"fmt"

	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/result"
)

// MessageDoc is the wire form of a message.Message.
type MessageDoc struct {
	Kind        string `json:"kind" yaml:"kind" msgpack:"kind"`
	Code        string `json:"code" yaml:"code" msgpack:"code"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" msgpack:"description,omitempty"`
}

// Document is the wire form of a result.Result.
type Document struct {
	Kind     string       `json:"kind" yaml:"kind" msgpack:"kind"`
	Messages []MessageDoc `json:"messages" yaml:"messages" msgpack:"messages"`
}

// Envelope is the wire form of a result.WithOutput. Output is omitted when absent.
type Envelope[T any] struct {
	Kind     string       `json:"kind" yaml:"kind" msgpack:"kind"`
	Messages []MessageDoc `json:"messages" yaml:"messages" msgpack:"messages"`
	Output   *T           `json:"output,omitempty" yaml:"output,omitempty" msgpack:"output,omitempty"`
}

// DecodeError reports where in a document validation failed.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("outcome: decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// EncodeMessage returns the wire form of m.
func EncodeMessage(m message.Message) (MessageDoc, error) {
	if !m.Kind().Valid() {
		return MessageDoc{}, &message.InvalidKindError{Kind: m.Kind()}
	}
	return MessageDoc{
		Kind:        m.Kind().String(),
		Code:        m.Code(),
		Description: m.Description(),
	}, nil
}

// DecodeMessage validates d and returns the message it describes.
func DecodeMessage(d MessageDoc) (message.Message, error) {
	kind, err := message.ParseKind(d.Kind)
	if err != nil {
		return message.Message{}, err
	}
	return message.New(kind, d.Code, d.Description)
}

// ToDocument returns the wire form of r.
func ToDocument(r result.Result) (Document, error) {
	if !r.Kind().Valid() {
		return Document{}, &result.InvalidKindError{Kind: r.Kind()}
	}
	msgs, err := encodeMessages(r)
	if err != nil {
		return Document{}, err
	}
	return Document{Kind: r.Kind().String(), Messages: msgs}, nil
}

// FromDocument validates d and returns the Result it describes.
func FromDocument(d Document) (result.Result, error) {
	return decode(d.Kind, d.Messages)
}

// ToEnvelope returns the wire form of w.
func ToEnvelope[T any](w result.WithOutput[T]) (Envelope[T], error) {
	doc, err := ToDocument(w.Narrow())
	if err != nil {
		return Envelope[T]{}, err
	}
	env := Envelope[T]{Kind: doc.Kind, Messages: doc.Messages}
	if out, ok := w.Output(); ok {
		env.Output = &out
	}
	return env, nil
}

// FromEnvelope validates e and returns the WithOutput it describes.
func FromEnvelope[T any](e Envelope[T]) (result.WithOutput[T], error) {
	r, err := decode(e.Kind, e.Messages)
	if err != nil {
		return result.WithOutput[T]{}, err
	}
	if e.Output == nil {
		return result.WidenEmpty[T](r), nil
	}
	return result.Widen(r, *e.Output), nil
}

func encodeMessages(r result.Result) ([]MessageDoc, error) {
	docs := make([]MessageDoc, 0, r.Len())
	for i, m := range r.All() {
		d, err := EncodeMessage(m)
		if err != nil {
			return nil, fmt.Errorf("outcome: encode messages[%d]: %w", i, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func decode(kindText string, docs []MessageDoc) (result.Result, error) {
	kind, err := result.ParseKind(kindText)
	if err != nil {
		return result.Result{}, &DecodeError{Path: "kind", Err: err}
	}
	msgs := make([]message.Message, 0, len(docs))
	for i, d := range docs {
		m, err := DecodeMessage(d)
		if err != nil {
			return result.Result{}, &DecodeError{Path: fmt.Sprintf("messages[%d]", i), Err: err}
		}
		msgs = append(msgs, m)
	}
	return result.New(kind, msgs...)
}
