package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/aponysus/outcome/result"
)

// Format is a serialization format for documents.
type Format interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// JSON encodes documents with encoding/json.
	JSON Format = jsonFormat{}
	// YAML encodes documents with gopkg.in/yaml.v3.
	YAML Format = yamlFormat{}
	// Msgpack encodes documents with MessagePack.
	Msgpack Format = msgpackFormat{}
)

// Formats lists the built-in formats.
func Formats() []Format {
	return []Format{JSON, YAML, Msgpack}
}

// FormatByName returns the built-in format called name.
func FormatByName(name string) (Format, bool) {
	for _, f := range Formats() {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

type jsonFormat struct{}

func (jsonFormat) Name() string                  { return "json" }
func (jsonFormat) Marshal(v any) ([]byte, error) { return json.Marshal(v) }
func (jsonFormat) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

type yamlFormat struct{}

func (yamlFormat) Name() string                  { return "yaml" }
func (yamlFormat) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }
func (yamlFormat) Unmarshal(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

type msgpackFormat struct{}

func (msgpackFormat) Name() string                       { return "msgpack" }
func (msgpackFormat) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackFormat) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Marshal encodes r in format f.
func Marshal(f Format, r result.Result) ([]byte, error) {
	doc, err := ToDocument(r)
	if err != nil {
		return nil, err
	}
	return f.Marshal(doc)
}

// Unmarshal decodes a Result in format f and validates it.
func Unmarshal(f Format, data []byte) (result.Result, error) {
	var doc Document
	if err := f.Unmarshal(data, &doc); err != nil {
		return result.Result{}, fmt.Errorf("outcome: %s: %w", f.Name(), err)
	}
	return FromDocument(doc)
}

// MarshalWithOutput encodes w in format f.
func MarshalWithOutput[T any](f Format, w result.WithOutput[T]) ([]byte, error) {
	env, err := ToEnvelope(w)
	if err != nil {
		return nil, err
	}
	return f.Marshal(env)
}

// UnmarshalWithOutput decodes a WithOutput in format f and validates it.
func UnmarshalWithOutput[T any](f Format, data []byte) (result.WithOutput[T], error) {
	var env Envelope[T]
	if err := f.Unmarshal(data, &env); err != nil {
		return result.WithOutput[T]{}, fmt.Errorf("outcome: %s: %w", f.Name(), err)
	}
	return FromEnvelope(env)
}

// MarshalJSON encodes r as JSON.
func MarshalJSON(r result.Result) ([]byte, error) { return Marshal(JSON, r) }

// UnmarshalJSON decodes and validates a JSON Result.
func UnmarshalJSON(data []byte) (result.Result, error) { return Unmarshal(JSON, data) }

// MarshalYAML encodes r as YAML.
func MarshalYAML(r result.Result) ([]byte, error) { return Marshal(YAML, r) }

// UnmarshalYAML decodes and validates a YAML Result.
func UnmarshalYAML(data []byte) (result.Result, error) { return Unmarshal(YAML, data) }

// MarshalMsgpack encodes r as MessagePack.
func MarshalMsgpack(r result.Result) ([]byte, error) { return Marshal(Msgpack, r) }

// UnmarshalMsgpack decodes and validates a MessagePack Result.
func UnmarshalMsgpack(data []byte) (result.Result, error) { return Unmarshal(Msgpack, data) }
