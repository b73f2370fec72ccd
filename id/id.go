// Package id provides time-ordered unique identifiers.
//
// IDs are UUIDv7 values. A Generator never returns the same ID twice and,
// within one process, each ID sorts after the previous one.
package id

import (
	"bytes"

	"github.com/google/uuid"
)

// ID is an immutable identifier. The zero value is the nil UUID.
type ID struct {
	u uuid.UUID
}

// Nil is the zero ID.
var Nil = ID{}

// FromExisting wraps an already-issued UUID.
func FromExisting(u uuid.UUID) ID { return ID{u: u} }

// Parse accepts any textual UUID form understood by uuid.Parse.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID{u: u}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	v, err := Parse(s)
	if err != nil {
		panic("id.MustParse: " + err.Error())
	}
	return v
}

// UUID returns the wrapped value.
func (i ID) UUID() uuid.UUID { return i.u }

// IsZero reports whether i is the nil UUID.
func (i ID) IsZero() bool { return i.u == uuid.Nil }

// Compare orders IDs bytewise, which for UUIDv7 is creation order.
func (i ID) Compare(other ID) int { return bytes.Compare(i.u[:], other.u[:]) }

func (i ID) Less(other ID) bool { return i.Compare(other) < 0 }

func (i ID) Equal(other ID) bool { return i.u == other.u }

func (i ID) String() string { return i.u.String() }

func (i ID) MarshalText() ([]byte, error) { return i.u.MarshalText() }

func (i *ID) UnmarshalText(b []byte) error { return i.u.UnmarshalText(b) }
