// Package tenant identifies the tenant an operation runs for.
package tenant

import "github.com/google/uuid"

// Info is an immutable tenant identity keyed by a UUID code.
type Info struct {
	code uuid.UUID
}

// FromExistingCode wraps an issued tenant code.
func FromExistingCode(code uuid.UUID) Info { return Info{code: code} }

// Parse reads a textual tenant code.
func Parse(s string) (Info, error) {
	code, err := uuid.Parse(s)
	if err != nil {
		return Info{}, err
	}
	return Info{code: code}, nil
}

func (i Info) Code() uuid.UUID { return i.code }

// IsZero reports whether no tenant code is set.
func (i Info) IsZero() bool { return i.code == uuid.Nil }

func (i Info) Equal(other Info) bool { return i.code == other.code }

func (i Info) String() string { return i.code.String() }

func (i Info) MarshalText() ([]byte, error) { return i.code.MarshalText() }

func (i *Info) UnmarshalText(b []byte) error { return i.code.UnmarshalText(b) }
