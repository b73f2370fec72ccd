// Package timestamp provides a UTC-only instant.
package timestamp

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotUTC matches any *NotUTCError.
var ErrNotUTC = errors.New("outcome: timestamp must be UTC")

// NotUTCError reports a time supplied in a location other than UTC.
type NotUTCError struct {
	Location string
}

func (e *NotUTCError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("outcome: timestamp must be UTC, got location %q", e.Location)
}

func (e *NotUTCError) Is(target error) bool {
	return target == ErrNotUTC
}

// Timestamp is an instant whose location is always UTC.
// The zero value is the zero time.
type Timestamp struct {
	t time.Time
}

// Clock yields the current Timestamp.
type Clock interface {
	Now() Timestamp
}

// SystemClock reads the system clock.
type SystemClock struct{}

func (SystemClock) Now() Timestamp { return Timestamp{t: time.Now().UTC()} }

// ClockFunc adapts a function to Clock.
type ClockFunc func() Timestamp

func (f ClockFunc) Now() Timestamp { return f() }

// Now returns the current UTC instant.
func Now() Timestamp { return SystemClock{}.Now() }

// FromExisting wraps t, which must already be in time.UTC.
// Times in other locations, including ones at offset zero, are rejected.
func FromExisting(t time.Time) (Timestamp, error) {
	if t.Location() != time.UTC {
		return Timestamp{}, &NotUTCError{Location: t.Location().String()}
	}
	return Timestamp{t: t}, nil
}

// MustFromExisting is like FromExisting but panics on error.
func MustFromExisting(t time.Time) Timestamp {
	ts, err := FromExisting(t)
	if err != nil {
		panic("timestamp.MustFromExisting: " + err.Error())
	}
	return ts
}

// Time returns the wrapped time, in UTC.
func (ts Timestamp) Time() time.Time { return ts.t }

func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

func (ts Timestamp) Compare(other Timestamp) int { return ts.t.Compare(other.t) }

func (ts Timestamp) Before(other Timestamp) bool { return ts.t.Before(other.t) }

func (ts Timestamp) After(other Timestamp) bool { return ts.t.After(other.t) }

func (ts Timestamp) Equal(other Timestamp) bool { return ts.t.Equal(other.t) }

// String formats ts as RFC 3339 with nanoseconds.
func (ts Timestamp) String() string { return ts.t.Format(time.RFC3339Nano) }

func (ts Timestamp) MarshalText() ([]byte, error) { return ts.t.MarshalText() }

// UnmarshalText parses RFC 3339 text. A non-zero offset is rejected.
func (ts *Timestamp) UnmarshalText(b []byte) error {
	var t time.Time
	if err := t.UnmarshalText(b); err != nil {
		return err
	}
	if _, offset := t.Zone(); offset != 0 {
		return &NotUTCError{Location: t.Location().String()}
	}
	ts.t = t.UTC()
	return nil
}
