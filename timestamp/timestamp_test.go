package timestamp_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aponysus/outcome/timestamp"
)

func TestFromExisting(t *testing.T) {
	base := time.Date(2026, 3, 4, 5, 6, 7, 8, time.UTC)

	tests := []struct {
		name    string
		in      time.Time
		wantErr bool
	}{
		{name: "utc", in: base},
		{name: "utc method", in: base.In(time.Local).UTC()},
		{name: "fixed zone at offset zero", in: base.In(time.FixedZone("Z0", 0)), wantErr: true},
		{name: "fixed zone", in: base.In(time.FixedZone("BRT", -3*3600)), wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := timestamp.FromExisting(tc.in)
			if tc.wantErr {
				if !errors.Is(err, timestamp.ErrNotUTC) {
					t.Fatalf("err=%v want ErrNotUTC", err)
				}
				var nu *timestamp.NotUTCError
				if !errors.As(err, &nu) || nu.Location == "" {
					t.Fatalf("err=%v want NotUTCError with location", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ts.Time().Equal(base) {
				t.Fatalf("time=%v want %v", ts.Time(), base)
			}
		})
	}
}

func TestNow_IsUTC(t *testing.T) {
	ts := timestamp.Now()
	if ts.Time().Location() != time.UTC {
		t.Fatalf("location=%v want UTC", ts.Time().Location())
	}
	if ts.IsZero() {
		t.Fatal("expected non-zero timestamp")
	}
}

func TestOrdering(t *testing.T) {
	a := timestamp.MustFromExisting(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	b := timestamp.MustFromExisting(time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC))

	if !a.Before(b) || !b.After(a) {
		t.Fatal("expected a before b")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("compare=%d/%d/%d", a.Compare(b), b.Compare(a), a.Compare(a))
	}
	if !a.Equal(timestamp.MustFromExisting(a.Time())) {
		t.Fatal("expected equal")
	}
}

func TestClockFunc(t *testing.T) {
	fixed := timestamp.MustFromExisting(time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC))
	var clock timestamp.Clock = timestamp.ClockFunc(func() timestamp.Timestamp { return fixed })
	if got := clock.Now(); !got.Equal(fixed) {
		t.Fatalf("now=%v want %v", got, fixed)
	}
}

func TestText(t *testing.T) {
	ts := timestamp.MustFromExisting(time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC))
	if got := ts.String(); got != "2026-02-03T04:05:06Z" {
		t.Fatalf("string=%q", got)
	}

	b, err := ts.MarshalText()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out timestamp.Timestamp
	if err := out.UnmarshalText(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(ts) {
		t.Fatalf("got %v want %v", out, ts)
	}

	if err := out.UnmarshalText([]byte("2026-02-03T04:05:06+02:00")); !errors.Is(err, timestamp.ErrNotUTC) {
		t.Fatalf("err=%v want ErrNotUTC", err)
	}
}

func TestMustFromExisting_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	timestamp.MustFromExisting(time.Date(2026, 1, 1, 0, 0, 0, 0, time.FixedZone("X", 3600)))
}
