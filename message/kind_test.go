package message

import (
	"errors"
	"testing"
)

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindSuccess, KindWarning, KindError, KindInformation} {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v: marshal: %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("%v: unmarshal: %v", k, err)
		}
		if got != k {
			t.Fatalf("round trip=%v want %v", got, k)
		}
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{in: "success", want: KindSuccess, ok: true},
		{in: " Warning ", want: KindWarning, ok: true},
		{in: "ERROR", want: KindError, ok: true},
		{in: "information", want: KindInformation, ok: true},
		{in: "info", ok: false},
		{in: "", ok: false},
		{in: "partial", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if tc.ok {
				if err != nil || got != tc.want {
					t.Fatalf("ParseKind(%q)=%v,%v want %v", tc.in, got, err, tc.want)
				}
				return
			}
			if !errors.Is(err, ErrInvalidKind) {
				t.Fatalf("ParseKind(%q) err=%v want ErrInvalidKind", tc.in, err)
			}
		})
	}
}

func TestKind_InvalidMarshal(t *testing.T) {
	if _, err := Kind(0).MarshalText(); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("err=%v want ErrInvalidKind", err)
	}
	if Kind(0).Valid() || Kind(7).Valid() {
		t.Fatal("expected undeclared kinds to be invalid")
	}
	if got := Kind(7).String(); got != "unknown" {
		t.Fatalf("String()=%q want unknown", got)
	}
}
