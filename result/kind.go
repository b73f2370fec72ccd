package result

import "strings"

// Kind is the status of a Result.
//
// The zero value is not a declared kind; New rejects it.
type Kind uint8

const (
	KindSuccess Kind = iota + 1
	KindError
	KindPartial
)

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindPartial:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// ParseKind parses the String form of a kind (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return KindSuccess, nil
	case "error":
		return KindError, nil
	case "partial":
		return KindPartial, nil
	default:
		return 0, &InvalidKindError{Kind: 0, Text: s}
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &InvalidKindError{Kind: k}
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
