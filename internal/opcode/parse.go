package opcode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrKind classifies a value conversion failure.
type ErrKind uint8

const (
	ErrInvalid ErrKind = iota
	ErrOutOfRange
	ErrEmpty
	ErrUnknownWord
)

// ValueError describes why raw text could not become a typed value.
type ValueError struct {
	Kind    ErrKind
	Opcode  string
	Raw     string
	Want    ValueKind
	Bounds  Range
	Allowed []string
}

func (e *ValueError) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return fmt.Sprintf("empty value for '%s'", e.Opcode)
	case ErrOutOfRange:
		return fmt.Sprintf("value %s for '%s' is out of range %s", e.Raw, e.Opcode, e.Bounds)
	case ErrUnknownWord:
		return fmt.Sprintf("unknown value '%s' for '%s' (expected one of %s)", e.Raw, e.Opcode, strings.Join(e.Allowed, ", "))
	default:
		return fmt.Sprintf("invalid %s value '%s' for '%s'", e.Want, e.Raw, e.Opcode)
	}
}

// IsValueError reports whether err carries a *ValueError of the given kind.
func IsValueError(err error, kind ErrKind) bool {
	var ve *ValueError
	return errors.As(err, &ve) && ve.Kind == kind
}

// Parse converts raw into a value of the descriptor's kind and checks it
// against the descriptor's bounds.
func Parse(d Descriptor, raw string) (Value, error) {
	v, err := convert(d, raw)
	if err != nil {
		return Value{}, err
	}
	if d.Kind.Numeric() && !d.Bounds.Contains(v.num) {
		return Value{}, &ValueError{Kind: ErrOutOfRange, Opcode: d.Name, Raw: raw, Want: d.Kind, Bounds: d.Bounds}
	}
	return v, nil
}

func convert(d Descriptor, raw string) (Value, error) {
	fail := func(kind ErrKind) (Value, error) {
		return Value{}, &ValueError{Kind: kind, Opcode: d.Name, Raw: raw, Want: d.Kind, Bounds: d.Bounds, Allowed: d.Values}
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		if d.Kind == FreeString {
			return Value{Kind: FreeString, Raw: raw}, nil
		}
		return fail(ErrEmpty)
	}

	switch d.Kind {
	case Integer:
		n, ok := parseInteger(text)
		if !ok {
			return fail(ErrInvalid)
		}
		return Value{Kind: Integer, Raw: raw, num: float64(n)}, nil

	case Note:
		if n, ok := parseInteger(text); ok {
			return Value{Kind: Note, Raw: raw, num: float64(n)}, nil
		}
		n, ok := ParseNoteName(text)
		if !ok {
			return fail(ErrInvalid)
		}
		return Value{Kind: Note, Raw: raw, num: float64(n)}, nil

	case Float, Percentage:
		if d.Kind == Percentage {
			text = strings.TrimSuffix(text, "%")
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fail(ErrInvalid)
		}
		return Value{Kind: d.Kind, Raw: raw, num: f}, nil

	case Boolean:
		switch strings.ToLower(text) {
		case "on", "true", "yes":
			return Value{Kind: Boolean, Raw: raw, on: true}, nil
		case "off", "false", "no":
			return Value{Kind: Boolean, Raw: raw}, nil
		}
		return fail(ErrInvalid)

	case Enumerated:
		word := strings.ToLower(text)
		if !d.Allows(word) {
			return fail(ErrUnknownWord)
		}
		return Value{Kind: Enumerated, Raw: raw, text: word}, nil

	case Path:
		return Value{Kind: Path, Raw: raw, text: fixSeparators(text)}, nil

	default:
		return Value{Kind: FreeString, Raw: raw, text: raw}, nil
	}
}

// parseInteger accepts plain integers and integral decimals such as 36.0.
func parseInteger(s string) (int64, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}

// fixSeparators turns Windows separators into forward slashes.
func fixSeparators(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
