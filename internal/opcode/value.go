package opcode

import (
	"strconv"
)

// Value is a typed opcode value. Raw keeps the text as written after
// directive expansion; a value that failed conversion is kept as a
// FreeString holding that text.
type Value struct {
	Kind ValueKind
	Raw  string
	num  float64
	text string
	on   bool
}

func IntValue(n int64) Value {
	return Value{Kind: Integer, Raw: strconv.FormatInt(n, 10), num: float64(n)}
}

func FloatValue(f float64) Value {
	return Value{Kind: Float, Raw: formatNumber(f), num: f}
}

func PercentValue(f float64) Value {
	return Value{Kind: Percentage, Raw: formatNumber(f), num: f}
}

func NoteValue(n int) Value {
	return Value{Kind: Note, Raw: strconv.Itoa(n), num: float64(n)}
}

func BoolValue(on bool) Value {
	raw := "off"
	if on {
		raw = "on"
	}
	return Value{Kind: Boolean, Raw: raw, on: on}
}

func EnumValue(word string) Value {
	return Value{Kind: Enumerated, Raw: word, text: word}
}

func PathValue(p string) Value {
	return Value{Kind: Path, Raw: p, text: fixSeparators(p)}
}

func StringValue(s string) Value {
	return Value{Kind: FreeString, Raw: s, text: s}
}

// Int returns the value as an integer. Float values are truncated.
func (v Value) Int() int64 { return int64(v.num) }

func (v Value) Float() float64 { return v.num }

func (v Value) Bool() bool { return v.on }

// Text returns the canonical textual form: the number for numeric kinds,
// on/off for booleans and the normalized text otherwise.
func (v Value) Text() string {
	switch v.Kind {
	case Integer, Note:
		return strconv.FormatInt(int64(v.num), 10)
	case Float, Percentage:
		return formatNumber(v.num)
	case Boolean:
		if v.on {
			return "on"
		}
		return "off"
	default:
		return v.text
	}
}

// String renders the value as Kind(text), e.g. Float(-6) or Note(60).
func (v Value) String() string {
	return v.Kind.String() + "(" + v.Text() + ")"
}

// Equal compares kind and canonical content; Raw spelling is ignored.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Integer, Note, Float, Percentage:
		return v.num == o.num
	case Boolean:
		return v.on == o.on
	default:
		return v.text == o.text
	}
}
