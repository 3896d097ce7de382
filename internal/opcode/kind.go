package opcode

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind is the type an opcode value is checked against.
type ValueKind uint8

const (
	FreeString ValueKind = iota
	Integer
	Float
	Percentage
	Note
	Boolean
	Enumerated
	Path
)

var kindNames = [...]string{
	FreeString: "FreeString",
	Integer:    "Integer",
	Float:      "Float",
	Percentage: "Percentage",
	Note:       "Note",
	Boolean:    "Boolean",
	Enumerated: "Enumerated",
	Path:       "Path",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Numeric reports whether values of this kind are compared against Bounds.
func (k ValueKind) Numeric() bool {
	switch k {
	case Integer, Float, Percentage, Note:
		return true
	default:
		return false
	}
}

// ParseKind maps a kind name, as written in configuration, to a ValueKind.
func ParseKind(s string) (ValueKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "freestring", "text":
		return FreeString, nil
	case "int", "integer":
		return Integer, nil
	case "float", "number":
		return Float, nil
	case "percent", "percentage":
		return Percentage, nil
	case "note":
		return Note, nil
	case "bool", "boolean":
		return Boolean, nil
	case "enum", "enumerated":
		return Enumerated, nil
	case "path":
		return Path, nil
	}
	return FreeString, fmt.Errorf("unknown value kind %q", s)
}

// Version names the revision of the format an opcode first appeared in.
type Version uint8

const (
	V1 Version = iota
	V2
	ARIA
	Cakewalk
	Vendor
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	case ARIA:
		return "aria"
	case Cakewalk:
		return "cakewalk"
	case Vendor:
		return "vendor"
	}
	return "unknown"
}

// Range is an inclusive numeric interval; either end may be open.
type Range struct {
	Min, Max       float64
	HasMin, HasMax bool
}

func between(lo, hi float64) Range {
	return Range{Min: lo, Max: hi, HasMin: true, HasMax: true}
}

func atLeast(lo float64) Range {
	return Range{Min: lo, HasMin: true}
}

// Between returns the closed interval [lo, hi].
func Between(lo, hi float64) Range { return between(lo, hi) }

// AtLeast returns the half-open interval [lo, +inf).
func AtLeast(lo float64) Range { return atLeast(lo) }

// IsZero reports whether the range places no constraint.
func (r Range) IsZero() bool { return !r.HasMin && !r.HasMax }

func (r Range) Contains(v float64) bool {
	if r.HasMin && v < r.Min {
		return false
	}
	if r.HasMax && v > r.Max {
		return false
	}
	return true
}

func (r Range) String() string {
	lo, hi := "-inf", "+inf"
	if r.HasMin {
		lo = formatNumber(r.Min)
	}
	if r.HasMax {
		hi = formatNumber(r.Max)
	}
	return "[" + lo + ", " + hi + "]"
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
