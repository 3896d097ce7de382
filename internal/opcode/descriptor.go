package opcode

// Descriptor is the catalog entry for one opcode.
type Descriptor struct {
	Name    string // canonical name, e.g. hiccN
	Kind    ValueKind
	Bounds  Range
	Values  []string // allowed words when Kind == Enumerated
	Default string   // empty when the opcode has no default
	Unit    string
	Version Version
}

// HasDefault reports whether the descriptor defines a default value.
func (d Descriptor) HasDefault() bool { return d.Default != "" }

// DefaultValue returns the typed default. Defaults are not checked against
// Bounds: several opcodes use -1 as a "disabled" sentinel.
func (d Descriptor) DefaultValue() (Value, bool) {
	if !d.HasDefault() {
		return Value{}, false
	}
	v, err := convert(d, d.Default)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// Allows reports whether word is one of the enumerated values.
func (d Descriptor) Allows(word string) bool {
	_, ok := d.enumIndex(word)
	return ok
}

func (d Descriptor) enumIndex(word string) (int, bool) {
	for i, v := range d.Values {
		if v == word {
			return i, true
		}
	}
	return -1, false
}
