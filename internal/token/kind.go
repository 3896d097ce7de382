package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Header represents a bracketed section header such as <region>.
	Header
	// Assign represents a single name=value opcode assignment.
	Assign
	// Define represents a #define $NAME value directive.
	Define
	// Include represents an #include "path" directive.
	Include
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Header:  "Header",
	Assign:  "Assign",
	Define:  "Define",
	Include: "Include",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsDirective reports whether the kind is a preprocessor directive.
func (k Kind) IsDirective() bool { return k == Define || k == Include }
