package token

// HeaderKind enumerates the section headers an SFZ file may open.
//
// Global, Master, Group and Region form the inheritance chain, ordered from
// the outermost scope to the innermost one. The remaining kinds are side
// scopes that never take part in opcode inheritance.
type HeaderKind uint8

const (
	NoHeader HeaderKind = iota
	HeaderGlobal
	HeaderMaster
	HeaderGroup
	HeaderRegion
	HeaderControl
	HeaderCurve
	HeaderEffect
	HeaderMidi
	HeaderSample
)

var headers = map[string]HeaderKind{
	"global":  HeaderGlobal,
	"master":  HeaderMaster,
	"group":   HeaderGroup,
	"region":  HeaderRegion,
	"control": HeaderControl,
	"curve":   HeaderCurve,
	"effect":  HeaderEffect,
	"midi":    HeaderMidi,
	"sample":  HeaderSample,
}

var headerNames = [...]string{
	NoHeader:      "none",
	HeaderGlobal:  "global",
	HeaderMaster:  "master",
	HeaderGroup:   "group",
	HeaderRegion:  "region",
	HeaderControl: "control",
	HeaderCurve:   "curve",
	HeaderEffect:  "effect",
	HeaderMidi:    "midi",
	HeaderSample:  "sample",
}

// LookupHeader maps a case-folded header name (without angle brackets)
// to its kind.
func LookupHeader(name string) (HeaderKind, bool) {
	h, ok := headers[name]
	return h, ok
}

func (h HeaderKind) String() string {
	if int(h) < len(headerNames) {
		return headerNames[h]
	}
	return "header(?)"
}

// InChain reports whether the header participates in opcode inheritance.
func (h HeaderKind) InChain() bool {
	return h >= HeaderGlobal && h <= HeaderRegion
}

// IsSide reports whether the header opens a side scope (control, curve, ...).
func (h HeaderKind) IsSide() bool {
	return h >= HeaderControl && h <= HeaderSample
}

// Level returns the depth of a chain header: 0 for global up to 3 for region.
// Side headers report -1.
func (h HeaderKind) Level() int {
	if !h.InChain() {
		return -1
	}
	return int(h - HeaderGlobal)
}
