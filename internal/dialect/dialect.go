package dialect

import (
	"fmt"
	"strings"

	"sfzkit/internal/opcode"
)

// Kind is an SFZ format revision or extension.
type Kind uint8

const (
	Unknown Kind = iota
	V1
	V2
	ARIA
	Cakewalk
	// Vendor marks opcodes declared in sfzkit.toml; every target accepts them.
	Vendor
	// Mixed is reported when ARIA and Cakewalk extensions are used together.
	Mixed

	kindCount
)

func (k Kind) String() string {
	switch k {
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
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ParseKind accepts the names printed by String. "" yields Unknown.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unknown, nil
	case "v1", "sfz1":
		return V1, nil
	case "v2", "sfz2":
		return V2, nil
	case "aria":
		return ARIA, nil
	case "cakewalk":
		return Cakewalk, nil
	}
	return Unknown, fmt.Errorf("unknown SFZ dialect %q (expected v1|v2|aria|cakewalk)", s)
}

// FromVersion maps the revision recorded on a catalog descriptor.
func FromVersion(v opcode.Version) Kind {
	switch v {
	case opcode.V1:
		return V1
	case opcode.V2:
		return V2
	case opcode.ARIA:
		return ARIA
	case opcode.Cakewalk:
		return Cakewalk
	case opcode.Vendor:
		return Vendor
	}
	return Unknown
}

// Supports reports whether an instrument written for target may use
// features of kind k. v1 is contained in v2, and both extensions build on v2.
func (target Kind) Supports(k Kind) bool {
	if target == Unknown || k == Unknown || k == Vendor || target == k {
		return true
	}
	switch target {
	case V2:
		return k == V1
	case ARIA, Cakewalk:
		return k == V1 || k == V2
	case Mixed:
		return k != Mixed
	}
	return false
}
