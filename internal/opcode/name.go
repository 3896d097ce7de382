package opcode

import (
	"strconv"
	"strings"
)

// Digit sequences that belong to the opcode name itself and are never
// parameters.
var literalDigits = []string{"fil2_", "_vel2", "cutoff2", "resonance2", "md5"}

const maxParams = 3

// Canonical rewrites an opcode name into its catalog form and returns the
// numeric parameters embedded in it, in order of appearance.
//
//	hicc64            -> hiccN, [64]
//	lfo1_eq2gain_oncc7 -> lfoN_eqXgain_onccY, [1 2 7]
//	var03_mod         -> varNN_mod, [3]
//
// ok is false when the name carries more parameters than the catalog
// notation supports or a parameter does not fit an int.
func Canonical(name string) (canonical string, params []int, ok bool) {
	var b strings.Builder
	b.Grow(len(name))
	isVar := strings.HasPrefix(name, "var")
	for i := 0; i < len(name); {
		if lit, found := literalAt(name, i); found {
			b.WriteString(lit)
			i += len(lit)
			continue
		}
		if !isDigit(name[i]) {
			b.WriteByte(name[i])
			i++
			continue
		}
		j := i
		for j < len(name) && isDigit(name[j]) {
			j++
		}
		if len(params) == maxParams {
			return name, nil, false
		}
		n, err := strconv.Atoi(name[i:j])
		if err != nil {
			return name, nil, false
		}
		switch {
		case len(params) == 0 && isVar:
			b.WriteString("NN")
		case len(params) == 0:
			b.WriteByte('N')
		case len(params) == 1:
			b.WriteByte('X')
		default:
			b.WriteByte('Y')
		}
		params = append(params, n)
		i = j
	}
	return b.String(), params, true
}

func literalAt(name string, i int) (string, bool) {
	rest := name[i:]
	for _, lit := range literalDigits {
		if strings.HasPrefix(rest, lit) {
			return lit, true
		}
	}
	// effect1..effect4 выбирают шину эффекта, это часть имени
	if len(rest) >= 7 && strings.HasPrefix(rest, "effect") && rest[6] >= '0' && rest[6] <= '4' {
		return rest[:7], true
	}
	return "", false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
