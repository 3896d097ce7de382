package opcode

import (
	"strconv"
	"strings"

	"github.com/agext/levenshtein"
)

// Suggest returns the known opcode closest to an unknown name, rewritten
// with the name's own parameters, e.g. "hicc46x" may yield "hicc46".
func (c *Catalog) Suggest(name string) (string, bool) {
	name = strings.ToLower(name)
	canon, params, ok := Canonical(name)
	if !ok {
		return "", false
	}
	best, bestDist := "", maxDistance(canon)+1
	for _, d := range c.items {
		if dist := levenshtein.Distance(canon, d.Name, nil); dist < bestDist || dist == bestDist && d.Name < best {
			best, bestDist = d.Name, dist
		}
	}
	if best == "" {
		return "", false
	}
	return Instantiate(best, params), true
}

// SuggestValue returns the allowed enumerated word closest to word.
func (d Descriptor) SuggestValue(word string) (string, bool) {
	word = strings.ToLower(word)
	best, bestDist := "", maxDistance(word)+1
	for _, v := range d.Values {
		if dist := levenshtein.Distance(word, v, nil); dist < bestDist {
			best, bestDist = v, dist
		}
	}
	return best, best != ""
}

func maxDistance(s string) int {
	if n := len(s) / 3; n > 2 {
		return n
	}
	return 2
}

// Instantiate substitutes params into the N/X/Y (or NN) placeholders of a
// canonical name. Placeholders without a matching param are left as is.
func Instantiate(canonical string, params []int) string {
	if len(params) == 0 {
		return canonical
	}
	var b strings.Builder
	next := 0
	for i := 0; i < len(canonical); i++ {
		ch := canonical[i]
		if (ch == 'N' || ch == 'X' || ch == 'Y') && next < len(params) {
			b.WriteString(strconv.Itoa(params[next]))
			next++
			if ch == 'N' && i+1 < len(canonical) && canonical[i+1] == 'N' {
				i++
			}
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}
