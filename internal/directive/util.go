package directive

import (
	"fmt"

	"fortio.org/safecast"
)

// offset переводит позицию в тексте в смещение спана.
func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v' }

func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func isVarByte(b byte) bool {
	return b == '_' || isLetter(b) || (b >= '0' && b <= '9')
}

func skipSpaces(src []byte, p, end int) int {
	for p < end && isSpace(src[p]) {
		p++
	}
	return p
}

// valueEnd: конец значения до комментария или конца строки, без хвостовых пробелов.
func valueEnd(src []byte, from, end int) int {
	last := from
	for p := from; p < end; p++ {
		if src[p] == '/' && p+1 < end && (src[p+1] == '/' || src[p+1] == '*') {
			break
		}
		if !isSpace(src[p]) {
			last = p + 1
		}
	}
	return last
}

// hasWord: s начинается с word, за которым не идёт буква.
func hasWord(s []byte, word string) bool {
	if len(s) < len(word) || string(s[:len(word)]) != word {
		return false
	}
	return len(s) == len(word) || !isLetter(s[len(word)])
}

func prevNonSpace(src []byte, i int) byte {
	for j := i - 1; j >= 0; j-- {
		switch src[j] {
		case ' ', '\t':
			continue
		case '\n':
			return 0
		}
		return src[j]
	}
	return 0
}
