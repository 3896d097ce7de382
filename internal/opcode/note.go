package opcode

import (
	"strconv"
	"strings"
)

var semitones = map[byte]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// ParseNoteName converts a note name in scientific pitch notation to a MIDI
// note number, with c4 = 60. Accepted forms: c4, C#4, db-1, f♯3, e♭2.
func ParseNoteName(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	base, ok := semitones[lower(s[0])]
	if !ok {
		return 0, false
	}
	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		base++
		rest = rest[1:]
	case strings.HasPrefix(rest, "♯"):
		base++
		rest = rest[len("♯"):]
	case strings.HasPrefix(rest, "♭"):
		base--
		rest = rest[len("♭"):]
	case strings.HasPrefix(rest, "b") && len(rest) > 1:
		base--
		rest = rest[1:]
	}
	if rest == "" {
		return 0, false
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || octave < -1 || octave > 9 {
		return 0, false
	}
	return (octave+1)*12 + base, true
}

var noteNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// NoteName renders a MIDI note number as a sharp-spelled name (60 -> c4).
func NoteName(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return noteNames[n%12] + strconv.Itoa(n/12-1)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
