package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls tracing verbosity. Each level past LevelError admits one
// more Scope.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // only the ring dump after a failure
	LevelPhase        // commands and pipeline stages
	LevelDetail       // plus one event per instrument
	LevelDebug        // everything
)

var levelNames = []string{"off", "error", "phase", "detail", "debug"}

// deepest scope each level lets through; LevelOff and LevelError admit none
var levelScopes = [...]Scope{0, 0, ScopePass, ScopeFile, ScopeDebug}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level. "instrument" is accepted for
// detail.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return LevelOff, nil
	case "instrument":
		return LevelDetail, nil
	}
	if i := slices.Index(levelNames, s); i >= 0 {
		return Level(i), nil
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames, "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelScopes) {
		return true
	}
	return scope != 0 && scope <= levelScopes[l]
}
