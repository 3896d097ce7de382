package token_test

import (
	"testing"

	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

func TestLookupHeader(t *testing.T) {
	cases := map[string]token.HeaderKind{
		"global":  token.HeaderGlobal,
		"master":  token.HeaderMaster,
		"group":   token.HeaderGroup,
		"region":  token.HeaderRegion,
		"control": token.HeaderControl,
		"curve":   token.HeaderCurve,
		"effect":  token.HeaderEffect,
		"midi":    token.HeaderMidi,
		"sample":  token.HeaderSample,
	}
	for name, want := range cases {
		got, ok := token.LookupHeader(name)
		if !ok || got != want {
			t.Errorf("LookupHeader(%q) = %v,%v; want %v", name, got, ok, want)
		}
		if got.String() != name {
			t.Errorf("String() = %q; want %q", got.String(), name)
		}
	}
	if _, ok := token.LookupHeader("foo"); ok {
		t.Fatalf("unknown header must not resolve")
	}
	if _, ok := token.LookupHeader("Region"); ok {
		t.Fatalf("lookup expects a folded name")
	}
}

func TestHeaderChainOrder(t *testing.T) {
	chain := []token.HeaderKind{token.HeaderGlobal, token.HeaderMaster, token.HeaderGroup, token.HeaderRegion}
	for i, h := range chain {
		if !h.InChain() || h.IsSide() {
			t.Fatalf("%v must be a chain header", h)
		}
		if h.Level() != i {
			t.Fatalf("%v level = %d; want %d", h, h.Level(), i)
		}
	}
	for _, h := range []token.HeaderKind{token.HeaderControl, token.HeaderCurve, token.HeaderEffect, token.HeaderMidi, token.HeaderSample} {
		if h.InChain() || !h.IsSide() || h.Level() != -1 {
			t.Fatalf("%v must be a side header", h)
		}
	}
}

func TestTokenHelpers(t *testing.T) {
	tok := token.Token{
		Kind:       token.Header,
		Span:       source.Span{Start: 10, End: 18},
		Text:       "<region>",
		HeaderKind: token.HeaderRegion,
		Name:       "region",
		Leading: []token.Trivia{
			{Kind: token.TriviaLineComment, Text: "// piano"},
			{Kind: token.TriviaNewline, Text: "\n"},
		},
	}
	if !tok.IsHeader(token.HeaderRegion) || tok.IsHeader(token.HeaderGroup) {
		t.Fatalf("IsHeader mismatch")
	}
	if !tok.HasComments() {
		t.Fatalf("expected leading comment")
	}
	if token.Define.String() != "Define" || !token.Include.IsDirective() || token.Assign.IsDirective() {
		t.Fatalf("kind helpers mismatch")
	}
}
