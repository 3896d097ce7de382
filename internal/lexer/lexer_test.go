package lexer_test

import (
	"errors"
	"fmt"
	"testing"

	"sfzkit/internal/diag"
	"sfzkit/internal/lexer"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(d diag.Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

func (r *testReporter) count(sev diag.Severity) int {
	n := 0
	for _, d := range r.diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return out
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sfz", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter, file
}

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	lx, rep, _ := makeTestLexer(input)
	var out []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			t.Fatalf("unexpected error for %q: %v (%v)", input, err, rep.messages())
		}
		out = append(out, tok)
	}
	if rep.count(diag.SevError) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.messages())
	}
	return out
}

type want struct {
	kind  token.Kind
	name  string
	value string
}

func expectTokens(t *testing.T, input string, expected []want) []token.Token {
	t.Helper()
	toks := tokenize(t, input)
	if len(toks) != len(expected) {
		t.Fatalf("%q: got %d tokens, want %d: %+v", input, len(toks), len(expected), toks)
	}
	for i, w := range expected {
		got := toks[i]
		if got.Kind != w.kind || got.Name != w.name || got.Value != w.value {
			t.Errorf("%q token %d = %v %q=%q; want %v %q=%q", input, i, got.Kind, got.Name, got.Value, w.kind, w.name, w.value)
		}
	}
	return toks
}

func TestBasicRegion(t *testing.T) {
	toks := expectTokens(t, "<region> sample=piano.wav lokey=36", []want{
		{token.Header, "region", ""},
		{token.Assign, "sample", "piano.wav"},
		{token.Assign, "lokey", "36"},
	})
	if toks[0].HeaderKind != token.HeaderRegion {
		t.Fatalf("header kind = %v", toks[0].HeaderKind)
	}
	if toks[1].Text != "sample=piano.wav" {
		t.Fatalf("assign text = %q", toks[1].Text)
	}
}

func TestHeadersAreCaseInsensitive(t *testing.T) {
	toks := expectTokens(t, "<REGION><Group>\n<gLoBaL>", []want{
		{token.Header, "region", ""},
		{token.Header, "group", ""},
		{token.Header, "global", ""},
	})
	if toks[1].HeaderKind != token.HeaderGroup || toks[1].Text != "<Group>" {
		t.Fatalf("group header mismatch: %+v", toks[1])
	}
}

func TestKeysAreLowerCased(t *testing.T) {
	expectTokens(t, "LoKey=C4", []want{{token.Assign, "lokey", "C4"}})
}

func TestAllSideHeaders(t *testing.T) {
	toks := tokenize(t, "<control><curve><effect><midi><sample><master>")
	kinds := []token.HeaderKind{token.HeaderControl, token.HeaderCurve, token.HeaderEffect, token.HeaderMidi, token.HeaderSample, token.HeaderMaster}
	for i, k := range kinds {
		if toks[i].HeaderKind != k {
			t.Errorf("header %d = %v; want %v", i, toks[i].HeaderKind, k)
		}
	}
}

func TestValuesWithSpacesAndEquals(t *testing.T) {
	expectTokens(t, "sample=MOHorn mute_A#1_v1_1.wav", []want{
		{token.Assign, "sample", "MOHorn mute_A#1_v1_1.wav"},
	})
	expectTokens(t, "sample=equal_sign_=_doesn't_fail.wav", []want{
		{token.Assign, "sample", "equal_sign_=_doesn't_fail.wav"},
	})
	expectTokens(t, "sample=My Piano C4.wav   lokey=60  \n", []want{
		{token.Assign, "sample", "My Piano C4.wav"},
		{token.Assign, "lokey", "60"},
	})
}

func TestQuotedValue(t *testing.T) {
	toks := expectTokens(t, `sample="My Piano = C4.wav" lokey=60`, []want{
		{token.Assign, "sample", "My Piano = C4.wav"},
		{token.Assign, "lokey", "60"},
	})
	if !toks[0].Quoted || toks[1].Quoted {
		t.Fatalf("quoted flags mismatch")
	}
	expectTokens(t, `region_label='a // b'`, []want{{token.Assign, "region_label", "a // b"}})
}

func TestCommentsAreTrivia(t *testing.T) {
	toks := expectTokens(t, "lokey=36 // low\n/* block\ncomment */hikey=40/*x*/\n// only comment", []want{
		{token.Assign, "lokey", "36"},
		{token.Assign, "hikey", "40"},
	})
	if !toks[1].HasComments() {
		t.Fatalf("expected leading comments on second token")
	}
	var kinds []token.TriviaKind
	for _, tv := range toks[1].Leading {
		kinds = append(kinds, tv.Kind)
	}
	wantKinds := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment}
	if fmt.Sprint(kinds) != fmt.Sprint(wantKinds) {
		t.Fatalf("trivia kinds = %v; want %v", kinds, wantKinds)
	}
}

func TestValueStopsAtHeader(t *testing.T) {
	expectTokens(t, "lokey=36<region>hikey=40", []want{
		{token.Assign, "lokey", "36"},
		{token.Header, "region", ""},
		{token.Assign, "hikey", "40"},
	})
}

func TestEmptyValue(t *testing.T) {
	expectTokens(t, "sample=\nlokey=1", []want{
		{token.Assign, "sample", ""},
		{token.Assign, "lokey", "1"},
	})
}

func TestSpacesAroundEquals(t *testing.T) {
	expectTokens(t, "lokey = 36", []want{{token.Assign, "lokey", "36"}})
}

func TestDirectives(t *testing.T) {
	toks := expectTokens(t, "#define $VOL -6 // level\n#include \"common/keys.sfz\"\nvolume=-6", []want{
		{token.Define, "VOL", "-6"},
		{token.Include, "", "common/keys.sfz"},
		{token.Assign, "volume", "-6"},
	})
	if !toks[0].Kind.IsDirective() || !toks[1].Quoted {
		t.Fatalf("directive flags mismatch")
	}
	expectTokens(t, "lokey=1 #define $X 2", []want{
		{token.Assign, "lokey", "1"},
		{token.Define, "X", "2"},
	})
}

func TestSpans(t *testing.T) {
	lx, _, file := makeTestLexer("<group>\n  lokey=36")
	hdr := lx.Next()
	asg := lx.Next()
	if file.Text(hdr.Span) != "<group>" || file.Text(hdr.NameSpan) != "group" {
		t.Fatalf("header spans: %q %q", file.Text(hdr.Span), file.Text(hdr.NameSpan))
	}
	if asg.Span.Start != 10 || file.Text(asg.NameSpan) != "lokey" || file.Text(asg.ValueSpan) != "36" {
		t.Fatalf("assign spans: %+v", asg)
	}
	if eof := lx.Next(); eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
}

func TestFatalErrors(t *testing.T) {
	cases := []struct {
		input string
		code  diag.Code
	}{
		{"<foo>", diag.LexUnknownHeader},
		{"<region", diag.LexMalformedHeader},
		{"<>", diag.LexMalformedHeader},
		{`sample="piano.wav`, diag.LexUnterminatedString},
		{"sample=\"a\nb\"", diag.LexUnterminatedString},
		{"lokey 36", diag.LexMissingAssign},
		{"=36", diag.LexUnknownChar},
		{"#define VOL 3", diag.DirMissingName},
		{"#define $ 3", diag.DirMissingName},
		{"#define $VOL   // nothing", diag.DirMissingValue},
		{"#include common.sfz", diag.DirMalformedInclude},
		{"#include \"common.sfz", diag.DirMalformedInclude},
		{"#include \"\"", diag.DirMalformedInclude},
		{"#pragma once", diag.DirUnknown},
	}
	for _, tc := range cases {
		lx, rep, _ := makeTestLexer("<region> " + tc.input + "\nlokey=1")
		var gotErr error
		n := 0
		for _, err := range lx.All() {
			n++
			if err != nil {
				gotErr = err
			}
		}
		var lexErr *lexer.Error
		if !errors.As(gotErr, &lexErr) || lexErr.Code != tc.code {
			t.Errorf("%q: error = %v; want %s", tc.input, gotErr, tc.code.ID())
			continue
		}
		if n != 2 {
			t.Errorf("%q: expected header then invalid token, got %d items", tc.input, n)
		}
		if rep.count(diag.SevError) != 1 {
			t.Errorf("%q: expected one error diagnostic, got %v", tc.input, rep.messages())
		}
		if lx.Next().Kind != token.EOF {
			t.Errorf("%q: lexer must stop after a fatal error", tc.input)
		}
	}
}

func TestUnterminatedBlockCommentWarns(t *testing.T) {
	lx, rep, _ := makeTestLexer("lokey=1 /* never closed")
	toks, err := collect(lx)
	if err != nil || len(toks) != 1 {
		t.Fatalf("toks=%v err=%v", toks, err)
	}
	if rep.count(diag.SevWarning) != 1 || rep.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected warning, got %v", rep.messages())
	}
}

func TestResetRestarts(t *testing.T) {
	lx, _, _ := makeTestLexer("<region> lokey=1 <bogus>")
	first, err := collect(lx)
	if err == nil || len(first) != 2 {
		t.Fatalf("first pass: %v %v", first, err)
	}
	lx.Reset()
	if lx.Err() != nil {
		t.Fatalf("Reset must clear the error")
	}
	second, err := collect(lx)
	if err == nil || len(second) != len(first) {
		t.Fatalf("second pass: %v %v", second, err)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _, _ := makeTestLexer("<region> lokey=1")
	if p := lx.Peek(); p.Kind != token.Header {
		t.Fatalf("peek = %v", p.Kind)
	}
	if n := lx.Next(); n.Kind != token.Header {
		t.Fatalf("next after peek = %v", n.Kind)
	}
	if n := lx.Next(); n.Kind != token.Assign {
		t.Fatalf("second = %v", n.Kind)
	}
}

func TestTokenizeReturnsPrefixOnError(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sfz", []byte("<group> a=1 <what>"))
	toks, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err == nil || len(toks) != 2 {
		t.Fatalf("toks=%d err=%v", len(toks), err)
	}
}

func collect(lx *lexer.Lexer) ([]token.Token, error) {
	var out []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}
