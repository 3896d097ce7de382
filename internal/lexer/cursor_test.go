package lexer

import (
	"testing"

	"sfzkit/internal/source"
)

func newTestCursor(t *testing.T, content string) (*source.FileSet, Cursor) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sfz", []byte(content))
	return fs, NewCursor(fs.Get(id))
}

func TestCursorWalksHeaderBytes(t *testing.T) {
	_, c := newTestCursor(t, "<g>\n")
	for i, want := range []byte("<g>\n") {
		if c.EOF() {
			t.Fatalf("EOF at byte %d", i)
		}
		if got := c.Peek(); got != want {
			t.Fatalf("byte %d: peek %q, want %q", i, got, want)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("byte %d: bump %q, want %q", i, got, want)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("cursor must report zero bytes at EOF")
	}
}

func TestCursorPeek2(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		seek   uint32
		b0, b1 byte
		ok     bool
	}{
		{name: "start", input: "//x", b0: '/', b1: '/', ok: true},
		{name: "middle", input: "a=1", seek: 1, b0: '=', b1: '1', ok: true},
		{name: "last byte", input: "a=1", seek: 2},
		{name: "empty", input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newTestCursor(t, tt.input)
			c.Seek(tt.seek)
			b0, b1, ok := c.Peek2()
			if ok != tt.ok || b0 != tt.b0 || b1 != tt.b1 {
				t.Fatalf("Peek2 = (%q, %q, %v), want (%q, %q, %v)", b0, b1, ok, tt.b0, tt.b1, tt.ok)
			}
		})
	}
}

// значение с UTF-8: колонки считаются в байтах
func TestCursorSpanResolvesAcrossLines(t *testing.T) {
	fs, c := newTestCursor(t, "é\nx")
	m := c.Mark()
	c.BumpN(2)
	span := c.SpanFrom(m)
	if span.Start != 0 || span.End != 2 {
		t.Fatalf("span = %v", span)
	}
	start, end := fs.Resolve(span)
	if start != (source.LineCol{Line: 1, Col: 1}) || end != (source.LineCol{Line: 1, Col: 3}) {
		t.Fatalf("resolve = %+v..%+v", start, end)
	}

	m = c.Mark()
	c.Bump()
	start, end = fs.Resolve(c.SpanFrom(m))
	if start != (source.LineCol{Line: 1, Col: 3}) || end != (source.LineCol{Line: 2, Col: 1}) {
		t.Fatalf("newline resolves to %+v..%+v", start, end)
	}
}

func TestCursorEatAndReset(t *testing.T) {
	_, c := newTestCursor(t, "<region>")
	m := c.Mark()
	if c.Eat('r') {
		t.Fatal("Eat must not consume a different byte")
	}
	if !c.Eat('<') || !c.HasPrefix("region>") {
		t.Fatalf("after Eat rest = %q", c.Rest())
	}
	c.BumpN(6)
	if !c.Eat('>') || c.Eat('>') || !c.EOF() {
		t.Fatal("closing bracket not consumed once")
	}
	c.Reset(m)
	if c.Off != 0 || c.Peek() != '<' {
		t.Fatalf("reset left cursor at %d", c.Off)
	}
}

func TestCursorRespectsLimit(t *testing.T) {
	_, c := newTestCursor(t, "key=60 lokey=58")
	c.Limit = 6
	c.BumpN(100)
	if c.Off != 6 || !c.EOF() {
		t.Fatalf("Off = %d, want 6", c.Off)
	}
	c.Reset(Mark(4))
	if string(c.Rest()) != "60" {
		t.Fatalf("rest = %q", c.Rest())
	}
	if _, _, ok := c.Peek2(); !ok {
		t.Fatal("two bytes remain before the limit")
	}
}

func TestCursorCommentsAndSeek(t *testing.T) {
	_, c := newTestCursor(t, "a=1 // tail\n/* b */")
	if c.AtComment() || !c.HasPrefix("a=1") {
		t.Fatal("start of file misread")
	}
	c.Seek(4)
	if !c.AtComment() || string(c.Rest()[:7]) != "// tail" {
		t.Fatalf("rest = %q", c.Rest())
	}
	c.BumpN(8)
	if c.Peek() != '/' || !c.AtComment() {
		t.Fatalf("expected block comment at %d", c.Off)
	}
	c.Seek(1000)
	if !c.EOF() || c.Rest() != nil {
		t.Fatal("seek past the end must clamp to EOF")
	}
	c.BumpN(3)
	if c.Off != c.limit() {
		t.Fatalf("BumpN moved past the limit: %d", c.Off)
	}
}
