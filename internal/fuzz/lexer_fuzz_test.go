package fuzztests

import (
	"testing"

	"sfzkit/internal/diag"
	"sfzkit/internal/lexer"
	"sfzkit/internal/source"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.sfz", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		// каждый токен сдвигает курсор, иначе лексер завис
		var prev uint32
		for i := 0; ; i++ {
			tok := lx.Next()
			if tok.IsEOF() {
				break
			}
			if i > 0 && tok.Span.Start < prev {
				t.Fatalf("token %d goes backwards: %d < %d", i, tok.Span.Start, prev)
			}
			if tok.Span.End < tok.Span.Start || int(tok.Span.End) > len(input) {
				t.Fatalf("token %d span %d..%d out of bounds (len %d)", i, tok.Span.Start, tok.Span.End, len(input))
			}
			prev = tok.Span.End
			if i > len(input)+1 {
				t.Fatalf("lexer emitted more tokens than input bytes")
			}
		}
		if lx.Err() != nil && !bag.HasErrors() {
			t.Fatalf("fatal lexer error %v was not reported", lx.Err())
		}
	})
}
