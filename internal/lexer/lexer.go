package lexer

import (
	"iter"

	"golang.org/x/text/cases"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	err    *Error         // первая фатальная ошибка
	folder cases.Caser    // не потокобезопасен, свой на каждый лексер
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		folder: cases.Fold(),
	}
}

// Next возвращает следующий значимый токен с уже собранным Leading.
// После EOF или фатальной ошибки всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.err != nil {
		return lx.eof()
	}

	lx.collectLeadingTrivia()

	// Leading из hold к EOF не приклеиваем
	if lx.cursor.EOF() {
		return lx.eof()
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case ch == '<':
		tok = lx.scanHeader()
	case ch == '#':
		tok = lx.scanDirective()
	case isNameByte(ch):
		tok = lx.scanAssign()
	default:
		start := lx.cursor.Mark()
		lx.bumpRune()
		tok = lx.fail(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected character "+quoteRune(lx.text(lx.cursor.SpanFrom(start))))
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Err returns the fatal error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// Reset rewinds the lexer to the beginning of the file and clears any error,
// so the same input can be tokenized again.
func (lx *Lexer) Reset() {
	lx.cursor = NewCursor(lx.file)
	lx.look = nil
	lx.hold = nil
	lx.err = nil
}

// All yields tokens up to, but not including, EOF. On a fatal error the
// Invalid token is yielded together with the error and iteration stops.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok := lx.Next()
			if tok.Kind == token.Invalid {
				yield(tok, lx.Err())
				return
			}
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize lexes the whole file. Tokens produced before a fatal error are
// returned along with it.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var out []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func (lx *Lexer) eof() token.Token {
	return token.Token{
		Kind: token.EOF,
		Span: lx.emptySpan(),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.At(lx.file.ID, lx.cursor.Off)
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
