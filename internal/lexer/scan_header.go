package lexer

import (
	"sfzkit/internal/diag"
	"sfzkit/internal/token"
)

// scanHeader сканирует <name>. Имя сворачивается по регистру (Unicode case
// folding) и сверяется с закрытым набором заголовков; неизвестный заголовок
// фатален.
func (lx *Lexer) scanHeader() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'

	nameStart := lx.cursor.Mark()
	for isHeaderNameByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(nameStart)

	if !lx.cursor.Eat('>') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '>' {
			lx.cursor.Bump()
		}
		lx.cursor.Eat('>')
		sp := lx.cursor.SpanFrom(start)
		return lx.fail(diag.LexMalformedHeader, sp, "malformed header "+lx.text(sp))
	}
	sp := lx.cursor.SpanFrom(start)
	if nameSpan.Empty() {
		return lx.fail(diag.LexMalformedHeader, sp, "empty header <>")
	}

	name := lx.folder.String(lx.text(nameSpan))
	kind, ok := token.LookupHeader(name)
	if !ok {
		return lx.fail(diag.LexUnknownHeader, sp, "unknown header "+lx.text(sp))
	}
	return token.Token{
		Kind:       token.Header,
		Span:       sp,
		Text:       lx.text(sp),
		HeaderKind: kind,
		Name:       name,
		NameSpan:   nameSpan,
	}
}
