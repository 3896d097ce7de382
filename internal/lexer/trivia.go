package lexer

import (
	"sfzkit/internal/diag"
	"sfzkit/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t' и одиночный '\r' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (без вложенности; незакрытый даёт предупреждение и обрезается на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if isSpace(b) {
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, lx.trivia(token.TriviaSpace, start))
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, lx.trivia(token.TriviaNewline, start))
			continue
		}

		if b == '/' && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.AtComment() {
		return false
	}
	_, b1, _ := lx.cursor.Peek2()
	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.hold = append(lx.hold, lx.trivia(token.TriviaLineComment, start))
		return true

	case '*':
		lx.cursor.BumpN(2)
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.BumpN(2)
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		tv := lx.trivia(token.TriviaBlockComment, start)
		if !closed {
			lx.report(diag.SevWarning, diag.LexUnterminatedBlockComment, tv.Span, "unterminated block comment")
		}
		lx.hold = append(lx.hold, tv)
		return true
	}
	return false
}

func (lx *Lexer) trivia(kind token.TriviaKind, start Mark) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)}
}
