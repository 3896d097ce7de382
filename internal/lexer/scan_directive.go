package lexer

import (
	"sfzkit/internal/diag"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// scanDirective сканирует #define $NAME value и #include "path".
// Любая другая форма фатальна.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	wordStart := lx.cursor.Mark()
	for isHeaderNameByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	word := lx.text(lx.cursor.SpanFrom(wordStart))

	switch word {
	case "define":
		return lx.scanDefine(start)
	case "include":
		return lx.scanInclude(start)
	}
	sp := lx.cursor.SpanFrom(start)
	return lx.fail(diag.DirUnknown, sp, "unknown directive '"+lx.text(sp)+"'")
}

func (lx *Lexer) scanDefine(start Mark) token.Token {
	lx.skipSpaces()
	if !lx.cursor.Eat('$') {
		return lx.fail(diag.DirMissingName, lx.cursor.SpanFrom(start), "#define expects a $NAME")
	}
	nameStart := lx.cursor.Mark()
	for isVarByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(nameStart)
	if nameSpan.Empty() {
		return lx.fail(diag.DirMissingName, lx.cursor.SpanFrom(start), "#define expects a $NAME")
	}

	lx.skipSpaces()
	vstart := lx.cursor.Off
	end := lx.lineValueEnd(vstart)
	lx.cursor.Seek(end)
	valueSpan := source.Span{File: lx.file.ID, Start: vstart, End: end}
	if valueSpan.Empty() {
		return lx.fail(diag.DirMissingValue, lx.cursor.SpanFrom(start), "#define $"+lx.text(nameSpan)+" has no value")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:      token.Define,
		Span:      sp,
		Text:      lx.text(sp),
		Name:      lx.text(nameSpan),
		NameSpan:  nameSpan,
		Value:     lx.text(valueSpan),
		ValueSpan: valueSpan,
	}
}

func (lx *Lexer) scanInclude(start Mark) token.Token {
	lx.skipSpaces()
	if !lx.cursor.Eat('"') {
		return lx.fail(diag.DirMalformedInclude, lx.cursor.SpanFrom(start), "#include expects a quoted path")
	}
	pathStart := lx.cursor.Mark()
	for lx.cursor.Peek() != '"' {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			return lx.fail(diag.DirMalformedInclude, lx.cursor.SpanFrom(start), "unterminated #include path")
		}
		lx.cursor.Bump()
	}
	pathSpan := lx.cursor.SpanFrom(pathStart)
	lx.cursor.Bump()
	if pathSpan.Empty() {
		return lx.fail(diag.DirMalformedInclude, lx.cursor.SpanFrom(start), "#include path is empty")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:      token.Include,
		Span:      sp,
		Text:      lx.text(sp),
		Value:     lx.text(pathSpan),
		ValueSpan: pathSpan,
		Quoted:    true,
	}
}

// lineValueEnd: конец значения #define: до конца строки или комментария,
// без хвостовых пробелов.
func (lx *Lexer) lineValueEnd(from uint32) uint32 {
	content := lx.file.Content
	limit := lx.cursor.limit()
	end := from
	for p := from; p < limit; p++ {
		b := content[p]
		if b == '\n' {
			break
		}
		if b == '/' && p+1 < limit && (content[p+1] == '/' || content[p+1] == '*') {
			break
		}
		if !isSpace(b) {
			end = p + 1
		}
	}
	return end
}
