package lexer

import (
	"bytes"
	"strings"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
	"sfzkit/internal/token"
)

// scanAssign сканирует name=value. Ключ приводится к нижнему регистру.
func (lx *Lexer) scanAssign() token.Token {
	start := lx.cursor.Mark()
	for isNameByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nameSpan := lx.cursor.SpanFrom(start)

	// пробелы вокруг '=' формат не допускает, но встречаются в реальных файлах
	beforeEq := lx.cursor.Mark()
	lx.skipSpaces()
	if !lx.cursor.Eat('=') {
		lx.cursor.Reset(beforeEq)
		return lx.fail(diag.LexMissingAssign, nameSpan, "expected '=' after opcode name '"+lx.text(nameSpan)+"'")
	}
	lx.skipSpaces()

	var (
		value     string
		valueSpan source.Span
		quoted    bool
	)
	if q := lx.cursor.Peek(); q == '"' || q == '\'' {
		qstart := lx.cursor.Mark()
		lx.cursor.Bump()
		inner := lx.cursor.Mark()
		for {
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				sp := lx.cursor.SpanFrom(qstart)
				return lx.fail(diag.LexUnterminatedString, sp, "unterminated quoted value for '"+lx.text(nameSpan)+"'")
			}
			if lx.cursor.Peek() == q {
				break
			}
			lx.cursor.Bump()
		}
		valueSpan = lx.cursor.SpanFrom(inner)
		lx.cursor.Bump() // closing quote
		value = lx.text(valueSpan)
		quoted = true
	} else {
		vstart := lx.cursor.Off
		end := lx.valueEnd(vstart)
		lx.cursor.Seek(end)
		valueSpan = source.Span{File: lx.file.ID, Start: vstart, End: end}
		value = lx.text(valueSpan)
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind:      token.Assign,
		Span:      sp,
		Text:      lx.text(sp),
		Name:      strings.ToLower(lx.text(nameSpan)),
		NameSpan:  nameSpan,
		Value:     value,
		ValueSpan: valueSpan,
		Quoted:    quoted,
	}
}

// valueEnd находит конец неквотированного значения, начинающегося с from.
// Значение может содержать пробелы и '=' (имена сэмплов), поэтому оно
// заканчивается на первом из:
//   - конце строки;
//   - начале комментария // или /*;
//   - '<' (следующий заголовок);
//   - пробеле, за которым идёт name= или директива.
//
// Хвостовые пробелы в значение не входят.
func (lx *Lexer) valueEnd(from uint32) uint32 {
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
		if b == '<' {
			break
		}
		if isSpace(b) && startsToken(content[p+1:limit]) {
			break
		}
		if !isSpace(b) {
			end = p + 1
		}
	}
	return end
}

// startsToken сообщает, начинается ли rest (после пробела) с нового
// присваивания или директивы.
func startsToken(rest []byte) bool {
	if directiveWord(rest, "#define") || directiveWord(rest, "#include") {
		return true
	}
	i := 0
	for i < len(rest) && isNameByte(rest[i]) {
		i++
	}
	return i > 0 && i < len(rest) && rest[i] == '='
}

func directiveWord(rest []byte, word string) bool {
	if !bytes.HasPrefix(rest, []byte(word)) {
		return false
	}
	return len(rest) == len(word) || !isHeaderNameByte(rest[len(word)])
}
