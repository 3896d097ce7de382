package lexer

import (
	"strconv"
	"unicode/utf8"
)

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	if lx.cursor.EOF() {
		return
	}
	_, sz := utf8.DecodeRune(lx.cursor.Rest())
	lx.cursor.BumpN(sz)
}

// ===== Классификаторы =====

// Имя опкода: ASCII буквы, цифры, '_' и '$' (неразвёрнутая переменная).
func isNameByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func isHeaderNameByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isVarByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// isSpace: горизонтальные пробелы; '\r' встречается только одиночным после нормализации CRLF.
func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v' }

func quoteRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return strconv.QuoteRune(r)
}

// skipSpaces съедает горизонтальные пробелы и возвращает их количество.
func (lx *Lexer) skipSpaces() int {
	n := 0
	for isSpace(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
		n++
	}
	return n
}
