package directive

import (
	"bytes"
	"fmt"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

type Options struct {
	Reporter   diag.Reporter // предупреждения (неизвестные переменные, переопределения)
	Predefined []Var         // переменные, определённые до первой строки файла
}

// Include is a syntax-checked #include directive found during expansion.
type Include struct {
	Path string
	Span source.Span
}

// Expansion is the result of the pre-pass.
type Expansion struct {
	Text          []byte // file content with variables substituted
	Vars          *VarTable
	Includes      []Include
	Substitutions int
	// Origins maps Text back to the input file; nil when nothing changed.
	Origins source.Origins
}

// Changed reports whether any substitution was made.
func (e *Expansion) Changed() bool { return e.Substitutions > 0 }

type expander struct {
	file     *source.File
	src      []byte
	out      bytes.Buffer
	vars     *VarTable
	opts     Options
	subs     int
	inBlock  bool // внутри /* ... */, который может тянуться через строки
	includes []Include

	// всё, кроме подстановок, копируется байт в байт
	origins source.Origins
	srcAt   int // конец последней подстановки во входе
	outAt   int // и в выходе
}

// Expand runs the directive pre-pass over file. A malformed directive
// returns *Error and no expansion.
func Expand(file *source.File, opts Options) (*Expansion, error) {
	ex := &expander{
		file: file,
		src:  file.Content,
		vars: NewVarTable(),
		opts: opts,
	}
	for _, v := range opts.Predefined {
		ex.vars.Define(v.Name, v.Value, v.Span)
	}
	ex.out.Grow(len(ex.src))

	for off := 0; off < len(ex.src); {
		lineEnd := len(ex.src)
		if n := bytes.IndexByte(ex.src[off:], '\n'); n >= 0 {
			lineEnd = off + n
		}
		if err := ex.scan(off, lineEnd, true); err != nil {
			return nil, err
		}
		if lineEnd < len(ex.src) {
			ex.out.WriteByte('\n')
		}
		off = lineEnd + 1
	}

	exp := &Expansion{
		Text:          ex.src,
		Vars:          ex.vars,
		Includes:      ex.includes,
		Substitutions: ex.subs,
	}
	if ex.subs > 0 {
		exp.Text = ex.out.Bytes()
		ex.copied(len(ex.src))
		exp.Origins = ex.origins
	}
	return exp, nil
}

// scan копирует src[i:end] в out, подставляя переменные вне комментариев.
// directives=false используется для хвоста строки после директивы.
func (ex *expander) scan(i, end int, directives bool) error {
	src := ex.src
	lineStart := directives
	var quote byte
	for i < end {
		c := src[i]
		if ex.inBlock {
			if c == '*' && i+1 < end && src[i+1] == '/' {
				ex.out.WriteString("*/")
				i += 2
				ex.inBlock = false
				continue
			}
			ex.out.WriteByte(c)
			i++
			continue
		}
		if quote != 0 {
			if c == '$' {
				i = ex.substitute(i, end)
				continue
			}
			if c == quote {
				quote = 0
			}
			ex.out.WriteByte(c)
			i++
			continue
		}

		switch {
		case c == '/' && i+1 < end && src[i+1] == '/':
			ex.out.Write(src[i:end])
			return nil
		case c == '/' && i+1 < end && src[i+1] == '*':
			ex.out.WriteString("/*")
			i += 2
			ex.inBlock = true
			continue
		case c == '"':
			quote = c
		case c == '\'' && prevNonSpace(src, i) == '=':
			quote = c
		case c == '#' && directives && (lineStart || isSpace(src[i-1])):
			handled, err := ex.directive(i, end, lineStart)
			if handled || err != nil {
				return err
			}
		case c == '$':
			i = ex.substitute(i, end)
			lineStart = false
			continue
		}
		if !isSpace(c) {
			lineStart = false
		}
		ex.out.WriteByte(c)
		i++
	}
	return nil
}

func (ex *expander) directive(i, end int, lineStart bool) (bool, error) {
	rest := ex.src[i:end]
	switch {
	case hasWord(rest, "#define"):
		return true, ex.define(i, end)
	case hasWord(rest, "#include"):
		return true, ex.include(i, end)
	case lineStart && len(rest) > 1 && isLetter(rest[1]):
		j := 1
		for j < len(rest) && isLetter(rest[j]) {
			j++
		}
		return true, ex.fail(diag.DirUnknown, i, i+j, fmt.Sprintf("unknown directive '%s'", rest[:j]))
	}
	return false, nil
}

func (ex *expander) define(i, end int) error {
	src := ex.src
	p := skipSpaces(src, i+len("#define"), end)
	if p >= end || src[p] != '$' {
		return ex.fail(diag.DirMissingName, i, end, "#define expects a $NAME")
	}
	p++
	nameStart := p
	for p < end && isVarByte(src[p]) {
		p++
	}
	if p == nameStart {
		return ex.fail(diag.DirMissingName, i, end, "#define expects a $NAME")
	}
	name := string(src[nameStart:p])

	vs := skipSpaces(src, p, end)
	ve := valueEnd(src, vs, end)
	if ve == vs {
		return ex.fail(diag.DirMissingValue, i, end, fmt.Sprintf("#define $%s has no value", name))
	}

	ex.out.Write(src[i:vs])
	mark := ex.out.Len()
	ex.substituteRange(vs, ve)
	value := string(ex.out.Bytes()[mark:])

	sp := ex.span(i, ve)
	if prev, again := ex.vars.Define(name, value, sp); again {
		b := diag.ReportWarning(ex.opts.Reporter, diag.DirRedefined, sp, fmt.Sprintf("variable $%s redefined", name))
		if !prev.Span.Empty() {
			b = b.WithNote(prev.Span, "previous definition here")
		}
		b.Emit()
	}
	return ex.scan(ve, end, false)
}

func (ex *expander) include(i, end int) error {
	src := ex.src
	p := skipSpaces(src, i+len("#include"), end)
	if p >= end || src[p] != '"' {
		return ex.fail(diag.DirMalformedInclude, i, end, "#include expects a quoted path")
	}
	q := p + 1
	n := bytes.IndexByte(src[q:end], '"')
	if n < 0 {
		return ex.fail(diag.DirMalformedInclude, i, end, "unterminated #include path")
	}
	if n == 0 {
		return ex.fail(diag.DirMalformedInclude, i, end, "#include path is empty")
	}

	ex.out.Write(src[i:q])
	mark := ex.out.Len()
	ex.substituteRange(q, q+n)
	path := string(ex.out.Bytes()[mark:])
	ex.out.WriteByte('"')
	ex.includes = append(ex.includes, Include{Path: path, Span: ex.span(i, q+n+1)})
	return ex.scan(q+n+1, end, false)
}

func (ex *expander) substituteRange(a, b int) {
	for a < b {
		if ex.src[a] == '$' {
			a = ex.substitute(a, b)
			continue
		}
		ex.out.WriteByte(ex.src[a])
		a++
	}
}

// substitute обрабатывает '$' в позиции i и возвращает позицию после него.
func (ex *expander) substitute(i, end int) int {
	if v, ok := ex.vars.match(ex.src[i+1 : end]); ok {
		next := i + 1 + len(v.Name)
		ex.copied(i)
		at := ex.out.Len()
		ex.out.WriteString(v.Value)
		ex.origins.Replace(offset(at), offset(ex.out.Len()), ex.file.ID, offset(i), offset(next))
		ex.srcAt, ex.outAt = next, ex.out.Len()
		ex.subs++
		return next
	}
	j := i + 1
	for j < end && isVarByte(ex.src[j]) {
		j++
	}
	if j > i+1 {
		diag.ReportWarning(ex.opts.Reporter, diag.DirUndefinedVariable, ex.span(i, j),
			fmt.Sprintf("undefined variable %s", ex.src[i:j])).Emit()
	}
	ex.out.Write(ex.src[i:j])
	return j
}

// copied records src[srcAt:upto] as copied unchanged.
func (ex *expander) copied(upto int) {
	ex.origins.Copy(offset(ex.outAt), offset(ex.outAt+upto-ex.srcAt), ex.file.ID, offset(ex.srcAt))
}

func (ex *expander) fail(code diag.Code, start, end int, msg string) error {
	err := &Error{Code: code, Span: ex.span(start, end), Msg: msg}
	diag.ReportError(ex.opts.Reporter, code, err.Span, msg).Emit()
	return err
}

func (ex *expander) span(start, end int) source.Span {
	return source.SpanOf(ex.file.ID, start, end)
}
