package format

import "bytes"

// Writer builds SFZ text line by line. Header and Comment start a line,
// Opcode either continues the current line (inline layout) or starts its
// own at the current indentation.
type Writer struct {
	opt   Options
	buf   bytes.Buffer
	level int
	open  bool // текущая строка ещё не закрыта
}

func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults()}
}

// Bytes returns the text so far, ending with a newline unless empty.
func (w *Writer) Bytes() []byte {
	w.endLine()
	return w.buf.Bytes()
}

// SetIndent sets the indentation level for lines started from now on.
func (w *Writer) SetIndent(level int) {
	w.level = max(level, 0)
}

// Header starts a "<kind>" line. With blank set it is separated from the
// previous line by one empty line; never at the top of the output.
func (w *Writer) Header(kind string, blank bool) {
	w.endLine()
	if blank && w.buf.Len() > 0 && !bytes.HasSuffix(w.buf.Bytes(), []byte("\n\n")) {
		w.buf.WriteByte('\n')
	}
	w.startLine()
	w.buf.WriteString("<" + kind + ">")
}

// Opcode writes name=value, on the open line when sameLine is set.
func (w *Writer) Opcode(name, value string, sameLine bool) {
	if sameLine && w.open {
		w.buf.WriteByte(' ')
	} else {
		w.endLine()
		w.startLine()
	}
	w.buf.WriteString(name)
	w.buf.WriteByte('=')
	w.buf.WriteString(value)
}

// Comment writes a // line comment on a line of its own.
func (w *Writer) Comment(text string) {
	w.endLine()
	w.startLine()
	w.buf.WriteString("// " + text)
}

func (w *Writer) startLine() {
	if w.opt.UseTabs {
		w.buf.Write(bytes.Repeat([]byte{'\t'}, w.level))
	} else {
		w.buf.Write(bytes.Repeat([]byte{' '}, w.level*w.opt.IndentWidth))
	}
	w.open = true
}

func (w *Writer) endLine() {
	if w.open {
		w.buf.WriteByte('\n')
		w.open = false
	}
}
