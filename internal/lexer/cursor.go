package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"sfzkit/internal/source"
)

// Cursor is a byte position in a normalised file. SFZ is line oriented and
// ASCII in its syntax, so the cursor works on bytes; values with UTF-8 in
// them are taken as opaque slices.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Limit: contentLen(f)}
}

func contentLen(f *source.File) uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return n
}

func (c *Cursor) limit() uint32 {
	if c.Limit != 0 {
		return c.Limit
	}
	return contentLen(c.File)
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek возвращает текущий байт или 0 в конце.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and the next byte; ok is false when fewer than
// two bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Rest is the unread content up to the limit.
func (c *Cursor) Rest() []byte {
	if c.EOF() {
		return nil
	}
	return c.File.Content[c.Off:c.limit()]
}

// HasPrefix reports whether the unread content starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return bytes.HasPrefix(c.Rest(), []byte(s))
}

// AtComment reports whether a // or /* comment starts here.
func (c *Cursor) AtComment() bool {
	b0, b1, ok := c.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}

func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// BumpN advances by n bytes, stopping at the limit.
func (c *Cursor) BumpN(n int) {
	for ; n > 0 && !c.EOF(); n-- {
		c.Off++
	}
}

// Seek moves to off, clamped to the limit. Value scanners compute the end
// of a value first and jump there.
func (c *Cursor) Seek(off uint32) {
	c.Off = min(off, c.limit())
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}
