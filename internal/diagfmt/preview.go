package diagfmt

import (
	"fmt"
	"strings"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

// fixPreview holds the whole lines an edit touches, before and after it is
// applied. Fix-its in SFZ are almost always one opcode on one line.
type fixPreview struct {
	before []string
	after  []string
}

func previewEdit(fs *source.FileSet, edit diag.FixEdit) (fixPreview, error) {
	f := fileOf(fs, edit.Span)
	if f == nil {
		return fixPreview{}, fmt.Errorf("file %d not found in FileSet", edit.Span.File)
	}
	if edit.Span.End < edit.Span.Start || int(edit.Span.End) > len(f.Content) {
		return fixPreview{}, fmt.Errorf("edit span %v out of range", edit.Span)
	}

	start, end := fs.Resolve(edit.Span)
	before := make([]string, 0, end.Line-start.Line+1)
	for ln := start.Line; ln <= end.Line; ln++ {
		before = append(before, f.GetLine(ln))
	}
	first, last := before[0], before[len(before)-1]
	head := first[:clampCol(first, start.Col)]
	tail := last[clampCol(last, end.Col):]

	return fixPreview{
		before: before,
		after:  strings.Split(head+edit.NewText+tail, "\n"),
	}, nil
}
