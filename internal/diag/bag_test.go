package diag

import (
	"testing"

	"sfzkit/internal/source"
)

func TestBagLimitKeepsErrors(t *testing.T) {
	b := NewBag(1)
	if !b.Add(NewWarning(OpcUnknown, source.Span{}, "a")) {
		t.Fatalf("first warning must fit")
	}
	if b.Add(NewWarning(OpcUnknown, source.Span{Start: 1}, "b")) {
		t.Fatalf("second warning must be dropped")
	}
	if !b.Add(NewError(LexUnknownHeader, source.Span{Start: 2}, "c")) {
		t.Fatalf("errors bypass the limit")
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
	if !b.HasErrors() || !b.HasWarnings() || b.Count(SevError) != 1 {
		t.Fatalf("severity counters mismatch")
	}
}

func TestBagSortPromote(t *testing.T) {
	b := NewBag(0)
	b.Add(NewWarning(OpcOutOfRange, source.Span{Start: 5, End: 6}, "late"))
	b.Add(NewWarning(OpcUnknown, source.Span{Start: 1, End: 2}, "early"))
	b.Sort()
	items := b.Items()
	if len(items) != 2 || items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("unexpected order: %+v", items)
	}
	b.Promote()
	if b.Count(SevError) != 2 {
		t.Fatalf("promote must raise warnings to errors")
	}
}

func TestReportersFanOut(t *testing.T) {
	bag := NewBag(0)
	var sl SliceReporter
	r := NewDedupReporter(Tee(BagReporter{Bag: bag}, &sl, nil))
	ReportWarning(r, OpcUnknown, source.Span{Start: 3, End: 4}, "unknown opcode 'foo'").
		WithFix("replace with 'bar'", FixEdit{Span: source.Span{Start: 3, End: 4}, NewText: "bar"}).
		Emit()
	r.Report(NewWarning(OpcUnknown, source.Span{Start: 3, End: 4}, "unknown opcode 'foo'"))
	if bag.Len() != 1 || len(sl.Items) != 1 || r.Suppressed() != 1 {
		t.Fatalf("bag=%d slice=%d suppressed=%d", bag.Len(), len(sl.Items), r.Suppressed())
	}
	if len(sl.Items[0].Fixes) != 1 || sl.Items[0].Fixes[0].Edits[0].NewText != "bar" {
		t.Fatalf("fix lost: %+v", sl.Items[0])
	}
}

func TestCodeIDs(t *testing.T) {
	cases := map[Code]string{
		LexUnterminatedString: "LEX1002",
		DirUndefinedVariable:  "DIR1505",
		SynDuplicateGlobal:    "SYN2001",
		OpcOutOfRange:         "OPC3003",
		IOIncludeCycle:        "IO4003",
		ObsTimings:            "OBS6001",
		UnknownCode:           "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %s; want %s", code, got, want)
		}
	}
	if OpcUnknown.Title() != "Unknown opcode" {
		t.Fatalf("title mismatch")
	}
}

func TestBagFilterAndSeverityNames(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewInfo(SynAssignBeforeHeader, source.Span{}, "implicit global"))
	bag.Add(NewWarning(OpcUnknown, source.Span{}, "unknown opcode"))
	bag.Add(NewError(LexUnterminatedString, source.Span{}, "unterminated"))

	bag.Filter(SevWarning)
	if bag.Len() != 2 || bag.Count(SevInfo) != 0 {
		t.Fatalf("after warning filter: %+v", bag.Items())
	}
	bag.Filter(Severity(9))
	if bag.Len() != 1 || !bag.HasErrors() {
		t.Fatalf("errors must survive any filter: %+v", bag.Items())
	}

	for _, tc := range []struct {
		in   string
		want Severity
	}{{"", SevInfo}, {"WARN", SevWarning}, {"warning", SevWarning}, {" error ", SevError}} {
		got, err := ParseSeverity(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseSeverity(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("ParseSeverity accepted fatal")
	}
	if SevWarning.Label() != "warning" || SevWarning.String() != "WARNING" {
		t.Errorf("names = %q %q", SevWarning.Label(), SevWarning.String())
	}
}

func TestRemapMovesOnlyExactEdits(t *testing.T) {
	// файл 1 развёрнут из файла 0: [0,4) скопировано, [4,6) подставлено
	move := func(sp source.Span) (source.Span, bool) {
		if sp.File != 1 {
			return sp, true
		}
		return source.Span{File: 0, Start: sp.Start, End: sp.End}, sp.End <= 4
	}
	orig := NewWarning(OpcUnknown, source.Span{File: 1, Start: 0, End: 3}, "x").
		WithNote(source.Span{File: 1, Start: 4, End: 6}, "value").
		WithFix("copied", FixEdit{Span: source.Span{File: 1, Start: 0, End: 3}, NewText: "a"}).
		WithFix("substituted", FixEdit{Span: source.Span{File: 1, Start: 4, End: 6}, NewText: "b"})

	d := orig.Remap(move)
	if d.Primary.File != 0 || d.Notes[0].Span.File != 0 {
		t.Fatalf("primary and notes must move: %+v", d)
	}
	if d.Fixes[0].Edits[0].Span.File != 0 || d.Fixes[1].Edits[0].Span.File != 1 {
		t.Fatalf("fix edits = %+v", d.Fixes)
	}
	if orig.Notes[0].Span.File != 1 || orig.Fixes[0].Edits[0].Span.File != 1 {
		t.Fatal("Remap must not touch the original's slices")
	}
}
