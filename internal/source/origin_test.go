package source

import "testing"

// kit.sfz с #include, развёрнутым в "r1\nr2"
func flattenedKit(t *testing.T) (fs *FileSet, root, inc, flat FileID) {
	t.Helper()
	fs = NewFileSet()
	root = fs.Add("kit.sfz", []byte("a\n#include x\nb\n"), 0)
	inc = fs.Add("x", []byte("r1\nr2\n"), 0)

	var o Origins
	o.Copy(0, 2, root, 0)
	o.Splice(Origins{{Start: 0, End: 6, Src: inc, SrcStart: 0, SrcEnd: 6, Exact: true}}, 2, 5)
	o.Copy(7, 8, root, 12)
	o.Copy(8, 10, root, 13)
	flat = fs.AddDerived("kit.sfz", []byte("a\nr1\nr2\nb\n"), 0, o)
	return fs, root, inc, flat
}

func TestOriginFollowsIncludes(t *testing.T) {
	fs, root, inc, flat := flattenedKit(t)
	if fs.Get(flat).OnDisk() {
		t.Fatal("derived text must not count as on disk")
	}
	tests := []struct {
		name  string
		in    Span
		want  Span
		exact bool
	}{
		{"root line", Span{File: flat, Start: 0, End: 1}, Span{File: root, Start: 0, End: 1}, true},
		{"included line", Span{File: flat, Start: 5, End: 7}, Span{File: inc, Start: 3, End: 5}, true},
		{"after include", Span{File: flat, Start: 8, End: 9}, Span{File: root, Start: 13, End: 14}, true},
		{"empty span", At(flat, 2), At(inc, 0), true},
		{"crosses into include", Span{File: flat, Start: 0, End: 4}, Span{File: root, Start: 0, End: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, exact := fs.Origin(tt.in)
			if got != tt.want || exact != tt.exact {
				t.Fatalf("Origin(%v) = %v, %v; want %v, %v", tt.in, got, exact, tt.want, tt.exact)
			}
		})
	}
}

func TestOriginOfSubstitution(t *testing.T) {
	fs := NewFileSet()
	src := fs.Add("kit.sfz", []byte("v=$LONG\n"), 0)
	var o Origins
	o.Copy(0, 2, src, 0)
	o.Replace(2, 3, src, 2, 7)
	o.Copy(3, 4, src, 7)
	out := fs.AddDerived("kit.sfz", []byte("v=1\n"), 0, o)

	if got, exact := fs.Origin(Span{File: out, Start: 2, End: 3}); got != (Span{File: src, Start: 2, End: 7}) || exact {
		t.Fatalf("value maps to %v (exact %v), want the $LONG it replaced", got, exact)
	}
	if got, exact := fs.Origin(Span{File: out, Start: 0, End: 3}); got != (Span{File: src, Start: 0, End: 7}) || exact {
		t.Fatalf("assignment maps to %v (exact %v)", got, exact)
	}
	if got, exact := fs.Origin(Span{File: out, Start: 0, End: 2}); got != (Span{File: src, Start: 0, End: 2}) || !exact {
		t.Fatalf("copied prefix maps to %v (exact %v)", got, exact)
	}
}

func TestOriginChainsDerivedFiles(t *testing.T) {
	fs, _, inc, flat := flattenedKit(t)
	var o Origins
	o.Copy(0, 10, flat, 0)
	again := fs.AddDerived("kit.sfz", fs.Get(flat).Content, 0, o)

	if got, exact := fs.Origin(Span{File: again, Start: 2, End: 4}); got != (Span{File: inc, Start: 0, End: 2}) || !exact {
		t.Fatalf("Origin = %v, %v", got, exact)
	}
}

func TestOriginStopsAtMadeUpBytes(t *testing.T) {
	fs := NewFileSet()
	src := fs.Add("kit.sfz", []byte("#include \"x\" <region>"), 0)
	var o Origins
	o.Copy(0, 2, src, 0)
	o.Copy(3, 11, src, 13)
	out := fs.AddDerived("kit.sfz", []byte("r\n\n<region>"), 0, o)

	sp := Span{File: out, Start: 2, End: 3}
	if got, exact := fs.Origin(sp); got != sp || exact {
		t.Fatalf("made-up newline maps to %v (exact %v)", got, exact)
	}
	if got, _ := fs.Origin(Span{File: out, Start: 3, End: 11}); got != (Span{File: src, Start: 13, End: 21}) {
		t.Fatalf("tail maps to %v", got)
	}
}

func TestOriginsCopyMergesRuns(t *testing.T) {
	var o Origins
	o.Copy(0, 3, 1, 10)
	o.Copy(3, 5, 1, 13)
	o.Copy(5, 5, 1, 99)
	o.Copy(5, 6, 2, 0)
	if len(o) != 2 || o[0].End != 5 || o[0].SrcEnd != 15 {
		t.Fatalf("origins = %+v", o)
	}
}
