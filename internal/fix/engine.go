// Package fix applies the suggested edits carried by diagnostics (closest
// known opcode name, closest allowed enum word) back to the files on disk.
package fix

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"sfzkit/internal/diag"
	"sfzkit/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first fix in file order.
	ApplyModeOnce ApplyMode = iota
	ApplyModeAll
	// ApplyModeCode applies every fix of diagnostics with ApplyOptions.Code.
	ApplyModeCode
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode ApplyMode
	Code diag.Code
	// DryRun computes the new contents without writing them.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	Line      uint32
	EditCount int
}

// SkippedFix captures a fix that could not be applied and why.
type SkippedFix struct {
	Title  string
	Code   diag.Code
	Path   string
	Reason string
}

// FileChange is the new content of one modified file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte // as written to disk, BOM and CRLF restored
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to opts
// and applies them. Only the first fix of a diagnostic is considered: the
// others are alternatives.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	selected := selectCandidates(candidates, opts)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	applied, skipped, changes, err := applyCandidates(fs, selected, opts.DryRun)
	result.Applied = applied
	result.Skipped = skipped
	result.FileChanges = changes
	if err != nil {
		return result, err
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	var cands []candidate
	for _, d := range diagnostics {
		if fix, ok := d.FirstFix(); ok {
			cands = append(cands, candidate{diag: d, fix: fix, order: len(cands)})
		}
	}
	return cands
}

// sortCandidates orders candidates by file, span and then arrival so the
// selection is deterministic.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

func selectCandidates(candidates []candidate, opts ApplyOptions) []candidate {
	switch opts.Mode {
	case ApplyModeOnce:
		return candidates[:1]
	case ApplyModeAll:
		return candidates
	case ApplyModeCode:
		var out []candidate
		for _, c := range candidates {
			if c.diag.Code == opts.Code {
				out = append(out, c)
			}
		}
		return out
	default:
		return nil
	}
}

// fileState is the working copy of one target file.
type fileState struct {
	file    *source.File
	buf     []byte
	applied []diag.FixEdit // в исходных координатах, по возрастанию Start
	edits   int
	skip    string // причина, по которой файл трогать нельзя
}

func applyCandidates(fs *source.FileSet, selected []candidate, dryRun bool) ([]AppliedFix, []SkippedFix, []FileChange, error) {
	states := make(map[source.FileID]*fileState)
	var (
		applied []AppliedFix
		skipped []SkippedFix
	)

	stateOf := func(id source.FileID) *fileState {
		if st, ok := states[id]; ok {
			return st
		}
		st := &fileState{file: fileOf(fs, id)}
		st.skip = checkTarget(st.file)
		if st.skip == "" {
			st.buf = append([]byte(nil), st.file.Content...)
		}
		states[id] = st
		return st
	}

	for _, cand := range selected {
		skipReason := ""
		staged := make(map[source.FileID][]byte)
		stagedApplied := make(map[source.FileID][]diag.FixEdit)

		for fileID, edits := range groupEditsByFile(cand.fix.Edits) {
			st := stateOf(fileID)
			if st.skip != "" {
				skipReason = st.skip
				break
			}
			if conflictsWithExisting(st.applied, edits) {
				skipReason = "conflicts with a fix applied earlier"
				break
			}

			working := append([]byte(nil), st.buf...)
			done := append([]diag.FixEdit(nil), st.applied...)
			// с конца, чтобы не пересчитывать смещения внутри одного fix
			sort.SliceStable(edits, func(i, j int) bool { return edits[i].Span.Start > edits[j].Span.Start })
			for _, edit := range edits {
				start := int(edit.Span.Start) + cumulativeDelta(done, int(edit.Span.Start))
				end := int(edit.Span.End) + cumulativeDelta(done, int(edit.Span.End))
				if start < 0 || end < start || end > len(working) {
					skipReason = "edit span out of range"
					break
				}
				suffix := append([]byte(nil), working[end:]...)
				working = append(append(working[:start], edit.NewText...), suffix...)
				done = insertEditSorted(done, edit)
			}
			if skipReason != "" {
				break
			}
			staged[fileID] = working
			stagedApplied[fileID] = done
		}

		path := formatFilePath(fs, cand.diag.Primary.File)
		if skipReason != "" {
			skipped = append(skipped, SkippedFix{Title: cand.fix.Title, Code: cand.diag.Code, Path: path, Reason: skipReason})
			continue
		}

		for fileID, buf := range staged {
			st := states[fileID]
			st.buf = buf
			st.edits += len(stagedApplied[fileID]) - len(st.applied)
			st.applied = stagedApplied[fileID]
		}
		item := AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Message:   cand.diag.Message,
			Path:      path,
			EditCount: len(cand.fix.Edits),
		}
		if fileOf(fs, cand.diag.Primary.File) != nil {
			start, _ := fs.Resolve(cand.diag.Primary)
			item.Line = start.Line
		}
		applied = append(applied, item)
	}

	var changes []FileChange
	for _, st := range states {
		if st.edits == 0 {
			continue
		}
		content := denormalize(st.buf, st.file.Flags)
		if !dryRun {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(st.file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(st.file.Path, content, mode); err != nil {
				return applied, skipped, changes, fmt.Errorf("write %s: %w", st.file.Path, err)
			}
		}
		changes = append(changes, FileChange{
			Path:      st.file.FormatPath("relative", fs.BaseDir()),
			EditCount: st.edits,
			Content:   content,
		})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return applied, skipped, changes, nil
}

// checkTarget returns why file must not be rewritten, or "".
func checkTarget(file *source.File) string {
	switch {
	case file == nil:
		return "unknown file"
	case file.Flags.Has(source.FileVirtual):
		return "file is not on disk"
	case !file.OnDisk():
		return "text comes from #include or #define expansion"
	}
	// #nosec G304 -- path of a file the pipeline already read
	disk, err := os.ReadFile(file.Path)
	if err != nil {
		return fmt.Sprintf("cannot re-read file: %v", err)
	}
	if normalized, _ := source.Normalize(disk); !bytes.Equal(normalized, file.Content) {
		return "file changed on disk since it was parsed"
	}
	return ""
}

// denormalize puts back what source.Normalize took away.
func denormalize(content []byte, flags source.FileFlags) []byte {
	if flags.Has(source.FileNormalizedCRLF) {
		content = bytes.ReplaceAll(content, []byte("\n"), []byte("\r\n"))
	}
	if flags.Has(source.FileHadBOM) {
		content = append([]byte("\xEF\xBB\xBF"), content...)
	}
	return content
}

func conflictsWithExisting(existing []diag.FixEdit, edits []diag.FixEdit) bool {
	for _, prev := range existing {
		for _, cand := range edits {
			if spansConflict(prev, cand) {
				return true
			}
		}
	}
	return false
}

// spansConflict reports whether two edits touch the same bytes.
func spansConflict(a, b diag.FixEdit) bool {
	return a.Span.Overlaps(b.Span)
}

func groupEditsByFile(edits []diag.FixEdit) map[source.FileID][]diag.FixEdit {
	buckets := make(map[source.FileID][]diag.FixEdit)
	for _, edit := range edits {
		buckets[edit.Span.File] = append(buckets[edit.Span.File], edit)
	}
	return buckets
}

// cumulativeDelta is the shift at pos caused by edits that end at or before it.
func cumulativeDelta(edits []diag.FixEdit, pos int) int {
	delta := 0
	for _, e := range edits {
		eStart := int(e.Span.Start)
		if eStart > pos {
			break
		}
		eEnd := int(e.Span.End)
		if eEnd <= pos {
			delta += len(e.NewText) - (eEnd - eStart)
		}
	}
	return delta
}

func insertEditSorted(edits []diag.FixEdit, edit diag.FixEdit) []diag.FixEdit {
	i := sort.Search(len(edits), func(i int) bool {
		if edits[i].Span.Start == edit.Span.Start {
			return edits[i].Span.End >= edit.Span.End
		}
		return edits[i].Span.Start > edit.Span.Start
	})
	edits = append(edits, diag.FixEdit{})
	copy(edits[i+1:], edits[i:])
	edits[i] = edit
	return edits
}

func fileOf(fs *source.FileSet, id source.FileID) *source.File {
	f, _ := fs.Lookup(id)
	return f
}

func formatFilePath(fs *source.FileSet, fileID source.FileID) string {
	file := fileOf(fs, fileID)
	if file == nil {
		return ""
	}
	return file.FormatPath("auto", fs.BaseDir())
}
