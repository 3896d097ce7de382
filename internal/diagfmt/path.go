package diagfmt

import "sfzkit/internal/source"

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

// fileOf returns the file a span points into, or nil for spans that do not
// belong to fs (implicit scopes, synthetic tokens).
func fileOf(fs *source.FileSet, sp source.Span) *source.File {
	f, _ := fs.Lookup(sp.File)
	return f
}
