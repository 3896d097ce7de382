package driver

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// Digest is a SHA-256 content or key hash.
type Digest [sha256.Size]byte

// HashContent hashes raw file content.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

// combineDigest: H(content || dep1 || dep2 ...). deps уже в детерминированном порядке.
func combineDigest(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range deps {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// optionsDigest hashes every option that changes what a parse produces.
// Timings, progress and the job count are left out.
func optionsDigest(opts *Options) Digest {
	h := sha256.New()
	fmt.Fprintf(h, "strict=%t\n", opts.Strict)
	fmt.Fprintf(h, "target=%s\n", opts.Target)
	for _, dir := range opts.IncludeDirs {
		fmt.Fprintf(h, "include=%s\n", dir)
	}
	for _, v := range opts.predefined() {
		fmt.Fprintf(h, "define=%s=%s\n", v.Name, v.Value)
	}
	for d := range opts.catalog().All() {
		fmt.Fprintf(h, "opcode=%s|%d|%v|%v|%s\n", d.Name, d.Kind, d.Bounds, d.Values, d.Default)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey identifies one instrument under one set of options. The key
// does not cover file content: payloads carry per-file hashes that are
// checked on lookup, because included files are only known after a parse.
func cacheKey(path string, opts Digest) Digest {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return combineDigest(HashContent([]byte(filepath.ToSlash(abs))), opts)
}

// filesUnchanged reports whether every path still hashes to the stored digest.
func filesUnchanged(paths []string, hashes []Digest) bool {
	if len(paths) != len(hashes) || len(paths) == 0 {
		return false
	}
	for i, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil || HashContent(content) != hashes[i] {
			return false
		}
	}
	return true
}
