package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sfzkit/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит Summary инструментов на диске, чтобы повторный обход
// библиотеки не разбирал неизменившиеся файлы.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached instrument.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Every file the instrument read, root first, with content hashes
	// taken from disk.
	FilePaths  []string
	FileHashes []Digest

	Summary Summary
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "instruments", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A payload
// written by another schema version is reported as a miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// lookup returns the cached summary for an instrument if none of its files
// changed.
func (c *DiskCache) lookup(key Digest) (Summary, bool) {
	var payload DiskPayload
	ok, err := c.Get(key, &payload)
	if err != nil || !ok || !filesUnchanged(payload.FilePaths, payload.FileHashes) {
		return Summary{}, false
	}
	return payload.Summary, true
}

// store records res under key. Results of in-memory sources are skipped:
// their content cannot be checked later. So are instruments with
// diagnostics, the summary does not carry them and the next run has to
// report them again.
func (c *DiskCache) store(key Digest, res *ParseResult, sum Summary) error {
	if c == nil || sum.Errors > 0 || sum.Warnings > 0 {
		return nil
	}
	payload := &DiskPayload{Schema: diskCacheSchemaVersion, Summary: sum}
	seen := make(map[string]bool, len(res.Files))
	for _, id := range res.Files {
		f := res.FileSet.Get(id)
		if f.Flags.Has(source.FileVirtual) {
			return nil
		}
		if seen[f.Path] {
			continue
		}
		seen[f.Path] = true
		digest := Digest(f.Hash)
		if !f.OnDisk() {
			// развёрнутая версия: хэш нужен от файла на диске
			content, err := os.ReadFile(f.Path)
			if err != nil {
				return err
			}
			digest = HashContent(content)
		}
		payload.FilePaths = append(payload.FilePaths, f.Path)
		payload.FileHashes = append(payload.FileHashes, digest)
	}
	return c.Put(key, payload)
}
