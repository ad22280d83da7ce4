package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"reindent/internal/indent"
)

// cacheSchemaVersion is bumped whenever the cachePayload layout changes;
// entries with another version are treated as misses.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// Cache remembers files already indented with a given unit, keyed by the
// hash of their bytes on disk together with the settings that shape the
// result. A hit lets the driver skip lexing. Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is keyed by content, not by path: files with identical bytes
// share one entry, so Path only records which file stored it.
type cachePayload struct {
	Schema uint16
	Path   string // informational
	Source string // unit inferred on the clean run
	Target string
}

// OpenCache opens (creating it if needed) a cache rooted at dir.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// cacheKey: H(schema || target || flags || content).
func cacheKey(content []byte, target indent.Unit, opts Options) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte{byte(cacheSchemaVersion), byte(cacheSchemaVersion >> 8), 0})
	_, _ = h.Write([]byte(target))
	flags := byte(0)
	if opts.Config.HashComments {
		flags |= 1
	}
	_, _ = h.Write([]byte{0, flags})
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// два уровня, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, hexKey[:2], hexKey+".mp")
}

// put serializes and atomically writes a payload.
func (c *Cache) put(key Digest, payload *cachePayload) error {
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
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// get reads a payload; a missing entry or a stale schema is a miss.
func (c *Cache) get(key Digest) (*cachePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
