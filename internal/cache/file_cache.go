// Package cache provides a thread-safe cache for values parsed from files,
// invalidated by file modification time and size. Loading a ranges registry
// or a large lexicon repeatedly in one process pays the parse cost once.
package cache

import (
	"os"
	"sync"
	"time"
)

type entry[V any] struct {
	value   V
	modTime time.Time
	size    int64
}

// FileCache maps file paths to parsed values. A cached value is served only
// while the file's modification time and size are unchanged.
type FileCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
}

// New creates an empty FileCache.
func New[V any]() *FileCache[V] {
	return &FileCache[V]{entries: make(map[string]entry[V])}
}

// Get returns the cached value for path if the file is unchanged since Put.
// A missing, changed, or unstattable file yields ok=false.
func (c *FileCache[V]) Get(path string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.ModTime().Equal(e.modTime) || info.Size() != e.size {
		return zero, false
	}
	return e.value, true
}

// Put caches the value for path, recording the file's current modification
// time and size. A file that cannot be statted is not cached.
func (c *FileCache[V]) Put(path string, value V) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[path] = entry[V]{value: value, modTime: info.ModTime(), size: info.Size()}
	c.mu.Unlock()
}

// Load returns the cached value for path, calling parse and caching its
// result on a miss.
func (c *FileCache[V]) Load(path string, parse func() (V, error)) (V, error) {
	if v, ok := c.Get(path); ok {
		return v, nil
	}
	v, err := parse()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Put(path, v)
	return v, nil
}

// Invalidate drops the cached value for path.
func (c *FileCache[V]) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Len returns the number of cached paths, including any whose files have
// changed since Put.
func (c *FileCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
