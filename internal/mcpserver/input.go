package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oascheck/document"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// cacheEntry holds a loaded document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *document.Document
	insertAt  time.Time
	expiresAt time.Time
}

// docCacheStore provides a session-scoped cache for loaded documents.
// File inputs are keyed by (absolutePath, modTime); content inputs by a
// SHA-256 hash. Documents are never mutated by validation, so a cached
// document is shared between calls.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
	// sweeping is set while a sweep holds the cache; overlapping sweeps are skipped.
	sweeping atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached document or nil. Expired entries are lazily removed.
func (c *docCacheStore) get(key string) *document.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.doc
	}
	return nil
}

// putWithTTL stores a document, evicting the oldest entry if at capacity.
func (c *docCacheStore) putWithTTL(key string, doc *document.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{doc: doc, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache. It reports false, and
// does nothing, when another sweep is already in progress.
func (c *docCacheStore) sweep() bool {
	if !c.sweeping.CompareAndSwap(false, true) {
		return false
	}
	defer c.sweeping.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	return true
}

// startSweeper launches a goroutine that periodically removes expired
// entries until ctx is cancelled. Only the first call spawns a sweeper.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input, or "" when the
// input cannot be cached.
func makeCacheKey(s specInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve loads the document from whichever input was provided, using the
// cache when enabled. Load failures are returned as *oaserrors.ParseError.
func (s specInput) resolve() (*document.Document, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASCHECK_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
		if s.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := docCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var (
		doc *document.Document
		err error
	)
	if s.File != "" {
		doc, err = document.Load(s.File)
	} else {
		doc, err = document.LoadReader(strings.NewReader(s.Content), document.FormatUnknown)
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		docCache.putWithTTL(key, doc, ttl)
	}
	return doc, nil
}
