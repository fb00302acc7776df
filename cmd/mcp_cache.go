package cmd

import (
	"os"
	"sync"
	"time"

	"github.com/vedux98/UX-Audit/internal/figma"
)

// mcpCacheKey identifies one parsed document: its path plus the file's
// modification time, so an edited file never serves a stale tree.
type mcpCacheKey struct {
	Path    string
	ModTime int64
}

// mcpCacheEntry holds a parsed document with its timestamp.
type mcpCacheEntry struct {
	doc       *figma.Document
	timestamp time.Time
}

// mcpDocCache provides a TTL-based cache for parsed design documents.
type mcpDocCache struct {
	mu      sync.Mutex
	entries map[mcpCacheKey]mcpCacheEntry
	ttl     time.Duration
}

// newMCPDocCache creates a new cache. A ttl of 0 disables caching.
func newMCPDocCache(ttl time.Duration) *mcpDocCache {
	return &mcpDocCache{
		entries: make(map[mcpCacheKey]mcpCacheEntry),
		ttl:     ttl,
	}
}

// parse returns the cached document for path if within TTL, otherwise
// parses fresh.
func (c *mcpDocCache) parse(path string) (*figma.Document, error) {
	if c.ttl == 0 {
		return figma.ParseDocumentFile(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := mcpCacheKey{Path: path, ModTime: info.ModTime().UnixNano()}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		doc := entry.doc
		c.mu.Unlock()
		return doc, nil
	}
	c.mu.Unlock()

	doc, err := figma.ParseDocumentFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = mcpCacheEntry{doc: doc, timestamp: time.Now()}
	c.mu.Unlock()

	return doc, nil
}
