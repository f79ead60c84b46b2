// Package memory provides in-memory implementations of the storage driven
// ports. Used by tests and by ephemeral runs that should not touch disk.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
)

// Ensure implementations satisfy the interfaces.
var (
	_ driven.TranslationCache = (*TranslationCache)(nil)
	_ driven.BlobStore        = (*BlobStore)(nil)
	_ driven.QueryLog         = (*QueryLog)(nil)
)

// cacheKey is the translation cache key triple.
type cacheKey struct {
	text   string
	source string
	target string
}

// TranslationCache is a map-backed translation cache.
type TranslationCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]domain.Translation
}

// NewTranslationCache creates an empty in-memory translation cache.
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{entries: make(map[cacheKey]domain.Translation)}
}

// Get returns the cached entry for the key triple.
func (c *TranslationCache) Get(_ context.Context, text, source, target string) (*domain.Translation, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey{text, source, target}]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Put stores an entry. Existing keys keep their first value: the cache is
// append-only.
func (c *TranslationCache) Put(_ context.Context, entry domain.Translation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{entry.Text, entry.SourceLang, entry.TargetLang}
	if _, exists := c.entries[key]; exists {
		return nil
	}
	c.entries[key] = entry
	return nil
}

// Len returns the number of cached entries.
func (c *TranslationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// BlobStore is a map-backed blob store.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// Get returns the blob stored under name.
func (s *BlobStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores a blob under name.
func (s *BlobStore) Put(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[name] = stored
	return nil
}

// Delete removes a blob. Missing blobs are not an error.
func (s *BlobStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, name)
	return nil
}

// QueryLog is a slice-backed query log.
type QueryLog struct {
	mu      sync.RWMutex
	entries []domain.QueryLogEntry
}

// NewQueryLog creates an empty in-memory query log.
func NewQueryLog() *QueryLog {
	return &QueryLog{}
}

// Append adds an entry to the log.
func (l *QueryLog) Append(_ context.Context, entry domain.QueryLogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *QueryLog) Recent(_ context.Context, limit int) ([]domain.QueryLogEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.QueryLogEntry, len(l.entries))
	copy(out, l.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAtUnix > out[j].CreatedAtUnix
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
