package driven

import (
	"context"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

// TranslationCache persists translations keyed by (text, source, target).
// Entries are append-only: a key written once always maps to the same value.
type TranslationCache interface {
	// Get returns the cached entry for the key triple, and whether it exists.
	Get(ctx context.Context, text, source, target string) (*domain.Translation, bool, error)

	// Put stores an entry. Writing a key that already exists is a no-op,
	// never an overwrite.
	Put(ctx context.Context, entry domain.Translation) error
}

// BlobStore persists opaque byte blobs by name. The serialized term index
// lives here; the core does not care about the underlying format.
type BlobStore interface {
	// Get returns the blob stored under name.
	// Returns domain.ErrNotFound if no blob exists.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put stores a blob under name, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}

// QueryLog records processed queries.
type QueryLog interface {
	// Append adds an entry to the log.
	Append(ctx context.Context, entry domain.QueryLogEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.QueryLogEntry, error)
}
