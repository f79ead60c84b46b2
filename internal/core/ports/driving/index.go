package driving

import "context"

// IndexInfo describes the currently loaded term index.
type IndexInfo struct {
	// DocumentCount is the number of indexed documents.
	DocumentCount int

	// VocabularySize is the number of distinct normalized terms.
	VocabularySize int
}

// IndexService manages the term index lifecycle.
type IndexService interface {
	// Build loads the corpus, preprocesses every document, builds the
	// TF-IDF index and persists it.
	Build(ctx context.Context) (*IndexInfo, error)

	// Load restores a persisted index, building a fresh one when none is
	// stored yet.
	Load(ctx context.Context) (*IndexInfo, error)

	// Info describes the loaded index.
	Info(ctx context.Context) (*IndexInfo, error)
}
