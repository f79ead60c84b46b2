package driven

import "context"

// CorpusLoader supplies the ordered raw document corpus and, optionally,
// ground-truth relevance annotations for evaluation.
type CorpusLoader interface {
	// Load returns the raw document texts in corpus order. Position in the
	// returned slice is document identity.
	Load(ctx context.Context) ([]string, error)

	// Annotations returns ground-truth relevance sets keyed by query text.
	// An empty map means no annotations are available.
	Annotations(ctx context.Context) (map[string][]int, error)
}
