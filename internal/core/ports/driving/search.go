package driving

import (
	"context"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

// SearchService answers cross-language queries against the indexed corpus.
type SearchService interface {
	// Search runs the full pipeline: translate the query to the corpus
	// language, normalize it, score it against the term index and return
	// the ranked results.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}
