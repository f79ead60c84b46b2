package driving

import (
	"context"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

// EvaluationService measures retrieval quality against ground truth.
type EvaluationService interface {
	// EvaluateQuery runs one query through the pipeline and scores the
	// ranking against the given relevant document IDs at cutoff k.
	EvaluateQuery(ctx context.Context, query string, relevant []int, k int) (*domain.EvaluationRecord, error)

	// EvaluateAll runs every annotated query from the corpus loader and
	// aggregates per-query metrics by arithmetic mean.
	EvaluateAll(ctx context.Context, k int) (*domain.BatchMetrics, []domain.EvaluationRecord, error)
}
