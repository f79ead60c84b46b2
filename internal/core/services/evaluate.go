package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

// Ensure Evaluator implements the interface.
var _ driving.EvaluationService = (*Evaluator)(nil)

// Evaluator computes retrieval quality metrics for ranked results against
// ground-truth relevance sets. It consumes the pipeline's output and has
// no side effects beyond the returned records.
type Evaluator struct {
	search driving.SearchService
	loader driven.CorpusLoader
}

// NewEvaluator creates an evaluator over the given search pipeline.
func NewEvaluator(search driving.SearchService, loader driven.CorpusLoader) *Evaluator {
	return &Evaluator{
		search: search,
		loader: loader,
	}
}

// Metrics computes Precision@k, Recall@k, F1@k and reciprocal rank for one
// ranked retrieval. Conventions, documented and tested:
//   - Recall is 0 when the relevant set is empty (not a division error).
//   - F1 is 0 when precision and recall are both 0.
//   - Reciprocal rank is 0 when no relevant document was retrieved; the
//     rank is taken over the full retrieved list, not just the top k.
func Metrics(retrieved []int, relevant []int, k int) domain.Metrics {
	m := domain.Metrics{K: k}
	if k <= 0 {
		return m
	}

	relevantSet := make(map[int]struct{}, len(relevant))
	for _, id := range relevant {
		relevantSet[id] = struct{}{}
	}

	cut := retrieved
	if len(cut) > k {
		cut = cut[:k]
	}

	hits := 0
	for _, id := range cut {
		if _, ok := relevantSet[id]; ok {
			hits++
		}
	}

	m.Precision = float64(hits) / float64(k)
	if len(relevantSet) > 0 {
		m.Recall = float64(hits) / float64(len(relevantSet))
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	for rank, id := range retrieved {
		if _, ok := relevantSet[id]; ok {
			m.ReciprocalRank = 1 / float64(rank+1)
			break
		}
	}

	return m
}

// EvaluateQuery runs one query through the pipeline and scores the ranking
// at cutoff k.
func (e *Evaluator) EvaluateQuery(ctx context.Context, query string, relevant []int, k int) (*domain.EvaluationRecord, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d: %w", k, domain.ErrInvalidParameter)
	}

	resp, err := e.search.Search(ctx, query, domain.SearchOptions{
		SourceLang: domain.LangAuto,
		TopK:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", query, err)
	}

	retrieved := make([]int, len(resp.Results))
	for i, hit := range resp.Results {
		retrieved[i] = hit.DocID
	}

	return &domain.EvaluationRecord{
		Query:     query,
		Retrieved: retrieved,
		Relevant:  relevant,
		Metrics:   Metrics(retrieved, relevant, k),
	}, nil
}

// EvaluateAll evaluates every annotated query and aggregates per-query
// metrics by arithmetic mean. Queries run in deterministic (sorted) order.
func (e *Evaluator) EvaluateAll(ctx context.Context, k int) (*domain.BatchMetrics, []domain.EvaluationRecord, error) {
	if k <= 0 {
		return nil, nil, fmt.Errorf("k must be positive, got %d: %w", k, domain.ErrInvalidParameter)
	}

	annotations, err := e.loader.Annotations(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading annotations: %w", err)
	}
	if len(annotations) == 0 {
		return nil, nil, fmt.Errorf("no relevance annotations available: %w", domain.ErrNotFound)
	}

	queries := make([]string, 0, len(annotations))
	for q := range annotations {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	records := make([]domain.EvaluationRecord, 0, len(queries))
	for _, query := range queries {
		record, err := e.EvaluateQuery(ctx, query, annotations[query], k)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, *record)
		logger.Debug("evaluated %q: P@%d=%.3f R@%d=%.3f", query, k, record.Metrics.Precision, k, record.Metrics.Recall)
	}

	batch := &domain.BatchMetrics{Queries: len(records), Mean: domain.Metrics{K: k}}
	for _, record := range records {
		batch.Mean.Precision += record.Metrics.Precision
		batch.Mean.Recall += record.Metrics.Recall
		batch.Mean.F1 += record.Metrics.F1
		batch.Mean.ReciprocalRank += record.Metrics.ReciprocalRank
	}
	n := float64(len(records))
	batch.Mean.Precision /= n
	batch.Mean.Recall /= n
	batch.Mean.F1 /= n
	batch.Mean.ReciprocalRank /= n

	return batch, records, nil
}
