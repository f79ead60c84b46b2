// Package tfidf implements the term-weighted retrieval index: TF-IDF
// weighting with cosine similarity ranking over a fixed corpus.
//
// The index is built once from normalized token sequences and is immutable
// afterwards, so concurrent Search calls need no locking.
package tfidf

import (
	"fmt"
	"math"
	"sort"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

// posting is one document's weight for a term.
type posting struct {
	DocID  int
	Weight float64
}

// Index is a frozen TF-IDF term index. Term weights use the smoothed
// formulation idf(t) = ln((1+N)/(1+df(t))) + 1 with tf normalized by
// document length; document vectors are L2-normalized so cosine similarity
// is a plain dot product.
type Index struct {
	// terms maps a vocabulary term to its ID (its position in the sorted
	// vocabulary).
	terms map[string]int

	// vocab is the sorted vocabulary; vocab[id] is the term for an ID.
	vocab []string

	// idf holds the inverse document frequency per term ID, frozen at
	// build time.
	idf []float64

	// postings holds, per term ID, the normalized weight of every
	// document containing the term, ascending by document ID.
	postings [][]posting

	// docCount is the number of indexed documents.
	docCount int
}

// Build constructs an index from normalized per-document token sequences.
// Position in docs is document identity. Building is deterministic:
// identical input yields bit-identical weight vectors.
func Build(docs [][]string) (*Index, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	// Vocabulary: every distinct token, sorted for stable term IDs.
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	terms := make(map[string]int, len(vocab))
	for id, term := range vocab {
		terms[term] = id
	}

	// Smoothed IDF: never divides by zero, never negative, and terms
	// present in every document still carry a small weight.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for id, term := range vocab {
		idf[id] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	idx := &Index{
		terms:    terms,
		vocab:    vocab,
		idf:      idf,
		postings: make([][]posting, len(vocab)),
		docCount: len(docs),
	}

	for docID, tokens := range docs {
		vec := idx.vectorize(tokens)
		for _, termID := range sortedKeys(vec) {
			idx.postings[termID] = append(idx.postings[termID], posting{
				DocID:  docID,
				Weight: vec[termID],
			})
		}
	}

	logger.Info("index built: %d documents, %d terms", idx.docCount, len(idx.vocab))
	return idx, nil
}

// Search scores the query tokens against every document and returns the
// topK best hits, descending by score, ties broken by ascending document
// ID. Tokens outside the build-time vocabulary are dropped silently. A
// query with no in-vocabulary tokens returns an empty list, not an error.
func (idx *Index) Search(tokens []string, topK int) ([]domain.ScoredResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("top-k must be positive, got %d: %w", topK, domain.ErrInvalidParameter)
	}
	if topK > idx.docCount {
		topK = idx.docCount
	}

	query := idx.vectorize(tokens)
	if len(query) == 0 {
		logger.Debug("query has no in-vocabulary terms, returning no results")
		return []domain.ScoredResult{}, nil
	}

	// Both vectors are L2-normalized, so the dot product over the query's
	// terms is the cosine similarity. Terms are visited in sorted order so
	// float accumulation is bit-identical across runs.
	scores := make(map[int]float64)
	for _, termID := range sortedKeys(query) {
		qw := query[termID]
		for _, p := range idx.postings[termID] {
			scores[p.DocID] += qw * p.Weight
		}
	}

	results := make([]domain.ScoredResult, 0, len(scores))
	for docID, score := range scores {
		results = append(results, domain.ScoredResult{DocID: docID, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// DocCount returns the number of indexed documents.
func (idx *Index) DocCount() int {
	return idx.docCount
}

// VocabSize returns the number of distinct indexed terms.
func (idx *Index) VocabSize() int {
	return len(idx.vocab)
}

// vectorize builds an L2-normalized sparse weight vector over the frozen
// vocabulary. Out-of-vocabulary tokens contribute nothing.
func (idx *Index) vectorize(tokens []string) map[int]float64 {
	if len(tokens) == 0 {
		return nil
	}

	tf := make(map[int]float64)
	total := 0
	for _, tok := range tokens {
		termID, ok := idx.terms[tok]
		if !ok {
			continue
		}
		tf[termID]++
		total++
	}
	if total == 0 {
		return nil
	}

	// Weight and normalize in sorted term order so float accumulation is
	// deterministic.
	ids := sortedKeys(tf)
	var norm float64
	for _, termID := range ids {
		w := (tf[termID] / float64(total)) * idx.idf[termID]
		tf[termID] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}

	norm = math.Sqrt(norm)
	for _, termID := range ids {
		tf[termID] /= norm
	}
	return tf
}

// sortedKeys returns map keys in ascending order, for deterministic
// postings construction.
func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
