package domain

// Metrics holds retrieval quality figures for a single evaluated query at a
// fixed cutoff k.
type Metrics struct {
	// K is the cutoff the figures were computed at.
	K int `json:"k"`

	// Precision is |retrieved[:k] ∩ relevant| / k.
	Precision float64 `json:"precision"`

	// Recall is |retrieved[:k] ∩ relevant| / |relevant|. By convention it
	// is 0 when the relevant set is empty.
	Recall float64 `json:"recall"`

	// F1 is the harmonic mean of Precision and Recall, 0 when both are 0.
	F1 float64 `json:"f1"`

	// ReciprocalRank is 1/rank of the first relevant document in the full
	// retrieved list, 0 when none appears.
	ReciprocalRank float64 `json:"reciprocal_rank"`
}

// EvaluationRecord ties one evaluated query to its inputs and metrics.
// Records are ephemeral; nothing persists them unless a caller exports them.
type EvaluationRecord struct {
	// Query is the evaluated query text.
	Query string `json:"query"`

	// Retrieved is the ranked list of document IDs the index returned.
	Retrieved []int `json:"retrieved"`

	// Relevant is the ground-truth relevant document ID set.
	Relevant []int `json:"relevant"`

	// Metrics are the computed quality figures.
	Metrics Metrics `json:"metrics"`
}

// BatchMetrics aggregates per-query metrics by arithmetic mean.
type BatchMetrics struct {
	// Queries is the number of queries aggregated.
	Queries int `json:"queries"`

	// Mean holds the arithmetic mean of each figure across queries.
	Mean Metrics `json:"mean"`
}
