package domain

// ScoredResult is a single ranking entry: a document ID with its cosine
// similarity against the query. Scores are in [0, 1] because all weights
// are non-negative and vectors are L2-normalized.
type ScoredResult struct {
	// DocID is the position of the matched document in the corpus.
	DocID int

	// Score is the cosine similarity between query and document vectors.
	Score float64
}

// SearchOptions configures one pipeline search.
type SearchOptions struct {
	// SourceLang is the language the query was typed in. "auto" asks the
	// translation provider to detect it.
	SourceLang string

	// TopK is the maximum number of results. Must be positive.
	TopK int

	// SkipTranslation bypasses the translator entirely and feeds the raw
	// query to the preprocessor. Useful when the query is already in the
	// corpus language.
	SkipTranslation bool

	// BackTranslate requests a best-effort translation of the top result
	// back into the query language.
	BackTranslate bool
}

// SearchHit pairs a ranking entry with the original document text so the
// presentation layer never has to reach into the corpus itself.
type SearchHit struct {
	// DocID is the position of the matched document in the corpus.
	DocID int `json:"doc_id"`

	// Score is the cosine similarity in [0, 1].
	Score float64 `json:"score"`

	// Text is the raw text of the matched document.
	Text string `json:"text"`
}

// SearchResponse is the pipeline's answer to one query.
type SearchResponse struct {
	// Query is the raw query as typed.
	Query string `json:"query"`

	// TranslatedQuery is the query after translation to the corpus
	// language. Equal to Query when translation was skipped.
	TranslatedQuery string `json:"translated_query"`

	// TranslationSkipped is true when the translator was unavailable and
	// the pipeline fell back to the untranslated query. The failure is
	// surfaced here instead of aborting the search.
	TranslationSkipped bool `json:"translation_skipped,omitempty"`

	// Results is the ranked hit list, descending by score, ties broken by
	// ascending document ID.
	Results []SearchHit `json:"results"`

	// BackTranslatedTop holds the top result translated back into the
	// query language. Empty unless requested and successful; back
	// translation is best effort and skipped silently on failure.
	BackTranslatedTop string `json:"back_translated_top,omitempty"`
}
