package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clir-cli/internal/logger"
	"github.com/custodia-labs/clir-cli/internal/preprocess"
)

// Ensure Pipeline implements the interface.
var _ driving.SearchService = (*Pipeline)(nil)

// Pipeline orchestrates one query end to end: translate to the corpus
// language, normalize, score against the term index, hydrate the hits and
// optionally back-translate the top result. It is the only layer that
// catches domain.ErrTranslationUnavailable and decides the fallback.
type Pipeline struct {
	translator   *Translator
	preprocessor *preprocess.Pipeline
	indexes      *IndexService
	queryLog     driven.QueryLog
	corpusLang   string
}

// NewPipeline creates the search pipeline. translator and queryLog may be
// nil; without a translator queries are assumed to already be in the
// corpus language.
func NewPipeline(
	translator *Translator,
	indexes *IndexService,
	corpusLang string,
) *Pipeline {
	return &Pipeline{
		translator:   translator,
		preprocessor: preprocess.New(corpusLang),
		indexes:      indexes,
		corpusLang:   corpusLang,
	}
}

// SetQueryLog enables query logging.
func (p *Pipeline) SetQueryLog(log driven.QueryLog) {
	p.queryLog = log
}

// Search runs the full retrieval pipeline for one query.
func (p *Pipeline) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if opts.TopK <= 0 {
		return nil, fmt.Errorf("top-k must be positive, got %d: %w", opts.TopK, domain.ErrInvalidParameter)
	}

	sourceLang := opts.SourceLang
	if sourceLang == "" {
		sourceLang = domain.LangAuto
	}

	resp := &domain.SearchResponse{
		Query:           query,
		TranslatedQuery: query,
	}

	// Translate the query into the corpus language. Translation failure
	// is recoverable: surface it on the response and search with the raw
	// query instead of aborting.
	if !opts.SkipTranslation && p.translator != nil {
		translated, err := p.translator.Translate(ctx, query, sourceLang, p.corpusLang)
		switch {
		case err == nil:
			resp.TranslatedQuery = translated
		case errors.Is(err, domain.ErrTranslationUnavailable):
			logger.Warn("translation unavailable, searching with untranslated query: %v", err)
			resp.TranslationSkipped = true
		default:
			return nil, fmt.Errorf("translating query: %w", err)
		}
	}
	logger.Debug("Translated query: %q", resp.TranslatedQuery)

	tokens := p.preprocessor.Normalize(resp.TranslatedQuery)
	logger.Debug("Normalized tokens: %v", tokens)

	idx, err := p.indexes.Index(ctx)
	if err != nil {
		return nil, err
	}

	results, err := idx.Search(tokens, opts.TopK)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	logger.Info("Retrieved %d documents", len(results))

	resp.Results = p.hydrate(results)

	// Back-translation of the top result is best effort: skipped
	// silently on any failure.
	if opts.BackTranslate && p.translator != nil && len(resp.Results) > 0 {
		p.backTranslate(ctx, resp, sourceLang)
	}

	p.logQuery(ctx, resp)
	return resp, nil
}

// hydrate pairs ranking entries with the original document text.
func (p *Pipeline) hydrate(results []domain.ScoredResult) []domain.SearchHit {
	docs := p.indexes.Documents()
	hits := make([]domain.SearchHit, 0, len(results))
	for _, r := range results {
		hit := domain.SearchHit{DocID: r.DocID, Score: r.Score}
		if r.DocID >= 0 && r.DocID < len(docs) {
			hit.Text = docs[r.DocID].Text
		}
		hits = append(hits, hit)
	}
	return hits
}

// backTranslate fills in BackTranslatedTop when possible.
func (p *Pipeline) backTranslate(ctx context.Context, resp *domain.SearchResponse, sourceLang string) {
	if sourceLang == domain.LangAuto || sourceLang == p.corpusLang {
		return
	}

	translated, err := p.translator.Translate(ctx, resp.Results[0].Text, p.corpusLang, sourceLang)
	if err != nil {
		logger.Warn("back-translation skipped: %v", err)
		return
	}
	resp.BackTranslatedTop = translated
}

// logQuery appends the query to the log when one is configured.
func (p *Pipeline) logQuery(ctx context.Context, resp *domain.SearchResponse) {
	if p.queryLog == nil {
		return
	}

	entry := domain.QueryLogEntry{
		ID:              uuid.New().String(),
		Query:           resp.Query,
		TranslatedQuery: resp.TranslatedQuery,
		ResultCount:     len(resp.Results),
		CreatedAtUnix:   time.Now().Unix(),
	}
	if err := p.queryLog.Append(ctx, entry); err != nil {
		logger.Warn("query log append failed: %v", err)
	}
}
