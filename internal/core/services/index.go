package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clir-cli/internal/index/tfidf"
	"github.com/custodia-labs/clir-cli/internal/logger"
	"github.com/custodia-labs/clir-cli/internal/preprocess"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexBlobKey is the BlobStore name the serialized index lives under.
const IndexBlobKey = "tfidf/index"

// IndexService manages the term index lifecycle: building it from the
// corpus, persisting it, and restoring it on startup. The index itself is
// immutable; the mutex only guards the swap during build/load.
type IndexService struct {
	loader       driven.CorpusLoader
	blobs        driven.BlobStore
	preprocessor *preprocess.Pipeline

	mu   sync.RWMutex
	idx  *tfidf.Index
	docs domain.Corpus
}

// NewIndexService creates an index service for a corpus in the given
// language. blobs may be nil to disable persistence.
func NewIndexService(loader driven.CorpusLoader, blobs driven.BlobStore, corpusLang string) *IndexService {
	return &IndexService{
		loader:       loader,
		blobs:        blobs,
		preprocessor: preprocess.New(corpusLang),
	}
}

// Build loads the corpus, normalizes every document, builds a fresh TF-IDF
// index and persists it.
func (s *IndexService) Build(ctx context.Context) (*driving.IndexInfo, error) {
	logger.Section("Index Build")

	texts, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if len(texts) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	docs := make(domain.Corpus, len(texts))
	tokenized := make([][]string, len(texts))
	for i, text := range texts {
		tokens := s.preprocessor.Normalize(text)
		docs[i] = domain.Document{ID: i, Text: text, Tokens: tokens}
		tokenized[i] = tokens
	}

	idx, err := tfidf.Build(tokenized)
	if err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	if s.blobs != nil {
		blob, err := idx.Encode()
		if err != nil {
			return nil, err
		}
		if err := s.blobs.Put(ctx, IndexBlobKey, blob); err != nil {
			return nil, fmt.Errorf("persisting index: %w", err)
		}
		logger.Debug("index persisted under %q (%d bytes)", IndexBlobKey, len(blob))
	}

	s.mu.Lock()
	s.idx = idx
	s.docs = docs
	s.mu.Unlock()

	return s.info(idx), nil
}

// Load restores the persisted index. When no blob is stored, or the blob
// no longer matches the corpus, a fresh build runs instead.
func (s *IndexService) Load(ctx context.Context) (*driving.IndexInfo, error) {
	if s.blobs == nil {
		return s.Build(ctx)
	}

	blob, err := s.blobs.Get(ctx, IndexBlobKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("no persisted index, building from corpus")
			return s.Build(ctx)
		}
		return nil, fmt.Errorf("loading index blob: %w", err)
	}

	idx, err := tfidf.Decode(blob)
	if err != nil {
		logger.Warn("persisted index unreadable (%v), rebuilding", err)
		return s.Build(ctx)
	}

	// The index stores weights, not text; the raw documents are needed
	// for hydration. A document count mismatch means the corpus changed
	// since the index was built, invalidating every document ID.
	texts, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if len(texts) != idx.DocCount() {
		logger.Warn("corpus size changed (%d -> %d), rebuilding index", idx.DocCount(), len(texts))
		return s.Build(ctx)
	}

	docs := make(domain.Corpus, len(texts))
	for i, text := range texts {
		docs[i] = domain.Document{ID: i, Text: text}
	}

	s.mu.Lock()
	s.idx = idx
	s.docs = docs
	s.mu.Unlock()

	return s.info(idx), nil
}

// Info describes the loaded index, loading it first when needed.
func (s *IndexService) Info(ctx context.Context) (*driving.IndexInfo, error) {
	idx, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}
	return s.info(idx), nil
}

// Index returns the loaded index, loading or building it on first use.
func (s *IndexService) Index(ctx context.Context) (*tfidf.Index, error) {
	s.mu.RLock()
	idx := s.idx
	s.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}

	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx == nil {
		return nil, domain.ErrIndexNotBuilt
	}
	return s.idx, nil
}

// Documents returns the loaded corpus. Empty until Build or Load ran.
func (s *IndexService) Documents() domain.Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}

func (s *IndexService) info(idx *tfidf.Index) *driving.IndexInfo {
	return &driving.IndexInfo{
		DocumentCount:  idx.DocCount(),
		VocabularySize: idx.VocabSize(),
	}
}
