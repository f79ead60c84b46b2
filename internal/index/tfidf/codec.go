package tfidf

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

// codecVersion guards the serialized layout. Bump on any change to
// indexBlob and refuse to decode older blobs: a stale index is rebuilt
// from the corpus instead of misread.
const codecVersion = 1

// indexBlob is the wire layout of a serialized index. It captures the
// vocabulary, the frozen IDF table and the per-document normalized weights;
// decoding must reproduce identical search results.
type indexBlob struct {
	Version  int
	Vocab    []string
	IDF      []float64
	Postings [][]posting
	DocCount int
}

// Encode serializes the index into an opaque blob for a BlobStore.
func (idx *Index) Encode() ([]byte, error) {
	blob := indexBlob{
		Version:  codecVersion,
		Vocab:    idx.vocab,
		IDF:      idx.idf,
		Postings: idx.postings,
		DocCount: idx.docCount,
	}

	return encodeBlob(blob)
}

// encodeBlob gob-encodes the wire layout.
func encodeBlob(blob indexBlob) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(blob); err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode restores an index from a serialized blob.
func Decode(data []byte) (*Index, error) {
	var blob indexBlob
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&blob); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	if blob.Version != codecVersion {
		return nil, fmt.Errorf("index blob version %d, want %d: %w",
			blob.Version, codecVersion, domain.ErrInvalidInput)
	}
	if len(blob.IDF) != len(blob.Vocab) || len(blob.Postings) != len(blob.Vocab) {
		return nil, fmt.Errorf("inconsistent index blob: %w", domain.ErrInvalidInput)
	}

	terms := make(map[string]int, len(blob.Vocab))
	for id, term := range blob.Vocab {
		terms[term] = id
	}

	return &Index{
		terms:    terms,
		vocab:    blob.Vocab,
		idf:      blob.IDF,
		postings: blob.Postings,
		docCount: blob.DocCount,
	}, nil
}
