package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// sampleDocuments is served when no corpus file is configured or the
// configured file is missing.
var sampleDocuments = []string{
	"India is a country in South Asia. It is the seventh-largest country by area.",
	"The Prime Minister of India is the head of government of the Republic of India.",
	"New Delhi is the capital of India. It is located in northern India.",
	"The Indian economy is one of the fastest-growing major economies in the world.",
	"Hindi is one of the official languages of India, along with English.",
	"The Indian flag has three horizontal stripes: saffron, white, and green.",
	"India gained independence from British rule on August 15, 1947.",
	"The Indian Parliament consists of two houses: Lok Sabha and Rajya Sabha.",
	"Cricket is the most popular sport in India.",
	"The Ganges is one of the major rivers in India.",
}

// Loader reads documents from a corpus file on every Load call.
type Loader struct {
	corpusPath      string
	annotationsPath string
}

// NewLoader creates a loader for the given corpus file. Either path may
// be empty; an empty corpus path always serves the sample corpus.
func NewLoader(corpusPath, annotationsPath string) *Loader {
	return &Loader{
		corpusPath:      corpusPath,
		annotationsPath: annotationsPath,
	}
}

// SampleDocuments returns a copy of the built-in sample corpus.
func SampleDocuments() []string {
	out := make([]string, len(sampleDocuments))
	copy(out, sampleDocuments)
	return out
}

// Load returns the corpus documents in file order. Paragraphs separated
// by blank lines are documents; files without blank lines are read one
// document per line. A missing file falls back to the sample corpus.
func (l *Loader) Load(_ context.Context) ([]string, error) {
	if l.corpusPath == "" {
		logger.Debug("no corpus path configured, using sample corpus")
		return SampleDocuments(), nil
	}

	raw, err := os.ReadFile(l.corpusPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("corpus file %s not found, using sample corpus", l.corpusPath)
			return SampleDocuments(), nil
		}
		return nil, fmt.Errorf("reading corpus %s: %w", l.corpusPath, err)
	}

	docs := splitDocuments(string(raw))
	logger.Debug("loaded %d documents from %s", len(docs), l.corpusPath)
	return docs, nil
}

// Annotations reads the optional relevance-judgment file, a JSON object
// mapping query text to relevant document IDs. A missing file yields an
// empty map.
func (l *Loader) Annotations(_ context.Context) (map[string][]int, error) {
	if l.annotationsPath == "" {
		return map[string][]int{}, nil
	}

	raw, err := os.ReadFile(l.annotationsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]int{}, nil
		}
		return nil, fmt.Errorf("reading annotations %s: %w", l.annotationsPath, err)
	}

	var annotations map[string][]int
	if err := json.Unmarshal(raw, &annotations); err != nil {
		return nil, fmt.Errorf("parsing annotations %s: %w", l.annotationsPath, err)
	}
	if annotations == nil {
		annotations = map[string][]int{}
	}
	return annotations, nil
}

// Path returns the corpus file path, empty for the sample corpus.
func (l *Loader) Path() string {
	return l.corpusPath
}

// splitDocuments splits raw corpus text into documents. Blank lines
// separate documents; without any blank line every non-empty line is its
// own document.
func splitDocuments(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var parts []string
	if strings.Contains(content, "\n\n") {
		parts = strings.Split(content, "\n\n")
	} else {
		parts = strings.Split(content, "\n")
	}

	docs := make([]string, 0, len(parts))
	for _, part := range parts {
		if doc := strings.TrimSpace(part); doc != "" {
			docs = append(docs, doc)
		}
	}
	return docs
}
