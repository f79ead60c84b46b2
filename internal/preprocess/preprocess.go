// Package preprocess normalizes raw text into the canonical token sequence
// used by both index building and query scoring. The same pipeline must be
// applied on both sides or cosine scores are meaningless.
//
// Normalization runs in a fixed order: Unicode fold and lowercase, tokenize
// on letter/number boundaries, drop stopwords, stem, drop empties. Duplicate
// tokens are kept so term frequency stays recoverable.
package preprocess

import (
	"bufio"
	"embed"
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/clir-cli/internal/logger"
)

//go:embed stopwords/*.txt
var stopwordFS embed.FS

// stemmable lists the languages the snowball stemmer handles.
var stemmable = map[string]bool{
	"english":   true,
	"spanish":   true,
	"french":    true,
	"russian":   true,
	"swedish":   true,
	"norwegian": true,
	"hungarian": true,
}

// foldable lists Latin-script languages where stripping combining marks is
// safe. Scripts like Devanagari encode vowels as combining marks, so folding
// them would destroy the text.
var foldable = map[string]bool{
	"english":   true,
	"spanish":   true,
	"french":    true,
	"swedish":   true,
	"norwegian": true,
	"hungarian": true,
}

// Pipeline normalizes text for one language. A Pipeline is immutable after
// construction and safe for concurrent use.
type Pipeline struct {
	language  string
	stopwords map[string]struct{}
	stem      bool
	fold      bool
}

// New creates a normalization pipeline for the given language. An unknown
// language yields a language-agnostic pipeline (fold and tokenize only)
// rather than an error: preprocessing must never block retrieval.
func New(language string) *Pipeline {
	language = strings.ToLower(strings.TrimSpace(language))

	stopwords, ok := loadStopwords(language)
	if !ok {
		logger.Warn("no stopword list for language %q, using language-agnostic normalization", language)
		return &Pipeline{language: language, fold: true}
	}

	return &Pipeline{
		language:  language,
		stopwords: stopwords,
		stem:      stemmable[language],
		fold:      foldable[language],
	}
}

// Language returns the language this pipeline was built for.
func (p *Pipeline) Language() string {
	return p.language
}

// Known reports whether the language has dedicated resources, as opposed to
// the language-agnostic fallback.
func (p *Pipeline) Known() bool {
	return p.stopwords != nil
}

// Normalize converts raw text into the canonical token sequence. The result
// preserves token order and duplicates; it is empty (never nil-panicking)
// when nothing survives.
func (p *Pipeline) Normalize(text string) []string {
	folded := p.foldText(text)

	raw := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if tok == "" {
			continue
		}
		if p.stopwords != nil {
			if _, stop := p.stopwords[tok]; stop {
				continue
			}
		}
		if p.stem {
			if stemmed, err := snowball.Stem(tok, p.language, true); err == nil && stemmed != "" {
				tok = stemmed
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// foldText lowercases and Unicode-normalizes text. For Latin-script
// languages it also strips combining marks so "café" and "cafe" meet.
func (p *Pipeline) foldText(text string) string {
	text = strings.ToLower(text)
	if !p.fold {
		return norm.NFKC.String(text)
	}

	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return norm.NFKC.String(text)
	}
	return folded
}

// Supported returns the languages that ship with a stopword list, sorted.
func Supported() []string {
	entries, err := stopwordFS.ReadDir("stopwords")
	if err != nil {
		return nil
	}

	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".txt") {
			langs = append(langs, strings.TrimSuffix(name, ".txt"))
		}
	}
	sort.Strings(langs)
	return langs
}

// loadStopwords reads the embedded stopword list for a language.
// One word per line, '#' starts a comment.
func loadStopwords(language string) (map[string]struct{}, bool) {
	f, err := stopwordFS.Open("stopwords/" + language + ".txt")
	if err != nil {
		return nil, false
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words[strings.ToLower(word)] = struct{}{}
	}
	return words, true
}
