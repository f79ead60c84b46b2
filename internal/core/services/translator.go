package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

// DefaultTranslateTimeout bounds one provider round trip. The cache-miss
// path is the pipeline's only suspension point, so it must not hang.
const DefaultTranslateTimeout = 10 * time.Second

// Translator wraps the external translation provider with a persistent
// cache keyed on (text, source, target). Cache entries are written once
// and never invalidated.
type Translator struct {
	provider driven.TranslationProvider
	cache    driven.TranslationCache
	timeout  time.Duration
}

// NewTranslator creates a translator. cache may be nil, in which case
// every call goes to the provider.
func NewTranslator(provider driven.TranslationProvider, cache driven.TranslationCache) *Translator {
	return &Translator{
		provider: provider,
		cache:    cache,
		timeout:  DefaultTranslateTimeout,
	}
}

// SetTimeout overrides the per-call provider timeout.
func (t *Translator) SetTimeout(d time.Duration) {
	if d > 0 {
		t.timeout = d
	}
}

// Translate converts text from source to target language. The cache is
// consulted before any external call; on a miss the provider is invoked
// and the entry written before returning. Provider failures surface as
// errors wrapping domain.ErrTranslationUnavailable - this layer never
// silently substitutes the untranslated text.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if t.provider == nil {
		return "", fmt.Errorf("no translation provider configured: %w", domain.ErrTranslationUnavailable)
	}
	if source == target && source != domain.LangAuto {
		return text, nil
	}

	if t.cache != nil {
		entry, ok, err := t.cache.Get(ctx, text, source, target)
		if err != nil {
			logger.Warn("translation cache read failed: %v", err)
		} else if ok {
			logger.Debug("translation cache hit for %q (%s -> %s)", truncate(text, 50), source, target)
			return entry.TranslatedText, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	// The cache key keeps the caller's source hint, so lookups with
	// "auto" hit entries written by earlier "auto" calls.
	hint := source

	// Resolve "auto" up front: if the text is already in the target
	// language there is nothing to translate and nothing to cache.
	if source == domain.LangAuto {
		detected, err := t.provider.Detect(callCtx, text)
		if err != nil {
			return "", fmt.Errorf("detecting language: %w", err)
		}
		if detected == target {
			logger.Debug("query already in target language %s", target)
			return text, nil
		}
		source = detected
	}

	translated, err := t.provider.Translate(callCtx, text, source, target)
	if err != nil {
		return "", fmt.Errorf("translating %s -> %s: %w", source, target, err)
	}

	if t.cache != nil {
		entry := domain.Translation{
			Text:           text,
			SourceLang:     hint,
			TargetLang:     target,
			TranslatedText: translated,
			CreatedAtUnix:  time.Now().Unix(),
		}
		if err := t.cache.Put(ctx, entry); err != nil {
			logger.Warn("translation cache write failed: %v", err)
		}
	}

	logger.Debug("translated %q -> %q", truncate(text, 50), truncate(translated, 50))
	return translated, nil
}

// truncate shortens s for log lines.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
