// Command clir is a cross-language document search CLI. Queries written
// in any language are translated to the corpus language and ranked with
// TF-IDF retrieval.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/clir-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/clir-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/clir-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/clir-cli/internal/adapters/driven/translation/googlecloud"
	"github.com/custodia-labs/clir-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clir-cli/internal/core/services"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	corpusLang := cfg.StringOr(file.KeyCorpusLanguage, "english")
	corpusPath := cfg.GetString(file.KeyCorpusPath)
	loader := corpus.NewLoader(corpusPath, cfg.GetString(file.KeyCorpusAnnotations))

	translator := services.NewTranslator(newProvider(cfg), store.TranslationCache())
	if secs := cfg.GetInt(file.KeyTranslationTimeout); secs > 0 {
		translator.SetTimeout(time.Duration(secs) * time.Second)
	}

	indexes := services.NewIndexService(loader, store.BlobStore(), corpusLang)
	pipeline := services.NewPipeline(translator, indexes, corpusLang)
	pipeline.SetQueryLog(store.QueryLog())

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Search:     pipeline,
		Index:      indexes,
		Evaluation: services.NewEvaluator(pipeline, loader),
		EvaluationFor: func(annotationsPath string) driving.EvaluationService {
			return services.NewEvaluator(pipeline, corpus.NewLoader(corpusPath, annotationsPath))
		},
		CorpusPath:  corpusPath,
		DefaultTopK: cfg.IntOr(file.KeySearchTopK, 0),
	})

	return cli.Execute()
}

// newProvider builds the translation provider, or nil when no API key is
// configured. Without a provider searches fall back to the raw query.
func newProvider(cfg *file.ConfigStore) driven.TranslationProvider {
	apiKey := os.Getenv("CLIR_TRANSLATION_API_KEY")
	if apiKey == "" {
		apiKey = cfg.GetString(file.KeyTranslationAPIKey)
	}
	if apiKey == "" {
		return nil
	}

	provider, err := googlecloud.NewProvider(googlecloud.Config{
		APIKey:  apiKey,
		BaseURL: cfg.GetString(file.KeyTranslationBaseURL),
	})
	if err != nil {
		logger.Warn("translation provider disabled: %v", err)
		return nil
	}
	return provider
}
