package cli

import (
	"bytes"

	"github.com/custodia-labs/clir-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/clir-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clir-cli/internal/core/services"
)

// setupTestServices wires real services over the sample corpus and
// in-memory storage, and returns a cleanup restoring the previous state.
func setupTestServices() func() {
	prevSearch := searchService
	prevIndex := indexService
	prevEvaluation := evaluationService
	prevEvaluationFor := evaluationFor
	prevCorpusPath := corpusPath
	prevDefaultTopK := defaultTopK

	loader := corpus.NewLoader("", "")
	indexes := services.NewIndexService(loader, memory.NewBlobStore(), "english")
	pipeline := services.NewPipeline(nil, indexes, "english")

	SetServices(&Services{
		Search:     pipeline,
		Index:      indexes,
		Evaluation: services.NewEvaluator(pipeline, loader),
		EvaluationFor: func(annotationsPath string) driving.EvaluationService {
			return services.NewEvaluator(pipeline, corpus.NewLoader("", annotationsPath))
		},
	})

	return func() {
		searchService = prevSearch
		indexService = prevIndex
		evaluationService = prevEvaluation
		evaluationFor = prevEvaluationFor
		corpusPath = prevCorpusPath
		defaultTopK = prevDefaultTopK

		searchLang = "auto"
		searchTop = 5
		searchJSON = false
		searchNoTranslate = false
		searchBackTranslate = false
		indexWatch = false
		evaluateTop = 5
		evaluateJSON = false
		evaluateAnnotations = ""
	}
}

// execute runs the root command with args and captures its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
