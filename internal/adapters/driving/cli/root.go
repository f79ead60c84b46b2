// Package cli implements the cobra command tree. Commands are thin: they
// parse flags, call driving services injected by the composition root and
// format output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/clir-cli/internal/core/ports/driving"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

// version is stamped by the composition root.
var version = "dev"

// Injected services. Nil until SetServices runs.
var (
	searchService     driving.SearchService
	indexService      driving.IndexService
	evaluationService driving.EvaluationService
	evaluationFor     func(annotationsPath string) driving.EvaluationService
	corpusPath        string
	defaultTopK       int
)

// Services bundles everything the command tree needs from the
// composition root.
type Services struct {
	Search     driving.SearchService
	Index      driving.IndexService
	Evaluation driving.EvaluationService

	// EvaluationFor builds an evaluator over an alternate annotations
	// file, for the --annotations flag.
	EvaluationFor func(annotationsPath string) driving.EvaluationService

	// CorpusPath is the configured corpus file, used by index --watch.
	CorpusPath string

	// DefaultTopK overrides the search result cutoff when the --top flag
	// is not given.
	DefaultTopK int
}

// SetServices injects the driving services into the command tree.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	searchService = s.Search
	indexService = s.Index
	evaluationService = s.Evaluation
	evaluationFor = s.EvaluationFor
	corpusPath = s.CorpusPath
	defaultTopK = s.DefaultTopK
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "clir",
	Short: "Cross-language document search",
	Long: `clir indexes a document corpus and answers queries written in any
language: queries are translated to the corpus language, matched with
TF-IDF ranking and returned with their relevance scores.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
