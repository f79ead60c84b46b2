package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clir-cli/internal/adapters/driven/corpus"
	"github.com/custodia-labs/clir-cli/internal/logger"
)

var indexWatch bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the retrieval index",
}

var indexBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the index from the corpus",
	Long: `Loads the corpus, normalizes every document and builds a fresh TF-IDF
index. The index is persisted so later searches start instantly.

With --watch the command keeps running and rebuilds the index whenever
the corpus file changes.`,
	RunE: runIndexBuild,
}

var indexInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show index statistics",
	RunE:  runIndexInfo,
}

func init() {
	indexBuildCmd.Flags().BoolVar(&indexWatch, "watch", false, "rebuild on corpus file changes")
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexInfoCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexBuild(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	info, err := indexService.Build(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Indexed %d documents (%d terms).\n", info.DocumentCount, info.VocabularySize)

	if !indexWatch {
		return nil
	}
	if corpusPath == "" {
		return errors.New("--watch needs a configured corpus file (the sample corpus never changes)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := corpus.NewWatcher(corpusPath, func() {
		rebuilt, err := indexService.Build(ctx)
		if err != nil {
			logger.Warn("rebuild failed: %v", err)
			return
		}
		cmd.Printf("Reindexed %d documents (%d terms).\n", rebuilt.DocumentCount, rebuilt.VocabularySize)
	})
	if err != nil {
		return err
	}

	cmd.Printf("Watching %s, press Ctrl-C to stop.\n", corpusPath)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runIndexInfo(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	info, err := indexService.Info(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("Documents:  %d\n", info.DocumentCount)
	cmd.Printf("Vocabulary: %d terms\n", info.VocabularySize)
	return nil
}
