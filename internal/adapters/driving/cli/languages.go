package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/clir-cli/internal/preprocess"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List corpus languages with full preprocessing support",
	Long: `Lists the languages that get stopword removal and stemming during
indexing. Any other language still works with the language-agnostic
pipeline (Unicode normalization and tokenization only).`,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	for _, lang := range preprocess.Supported() {
		cmd.Println(lang)
	}
	return nil
}
