package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

var (
	searchLang          string
	searchTop           int
	searchJSON          bool
	searchNoTranslate   bool
	searchBackTranslate bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus in any language",
	Long: `Runs a query through the retrieval pipeline: the query is translated
to the corpus language, normalized and ranked against the TF-IDF index.
The query language is detected automatically unless --lang is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchLang, "lang", "l", domain.LangAuto, "query language (ISO code or auto)")
	searchCmd.Flags().IntVarP(&searchTop, "top", "n", 5, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchNoTranslate, "no-translate", false, "search with the raw query, skipping translation")
	searchCmd.Flags().BoolVar(&searchBackTranslate, "back-translate", false, "translate the top result back to the query language")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	top := searchTop
	if !cmd.Flags().Changed("top") && defaultTopK > 0 {
		top = defaultTopK
	}

	opts := domain.SearchOptions{
		SourceLang:      searchLang,
		TopK:            top,
		SkipTranslation: searchNoTranslate,
		BackTranslate:   searchBackTranslate,
	}

	resp, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}

	return outputSearchText(cmd, resp)
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.SearchResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchText(cmd *cobra.Command, resp *domain.SearchResponse) error {
	if resp.TranslationSkipped {
		cmd.Println("Warning: translation unavailable, searched with the raw query.")
	} else if resp.TranslatedQuery != resp.Query {
		cmd.Printf("Translated query: %s\n", resp.TranslatedQuery)
	}

	if len(resp.Results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, hit := range resp.Results {
		cmd.Printf("  [%d] doc %d (%.4f)\n", i+1, hit.DocID, hit.Score)
		cmd.Printf("      %s\n", hit.Text)
		cmd.Println()
	}

	if resp.BackTranslatedTop != "" {
		cmd.Printf("Top result in query language: %s\n", resp.BackTranslatedTop)
	}

	return nil
}
