package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/clir-cli/internal/core/domain"
)

var (
	evaluateTop         int
	evaluateJSON        bool
	evaluateAnnotations string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score retrieval quality against relevance annotations",
	Long: `Runs every annotated query through the pipeline and reports
Precision@k, Recall@k, F1@k and mean reciprocal rank, per query and
averaged over the whole annotation set.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().IntVarP(&evaluateTop, "top", "k", 5, "ranking cutoff k")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "output metrics as JSON")
	evaluateCmd.Flags().StringVar(&evaluateAnnotations, "annotations", "", "relevance annotations file (overrides config)")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	service := evaluationService
	if evaluateAnnotations != "" && evaluationFor != nil {
		service = evaluationFor(evaluateAnnotations)
	}
	if service == nil {
		return errors.New("evaluation service not configured")
	}

	batch, records, err := service.EvaluateAll(cmd.Context(), evaluateTop)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if evaluateJSON {
		return outputEvaluateJSON(cmd, batch, records)
	}

	return outputEvaluateText(cmd, batch, records)
}

func outputEvaluateJSON(cmd *cobra.Command, batch *domain.BatchMetrics, records []domain.EvaluationRecord) error {
	payload := struct {
		Mean    domain.Metrics            `json:"mean"`
		Queries int                       `json:"queries"`
		Records []domain.EvaluationRecord `json:"records"`
	}{
		Mean:    batch.Mean,
		Queries: batch.Queries,
		Records: records,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputEvaluateText(cmd *cobra.Command, batch *domain.BatchMetrics, records []domain.EvaluationRecord) error {
	k := batch.Mean.K

	for _, record := range records {
		m := record.Metrics
		cmd.Printf("%q\n", record.Query)
		cmd.Printf("  P@%d=%.3f  R@%d=%.3f  F1@%d=%.3f  RR=%.3f\n",
			k, m.Precision, k, m.Recall, k, m.F1, m.ReciprocalRank)
	}

	cmd.Println()
	cmd.Printf("Mean over %d queries:\n", batch.Queries)
	cmd.Printf("  P@%d=%.3f  R@%d=%.3f  F1@%d=%.3f  MRR=%.3f\n",
		k, batch.Mean.Precision, k, batch.Mean.Recall, k, batch.Mean.F1, batch.Mean.ReciprocalRank)
	return nil
}
