package main

import (
	"context"

	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/realtime"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the live top matches for partial responses",
	Long:  "Compute the real-time preview: no matches until enough questions are answered, then the top N careers.",
	RunE:  runPreview,
}

var (
	previewResponsesFile string
	previewCatalogFile   string
)

func init() {
	previewCmd.Flags().StringVarP(&previewResponsesFile, "responses", "r", "", "Path to responses JSON file (required)")
	previewCmd.Flags().StringVarP(&previewCatalogFile, "catalog", "c", "", "Path to career catalog JSON (default: configured or embedded catalog)")
	_ = previewCmd.MarkFlagRequired("responses")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	responses, err := readResponses(previewResponsesFile)
	if err != nil {
		return err
	}
	recalc, err := newRecalculator(context.Background(), previewCatalogFile)
	if err != nil {
		return err
	}

	preview := recalc.Update(responses)
	if pr := printer(cmd); pr != nil {
		pr.PrintPreview(preview)
	}
	return writeJSON(cmd, "", preview)
}

// newRecalculator builds a recalculator with the configured preview size
// and signal threshold
func newRecalculator(ctx context.Context, catalogPath string) (*realtime.Recalculator, error) {
	c, err := loadCatalog(ctx, catalogPath, false)
	if err != nil {
		return nil, err
	}
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}
	return realtime.New(engine, c,
		realtime.WithTopN(appConfig.TopN),
		realtime.WithThreshold(appConfig.SignalThreshold),
		realtime.WithQuestions(questionnaire.Default()),
		realtime.WithLogger(appLogger),
	), nil
}
