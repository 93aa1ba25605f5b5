package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/profile"
	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank careers for questionnaire responses",
	Long:  "Build a profile from responses and rank every career in the catalog by overall score, with sub-scores, strengths and gaps.",
	RunE:  runMatch,
}

var (
	matchResponsesFile string
	matchCatalogFile   string
	matchOutputFile    string
	matchTop           int
	matchFromDB        bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResponsesFile, "responses", "r", "", "Path to responses JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCatalogFile, "catalog", "c", "", "Path to career catalog JSON (default: configured or embedded catalog)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output matches JSON (default stdout)")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Only keep the N best matches (0 keeps all)")
	matchCmd.Flags().BoolVar(&matchFromDB, "catalog-db", false, "Load the catalog from DATABASE_URL instead of a file")
	_ = matchCmd.MarkFlagRequired("responses")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	responses, err := readResponses(matchResponsesFile)
	if err != nil {
		return err
	}
	c, err := loadCatalog(ctx, matchCatalogFile, matchFromDB)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	p, _ := profile.NewBuilder(questionnaire.Default(), appLogger).Build(responses)
	result := engine.Match(p, c.Careers())
	if matchTop > 0 {
		result.Matches = matching.TopN(result.Matches, matchTop)
	}
	if err := checkMatches(result.Matches); err != nil {
		return err
	}

	appLogger.Info("matched careers",
		zap.Int("careers", c.Len()),
		zap.Int("matches", len(result.Matches)),
		zap.Int("skipped", len(result.Skipped)))

	if pr := printer(cmd); pr != nil {
		pr.PrintMatches(result.Matches)
	}
	return writeJSON(cmd, matchOutputFile, result)
}

// checkMatches validates ranked matches against the matches schema before
// they are written
func checkMatches(matches any) error {
	data, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	if err := schemas.ValidateMatches(data); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.As(err, &validationErr):
			return fmt.Errorf("generated matches do not validate against schema: %w", err)
		case errors.As(err, &schemaLoadErr):
			appLogger.Warn("could not validate matches (schema loading failed)", zap.Error(err))
		default:
			appLogger.Warn("could not validate matches", zap.Error(err))
		}
	}
	return nil
}
