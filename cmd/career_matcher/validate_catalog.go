package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/career-explorer/internal/catalog"
	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCatalogCmd = &cobra.Command{
	Use:   "validate-catalog",
	Short: "Validate a career catalog and report rejected entries",
	Long:  "Check every catalog entry against the career schema and the engine's required fields. Exits non-zero when any entry is rejected.",
	RunE:  runValidateCatalog,
}

var (
	validateCatalogFile string
	validateSave        bool
)

func init() {
	validateCatalogCmd.Flags().StringVarP(&validateCatalogFile, "catalog", "c", "", "Path to career catalog JSON (required)")
	validateCatalogCmd.Flags().BoolVar(&validateSave, "save", false, "Store the careers in the database at DATABASE_URL when none are rejected")
	_ = validateCatalogCmd.MarkFlagRequired("catalog")

	rootCmd.AddCommand(validateCatalogCmd)
}

// catalogReport is the validate-catalog output
type catalogReport struct {
	Source   string          `json:"source"`
	Valid    int             `json:"valid"`
	Rejected []rejectedEntry `json:"rejected"`
}

type rejectedEntry struct {
	Index    int    `json:"index"`
	CareerID string `json:"career_id,omitempty"`
	Error    string `json:"error"`
}

func runValidateCatalog(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateCatalogFile)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := catalog.Parse(validateCatalogFile, data, appLogger)
	if err != nil {
		return err
	}

	schemaErrs, err := entrySchemaErrors(data)
	if err != nil {
		return err
	}

	report := catalogReport{Source: validateCatalogFile, Valid: c.Len(), Rejected: []rejectedEntry{}}
	rejected := c.Rejected()
	seen := make(map[int]bool, len(rejected))
	for _, e := range rejected {
		seen[e.Index] = true
		report.Rejected = append(report.Rejected, rejectedEntry{Index: e.Index, CareerID: e.CareerID, Error: e.Err.Error()})
	}
	// Entries the engine accepts may still break the career schema, e.g.
	// with an unknown personality trait
	for _, e := range schemaErrs {
		if seen[e.Index] {
			continue
		}
		rejected = append(rejected, e)
		report.Rejected = append(report.Rejected, rejectedEntry{Index: e.Index, CareerID: e.CareerID, Error: e.Err.Error()})
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintRejected(rejected)
	}
	if err := writeJSON(cmd, "", report); err != nil {
		return err
	}

	if len(report.Rejected) > 0 {
		return fmt.Errorf("%d catalog entries rejected", len(report.Rejected))
	}

	if validateSave {
		ctx := context.Background()
		database, err := connectDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := catalog.NewPostgres(database, appLogger).Save(ctx, c.Careers()); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		status(cmd, "Saved %d careers to database", c.Len())
	}
	return nil
}

// entrySchemaErrors checks each raw catalog entry against the career schema
func entrySchemaErrors(data []byte) ([]matching.EntryError, error) {
	entries, err := catalog.SplitEntries(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	var out []matching.EntryError
	for i, raw := range entries {
		err := schemas.ValidateCareer(raw)
		if err == nil {
			continue
		}
		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) {
			return nil, err
		}
		id := entryID(raw)
		appLogger.Debug("career fails schema", zap.Int("index", i), zap.String("career_id", id))
		out = append(out, matching.EntryError{Index: i, CareerID: id, Reason: err.Error(), Err: err})
	}
	return out, nil
}

// entryID extracts the id of a raw entry, or "" when it has none
func entryID(raw json.RawMessage) string {
	var head struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(raw, &head)
	return head.ID
}
