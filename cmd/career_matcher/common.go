package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-explorer/internal/catalog"
	"github.com/jonathan/career-explorer/internal/db"
	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/observability"
	"github.com/jonathan/career-explorer/internal/schemas"
	"github.com/jonathan/career-explorer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readResponses reads a responses JSON file, checking it against the
// responses schema before decoding
func readResponses(path string) (types.Responses, error) {
	if path == "" {
		return nil, fmt.Errorf("responses file is required (--responses)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file: %w", err)
	}

	if err := schemas.ValidateResponses(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("responses file %s does not validate against schema: %w", path, err)
		}
		return nil, fmt.Errorf("failed to validate responses file %s: %w", path, err)
	}

	var responses types.Responses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse responses JSON: %w", err)
	}
	if responses == nil {
		responses = types.Responses{}
	}
	return responses, nil
}

// loadCatalog returns the catalog from Postgres when fromDB is set, from
// path or the configured catalog file otherwise, and the embedded sample
// catalog as a last resort
func loadCatalog(ctx context.Context, path string, fromDB bool) (*catalog.Catalog, error) {
	if fromDB {
		database, err := connectDB(ctx)
		if err != nil {
			return nil, err
		}
		defer database.Close()

		c, err := catalog.NewPostgres(database, appLogger).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from database: %w", err)
		}
		return c, nil
	}

	if path == "" {
		path = appConfig.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path, appLogger)
	if err != nil {
		return nil, err
	}
	appLogger.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("careers", c.Len()),
		zap.Int("rejected", len(c.Rejected())))
	return c, nil
}

func connectDB(ctx context.Context) (*db.DB, error) {
	if appConfig.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for database access")
	}
	database, err := db.Connect(ctx, appConfig.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}
	return database, nil
}

// newEngine builds an engine from the configured weights
func newEngine() (*matching.Engine, error) {
	engine, err := matching.NewEngine(
		matching.WithWeights(appConfig.Weights),
		matching.WithLogger(appLogger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create matching engine: %w", err)
	}
	return engine, nil
}

// writeJSON writes v as indented JSON to path, or to the command's stdout
// when path is empty
func writeJSON(cmd *cobra.Command, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err := cmd.OutOrStdout().Write(jsonBytes)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// printer returns the verbose-mode printer, or nil when verbose output is off
func printer(cmd *cobra.Command) *observability.Printer {
	if !appConfig.Verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// status writes a one-line status message to stderr
func status(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
