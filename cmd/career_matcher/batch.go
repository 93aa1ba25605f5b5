package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/profile"
	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Match every responses file in a directory",
	Long:  "Score each *.json responses file in a directory concurrently and write <name>.matches.json files to the output directory.",
	RunE:  runBatch,
}

var (
	batchInputDir  string
	batchOutputDir string
	batchCatalog   string
	batchWorkers   int
	batchTop       int
)

const batchMatchesExt = ".matches.json"

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "dir", "d", "", "Directory of responses JSON files (required)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output directory for match files (required)")
	batchCmd.Flags().StringVarP(&batchCatalog, "catalog", "c", "", "Path to career catalog JSON (default: configured or embedded catalog)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", runtime.NumCPU(), "Maximum files scored concurrently")
	batchCmd.Flags().IntVar(&batchTop, "top", 0, "Only keep the N best matches per file (0 keeps all)")
	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(batchCmd)
}

// batchSummary is the batch command output
type batchSummary struct {
	Processed int      `json:"processed"`
	Outputs   []string `json:"outputs"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchWorkers < 1 {
		return fmt.Errorf("--workers must be at least 1")
	}

	files, err := filepath.Glob(filepath.Join(batchInputDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list responses files: %w", err)
	}
	inputs := files[:0]
	for _, f := range files {
		// skip outputs of a previous run written into the same directory
		if !strings.HasSuffix(f, batchMatchesExt) {
			inputs = append(inputs, f)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no responses files found in %s", batchInputDir)
	}

	ctx := context.Background()
	c, err := loadCatalog(ctx, batchCatalog, false)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}
	careers := c.Careers()
	builder := profile.NewBuilder(questionnaire.Default(), appLogger)

	outputs := make([]string, len(inputs))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			responses, err := readResponses(in)
			if err != nil {
				return err
			}

			p, _ := builder.Build(responses)
			result := engine.Match(p, careers)
			if batchTop > 0 {
				result.Matches = matching.TopN(result.Matches, batchTop)
			}

			name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + batchMatchesExt
			out := filepath.Join(batchOutputDir, name)
			if err := writeJSON(cmd, out, result); err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			outputs[i] = out

			appLogger.Debug("scored responses file",
				zap.String("file", in),
				zap.Int64("done", done.Add(1)),
				zap.Int("total", len(inputs)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(outputs)
	status(cmd, "Scored %d responses files into %s", len(outputs), batchOutputDir)
	return writeJSON(cmd, "", batchSummary{Processed: len(outputs), Outputs: outputs})
}
