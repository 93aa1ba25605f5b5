// Package main provides the career_matcher CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/career-explorer/internal/config"
	"github.com/jonathan/career-explorer/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:               "career_matcher",
	Short:             "Career matching and scoring engine",
	Long:              "career_matcher turns questionnaire responses into a user profile and ranks a career catalog against it with explained scores.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

var (
	cfgFile   string
	debugLogs bool
	jsonLogs  bool
	verbose   bool

	appConfig *config.Config
	appLogger = zap.NewNop()
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human readable summaries to stderr")
}

// initConfig loads the configuration for the invoked command and builds
// the shared logger
func initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appConfig = cfg
	appLogger = l
	appLogger.Debug("config loaded",
		zap.String("config", cfgFile),
		zap.String("store", cfg.Store),
		zap.Int("top_n", cfg.TopN))
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	_ = appLogger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
