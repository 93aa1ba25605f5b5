package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-explorer/internal/config"
	"github.com/jonathan/career-explorer/internal/observability"
	"github.com/jonathan/career-explorer/internal/progress"
	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/realtime"
	"github.com/jonathan/career-explorer/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Answer the questionnaire step by step in a persisted session",
	Long:  "Record answers in a questionnaire session kept in the configured store (memory, file, sqlite or postgres) and follow progress and live matches.",
}

var sessionAnswerCmd = &cobra.Command{
	Use:   "answer <question-id> <value> [value...]",
	Short: "Record an answer and show the live preview",
	Long:  "Record an answer for a question. Several values form a multiple-choice answer; numeric questions accept a number.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSessionAnswer,
}

var sessionProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show questionnaire completion",
	Args:  cobra.NoArgs,
	RunE:  runSessionProgress,
}

var sessionResponsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "Export the session responses as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSessionResponses,
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all answers and start a new session",
	Args:  cobra.NoArgs,
	RunE:  runSessionReset,
}

var (
	sessionStore     string
	sessionStorePath string
	sessionOutput    string
)

func init() {
	sessionCmd.PersistentFlags().StringVar(&sessionStore, "store", "", "Session store: memory, file, sqlite or postgres (default from config)")
	sessionCmd.PersistentFlags().StringVar(&sessionStorePath, "store-path", "", "File or SQLite path of the session store (default from config)")
	sessionResponsesCmd.Flags().StringVarP(&sessionOutput, "out", "o", "", "Path to output responses JSON (default stdout)")

	sessionCmd.AddCommand(sessionAnswerCmd, sessionProgressCmd, sessionResponsesCmd, sessionResetCmd)
	rootCmd.AddCommand(sessionCmd)
}

// openStore creates the configured session store. The returned func
// releases its resources.
func openStore(ctx context.Context, cfg *config.Config) (progress.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return progress.NewMemoryStore(), func() {}, nil
	case config.StoreFile:
		return progress.NewFileStore(cfg.StorePath), func() {}, nil
	case config.StoreSQLite:
		s, err := progress.OpenSQLite(ctx, cfg.StorePath, cfg.SessionKey)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.StorePostgres:
		database, err := connectDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		return progress.NewPostgresStore(database, cfg.SessionKey), database.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// withTracker opens the store, loads the session and runs fn
func withTracker(fn func(ctx context.Context, t *progress.Tracker) error) error {
	ctx := context.Background()
	store, closeStore, err := openStore(ctx, appConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	t, err := progress.New(ctx, store, questionnaire.Default(), progress.WithLogger(appLogger))
	if err != nil {
		return err
	}
	return fn(ctx, t)
}

// sessionReport is the output of the session subcommands
type sessionReport struct {
	SessionID    string                             `json:"session_id"`
	Answered     int                                `json:"answered"`
	Overall      float64                            `json:"overall_progress"`
	Categories   map[types.QuestionCategory]float64 `json:"category_progress"`
	NextQuestion *types.Question                    `json:"next_question,omitempty"`
	Preview      *realtime.Preview                  `json:"preview,omitempty"`
}

func reportFor(t *progress.Tracker) sessionReport {
	r := sessionReport{
		SessionID:  t.SessionID().String(),
		Answered:   t.AnsweredCount(),
		Overall:    t.OverallProgress(),
		Categories: make(map[types.QuestionCategory]float64, len(types.QuestionCategories)),
	}
	for _, c := range types.QuestionCategories {
		r.Categories[c] = t.CategoryProgress(c)
	}
	if next, ok := t.NextQuestion(); ok {
		r.NextQuestion = &next
	}
	return r
}

func printProgress(cmd *cobra.Command, r sessionReport) {
	pr := printer(cmd)
	if pr == nil {
		return
	}
	categories := make([]observability.CategoryProgress, 0, len(types.QuestionCategories))
	for _, c := range types.QuestionCategories {
		categories = append(categories, observability.CategoryProgress{Category: c, Percent: r.Categories[c]})
	}
	pr.PrintProgress(r.Overall, categories)
	if r.Preview != nil {
		pr.PrintPreview(*r.Preview)
	}
}

func runSessionAnswer(cmd *cobra.Command, args []string) error {
	questionID, values := args[0], args[1:]

	answer := types.TextAnswer(values[0])
	if len(values) > 1 {
		answer = types.ChoicesAnswer(values...)
	}

	recalc, err := newRecalculator(context.Background(), "")
	if err != nil {
		return err
	}

	return withTracker(func(ctx context.Context, t *progress.Tracker) error {
		var preview realtime.Preview
		t.OnChange(func(r types.Responses) {
			preview = recalc.Update(r)
		})

		if err := t.Answer(ctx, questionID, answer); err != nil {
			return err
		}
		appLogger.Debug("answer recorded",
			zap.String("question_id", questionID),
			zap.Bool("preview_ready", preview.Ready))

		r := reportFor(t)
		r.Preview = &preview
		printProgress(cmd, r)
		return writeJSON(cmd, "", r)
	})
}

func runSessionProgress(cmd *cobra.Command, _ []string) error {
	return withTracker(func(_ context.Context, t *progress.Tracker) error {
		r := reportFor(t)
		printProgress(cmd, r)
		return writeJSON(cmd, "", r)
	})
}

func runSessionResponses(cmd *cobra.Command, _ []string) error {
	return withTracker(func(_ context.Context, t *progress.Tracker) error {
		return writeJSON(cmd, sessionOutput, t.Responses())
	})
}

func runSessionReset(cmd *cobra.Command, _ []string) error {
	return withTracker(func(ctx context.Context, t *progress.Tracker) error {
		if err := t.Reset(ctx); err != nil {
			return err
		}
		status(cmd, "Started new session %s", t.SessionID())
		return writeJSON(cmd, "", reportFor(t))
	})
}
