package main

import (
	"fmt"

	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/jonathan/career-explorer/internal/types"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List questionnaire questions as JSON",
	Long:  "List the questionnaire questions in wizard order, optionally limited to one category.",
	RunE:  runQuestions,
}

var questionsCategory string

func init() {
	questionsCmd.Flags().StringVar(&questionsCategory, "category", "", "Only list questions of this category (interests, skills, experience, personality, preferences, education)")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	set := questionnaire.Default()

	if questionsCategory == "" {
		return writeJSON(cmd, "", set.All())
	}

	category := types.QuestionCategory(questionsCategory)
	if !category.Valid() {
		return fmt.Errorf("unknown question category %q", questionsCategory)
	}
	return writeJSON(cmd, "", set.ByCategory(category))
}
