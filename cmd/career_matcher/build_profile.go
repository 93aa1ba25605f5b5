package main

import (
	"github.com/jonathan/career-explorer/internal/profile"
	"github.com/jonathan/career-explorer/internal/questionnaire"
	"github.com/spf13/cobra"
)

var buildProfileCmd = &cobra.Command{
	Use:   "build-profile",
	Short: "Build a user profile from questionnaire responses",
	Long:  "Fold a responses JSON file into a UserProfile. Missing or invalid answers fall back to defaults and are reported as warnings.",
	RunE:  runBuildProfile,
}

var (
	profileResponsesFile string
	profileOutputFile    string
)

func init() {
	buildProfileCmd.Flags().StringVarP(&profileResponsesFile, "responses", "r", "", "Path to responses JSON file (required)")
	buildProfileCmd.Flags().StringVarP(&profileOutputFile, "out", "o", "", "Path to output profile JSON (default stdout)")
	_ = buildProfileCmd.MarkFlagRequired("responses")

	rootCmd.AddCommand(buildProfileCmd)
}

func runBuildProfile(cmd *cobra.Command, _ []string) error {
	responses, err := readResponses(profileResponsesFile)
	if err != nil {
		return err
	}

	p, issues := profile.NewBuilder(questionnaire.Default(), appLogger).Build(responses)
	for _, issue := range issues {
		status(cmd, "Warning: ignored answer %s: %s", issue.QuestionID, issue.Message)
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintProfile(&p)
	}

	if err := writeJSON(cmd, profileOutputFile, p); err != nil {
		return err
	}
	if profileOutputFile != "" {
		status(cmd, "Profile written to %s", profileOutputFile)
	}
	return nil
}
