package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	os.Exit(m.Run())
}

const analystResponses = `{
	"interests-areas": ["data", "technology"],
	"interests-activities": ["analyzing", "researching"],
	"skills-technical": ["SQL", "Python", "Statistics"],
	"skills-soft": ["Communication", "Problem Solving"],
	"experience-level": "mid",
	"experience-years": 3,
	"personality-work-style": "independent",
	"personality-pace": "fast",
	"personality-problem-solving": "analytical",
	"personality-communication": "written",
	"personality-leadership": "no",
	"preferences-work-environment": ["remote", "hybrid"],
	"preferences-salary-min": 60000,
	"preferences-salary-max": 100000,
	"preferences-work-life-balance": "high",
	"education-level": "bachelor"
}`

// resetFlags restores every flag to its default so commands can run
// repeatedly in one process
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI in-process and returns what it wrote to stdout and
// stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	appConfig = nil
	appLogger = zap.NewNop()
	t.Cleanup(func() { appLogger = zap.NewNop() })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func decode[T any](t *testing.T, data string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v), data)
	return v
}
