// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jonathan/career-explorer/internal/matching"
	"github.com/jonathan/career-explorer/internal/realtime"
	"github.com/jonathan/career-explorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes so box borders stay aligned
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintMatches outputs the ranked matches with sub-scores and explanations.
func (p *Printer) PrintMatches(matches []types.CareerMatch) {
	if len(matches) == 0 {
		p.printBox("CAREER MATCHES", "No matches yet")
		return
	}

	var sb strings.Builder
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s  %.1f\n", i+1, m.Career.Title, m.OverallScore))
		s := m.SubScores
		sb.WriteString(fmt.Sprintf("    skills %.0f · interests %.0f · exp %.0f\n", s.Skills, s.Interests, s.Experience))
		sb.WriteString(fmt.Sprintf("    prefs %.0f · personality %.0f\n", s.Preferences, s.Personality))
		for _, str := range m.Strengths {
			sb.WriteString(fmt.Sprintf("    + %s\n", str))
		}
		for _, gap := range m.Gaps {
			sb.WriteString(fmt.Sprintf("    - %s\n", gap))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(matches)-maxItemsToShow))
	}

	p.printBox("CAREER MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable summary of the built user profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	exp := profile.Experience
	sb.WriteString(fmt.Sprintf("Level:    %s (%s years)\n", exp.Level, humanize.FtoaWithDigits(exp.YearsOfExperience, 1)))
	salary := profile.Preferences.Salary
	sb.WriteString(fmt.Sprintf("Salary:   $%s-$%s\n",
		humanize.Comma(int64(salary.Min)), humanize.Comma(int64(salary.Max))))
	if envs := profile.Preferences.WorkEnvironment.Names(); len(envs) > 0 {
		sb.WriteString(fmt.Sprintf("Work:     %s\n", strings.Join(envs, ", ")))
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", profile.Skills)
	writeList(&sb, "Interests", profile.Interests)

	p.printBox("USER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// CategoryProgress is the completion percentage of one question category
type CategoryProgress struct {
	Category types.QuestionCategory
	Percent  float64
}

// PrintProgress outputs overall and per-category questionnaire completion.
func (p *Printer) PrintProgress(overall float64, categories []CategoryProgress) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %s %5.1f%%\n", bar(overall), overall))
	sb.WriteString("\n")
	for _, c := range categories {
		sb.WriteString(fmt.Sprintf("%-13s %s %5.1f%%\n", string(c.Category)+":", bar(c.Percent), c.Percent))
	}
	p.printBox("QUESTIONNAIRE PROGRESS", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders a 20 cell progress bar for a percentage
func bar(percent float64) string {
	const cells = 20
	filled := int(percent / 100 * cells)
	filled = max(0, min(cells, filled))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", cells-filled) + "]"
}

// PrintPreview outputs a real-time preview, or the waiting message below the
// signal threshold.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPreview(preview realtime.Preview) {
	if !preview.Ready {
		p.printBox("LIVE PREVIEW",
			fmt.Sprintf("%d answers so far. Keep answering to see matches.", preview.Answered))
		return
	}
	if preview.Failed {
		p.printBox("LIVE PREVIEW", "Matches could not be recalculated")
		return
	}
	if preview.Stale {
		fmt.Fprintln(p.out, "(showing previous matches)")
	}
	p.PrintMatches(preview.Matches)
}

// PrintRejected outputs catalog entries that failed validation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRejected(rejected []matching.EntryError) {
	if len(rejected) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL CATALOG ENTRIES VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rejected %d entries:\n\n", len(rejected)))
	for i, e := range rejected {
		id := e.CareerID
		if id == "" {
			id = "(no id)"
		}
		sb.WriteString(fmt.Sprintf("⚠ #%d %s\n", e.Index, id))
		if e.Err != nil {
			sb.WriteString(fmt.Sprintf("  %s\n", e.Err.Error()))
		}
		if i < len(rejected)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("REJECTED CATALOG ENTRIES", strings.TrimSuffix(sb.String(), "\n"))
}
