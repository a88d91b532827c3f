// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs a human-readable summary of the composite score.
func (p *Printer) PrintScoreBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.2f / 100  (%s)\n", breakdown.Overall, breakdown.Interpretation))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Semantic:   %.2f\n", breakdown.Components.Semantic))
	sb.WriteString(fmt.Sprintf("Skills:     %.2f  (%d/%d matched)\n",
		breakdown.Components.Skills, breakdown.MatchedSkillCount, breakdown.RequiredSkillCount))
	sb.WriteString(fmt.Sprintf("Experience: %.2f\n", breakdown.Components.Experience))
	sb.WriteString(fmt.Sprintf("Education:  %.2f", breakdown.Components.Education))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintSkillMatch outputs the matched and missing required skills.
func (p *Printer) PrintSkillMatch(breakdown *types.ScoreBreakdown) {
	if breakdown == nil || breakdown.RequiredSkillCount == 0 {
		return
	}

	var sb strings.Builder

	if len(breakdown.MatchedSkills) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(breakdown.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := breakdown.MatchedSkills[i]
			if m.Skill == m.CandidateTerm {
				sb.WriteString(fmt.Sprintf("  • %s\n", m.Skill))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s (as %q, %.2f)\n", m.Skill, m.CandidateTerm, m.Similarity))
			}
		}
		if len(breakdown.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(breakdown.MatchedSkills)-maxItemsToShow))
		}
	}

	if len(breakdown.MissingSkills) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Missing:\n")
		count := min(len(breakdown.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", breakdown.MissingSkills[i]))
		}
		if len(breakdown.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(breakdown.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the gap-based improvement suggestions in
// severity order.
func (p *Printer) PrintRecommendations(breakdown *types.ScoreBreakdown) {
	if breakdown == nil || len(breakdown.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range breakdown.Recommendations {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
		if i < len(breakdown.Recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}
