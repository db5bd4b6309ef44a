// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
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

// PrintGapReport outputs the fitness score and the top missing keywords.
func (p *Printer) PrintGapReport(gap *types.GapReport) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fitness:  %.1f%%\n", gap.Fitness))
	sb.WriteString(fmt.Sprintf("Matched:  %d keywords\n", len(gap.Matched)))
	sb.WriteString(fmt.Sprintf("Missing:  %d keywords\n", len(gap.Missing)))

	if len(gap.Missing) > 0 {
		sb.WriteString("\nTop missing:\n")
		count := min(len(gap.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := gap.Missing[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", m.Keyword, m.Tier))
		}
		if len(gap.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gap.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD GAP REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComplianceReport outputs the compliance score, sub-check outcomes,
// and recommendations.
func (p *Printer) PrintComplianceReport(report *types.ComplianceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100", report.OverallScore))
	if report.IsCompliant {
		sb.WriteString("  ✅ compliant\n")
	} else {
		sb.WriteString("  ⚠ not compliant\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Section order:   %s\n", passFail(report.SectionOrder.IsValid)))
	sb.WriteString(fmt.Sprintf("Word counts:     %s\n", passFail(report.WordCount.IsValid)))
	sb.WriteString(fmt.Sprintf("Bullet pattern:  %.0f%% with metrics\n", report.BulletPattern.MetricPercent))
	sb.WriteString(fmt.Sprintf("Title placement: %s\n", passFail(report.TitlePlacement.IsValid)))

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := report.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(report.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("COMPLIANCE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChangeLog outputs the changes applied during optimization.
func (p *Printer) PrintChangeLog(changes []types.ChangeEntry) {
	if len(changes) == 0 {
		p.printBox("CHANGE LOG", "No changes applied")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied %d changes:\n\n", len(changes)))

	count := min(len(changes), maxItemsToShow)
	for i := 0; i < count; i++ {
		change := changes[i]
		desc := change.Description
		if len(desc) > 45 {
			desc = desc[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", change.Type, change.Section))
		sb.WriteString(fmt.Sprintf("  %s\n", desc))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(changes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more changes", len(changes)-maxItemsToShow))
	}

	p.printBox("CHANGE LOG", sb.String())
}

// PrintScoreDelta outputs the before and after score cards side by side.
func (p *Printer) PrintScoreDelta(before, after types.ScoreCard) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compliance:  %d → %d (%+d)\n",
		before.Overall, after.Overall, after.Overall-before.Overall))
	sb.WriteString(fmt.Sprintf("Fitness:     %.1f%% → %.1f%% (%+.1f)",
		before.Fitness, after.Fitness, after.Fitness-before.Fitness))

	p.printBox("SCORE DELTA", sb.String())
}

// PrintSkillGroups outputs the categorized skill groups.
func (p *Printer) PrintSkillGroups(groups []types.SkillGroup) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for i, group := range groups {
		skills := strings.Join(group.Skills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s:\n  %s\n", group.Category, skills))
		if i < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL GROUPS", strings.TrimSuffix(sb.String(), "\n"))
}

func passFail(ok bool) string {
	if ok {
		return "✅ pass"
	}
	return "⚠ fail"
}
