package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/fatih/color"
)

// Renderer writes reports as JSON and Markdown files and prints the terminal
// summary
type Renderer struct {
	includeFooter bool
	levelColors   map[model.RiskLevel]*color.Color
}

// NewRenderer creates a renderer. noColor disables ANSI output globally.
func NewRenderer(includeFooter bool, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}

	return &Renderer{
		includeFooter: includeFooter,
		levelColors: map[model.RiskLevel]*color.Color{
			model.RiskLevelHigh:   color.New(color.FgRed, color.Bold),
			model.RiskLevelMedium: color.New(color.FgYellow),
			model.RiskLevelLow:    color.New(color.FgGreen),
		},
	}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a Markdown clause table
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Clause Analysis: %s\n\n", report.Document)
	fmt.Fprintf(&b, "- Source: %s\n", report.Source)
	fmt.Fprintf(&b, "- Analyzed: %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Language: %s (confidence %.2f)\n", report.Language, report.LanguageConfidence)
	fmt.Fprintf(&b, "- Clauses: %d\n\n", len(report.Clauses))

	counts := report.CountByLevel()
	fmt.Fprintf(&b, "Risk distribution: %d high, %d medium, %d low\n\n",
		counts[model.RiskLevelHigh], counts[model.RiskLevelMedium], counts[model.RiskLevelLow])

	b.WriteString("| # | Type | Risk | Score | Factors |\n")
	b.WriteString("|---|------|------|-------|--------|\n")
	for _, pair := range report.Pairs() {
		fmt.Fprintf(&b, "| %d | %s | %s | %.2f | %s |\n",
			pair.Clause.ID, pair.Clause.Type, pair.Risk.RiskLevel,
			pair.Risk.RiskScore, strings.Join(pair.Risk.RiskFactors, ", "))
	}
	b.WriteString("\n")

	for _, pair := range report.Pairs() {
		fmt.Fprintf(&b, "## Clause %d (%s)\n\n", pair.Clause.ID, pair.Clause.Type)
		fmt.Fprintf(&b, "> %s\n\n", pair.Clause.Text)
		fmt.Fprintf(&b, "%s\n\n", pair.Risk.Explanation)
	}

	if len(report.Summaries) > 0 {
		b.WriteString("## Summaries\n\n")
		for _, register := range []string{"eli5", "plain_language", "detailed"} {
			if summary, ok := report.Summaries[register]; ok {
				fmt.Fprintf(&b, "### %s\n\n%s\n\n", register, summary)
			}
		}
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by clauselens. Heuristic analysis, not legal advice.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}

// RenderSummary prints the per-clause risk summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s: %d clauses, language %s\n\n", report.Document, len(report.Clauses), report.Language)

	for _, pair := range report.Pairs() {
		levelColor := r.levelColors[pair.Risk.RiskLevel]

		text := pair.Clause.Text
		if len(text) > 70 {
			text = text[:70] + "..."
		}

		fmt.Printf("  %2d. [%s] %-15s %s\n",
			pair.Clause.ID,
			levelColor.Sprintf("%-6s", pair.Risk.RiskLevel),
			pair.Clause.Type,
			text)
	}

	counts := report.CountByLevel()
	fmt.Printf("\n  %s  %s  %s\n\n",
		r.levelColors[model.RiskLevelHigh].Sprintf("high: %d", counts[model.RiskLevelHigh]),
		r.levelColors[model.RiskLevelMedium].Sprintf("medium: %d", counts[model.RiskLevelMedium]),
		r.levelColors[model.RiskLevelLow].Sprintf("low: %d", counts[model.RiskLevelLow]))
}
