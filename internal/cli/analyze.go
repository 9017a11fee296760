package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/clauselens/clauselens/internal/store"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	outMD        string
	timeout      time.Duration
	noCache      bool
	noFooter     bool
	noColor      bool
	scoreWorkers int
	saveHistory  bool
	historyUser  string
	llmEnabled   bool
	llmModel     string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-url>",
	Short: "Analyze one legal document and report per-clause risk",
	Long: `Analyze reads a legal document (plain text, markdown, HTML or PDF, or an
http(s) URL), splits it into clauses, classifies each clause, and scores
it against the built-in risk pattern catalog.

Example:
  clauselens analyze contract.txt
  clauselens analyze agreement.pdf --json report.json --md report.md
  clauselens analyze https://example.com/terms --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored terminal output")

	// Analysis flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")
	analyzeCmd.Flags().IntVar(&scoreWorkers, "workers", 4, "clause scoring workers")

	// History flags
	analyzeCmd.Flags().BoolVar(&saveHistory, "save", false, "save the report to analysis history")
	analyzeCmd.Flags().StringVar(&historyUser, "user", "default", "history user")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summaries")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the effective configuration for analyze/batch/chat
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = filepath.Join(configDir(), "cache")
	cfg.Concurrency.ScoreWorkers = scoreWorkers
	cfg.History.Dir = filepath.Join(configDir(), "history")
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Output.NoColor = noColor

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.AnalyzeSource(ctx, source)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d clauses\n", len(report.Clauses))
		counts := report.CountByLevel()
		fmt.Fprintf(os.Stderr, "✓ Risk: %d high, %d medium, %d low\n",
			counts[model.RiskLevelHigh], counts[model.RiskLevelMedium], counts[model.RiskLevelLow])
		if len(report.Summaries) > 0 {
			fmt.Fprintf(os.Stderr, "✓ Generated %d summaries\n", len(report.Summaries))
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter, cfg.Output.NoColor)

	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)

	if saveHistory {
		history := store.NewHistory(cfg.History.Dir)
		id, err := history.Save(historyUser, report)
		if err != nil {
			return fmt.Errorf("save history: %w", err)
		}
		fmt.Printf("Saved to history: %s\n", id)
	}

	return nil
}
