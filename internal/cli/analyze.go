package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rmehta/clauseguard/internal/model"
	"github.com/rmehta/clauseguard/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noAudit     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single contract file",
	Long: `Analyze reviews one contract file (.txt or .html) to:
- Segment the text into classified clauses
- Extract parties, organizations, dates, amounts and locations
- Score risk per clause and for the whole contract
- Flag terms typically unfavorable to the smaller party
- Highlight ambiguous language and Indian-law compliance markers

Example:
  clauseguard analyze vendor_agreement.txt
  clauseguard analyze contract.html --json report.json --md report.md
  clauseguard analyze contract.txt --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable LLM response cache")
	analyzeCmd.Flags().BoolVar(&noAudit, "no-audit", false, "disable the audit trail")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM enrichment")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	analysis, err := p.AnalyzeFile(ctx, file)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	if !analysis.Success {
		return fmt.Errorf("analyze failed: %s", analysis.Error)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d clauses\n", len(analysis.Clauses))
		fmt.Fprintf(os.Stderr, "✓ Found %d unfavorable terms\n", len(analysis.UnfavorableTerms))
		fmt.Fprintf(os.Stderr, "✓ Composite risk score: %d/100\n", analysis.RiskAnalysis.CompositeRiskScore)
		if analysis.LLM != nil && analysis.LLM.Error == "" {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM enrichment using %s\n", analysis.LLM.Provider)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(analysis, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig assembles the effective configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Audit.Enabled = !noAudit
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
			}
		}
	}

	return cfg, nil
}
