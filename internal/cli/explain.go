package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rmehta/clauseguard/internal/document"
	"github.com/rmehta/clauseguard/internal/extract"
	"github.com/rmehta/clauseguard/internal/model"
	"github.com/rmehta/clauseguard/internal/pipeline"
	"github.com/rmehta/clauseguard/internal/risk"
	"github.com/spf13/cobra"
)

var (
	explainClauseID int
	explainTimeout  time.Duration
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain <file>",
	Short: "Explain one clause in plain business language",
	Long: `Explain uses the configured LLM provider to translate a single
clause into plain language, and suggests more balanced alternatives
when the clause carries identified risks.

Requires --llm; explanation is a generative feature.

Example:
  clauseguard explain contract.txt --clause 3 --llm openai
  clauseguard explain contract.txt --clause 7 --llm anthropic --llm-model claude-3-5-sonnet-20241022`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().IntVar(&explainClauseID, "clause", 1, "clause number to explain")
	explainCmd.Flags().DurationVar(&explainTimeout, "timeout", 2*time.Minute, "overall timeout")

	explainCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM provider (required)")
	explainCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic)")
	explainCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runExplain(cmd *cobra.Command, args []string) error {
	if !llmEnabled {
		return fmt.Errorf("explain requires an LLM provider: pass --llm")
	}

	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)
	enricher := p.Enricher()
	if !enricher.IsEnabled() {
		return fmt.Errorf("LLM provider failed to initialize")
	}

	reader := document.NewReader()
	extracted, err := reader.ExtractFile(file)
	if err != nil {
		return err
	}
	if !extracted.Success {
		return fmt.Errorf("%s", extracted.Error)
	}

	text := document.Preprocess(extracted.Text)
	clauses := extract.NewClauseSegmenter().Segment(text)

	var clause *model.Clause
	for i := range clauses {
		if clauses[i].ID == explainClauseID {
			clause = &clauses[i]
			break
		}
	}
	if clause == nil {
		return fmt.Errorf("clause %d not found (contract has %d clauses)", explainClauseID, len(clauses))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Explaining clause %d via %s...\n\n", clause.ID, enricher.ProviderName())
	}

	explanation, err := enricher.ExplainClause(ctx, clause.Text, text)
	if err != nil {
		return fmt.Errorf("explain clause: %w", err)
	}

	fmt.Printf("Clause %d (%s):\n\n%s\n\n", clause.ID, clause.Type, clause.Text)
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("\n%s\n", explanation)

	// Offer alternatives when the clause carries identified risks
	clauseRisk := risk.NewScorer().AnalyzeClause(*clause)
	if len(clauseRisk.RisksFound) > 0 {
		alternatives, err := enricher.SuggestAlternatives(ctx, clause.Text, clauseRisk.RisksFound[0].Type)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to suggest alternatives: %v\n", err)
		} else {
			fmt.Println("\nSuggested alternatives:")
			for _, alt := range alternatives {
				fmt.Printf("  %s\n", alt)
			}
		}
	}

	return nil
}
