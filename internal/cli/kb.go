package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rmehta/clauseguard/internal/kb"
	"github.com/rmehta/clauseguard/internal/model"
	"github.com/spf13/cobra"
)

var kbExportPath string

// kbCmd represents the kb command group
var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Query the contract knowledge base",
	Long: `The knowledge base combines static guidance (common SME contract
issues, best practices, Indian law notes) with statistics accumulated
from your own analyses.`,
}

var kbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accumulated analysis statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		knowledge := openKnowledgeBase()
		stats, err := knowledge.Stats()
		if err != nil {
			return err
		}

		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("  Knowledge Base Statistics")
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println()
		fmt.Printf("  Total analyses:     %d\n", stats.TotalAnalyses)
		fmt.Printf("  Average risk score: %.1f/100\n", stats.AverageRiskScore)
		fmt.Println()

		if len(stats.MostCommonRisks) > 0 {
			fmt.Println("  Most common risks:")
			for _, risk := range stats.MostCommonRisks {
				fmt.Printf("    %-24s %d\n", strings.ReplaceAll(risk, "_", " "), stats.IssuesIdentified[risk])
			}
			fmt.Println()
		}
		return nil
	},
}

var kbSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search known issues and best practices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := kb.Search(args[0])
		if len(results) == 0 {
			fmt.Println("No matches found.")
			return nil
		}

		for _, result := range results {
			switch result.Type {
			case "issue":
				fmt.Printf("[%s] %s\n", result.ContractType, result.Issue.Issue)
				fmt.Printf("  %s\n", result.Issue.Description)
				fmt.Printf("  ✓ %s\n\n", result.Issue.Recommendation)
			case "best_practice":
				fmt.Printf("[%s] %s\n\n", result.Category, result.Practice)
			}
		}
		return nil
	},
}

var kbExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the knowledge base as plain text",
	RunE: func(cmd *cobra.Command, args []string) error {
		knowledge := openKnowledgeBase()
		content, err := knowledge.Export()
		if err != nil {
			return err
		}

		if kbExportPath == "" {
			fmt.Print(content)
			return nil
		}
		if err := os.WriteFile(kbExportPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("✓ Exported knowledge base: %s\n", kbExportPath)
		return nil
	},
}

func openKnowledgeBase() *kb.KnowledgeBase {
	cfg := model.DefaultConfig()
	return kb.New(kb.NewFileStore(cfg.KnowledgeBase.Path))
}

func init() {
	rootCmd.AddCommand(kbCmd)
	kbCmd.AddCommand(kbStatsCmd)
	kbCmd.AddCommand(kbSearchCmd)
	kbCmd.AddCommand(kbExportCmd)

	kbExportCmd.Flags().StringVar(&kbExportPath, "out", "", "write export to a file instead of stdout")
}
