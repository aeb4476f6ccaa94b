package cli

import (
	"fmt"
	"strings"

	"github.com/rmehta/clauseguard/internal/template"
	"github.com/spf13/cobra"
)

var (
	templateDir   string
	templateField []string
	templateSave  bool
)

// templateCmd represents the template command group
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate balanced contract templates",
	Long: `Template generates SME-friendly contract templates with fair
defaults: mutual termination, capped liability, no auto-renewal.

Fields are passed as key=value pairs and substitute into the template;
anything left unset keeps a fair default or a [FILL IN] marker.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available template types",
	Run: func(cmd *cobra.Command, args []string) {
		generator := template.NewGenerator(templateDir)
		for _, name := range generator.ListTemplates() {
			fmt.Println(name)
		}
	},
}

var templateGuideCmd = &cobra.Command{
	Use:   "guide <type>",
	Short: "Show fair-term guidelines for a template type",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		guidelines := template.TemplateGuidelines(args[0])

		fmt.Println("Fair terms:")
		for _, term := range guidelines.FairTerms {
			fmt.Printf("  ✓ %s\n", term)
		}
		fmt.Println()
		fmt.Println("Avoid:")
		for _, term := range guidelines.Avoid {
			fmt.Printf("  ✗ %s\n", term)
		}
	},
}

var templateGenerateCmd = &cobra.Command{
	Use:   "generate <type>",
	Short: "Generate a contract template",
	Long: `Generate renders a template. Supported types: service, nda, freelancer.

Example:
  clauseguard template generate service --field client="Acme Pvt Ltd" --field jurisdiction=Mumbai
  clauseguard template generate nda --save`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateGenerate,
}

func runTemplateGenerate(cmd *cobra.Command, args []string) error {
	fields := make(map[string]string)
	for _, pair := range templateField {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("invalid field %q (expected key=value)", pair)
		}
		fields[key] = value
	}

	generator := template.NewGenerator(templateDir)

	var name, content string
	switch strings.ToLower(args[0]) {
	case "service", "service-agreement":
		name = "Service Agreement"
		content = generator.ServiceAgreement(fields)
	case "nda":
		name = "NDA"
		content = generator.MutualNDA(fields)
	case "freelancer", "freelancer-agreement":
		name = "Freelancer Agreement"
		content = generator.FreelancerAgreement(fields)
	default:
		return fmt.Errorf("unknown template type %q (supported: service, nda, freelancer)", args[0])
	}

	if templateSave {
		path, err := generator.Save(name, content)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Wrote template: %s\n", path)
		return nil
	}

	fmt.Print(content)
	return nil
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateGuideCmd)
	templateCmd.AddCommand(templateGenerateCmd)

	templateCmd.PersistentFlags().StringVar(&templateDir, "dir", "./templates", "directory for saved templates")
	templateGenerateCmd.Flags().StringArrayVar(&templateField, "field", nil, "template field as key=value (repeatable)")
	templateGenerateCmd.Flags().BoolVar(&templateSave, "save", false, "save to the templates directory instead of stdout")
}
