package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full analysis as indented JSON
func (r *Renderer) RenderJSON(analysis *model.Analysis, path string) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(analysis *model.Analysis, path string) error {
	content := r.Markdown(analysis)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

// Markdown builds the full Markdown report
func (r *Renderer) Markdown(analysis *model.Analysis) string {
	var b strings.Builder
	riskResult := analysis.RiskAnalysis

	b.WriteString("# Contract Analysis Report\n\n")

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Contract File | %s |\n", analysis.FileName)
	fmt.Fprintf(&b, "| Analysis Date | %s |\n", analysis.Metadata.AnalysisTimestamp.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "| Language | %s |\n", analysis.Metadata.Language)
	fmt.Fprintf(&b, "| Risk Level | %s |\n", riskResult.OverallRiskLevel)
	fmt.Fprintf(&b, "| Risk Score | %d/100 |\n", riskResult.CompositeRiskScore)
	fmt.Fprintf(&b, "| Clauses Analyzed | %d |\n\n", riskResult.TotalClausesAnalyzed)

	fmt.Fprintf(&b, "**Recommendation:** %s\n\n", analysis.Recommendation)

	b.WriteString("## Risk Analysis\n\n")
	fmt.Fprintf(&b, "- High risk clauses: %d\n", riskResult.RiskDistribution.High)
	fmt.Fprintf(&b, "- Medium risk clauses: %d\n", riskResult.RiskDistribution.Medium)
	fmt.Fprintf(&b, "- Low risk clauses: %d\n\n", riskResult.RiskDistribution.Low)

	if len(riskResult.CriticalClauses) > 0 {
		b.WriteString("### Critical Clauses\n\n")
		for _, clause := range riskResult.CriticalClauses {
			fmt.Fprintf(&b, "- Clause %d (score %d)", clause.ClauseID, clause.RiskScore)
			if len(clause.RisksFound) > 0 {
				var types []string
				for _, finding := range clause.RisksFound {
					types = append(types, string(finding.Type))
				}
				fmt.Fprintf(&b, ": %s", strings.Join(types, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(analysis.UnfavorableTerms) > 0 {
		b.WriteString("## Unfavorable Terms\n\n")
		for _, term := range analysis.UnfavorableTerms {
			fmt.Fprintf(&b, "### %s (Clause %d)\n\n", term.TermType, term.ClauseID)
			fmt.Fprintf(&b, "> %s\n\n", term.ClauseText)
			fmt.Fprintf(&b, "%s\n\n", term.Explanation)
		}
	}

	if len(analysis.AmbiguousClauses) > 0 {
		b.WriteString("## Ambiguous Language\n\n")
		for _, clause := range analysis.AmbiguousClauses {
			fmt.Fprintf(&b, "- Clause %d: %s\n", clause.ClauseID, strings.Join(clause.Ambiguity.Terms, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Entities\n\n")
	fmt.Fprintf(&b, "- Parties: %s\n", orNone(analysis.Entities.Parties))
	fmt.Fprintf(&b, "- Organizations: %s\n", orNone(analysis.Entities.Organizations))
	fmt.Fprintf(&b, "- Dates: %s\n", orNone(analysis.Entities.Dates))
	fmt.Fprintf(&b, "- Amounts: %s\n", orNone(analysis.Entities.Amounts))
	fmt.Fprintf(&b, "- Locations: %s\n\n", orNone(analysis.Entities.Locations))

	b.WriteString("## Compliance Indicators\n\n")
	fmt.Fprintf(&b, "- Jurisdiction clause: %s\n", yesNo(analysis.Compliance.HasJurisdictionClause))
	fmt.Fprintf(&b, "- Indian law reference: %s\n", yesNo(analysis.Compliance.HasIndianReference))
	fmt.Fprintf(&b, "- Keywords found: %s\n\n", orNone(analysis.Compliance.KeywordsFound))

	if analysis.LLM != nil {
		b.WriteString("## AI Analysis\n\n")
		if analysis.LLM.Error != "" {
			fmt.Fprintf(&b, "%s\n\n", analysis.LLM.Error)
		} else {
			fmt.Fprintf(&b, "Provider: %s\n\n", analysis.LLM.Provider)
			writeEnrichmentSection(&b, "Contract Type", analysis.LLM.ContractType)
			writeEnrichmentSection(&b, "Summary", analysis.LLM.Summary)
			writeEnrichmentSection(&b, "Legal Compliance", analysis.LLM.LegalCompliance)
			writeEnrichmentSection(&b, "Obligations", analysis.LLM.Obligations)
		}
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("*This automated review is informational and not a substitute for legal advice.*\n")
	}

	return b.String()
}

// RenderSummary prints a short result summary to stdout
func (r *Renderer) RenderSummary(analysis *model.Analysis) {
	riskResult := analysis.RiskAnalysis

	fmt.Println()
	fmt.Printf("File:        %s\n", analysis.FileName)
	fmt.Printf("Risk Level:  %s (%d/100)\n", riskResult.OverallRiskLevel, riskResult.CompositeRiskScore)
	fmt.Printf("Clauses:     %d analyzed, %d high risk\n", riskResult.TotalClausesAnalyzed, riskResult.RiskDistribution.High)
	fmt.Printf("Unfavorable: %d terms\n", len(analysis.UnfavorableTerms))
	fmt.Println()
	fmt.Println(analysis.Recommendation)
}

func writeEnrichmentSection(b *strings.Builder, title string, payload map[string]any) {
	if len(payload) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return
	}
	fmt.Fprintf(b, "```json\n%s\n```\n\n", data)
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none found"
	}
	return strings.Join(items, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
