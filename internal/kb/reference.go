package kb

import (
	"fmt"
	"sort"
	"strings"
)

// Issue documents one recurring SME contract problem
type Issue struct {
	Issue          string `json:"issue"`
	Description    string `json:"description"`
	Frequency      string `json:"frequency"`
	Severity       string `json:"severity"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
	SampleClause   string `json:"sample_clause"`
}

// SearchResult is one hit from searching the reference content
type SearchResult struct {
	Type         string `json:"type"` // issue or best_practice
	ContractType string `json:"contract_type,omitempty"`
	Category     string `json:"category,omitempty"`
	Issue        *Issue `json:"issue,omitempty"`
	Practice     string `json:"practice,omitempty"`
}

// CommonIssues maps contract types to their recurring SME-adverse patterns
var CommonIssues = map[string][]Issue{
	"vendor_contracts": {
		{
			Issue:          "Unilateral Termination Rights",
			Description:    "Client can terminate without cause, vendor needs 180 days notice",
			Frequency:      "Very Common",
			Severity:       "High",
			Impact:         "Vendor loses revenue suddenly, no recourse",
			Recommendation: "Negotiate mutual termination rights with equal notice periods (60-90 days)",
			SampleClause:   "Either party may terminate this Agreement with 60 days written notice without cause.",
		},
		{
			Issue:          "Unlimited Indemnity",
			Description:    "Vendor must indemnify client for unlimited amounts",
			Frequency:      "Common",
			Severity:       "High",
			Impact:         "Exposes vendor to potentially bankrupting liability",
			Recommendation: "Cap indemnity at 6-12 months of contract value",
			SampleClause:   "Total liability under this indemnification shall not exceed the total fees paid under this Agreement in the preceding 12 months.",
		},
		{
			Issue:          "Auto-Renewal Without Consent",
			Description:    "Contract automatically renews unless vendor opts out",
			Frequency:      "Common",
			Severity:       "Medium",
			Impact:         "Vendor locked into unfavorable terms unintentionally",
			Recommendation: "Require explicit opt-in for renewal by both parties",
			SampleClause:   "This Agreement may be renewed for additional terms only by mutual written consent of both parties 30 days before expiry.",
		},
		{
			Issue:          "Full IP Transfer",
			Description:    "All IP including vendor's tools and methods transfer to client",
			Frequency:      "Very Common",
			Severity:       "High",
			Impact:         "Vendor loses reusable assets, can't use own tools",
			Recommendation: "Client gets project-specific IP, vendor retains general tools",
			SampleClause:   "Client owns IP created specifically for this project. Vendor retains rights to pre-existing tools, frameworks, and general methodologies.",
		},
		{
			Issue:          "Payment Terms Beyond 60 Days",
			Description:    "Client pays after 90-120 days",
			Frequency:      "Common",
			Severity:       "Medium",
			Impact:         "Cash flow problems for small vendors",
			Recommendation: "Negotiate 30-45 day payment terms",
			SampleClause:   "Payment due within 30 days of invoice date.",
		},
	},
	"employment_agreements": {
		{
			Issue:          "One-Sided Termination",
			Description:    "Employer can terminate immediately, employee needs 3 months notice",
			Frequency:      "Very Common",
			Severity:       "High",
			Impact:         "Employee has no job security, employer has full flexibility",
			Recommendation: "Mutual notice period based on seniority (1-3 months)",
			SampleClause:   "Either party may terminate with [X] months written notice.",
		},
		{
			Issue:          "Excessive Non-Compete",
			Description:    "2-3 years, pan-India, entire industry",
			Frequency:      "Common",
			Severity:       "High",
			Impact:         "Employee cannot work in their field after leaving",
			Recommendation: "Limit to 6-12 months, specific geography, direct competitors only",
			SampleClause:   "For 6 months post-termination, Employee shall not work for direct competitors operating in [City/State] in the same product category.",
		},
		{
			Issue:          "Personal Guarantee for Business Outcomes",
			Description:    "Employee personally liable for project failures or client losses",
			Frequency:      "Occasional",
			Severity:       "Critical",
			Impact:         "Personal assets at risk for business decisions",
			Recommendation: "Remove personal guarantee clauses entirely",
			SampleClause:   "[Delete this clause] Employer may pursue professional liability insurance instead.",
		},
		{
			Issue:          "Perpetual Confidentiality",
			Description:    "Confidentiality obligation lasts forever",
			Frequency:      "Common",
			Severity:       "Low",
			Impact:         "Unclear what remains confidential over time",
			Recommendation: "Limit to 3-5 years for non-trade secrets",
			SampleClause:   "Confidentiality obligations survive for 3 years post-termination, except for trade secrets which remain confidential indefinitely.",
		},
	},
	"service_contracts": {
		{
			Issue:          "Scope Creep Without Additional Payment",
			Description:    "Client can add unlimited scope changes",
			Frequency:      "Very Common",
			Severity:       "Medium",
			Impact:         "Provider does more work than agreed without compensation",
			Recommendation: "Clear change order process with pricing",
			SampleClause:   "Any changes to scope require written change order with adjusted timeline and pricing.",
		},
		{
			Issue:          "Unlimited Revisions",
			Description:    "Client entitled to unlimited revisions",
			Frequency:      "Common",
			Severity:       "Medium",
			Impact:         "Project never ends, provider keeps working",
			Recommendation: "Specify number of revision rounds included",
			SampleClause:   "Fee includes 2 rounds of revisions. Additional revisions billed at [rate].",
		},
	},
	"ndas": {
		{
			Issue:          "One-Sided NDA",
			Description:    "Only one party bound to confidentiality",
			Frequency:      "Common",
			Severity:       "Medium",
			Impact:         "Unequal protection of information",
			Recommendation: "Use mutual NDA",
			SampleClause:   "This is a mutual NDA. Both parties agree to maintain confidentiality of information received.",
		},
	},
}

// BestPractices maps practice categories to checklists
var BestPractices = map[string][]string{
	"general": {
		"Read entire contract before signing",
		"Negotiate unfavorable terms - everything is negotiable",
		"Get legal review for contracts >10 lakhs or multi-year commitments",
		"Document all verbal agreements in writing",
		"Keep copies of all signed contracts",
	},
	"red_flags": {
		"Personal guarantees",
		"Unlimited liability",
		"Perpetual obligations",
		"One-sided termination rights",
		"Very broad non-compete clauses",
		"Auto-renewal without opt-in",
		"Payment terms >60 days",
		"Full IP transfer including your tools",
	},
	"negotiation_tips": {
		"Propose mutual terms instead of one-sided",
		"Add caps and limits (liability cap, time limits)",
		"Request cure periods before termination",
		"Clarify scope to prevent scope creep",
		"Ask for shorter contract terms (easier to renegotiate)",
		"Get payment terms in writing",
		"Ensure you can showcase your work (portfolio rights)",
	},
}

// IndianLawSpecifics maps legal topics to key points for SME contracts
var IndianLawSpecifics = map[string][]string{
	"contract_act_1872": {
		"Contracts must have lawful consideration",
		"Agreements not enforceable by law are void",
		"Capacity to contract required (age, mental soundness)",
		"Free consent required (no coercion, fraud, misrepresentation)",
	},
	"common_provisions": {
		"Governing law should specify Indian law",
		"Jurisdiction clause specifying Indian courts",
		"Arbitration clause as per Arbitration and Conciliation Act, 1996",
		"Stamp duty requirements vary by state",
		"Electronic contracts valid under IT Act, 2000",
	},
	"employment_specific": {
		"Shops and Establishments Act applies",
		"PF and ESI registration required for eligible employees",
		"Gratuity Act applies after 5 years",
		"Notice period must be mutual or reasonable",
		"Non-compete enforceability limited by courts",
	},
}

// GetBestPractices returns the checklist for a category (default: general)
func GetBestPractices(category string) []string {
	if category == "" {
		category = "general"
	}
	return BestPractices[category]
}

// Search scans issues and best practices for the query, case-insensitive
func Search(query string) []SearchResult {
	var results []SearchResult
	lower := strings.ToLower(query)

	contractTypes := sortedKeys(CommonIssues)
	for _, contractType := range contractTypes {
		for i := range CommonIssues[contractType] {
			issue := CommonIssues[contractType][i]
			if strings.Contains(strings.ToLower(issue.Issue), lower) ||
				strings.Contains(strings.ToLower(issue.Description), lower) {
				results = append(results, SearchResult{
					Type:         "issue",
					ContractType: contractType,
					Issue:        &issue,
				})
			}
		}
	}

	categories := sortedKeys(BestPractices)
	for _, category := range categories {
		for _, practice := range BestPractices[category] {
			if strings.Contains(strings.ToLower(practice), lower) {
				results = append(results, SearchResult{
					Type:     "best_practice",
					Category: category,
					Practice: practice,
				})
			}
		}
	}

	return results
}

// Export renders the full reference content plus statistics as plain text
func (kb *KnowledgeBase) Export() (string, error) {
	stats, err := kb.Stats()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("═══════════════════════════════════════════════════════════\n")
	b.WriteString("SME CONTRACT KNOWLEDGE BASE\n")
	b.WriteString("Common Issues & Best Practices for Indian Businesses\n")
	b.WriteString("═══════════════════════════════════════════════════════════\n")

	for _, contractType := range sortedKeys(CommonIssues) {
		fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", 60))
		fmt.Fprintf(&b, "%s\n", strings.ToUpper(strings.ReplaceAll(contractType, "_", " ")))
		fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 60))

		for i, issue := range CommonIssues[contractType] {
			fmt.Fprintf(&b, "%d. %s\n", i+1, issue.Issue)
			fmt.Fprintf(&b, "   Description: %s\n", issue.Description)
			fmt.Fprintf(&b, "   Frequency: %s | Severity: %s\n", issue.Frequency, issue.Severity)
			fmt.Fprintf(&b, "   Impact: %s\n", issue.Impact)
			fmt.Fprintf(&b, "   ✓ Recommendation: %s\n", issue.Recommendation)
			fmt.Fprintf(&b, "   Sample Clause: %s\n\n", issue.SampleClause)
		}
	}

	fmt.Fprintf(&b, "\n%s\nBEST PRACTICES FOR SME CONTRACTS\n%s\n\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
	for _, category := range sortedKeys(BestPractices) {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(strings.ReplaceAll(category, "_", " ")))
		for _, practice := range BestPractices[category] {
			fmt.Fprintf(&b, "  • %s\n", practice)
		}
	}

	fmt.Fprintf(&b, "\n%s\nINDIAN LAW CONSIDERATIONS\n%s\n\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
	for _, category := range sortedKeys(IndianLawSpecifics) {
		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(strings.ReplaceAll(category, "_", " ")))
		for _, point := range IndianLawSpecifics[category] {
			fmt.Fprintf(&b, "  • %s\n", point)
		}
	}

	fmt.Fprintf(&b, "\n%s\nKNOWLEDGE BASE STATISTICS\n%s\n\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Total Analyses Performed: %d\n", stats.TotalAnalyses)
	fmt.Fprintf(&b, "Average Risk Score: %.1f/100\n", stats.AverageRiskScore)
	if len(stats.MostCommonRisks) > 0 {
		b.WriteString("\nMost Common Risks:\n")
		for _, risk := range stats.MostCommonRisks {
			fmt.Fprintf(&b, "  • %s: %d occurrences\n",
				titleCase(strings.ReplaceAll(risk, "_", " ")), stats.IssuesIdentified[risk])
		}
	}

	return b.String(), nil
}

// titleCase capitalizes each word; risk keys are ASCII lowercase
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
