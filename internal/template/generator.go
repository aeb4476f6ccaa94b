// Package template generates balanced, SME-friendly contract templates.
// Each template carries fair defaults so the output is usable even when
// the caller fills in nothing.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// templateTypes lists every template the tool knows about. Only some
// have generators; the rest have guidelines.
var templateTypes = []string{
	"Service Agreement",
	"Vendor Contract",
	"Employment Agreement",
	"Consultant Agreement",
	"NDA (Non-Disclosure Agreement)",
	"Partnership Deed",
	"Lease Agreement",
	"Purchase Order",
	"Software License",
	"Freelancer Agreement",
}

// Guidelines describes what makes a contract of a given type fair
type Guidelines struct {
	FairTerms []string `json:"fair_terms"`
	Avoid     []string `json:"avoid"`
}

// Generator produces contract templates and writes them to a directory
type Generator struct {
	dir string
}

// NewGenerator creates a generator writing into dir
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

// ListTemplates returns the known template types
func (g *Generator) ListTemplates() []string {
	return templateTypes
}

// ServiceAgreement renders a balanced service agreement.
// fields may override any placeholder; unset fields fall back to fair
// defaults or bracketed fill-in markers.
func (g *Generator) ServiceAgreement(fields map[string]string) string {
	return fill(serviceAgreementText, serviceAgreementDefaults, fields)
}

// MutualNDA renders a mutual non-disclosure agreement
func (g *Generator) MutualNDA(fields map[string]string) string {
	return fill(ndaText, ndaDefaults, fields)
}

// FreelancerAgreement renders a fair freelancer agreement
func (g *Generator) FreelancerAgreement(fields map[string]string) string {
	return fill(freelancerText, freelancerDefaults, fields)
}

// Save writes a rendered template under the generator's directory
func (g *Generator) Save(name, content string) (string, error) {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return "", fmt.Errorf("create templates dir: %w", err)
	}

	filename := strings.ToLower(strings.ReplaceAll(name, " ", "_")) + "_template.txt"
	path := filepath.Join(g.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write template: %w", err)
	}
	return path, nil
}

// TemplateGuidelines returns fair-term guidance for a template type.
// Unknown types get generic guidance.
func TemplateGuidelines(templateType string) Guidelines {
	if g, ok := guidelines[templateType]; ok {
		return g
	}
	return Guidelines{
		FairTerms: []string{"Mutual obligations", "Clear terms", "Reasonable duration"},
		Avoid:     []string{"One-sided terms", "Unlimited liability", "Excessive restrictions"},
	}
}

var guidelines = map[string]Guidelines{
	"Service Agreement": {
		FairTerms: []string{
			"Mutual termination rights (60-90 days notice)",
			"Liability cap at 6-12 months of fees",
			"No automatic renewal",
			"Clear scope and deliverables",
			"Reasonable payment terms (30-45 days)",
		},
		Avoid: []string{
			"Unilateral termination by one party only",
			"Unlimited liability",
			"Excessive lock-in periods (>2 years)",
			"Auto-renewal without consent",
			"Personal guarantees",
		},
	},
	"Employment Agreement": {
		FairTerms: []string{
			"Mutual notice period (1-3 months based on level)",
			"Limited non-compete (6-12 months, specific geography)",
			"Clear compensation and benefits",
			"IP created during work hours belongs to company",
			"Reasonable working hours",
		},
		Avoid: []string{
			"One-sided termination (employer can fire anytime, employee needs 3 months)",
			"Excessive non-compete (2+ years, pan-India, all industries)",
			"Personal guarantees for company losses",
			"Unpaid overtime expectations",
			"Perpetual confidentiality for non-trade secrets",
		},
	},
	"NDA": {
		FairTerms: []string{
			"Mutual obligations (both parties bound)",
			"Clear definition of confidential info",
			"Reasonable term (2-3 years)",
			"Exceptions for public info, prior knowledge",
			"No restriction on independent development",
		},
		Avoid: []string{
			"One-sided NDA (only one party bound)",
			"Perpetual confidentiality",
			"Overly broad definition of confidential info",
			"No exceptions",
			"Excessive penalties",
		},
	},
	"Freelancer Agreement": {
		FairTerms: []string{
			"Clear scope and deliverables",
			"Reasonable payment terms (Net 15-30)",
			"IP for specific work goes to client",
			"Freelancer retains general tools/methods",
			"Limited non-compete during project only",
		},
		Avoid: []string{
			"Full IP transfer including freelancer's tools",
			"Broad non-compete (prevents working in industry)",
			"Personal liability for business outcomes",
			"Payment only after full project completion",
			"Unlimited revisions",
		},
	},
}

// placeholder matches {name} tokens inside template text
var placeholder = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// fill substitutes {name} tokens from fields, falling back to defaults.
// Tokens with neither stay verbatim so missing fields are visible.
func fill(text string, defaults, fields map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(token string) string {
		name := token[1 : len(token)-1]
		if val, ok := fields[name]; ok && val != "" {
			return val
		}
		if val, ok := defaults[name]; ok {
			return val
		}
		return token
	})
}
