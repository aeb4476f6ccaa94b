package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/rmehta/clauseguard/internal/cache"
	"github.com/rmehta/clauseguard/internal/model"
)

// Prompt excerpt limits keep token usage bounded
const (
	classifyExcerpt    = 2000
	summaryExcerpt     = 3000
	complianceExcerpt  = 2500
	translateExcerpt   = 2000
	contextExcerpt     = 500
	clauseExcerpt      = 300
	obligationsClauses = 10
)

// cacheTTL is how long enrichment responses stay cached
const cacheTTL = 24 * time.Hour

// Enricher wraps prompt templates around a Provider to produce the optional
// analysis payloads. It never affects deterministic scoring, and every
// JSON-shaped response degrades to an error payload instead of failing.
type Enricher struct {
	provider Provider
	config   Config
	cache    cache.Cache   // Optional response cache
	limiter  *rate.Limiter // Optional API call throttle
}

// NewEnricher creates an enricher for the given configuration.
// Returns a disabled enricher (nil provider) when no provider is configured.
func NewEnricher(config Config) (*Enricher, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Enricher{provider: provider, config: config}, nil
}

// WithCache attaches a response cache
func (e *Enricher) WithCache(c cache.Cache) *Enricher {
	e.cache = c
	return e
}

// WithLimiter attaches a rate limiter applied before every provider call
func (e *Enricher) WithLimiter(l *rate.Limiter) *Enricher {
	e.limiter = l
	return e
}

// IsEnabled reports whether a provider is configured
func (e *Enricher) IsEnabled() bool {
	return e != nil && e.provider != nil
}

// ProviderName returns the configured provider name, or "" when disabled
func (e *Enricher) ProviderName() string {
	if !e.IsEnabled() {
		return ""
	}
	return e.provider.Name()
}

// Enrich produces the full optional enrichment for an analysis.
// Individual call failures are recorded on the payload, never propagated.
func (e *Enricher) Enrich(ctx context.Context, text string, clauses []model.Clause, entities model.Entities, riskResult model.ContractRiskResult) *model.Enrichment {
	if !e.IsEnabled() {
		return nil
	}

	enrichment := &model.Enrichment{
		Provider: e.provider.Name(),
		Model:    e.config.Model,
	}

	contractType, err := e.ClassifyContractType(ctx, text)
	if err != nil {
		enrichment.Error = fmt.Sprintf("LLM analysis failed: %v", err)
		return enrichment
	}
	enrichment.ContractType = contractType

	if summary, err := e.GenerateSummary(ctx, text, entities, riskResult); err != nil {
		enrichment.Error = fmt.Sprintf("LLM analysis failed: %v", err)
	} else {
		enrichment.Summary = summary
	}

	typeName, _ := contractType["contract_type"].(string)
	if typeName == "" {
		typeName = "Unknown"
	}
	if compliance, err := e.CheckLegalCompliance(ctx, text, typeName); err != nil {
		enrichment.Error = fmt.Sprintf("LLM analysis failed: %v", err)
	} else {
		enrichment.LegalCompliance = compliance
	}

	if obligations, err := e.IdentifyObligations(ctx, clauses); err != nil {
		enrichment.Error = fmt.Sprintf("LLM analysis failed: %v", err)
	} else {
		enrichment.Obligations = obligations
	}

	return enrichment
}

// ClassifyContractType classifies the contract into a fixed category set
func (e *Enricher) ClassifyContractType(ctx context.Context, text string) (map[string]any, error) {
	prompt := fmt.Sprintf(`Analyze the following contract text and classify it into one of these categories:
- Employment Agreement
- Vendor Contract
- Lease Agreement
- Partnership Deed
- Service Contract
- Non-Disclosure Agreement (NDA)
- Consultant Agreement
- Purchase Agreement
- Licensing Agreement
- Other

Contract text (first 2000 chars):
%s

Respond in JSON format:
{
    "contract_type": "the category",
    "confidence": "high/medium/low",
    "reasoning": "brief explanation"
}`, excerpt(text, classifyExcerpt))

	response, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseJSONResponse(response), nil
}

// GenerateSummary produces a structured contract summary
func (e *Enricher) GenerateSummary(ctx context.Context, text string, entities model.Entities, riskResult model.ContractRiskResult) (map[string]any, error) {
	prompt := fmt.Sprintf(`You are analyzing a contract for an SME business owner. Provide a comprehensive summary.

Contract text (first 3000 chars):
%s

Key entities found:
- Parties: %s
- Dates: %s
- Amounts: %s

Risk level: %s

Provide a summary in JSON format:
{
    "contract_purpose": "what this contract is for",
    "key_parties": ["party 1", "party 2"],
    "main_obligations": ["obligation 1", "obligation 2", "obligation 3"],
    "key_dates_and_terms": "important dates and duration",
    "payment_terms": "payment details if any",
    "termination_conditions": "how can it be terminated",
    "notable_clauses": ["any special terms worth highlighting"],
    "overall_assessment": "brief assessment for business owner"
}

Be specific and practical.`,
		excerpt(text, summaryExcerpt),
		joinFirst(entities.Parties, 3),
		joinFirst(entities.Dates, 3),
		joinFirst(entities.Amounts, 3),
		riskResult.OverallRiskLevel)

	response, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseJSONResponse(response), nil
}

// CheckLegalCompliance checks the contract against Indian business law standards
func (e *Enricher) CheckLegalCompliance(ctx context.Context, text string, contractType string) (map[string]any, error) {
	prompt := fmt.Sprintf(`Analyze this %s for compliance with Indian business law standards.

Contract excerpt:
%s

Check for:
1. Proper jurisdiction and governing law clauses (should reference Indian law)
2. Compliance with Indian Contract Act principles
3. Proper party identification
4. Clear consideration (payment/exchange)
5. Legal capacity indicators
6. Any potentially illegal or unenforceable clauses

Respond in JSON format:
{
    "has_jurisdiction_clause": true/false,
    "jurisdiction_location": "location mentioned",
    "has_governing_law": true/false,
    "governing_law": "law mentioned",
    "compliance_issues": ["issue 1", "issue 2"],
    "missing_elements": ["element 1", "element 2"],
    "recommendations": ["recommendation 1", "recommendation 2"]
}`, contractType, excerpt(text, complianceExcerpt))

	response, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseJSONResponse(response), nil
}

// IdentifyObligations categorizes obligations per party from the leading clauses
func (e *Enricher) IdentifyObligations(ctx context.Context, clauses []model.Clause) (map[string]any, error) {
	if len(clauses) > obligationsClauses {
		clauses = clauses[:obligationsClauses]
	}

	var lines []string
	for _, clause := range clauses {
		lines = append(lines, fmt.Sprintf("Clause %d: %s", clause.ID, excerpt(clause.Text, clauseExcerpt)))
	}

	prompt := fmt.Sprintf(`Analyze these contract clauses and identify the obligations for each party.

Clauses:
%s

Categorize obligations as:
{
    "party_a_obligations": ["obligation 1", "obligation 2"],
    "party_b_obligations": ["obligation 1", "obligation 2"],
    "mutual_obligations": ["obligation 1", "obligation 2"]
}

Use generic "Party A" and "Party B" or actual party names if clear.`, strings.Join(lines, "\n\n"))

	response, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseJSONResponse(response), nil
}

// ExplainClause produces a plain-language explanation of one clause
func (e *Enricher) ExplainClause(ctx context.Context, clauseText string, contractContext string) (string, error) {
	contextLine := ""
	if contractContext != "" {
		contextLine = fmt.Sprintf("Contract context: %s\n", excerpt(contractContext, contextExcerpt))
	}

	prompt := fmt.Sprintf(`You are a legal assistant helping SME business owners understand contracts.
Explain the following contract clause in simple, plain business language that a non-lawyer can understand.

Clause:
%s

%s
Provide:
1. What it means in simple terms
2. Why it matters to a business owner
3. Any important implications

Keep the explanation concise and practical.`, clauseText, contextLine)

	return e.complete(ctx, prompt)
}

// SuggestAlternatives proposes more balanced replacement clauses
func (e *Enricher) SuggestAlternatives(ctx context.Context, clauseText string, riskType model.RiskCategory) ([]string, error) {
	prompt := fmt.Sprintf(`You are helping SME business owners negotiate better contract terms.

Original clause (identified as %s):
%s

Suggest 2-3 alternative clauses that would be more favorable to the business owner while still being reasonable for both parties.
Format each alternative clearly and explain briefly why it's better.

Provide alternatives that:
1. Reduce risk exposure
2. Add balance and fairness
3. Include reasonable protections

Format as numbered alternatives.`, riskType, clauseText)

	response, err := e.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Parse numbered or bulleted alternatives out of the free-form answer
	var alternatives []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' || strings.HasPrefix(line, "-") {
			alternatives = append(alternatives, line)
		}
	}
	if len(alternatives) == 0 {
		alternatives = []string{response}
	}
	return alternatives, nil
}

// TranslateHindi translates Hindi contract text to English for analysis
func (e *Enricher) TranslateHindi(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following Hindi contract text to English. Maintain legal terminology and formal structure.

Hindi text:
%s

Provide accurate English translation:`, excerpt(text, translateExcerpt))

	return e.complete(ctx, prompt)
}

// complete runs one provider call through the limiter and cache
func (e *Enricher) complete(ctx context.Context, prompt string) (string, error) {
	if !e.IsEnabled() {
		return "", fmt.Errorf("LLM provider not configured")
	}

	key := cache.EnrichmentKey(e.provider.Name(), e.config.Model, prompt)
	if e.cache != nil {
		if cached, found := e.cache.Get(key); found {
			return string(cached), nil
		}
	}

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := e.provider.Complete(ctx, CompletionRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	if e.cache != nil {
		_ = e.cache.Set(key, []byte(resp.Text), cacheTTL)
	}

	return resp.Text, nil
}

func excerpt(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
