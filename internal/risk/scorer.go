package risk

import (
	"sort"
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// Clause risk level thresholds on the raw per-clause score
const (
	clauseHighThreshold   = 5
	clauseMediumThreshold = 2
)

// Contract-level thresholds on the 0-100 composite score
const (
	contractHighThreshold   = 70
	contractMediumThreshold = 40
)

// maxCriticalClauses limits the critical-clause list in the aggregate result
const maxCriticalClauses = 5

// Scorer evaluates clauses against the risk taxonomy.
// It holds only immutable tables; every method is a pure function.
type Scorer struct {
	taxonomy []Category
}

// NewScorer creates a scorer over the default taxonomy
func NewScorer() *Scorer {
	return &Scorer{taxonomy: DefaultTaxonomy()}
}

// NewScorerWith creates a scorer over a custom taxonomy
func NewScorerWith(taxonomy []Category) *Scorer {
	return &Scorer{taxonomy: taxonomy}
}

// AnalyzeClause scores a single clause against every taxonomy category.
// At most one finding is recorded per category: the first keyword hit wins.
func (s *Scorer) AnalyzeClause(clause model.Clause) model.ClauseRiskResult {
	lower := strings.ToLower(clause.Text)

	var findings []model.RiskFinding
	riskScore := 0

	for _, category := range s.taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				findings = append(findings, model.RiskFinding{
					Type:     category.Key,
					Keyword:  keyword,
					Severity: severityFor(category, lower),
				})
				riskScore += category.Weight
				break // Only count once per category
			}
		}
	}

	level := clauseRiskLevel(riskScore)

	return model.ClauseRiskResult{
		ClauseID:        clause.ID,
		RiskLevel:       level,
		RiskScore:       riskScore,
		RisksFound:      findings,
		IsHighRisk:      level == model.RiskLevelHigh,
		Recommendations: s.recommendations(findings),
	}
}

// AnalyzeContract scores every clause and aggregates into a contract-level
// result. An empty clause list yields a valid zero-score result.
func (s *Scorer) AnalyzeContract(clauses []model.Clause) model.ContractRiskResult {
	clauseRisks := make([]model.ClauseRiskResult, 0, len(clauses))
	totalRiskScore := 0
	var distribution model.RiskDistribution

	categories := make(map[model.RiskCategory]int, len(s.taxonomy))
	for _, category := range s.taxonomy {
		categories[category.Key] = 0
	}

	for _, clause := range clauses {
		result := s.AnalyzeClause(clause)
		clauseRisks = append(clauseRisks, result)
		totalRiskScore += result.RiskScore

		switch result.RiskLevel {
		case model.RiskLevelHigh:
			distribution.High++
		case model.RiskLevelMedium:
			distribution.Medium++
		default:
			distribution.Low++
		}

		for _, finding := range result.RisksFound {
			categories[finding.Type]++
		}
	}

	// Composite 0-100: average per-clause score scaled by 20, truncated
	avgRisk := 0.0
	if len(clauses) > 0 {
		avgRisk = float64(totalRiskScore) / float64(len(clauses))
	}
	composite := int(avgRisk * 20)
	if composite > 100 {
		composite = 100
	}

	overall := model.RiskLevelLow
	if composite >= contractHighThreshold {
		overall = model.RiskLevelHigh
	} else if composite >= contractMediumThreshold {
		overall = model.RiskLevelMedium
	}

	return model.ContractRiskResult{
		CompositeRiskScore:   composite,
		OverallRiskLevel:     overall,
		ClauseRisks:          clauseRisks,
		RiskDistribution:     distribution,
		RiskCategories:       categories,
		TotalClausesAnalyzed: len(clauses),
		CriticalClauses:      criticalClauses(clauseRisks),
	}
}

// severityFor applies the fixed severity rule: HIGH on a trigger term in the
// clause, else MEDIUM for inherently severe categories, else LOW.
func severityFor(category Category, lowerText string) model.Severity {
	for _, term := range highSeverityTerms {
		if strings.Contains(lowerText, term) {
			return model.SeverityHigh
		}
	}
	if category.InherentlySevere {
		return model.SeverityMedium
	}
	return model.SeverityLow
}

func clauseRiskLevel(score int) model.RiskLevel {
	switch {
	case score >= clauseHighThreshold:
		return model.RiskLevelHigh
	case score >= clauseMediumThreshold:
		return model.RiskLevelMedium
	default:
		return model.RiskLevelLow
	}
}

// recommendations emits one canned advice string per category present,
// deduplicated, first-seen order.
func (s *Scorer) recommendations(findings []model.RiskFinding) []string {
	advice := make(map[model.RiskCategory]string, len(s.taxonomy))
	for _, category := range s.taxonomy {
		advice[category.Key] = category.Advice
	}

	seen := make(map[string]bool)
	var recommendations []string
	for _, finding := range findings {
		text, ok := advice[finding.Type]
		if !ok || seen[text] {
			continue
		}
		seen[text] = true
		recommendations = append(recommendations, text)
	}
	return recommendations
}

// criticalClauses returns the HIGH-level clauses sorted by descending score,
// ties kept in original order, truncated to 5.
func criticalClauses(clauseRisks []model.ClauseRiskResult) []model.ClauseRiskResult {
	var high []model.ClauseRiskResult
	for _, result := range clauseRisks {
		if result.RiskLevel == model.RiskLevelHigh {
			high = append(high, result)
		}
	}

	sort.SliceStable(high, func(i, j int) bool {
		return high[i].RiskScore > high[j].RiskScore
	})

	if len(high) > maxCriticalClauses {
		high = high[:maxCriticalClauses]
	}
	return high
}
