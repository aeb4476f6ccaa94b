package model

// RiskCategory is one of the 8 fixed risk taxonomy keys
type RiskCategory string

const (
	RiskPenalty                RiskCategory = "penalty"
	RiskIndemnity              RiskCategory = "indemnity"
	RiskUnilateralTermination  RiskCategory = "unilateral_termination"
	RiskArbitration            RiskCategory = "arbitration"
	RiskAutoRenewal            RiskCategory = "auto_renewal"
	RiskLockIn                 RiskCategory = "lock_in"
	RiskNonCompete             RiskCategory = "non_compete"
	RiskIPTransfer             RiskCategory = "ip_transfer"
)

// Severity classifies a single risk finding
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// RiskLevel classifies a clause or a whole contract
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "HIGH"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelLow    RiskLevel = "LOW"
)

// RiskFinding is one match of a risk keyword within a clause.
// At most one finding per category per clause (first keyword wins).
type RiskFinding struct {
	Type     RiskCategory `json:"type"`
	Keyword  string       `json:"keyword"` // Literal substring matched
	Severity Severity     `json:"severity"`
}

// ClauseRiskResult is the scored output for one clause
type ClauseRiskResult struct {
	ClauseID        int           `json:"clause_id"`
	RiskLevel       RiskLevel     `json:"risk_level"`
	RiskScore       int           `json:"risk_score"`
	RisksFound      []RiskFinding `json:"risks_found"`
	IsHighRisk      bool          `json:"is_high_risk"`
	Recommendations []string      `json:"recommendations"`
}

// RiskDistribution counts clauses per risk level
type RiskDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ContractRiskResult aggregates risk over all clauses
type ContractRiskResult struct {
	CompositeRiskScore   int                  `json:"composite_risk_score"` // 0-100
	OverallRiskLevel     RiskLevel            `json:"overall_risk_level"`
	ClauseRisks          []ClauseRiskResult   `json:"clause_risks"`
	RiskDistribution     RiskDistribution     `json:"risk_distribution"`
	RiskCategories       map[RiskCategory]int `json:"risk_categories"` // Clauses with a finding, per category
	TotalClausesAnalyzed int                  `json:"total_clauses_analyzed"`
	CriticalClauses      []ClauseRiskResult   `json:"critical_clauses"` // Top 5 HIGH clauses by score
}

// UnfavorableTerm is one regex match against the SME-adverse taxonomy
type UnfavorableTerm struct {
	ClauseID    int      `json:"clause_id"`
	ClauseText  string   `json:"clause_text"` // First 200 chars + ellipsis if longer
	TermType    string   `json:"term_type"`   // Human-readable, e.g. "Unlimited Liability"
	Explanation string   `json:"explanation"`
	Severity    Severity `json:"severity"` // Always HIGH in this taxonomy
}
