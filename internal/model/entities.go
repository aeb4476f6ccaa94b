package model

// Entities holds per-contract structured extractions.
// Each bucket is deduplicated and capped at 10 entries; order is first-seen.
type Entities struct {
	Parties       []string `json:"parties"`
	Dates         []string `json:"dates"`
	Amounts       []string `json:"amounts"`
	Locations     []string `json:"locations"`
	Organizations []string `json:"organizations"`
}

// AmbiguityResult flags vague wording in a single clause
type AmbiguityResult struct {
	IsAmbiguous bool     `json:"is_ambiguous"`
	Score       int      `json:"score"` // Count of matched vague terms
	Terms       []string `json:"terms"`
}

// ComplianceResult reports Indian-law reference markers found in the text
type ComplianceResult struct {
	HasComplianceIndicators bool     `json:"has_compliance_indicators"`
	KeywordsFound           []string `json:"keywords_found"`
	HasJurisdictionClause   bool     `json:"has_jurisdiction_clause"`
	HasIndianReference      bool     `json:"has_indian_reference"`
	ComplianceScore         int      `json:"compliance_score"` // Distinct matched keywords
}
