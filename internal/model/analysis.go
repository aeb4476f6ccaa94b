package model

import "time"

// Analysis is the complete result of one contract review.
// This is the durable JSON interchange format between runs, the CLI and disk.
type Analysis struct {
	Success  bool     `json:"success"`
	FileName string   `json:"file_name"`
	Metadata Metadata `json:"metadata"`

	Clauses          []Clause           `json:"clauses"`
	Entities         Entities           `json:"entities"`
	RiskAnalysis     ContractRiskResult `json:"risk_analysis"`
	UnfavorableTerms []UnfavorableTerm  `json:"unfavorable_terms"`
	Compliance       ComplianceResult   `json:"compliance"`
	AmbiguousClauses []AmbiguousClause  `json:"ambiguous_clauses"`

	Recommendation string `json:"recommendation"`

	LLM *Enrichment `json:"llm_analysis,omitempty"` // Optional, never affects scoring

	Error string `json:"error,omitempty"` // Set when Success is false
}

// Metadata describes the analyzed document and the run itself
type Metadata struct {
	FileType          string    `json:"file_type"`
	CharCount         int       `json:"char_count"`
	WordCount         int       `json:"word_count"`
	Language          string    `json:"language"` // en, hi, mixed
	ProcessingTime    float64   `json:"processing_time"` // Seconds
	AnalysisTimestamp time.Time `json:"analysis_timestamp"`
}

// AmbiguousClause is the flattened per-clause ambiguity entry in the report
type AmbiguousClause struct {
	ClauseID   int             `json:"clause_id"`
	ClauseText string          `json:"clause_text"` // Truncated to 200 chars
	Ambiguity  AmbiguityResult `json:"ambiguity"`
}

// Enrichment holds the optional LLM-generated payloads.
// Payloads are loosely typed: any JSON-parse failure of an LLM response is
// represented inline as {"error": "Failed to parse response", "raw_response": ...}
// rather than failing the pipeline.
type Enrichment struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`

	ContractType    map[string]any `json:"contract_type,omitempty"`
	Summary         map[string]any `json:"summary,omitempty"`
	LegalCompliance map[string]any `json:"legal_compliance,omitempty"`
	Obligations     map[string]any `json:"obligations,omitempty"`

	Error string `json:"error,omitempty"` // Enrichment-level failure, never propagated
}
