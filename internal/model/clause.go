package model

// Clause represents one semantically-bounded unit of contract text
type Clause struct {
	ID        int        `json:"id"`         // 1-based, dense over retained clauses
	Text      string     `json:"text"`       // Trimmed clause text
	Type      ClauseType `json:"type"`       // Fixed at creation time
	WordCount int        `json:"word_count"` // Whitespace-tokenized
}

// ClauseType categorizes the grammatical nature of a clause
type ClauseType string

const (
	ClauseObligation  ClauseType = "obligation"  // Modal cue (shall/must/...) followed by a verb
	ClauseRight       ClauseType = "right"       // Permission cue (may/can/...) followed by a verb
	ClauseProhibition ClauseType = "prohibition" // Obligation cue + "not"
	ClauseGeneral     ClauseType = "general"     // No pattern matched
)
