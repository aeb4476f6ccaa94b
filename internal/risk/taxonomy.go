package risk

import "github.com/rmehta/clauseguard/internal/model"

// Category is one entry of the fixed risk taxonomy: a keyword list, an integer
// weight, an inherent severity class, and a canned recommendation.
type Category struct {
	Key              model.RiskCategory
	Keywords         []string // Lowercase, matched by substring
	Weight           int
	InherentlySevere bool // MEDIUM floor when no high-severity trigger present
	Advice           string
}

// DefaultTaxonomy is the fixed 8-category risk taxonomy.
// Declared order determines finding order within a clause.
func DefaultTaxonomy() []Category {
	return []Category{
		{
			Key:              model.RiskPenalty,
			Keywords:         []string{"penalty", "liquidated damages", "fine", "forfeit"},
			Weight:           3,
			InherentlySevere: true,
			Advice:           "Consider negotiating a cap on penalties or liquidated damages",
		},
		{
			Key:              model.RiskIndemnity,
			Keywords:         []string{"indemnify", "indemnification", "hold harmless"},
			Weight:           3,
			InherentlySevere: true,
			Advice:           "Request mutual indemnification or limit indemnity scope",
		},
		{
			Key:              model.RiskUnilateralTermination,
			Keywords:         []string{"terminate at will", "without cause", "sole discretion"},
			Weight:           3,
			InherentlySevere: true,
			Advice:           "Negotiate for mutual termination rights or require notice period",
		},
		{
			Key:      model.RiskArbitration,
			Keywords: []string{"arbitration", "dispute resolution", "mediation"},
			Weight:   1,
			Advice:   "Ensure arbitration venue is convenient and cost-effective",
		},
		{
			Key:      model.RiskAutoRenewal,
			Keywords: []string{"auto-renew", "automatically renew", "automatic renewal"},
			Weight:   2,
			Advice:   "Request opt-in renewal instead of automatic renewal",
		},
		{
			Key:      model.RiskLockIn,
			Keywords: []string{"lock-in", "minimum term", "fixed period"},
			Weight:   2,
			Advice:   "Negotiate shorter lock-in period or early exit clauses",
		},
		{
			Key:      model.RiskNonCompete,
			Keywords: []string{"non-compete", "non-competition", "shall not compete"},
			Weight:   2,
			Advice:   "Limit non-compete scope, duration, and geographic area",
		},
		{
			Key:              model.RiskIPTransfer,
			Keywords:         []string{"intellectual property", "ip rights", "transfer of rights", "assignment of rights"},
			Weight:           3,
			InherentlySevere: true,
			Advice:           "Clarify IP ownership and consider licensing instead of full transfer",
		},
	}
}

// highSeverityTerms escalate any finding in the clause to HIGH severity
var highSeverityTerms = []string{
	"unlimited", "sole discretion", "without notice", "forfeit", "immediate",
}
