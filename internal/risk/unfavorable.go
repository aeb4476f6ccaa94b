package risk

import (
	"regexp"

	"github.com/rmehta/clauseguard/internal/model"
)

// clauseExcerptLength caps the clause text carried on an unfavorable-term record
const clauseExcerptLength = 200

// unfavorablePattern is one entry of the SME-adverse term taxonomy,
// distinct from the risk-category taxonomy.
type unfavorablePattern struct {
	termType    string
	pattern     *regexp.Regexp
	explanation string
}

var unfavorablePatterns = []unfavorablePattern{
	{
		termType:    "Unlimited Liability",
		pattern:     regexp.MustCompile(`(?i)unlimited liability|without limit`),
		explanation: "This clause exposes you to potentially unlimited financial risk without a cap.",
	},
	{
		termType:    "One Sided Termination",
		pattern:     regexp.MustCompile(`(?i)(?:may|can)\s+terminate.*without.*(?:cause|notice|reason)`),
		explanation: "The other party can end the contract without reason while you may not have the same right.",
	},
	{
		termType:    "Ip Assignment",
		pattern:     regexp.MustCompile(`(?i)assign.*all.*(?:intellectual property|IP|rights)`),
		explanation: "You would transfer all intellectual property rights, losing ownership of your creations.",
	},
	{
		termType:    "Exclusive Dealing",
		pattern:     regexp.MustCompile(`(?i)exclusive.*(?:right|dealing|arrangement)`),
		explanation: "This restricts your ability to work with other clients or vendors.",
	},
	{
		termType:    "Personal Guarantee",
		pattern:     regexp.MustCompile(`(?i)personal guarantee|personally liable`),
		explanation: "You become personally liable, putting your personal assets at risk.",
	},
	{
		termType:    "Waiver Of Rights",
		pattern:     regexp.MustCompile(`(?i)waive.*(?:all|any).*rights`),
		explanation: "You give up important legal protections and rights.",
	},
	{
		termType:    "Unilateral Changes",
		pattern:     regexp.MustCompile(`(?i)(?:may|can).*(?:modify|amend|change).*(?:unilaterally|at.*discretion)`),
		explanation: "The other party can change terms without your agreement.",
	},
}

// genericExplanation backs unknown term types; the table is closed over the
// same 7 keys so this should not occur in practice.
const genericExplanation = "This term may put you at a disadvantage."

// DetectUnfavorableTerms matches every clause against the unfavorable-term
// taxonomy. A single clause may yield multiple records, one per matching
// pattern; there is no dedup across patterns.
func DetectUnfavorableTerms(clauses []model.Clause) []model.UnfavorableTerm {
	var unfavorable []model.UnfavorableTerm

	for _, clause := range clauses {
		for _, entry := range unfavorablePatterns {
			if entry.pattern.MatchString(clause.Text) {
				explanation := entry.explanation
				if explanation == "" {
					explanation = genericExplanation
				}
				unfavorable = append(unfavorable, model.UnfavorableTerm{
					ClauseID:    clause.ID,
					ClauseText:  truncateClause(clause.Text),
					TermType:    entry.termType,
					Explanation: explanation,
					Severity:    model.SeverityHigh,
				})
			}
		}
	}

	return unfavorable
}

func truncateClause(text string) string {
	if len(text) > clauseExcerptLength {
		return text[:clauseExcerptLength] + "..."
	}
	return text
}
