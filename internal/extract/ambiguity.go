package extract

import (
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// ambiguousTerms is the fixed vocabulary of hedging/vague wording.
// Matching is substring containment, not word-boundary: "may" inside a longer
// word still counts, matching the documented behavior.
var ambiguousTerms = []string{
	"reasonable", "appropriate", "sufficient", "adequate",
	"may", "could", "should", "approximately", "about",
	"as soon as possible", "in due course", "promptly",
	"best efforts", "commercially reasonable",
}

// DetectAmbiguity scans a single clause for vague wording
func DetectAmbiguity(clauseText string) model.AmbiguityResult {
	lower := strings.ToLower(clauseText)

	var found []string
	for _, term := range ambiguousTerms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}

	return model.AmbiguityResult{
		IsAmbiguous: len(found) > 0,
		Score:       len(found),
		Terms:       found,
	}
}
