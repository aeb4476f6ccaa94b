package extract

import (
	"regexp"
	"strings"
)

// properNounRun matches runs of capitalized words, allowing common joiners
var properNounRun = regexp.MustCompile(`\b[A-Z][A-Za-z&.'-]*(?:\s+(?:[A-Z][A-Za-z&.'-]*|of|and))*`)

// RuleBasedRecognizer is a deterministic stand-in for a statistical NER model.
// It buckets capitalized word runs using corporate suffixes and a fixed
// gazetteer of Indian cities/states.
type RuleBasedRecognizer struct {
	orgSuffixes []string
	places      map[string]bool
}

// NewRuleBasedRecognizer creates the default recognizer
func NewRuleBasedRecognizer() *RuleBasedRecognizer {
	return &RuleBasedRecognizer{
		orgSuffixes: []string{
			"ltd", "limited", "llp", "pvt", "private", "inc", "incorporated",
			"corp", "corporation", "company", "co", "technologies", "solutions",
			"services", "enterprises", "industries",
		},
		places: map[string]bool{
			"india": true, "mumbai": true, "delhi": true, "new delhi": true,
			"bangalore": true, "bengaluru": true, "chennai": true,
			"kolkata": true, "hyderabad": true, "pune": true,
			"ahmedabad": true, "gurgaon": true, "noida": true,
			"maharashtra": true, "karnataka": true, "gujarat": true,
			"tamil nadu": true, "west bengal": true, "telangana": true,
		},
	}
}

// Recognize finds proper-noun mentions in the given text
func (r *RuleBasedRecognizer) Recognize(text string) []Mention {
	var mentions []Mention

	for _, loc := range properNounRun.FindAllStringIndex(text, -1) {
		run := strings.TrimRight(text[loc[0]:loc[1]], " ")
		lower := strings.ToLower(run)

		switch {
		case r.places[lower]:
			mentions = append(mentions, Mention{Text: run, Label: LabelPlace, Start: loc[0], End: loc[1]})
		case r.hasOrgSuffix(lower):
			mentions = append(mentions, Mention{Text: run, Label: LabelOrg, Start: loc[0], End: loc[1]})
		case strings.Contains(run, " "):
			// Multi-word capitalized runs are name candidates; single
			// capitalized words are mostly sentence starts, skip them.
			mentions = append(mentions, Mention{Text: run, Label: LabelName, Start: loc[0], End: loc[1]})
		}
	}

	return mentions
}

func (r *RuleBasedRecognizer) hasOrgSuffix(lower string) bool {
	words := strings.Fields(lower)
	if len(words) == 0 {
		return false
	}
	last := strings.Trim(words[len(words)-1], ".")
	for _, suffix := range r.orgSuffixes {
		if last == suffix {
			return true
		}
	}
	return false
}
