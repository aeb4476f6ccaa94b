package extract

import (
	"regexp"
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// entityScanWindow is the fixed ceiling on how much text the recognizer scans.
const entityScanWindow = 10000

// partyWindow is the character window around a mention checked for "party".
const partyWindow = 50

// maxPerBucket caps each entity bucket after deduplication.
const maxPerBucket = 10

// maxPerPattern caps how many matches each supplemental regex contributes.
const maxPerPattern = 5

// MentionLabel classifies a recognized mention
type MentionLabel string

const (
	LabelName  MentionLabel = "name"  // Person or unclassified proper noun run
	LabelOrg   MentionLabel = "org"   // Organization (corporate suffix present)
	LabelPlace MentionLabel = "place" // Known city/state/country
)

// Mention is one proper-noun occurrence found in text
type Mention struct {
	Text  string
	Label MentionLabel
	Start int // Byte offset into the scanned text
	End   int
}

// Recognizer finds proper-noun mentions in contract text.
// The default is rule-based; a real NER model can be plugged in here.
type Recognizer interface {
	Recognize(text string) []Mention
}

// EntityExtractor extracts structured facts from contract text
type EntityExtractor struct {
	recognizer Recognizer
}

// NewEntityExtractor creates an extractor with the rule-based recognizer
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{recognizer: NewRuleBasedRecognizer()}
}

// NewEntityExtractorWith creates an extractor with a custom recognizer
func NewEntityExtractorWith(r Recognizer) *EntityExtractor {
	return &EntityExtractor{recognizer: r}
}

// Extract builds the Entities structure for a contract.
// The recognizer scans only the first 10,000 characters; the supplemental
// amount/date regex passes run over the full text.
func (e *EntityExtractor) Extract(text string) model.Entities {
	scanned := text
	if len(scanned) > entityScanWindow {
		scanned = scanned[:entityScanWindow]
	}

	entities := model.Entities{}

	for _, mention := range e.recognizer.Recognize(scanned) {
		switch mention.Label {
		case LabelName, LabelOrg:
			if nearParty(scanned, mention) {
				entities.Parties = append(entities.Parties, mention.Text)
			} else {
				entities.Organizations = append(entities.Organizations, mention.Text)
			}
		case LabelPlace:
			entities.Locations = append(entities.Locations, mention.Text)
		}
	}

	entities.Amounts = append(entities.Amounts, extractAmounts(text)...)
	entities.Dates = append(entities.Dates, extractDates(text)...)

	entities.Parties = dedupeCap(entities.Parties)
	entities.Dates = dedupeCap(entities.Dates)
	entities.Amounts = dedupeCap(entities.Amounts)
	entities.Locations = dedupeCap(entities.Locations)
	entities.Organizations = dedupeCap(entities.Organizations)

	return entities
}

// nearParty reports whether "party" appears within 50 characters of the mention
func nearParty(text string, m Mention) bool {
	start := m.Start - partyWindow
	if start < 0 {
		start = 0
	}
	end := m.End + partyWindow
	if end > len(text) {
		end = len(text)
	}
	return strings.Contains(strings.ToLower(text[start:end]), "party")
}

// Supplemental regex passes (patterns mirror common Indian contract notation)
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*[\d,]+(?:\.\d{2})?`),   // Indian Rupee symbol
	regexp.MustCompile(`Rs\.?\s*[\d,]+(?:\.\d{2})?`), // Rupees
	regexp.MustCompile(`\$\s*[\d,]+(?:\.\d{2})?`),  // US Dollars
	regexp.MustCompile(`INR\s*[\d,]+(?:\.\d{2})?`), // INR prefix
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4}`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{2,4}`),
}

func extractAmounts(text string) []string {
	var amounts []string
	for _, pattern := range amountPatterns {
		amounts = append(amounts, pattern.FindAllString(text, maxPerPattern)...)
	}
	return amounts
}

func extractDates(text string) []string {
	var dates []string
	for _, pattern := range datePatterns {
		dates = append(dates, pattern.FindAllString(text, maxPerPattern)...)
	}
	return dates
}

// dedupeCap removes duplicates preserving first-seen order, capped at 10
func dedupeCap(items []string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			unique = append(unique, item)
			if len(unique) >= maxPerBucket {
				break
			}
		}
	}
	return unique
}
