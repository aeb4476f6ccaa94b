package extract

import (
	"regexp"
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// minClauseLength filters out fragments too short to be a real clause.
// A fragment must be strictly longer than this to be retained.
const minClauseLength = 20

// classifyWindow caps how much of a clause the type classifier scans.
const classifyWindow = 500

// clauseMarker matches the start of the text or a newline followed by a
// numbering marker: "1.", "1.1.", "(a)", "(1)", "A.", WHEREAS, THEREFORE.
var clauseMarker = regexp.MustCompile(`(?:^|\n)(?:\d+\.|\d+\.\d+\.?|\([a-z]\)|\([0-9]+\)|[A-Z]\.|WHEREAS|THEREFORE)`)

// Clause type cues, evaluated in declared order: obligation, right, prohibition.
// The corpus carries no POS tagger, so "followed by a verb" is approximated by
// requiring at least one further word token after the cue.
var (
	obligationCue  = regexp.MustCompile(`(?i)\b(?:shall|must|will|agrees|undertakes)\b\s+\w`)
	rightCue       = regexp.MustCompile(`(?i)\b(?:may|can|entitled|right)\b\s+\w`)
	prohibitionCue = regexp.MustCompile(`(?i)\b(?:shall|must|will|cannot)\b\s+not\b`)
)

// ClauseSegmenter splits contract text into an ordered sequence of labeled clauses
type ClauseSegmenter struct{}

// NewClauseSegmenter creates a new segmenter
func NewClauseSegmenter() *ClauseSegmenter {
	return &ClauseSegmenter{}
}

// Segment splits normalized contract text into clauses.
// Empty input yields an empty clause list, never an error.
func (s *ClauseSegmenter) Segment(text string) []model.Clause {
	fragments := clauseMarker.Split(text, -1)

	// No discernible numbering structure: fall back to sentence splitting
	if len(fragments) <= 2 {
		fragments = splitSentences(text)
	}

	var clauses []model.Clause
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) <= minClauseLength {
			continue
		}

		clauses = append(clauses, model.Clause{
			ID:        len(clauses) + 1, // Dense over retained fragments
			Text:      fragment,
			Type:      classifyClause(fragment),
			WordCount: len(strings.Fields(fragment)),
		})
	}

	return clauses
}

// classifyClause scans at most the first 500 characters for grammatical cues.
// First pattern registered wins; unmatched clauses default to general.
func classifyClause(text string) model.ClauseType {
	if len(text) > classifyWindow {
		text = text[:classifyWindow]
	}

	switch {
	case obligationCue.MatchString(text):
		return model.ClauseObligation
	case rightCue.MatchString(text):
		return model.ClauseRight
	case prohibitionCue.MatchString(text):
		return model.ClauseProhibition
	default:
		return model.ClauseGeneral
	}
}

// splitSentences splits text at sentence terminators followed by whitespace
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			// Only split when followed by whitespace, to avoid abbreviations
			if i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\t') {
				sentences = append(sentences, current.String())
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}

	return sentences
}
