package extract

import "testing"

func TestDetectAmbiguity(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		ambiguous bool
		score     int
	}{
		{
			name:      "hedging vocabulary",
			text:      "The provider shall use reasonable efforts to respond promptly.",
			ambiguous: true,
			score:     2, // reasonable, promptly
		},
		{
			name:      "precise clause",
			text:      "The provider shall respond within 48 hours of written notice.",
			ambiguous: false,
			score:     0,
		},
		{
			name:      "substring containment counts",
			text:      "Notices go to the last known whereabouts of the signatory.",
			ambiguous: true,
			score:     1, // "about" inside "whereabouts"
		},
		{
			name:      "empty clause",
			text:      "",
			ambiguous: false,
			score:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectAmbiguity(tt.text)
			if result.IsAmbiguous != tt.ambiguous {
				t.Errorf("IsAmbiguous: expected %v, got %v (terms: %v)", tt.ambiguous, result.IsAmbiguous, result.Terms)
			}
			if result.Score != tt.score {
				t.Errorf("Score: expected %d, got %d (terms: %v)", tt.score, result.Score, result.Terms)
			}
			if len(result.Terms) != result.Score {
				t.Errorf("Terms length %d should equal score %d", len(result.Terms), result.Score)
			}
		})
	}
}
