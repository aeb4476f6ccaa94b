package extract

import (
	"strings"
	"testing"

	"github.com/rmehta/clauseguard/internal/model"
)

func TestClauseSegmenter_Segment_NumberedContract(t *testing.T) {
	segmenter := NewClauseSegmenter()

	text := "1. The Vendor shall deliver all goods within thirty days of the purchase order.\n" +
		"2. The Client may terminate this agreement with sixty days written notice.\n" +
		"3. All disputes are subject to the jurisdiction of courts in Mumbai, Maharashtra."

	clauses := segmenter.Segment(text)

	if len(clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(clauses))
	}

	// IDs must be dense over retained clauses
	for i, clause := range clauses {
		if clause.ID != i+1 {
			t.Errorf("clause %d: expected ID %d, got %d", i, i+1, clause.ID)
		}
		if clause.WordCount == 0 {
			t.Errorf("clause %d: expected non-zero word count", i)
		}
	}

	if clauses[0].Type != model.ClauseObligation {
		t.Errorf("expected obligation for clause 1, got %s", clauses[0].Type)
	}
	if clauses[1].Type != model.ClauseRight {
		t.Errorf("expected right for clause 2, got %s", clauses[1].Type)
	}
}

func TestClauseSegmenter_Segment_EmptyInput(t *testing.T) {
	segmenter := NewClauseSegmenter()

	if clauses := segmenter.Segment(""); len(clauses) != 0 {
		t.Errorf("expected no clauses for empty input, got %d", len(clauses))
	}
}

func TestClauseSegmenter_Segment_LengthBoundary(t *testing.T) {
	segmenter := NewClauseSegmenter()

	exactly20 := strings.Repeat("a", 20)
	exactly21 := strings.Repeat("b", 21)
	text := "1. " + exactly20 + "\n2. " + exactly21 + "\n3. This third clause is comfortably long enough."

	clauses := segmenter.Segment(text)

	for _, clause := range clauses {
		if clause.Text == exactly20 {
			t.Error("fragment of exactly 20 characters should be dropped")
		}
	}

	found := false
	for _, clause := range clauses {
		if clause.Text == exactly21 {
			found = true
			if clause.ID != 1 {
				t.Errorf("expected retained fragment to get ID 1, got %d", clause.ID)
			}
		}
	}
	if !found {
		t.Error("fragment of 21 characters should be retained")
	}
}

func TestClauseSegmenter_Segment_SentenceFallback(t *testing.T) {
	segmenter := NewClauseSegmenter()

	// No numbering markers at all: the segmenter falls back to sentences
	text := "The provider agrees to maintain the software for the full term. " +
		"Either side is entitled to request a quarterly review meeting. " +
		"Invoices are payable on receipt."

	clauses := segmenter.Segment(text)

	if len(clauses) != 3 {
		t.Fatalf("expected 3 sentence clauses, got %d", len(clauses))
	}
	if clauses[0].Type != model.ClauseObligation {
		t.Errorf("expected obligation, got %s", clauses[0].Type)
	}
	if clauses[1].Type != model.ClauseRight {
		t.Errorf("expected right, got %s", clauses[1].Type)
	}
	if clauses[2].Type != model.ClauseGeneral {
		t.Errorf("expected general, got %s", clauses[2].Type)
	}
}

func TestClassifyClause_ObligationWinsOverProhibition(t *testing.T) {
	// "shall not" carries both an obligation cue and a prohibition cue;
	// obligation is checked first and wins.
	got := classifyClause("The receiving party shall not disclose confidential information.")
	if got != model.ClauseObligation {
		t.Errorf("expected obligation, got %s", got)
	}
}

func TestClassifyClause_CueNeedsFollowingWord(t *testing.T) {
	// A cue at the very end of the text has no following word token
	if got := classifyClause("Decisions rest with the board, whatever it may"); got != model.ClauseGeneral {
		t.Errorf("expected general for trailing cue, got %s", got)
	}
}
