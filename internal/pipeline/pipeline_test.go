package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmehta/clauseguard/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = ""
	cfg.Cache.Enabled = false
	cfg.Audit.Dir = filepath.Join(dir, "audit_logs")
	cfg.KnowledgeBase.Path = filepath.Join(dir, "knowledge_base.json")
	return cfg
}

const sampleContract = `SERVICE AGREEMENT

1. The Vendor shall pay a penalty of Rs. 10,000 per week of delay and shall indemnify the Client against all losses arising from the services.
2. The Vendor shall use reasonable efforts to complete the migration promptly, including all data transfer, configuration, validation and handover activities described in Annexure B, and shall keep the Client informed of progress at each stage of the engagement.
3. This agreement is governed by the Indian Contract Act, 1872 and courts in Mumbai shall have exclusive jurisdiction.
`

func TestPipeline_AnalyzeText(t *testing.T) {
	pipeline := NewPipeline(testConfig(t))

	analysis := pipeline.AnalyzeText(context.Background(), sampleContract)

	if !analysis.Success {
		t.Fatal("expected successful analysis")
	}
	if len(analysis.Clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(analysis.Clauses))
	}
	if analysis.RiskAnalysis.CompositeRiskScore == 0 {
		t.Error("penalty and indemnity clauses must score above zero")
	}
	if analysis.Recommendation != Recommendation(analysis.RiskAnalysis.OverallRiskLevel, analysis.RiskAnalysis.CompositeRiskScore) {
		t.Error("recommendation must match the computed risk")
	}
	if !analysis.Compliance.HasComplianceIndicators {
		t.Error("expected Indian law markers to be detected")
	}
	if !analysis.Compliance.HasJurisdictionClause {
		t.Error("expected jurisdiction clause to be detected")
	}
	if analysis.LLM != nil {
		t.Error("enrichment must be absent when no provider is configured")
	}
}

func TestPipeline_AnalyzeText_TruncatesAmbiguousClauses(t *testing.T) {
	pipeline := NewPipeline(testConfig(t))

	analysis := pipeline.AnalyzeText(context.Background(), sampleContract)

	if len(analysis.AmbiguousClauses) == 0 {
		t.Fatal("expected ambiguous clauses for reasonable efforts wording")
	}

	var long *model.AmbiguousClause
	for i := range analysis.AmbiguousClauses {
		if analysis.AmbiguousClauses[i].ClauseID == 2 {
			long = &analysis.AmbiguousClauses[i]
		}
	}
	if long == nil {
		t.Fatal("expected clause 2 to be flagged as ambiguous")
	}
	if !strings.HasSuffix(long.ClauseText, "...") {
		t.Errorf("expected truncated text, got %q", long.ClauseText)
	}
	if len(long.ClauseText) != 203 {
		t.Errorf("expected 200 chars plus ellipsis, got %d", len(long.ClauseText))
	}
}

func TestPipeline_AnalyzeFile(t *testing.T) {
	cfg := testConfig(t)
	pipeline := NewPipeline(cfg)

	path := filepath.Join(t.TempDir(), "vendor_agreement.txt")
	if err := os.WriteFile(path, []byte(sampleContract), 0644); err != nil {
		t.Fatalf("write contract: %v", err)
	}

	analysis, err := pipeline.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if !analysis.Success {
		t.Fatalf("expected success, got error %q", analysis.Error)
	}
	if analysis.FileName != "vendor_agreement.txt" {
		t.Errorf("unexpected file name %s", analysis.FileName)
	}
	if analysis.Metadata.FileType != "txt" {
		t.Errorf("unexpected file type %s", analysis.Metadata.FileType)
	}
	if analysis.Metadata.Language != "en" {
		t.Errorf("unexpected language %s", analysis.Metadata.Language)
	}
	if analysis.Metadata.WordCount == 0 || analysis.Metadata.CharCount == 0 {
		t.Error("expected populated document metadata")
	}
	if analysis.Metadata.AnalysisTimestamp.IsZero() {
		t.Error("expected analysis timestamp")
	}

	// A completed analysis must land in the knowledge base and audit trail
	if _, err := os.Stat(cfg.KnowledgeBase.Path); err != nil {
		t.Errorf("expected knowledge base file: %v", err)
	}
	entries, err := os.ReadDir(cfg.Audit.Dir)
	if err != nil || len(entries) == 0 {
		t.Errorf("expected audit log entry, err=%v entries=%d", err, len(entries))
	}
}

func TestPipeline_AnalyzeFile_UnsupportedFormat(t *testing.T) {
	pipeline := NewPipeline(testConfig(t))

	path := filepath.Join(t.TempDir(), "scan.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	analysis, err := pipeline.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("unsupported format must not be a Go error: %v", err)
	}
	if analysis.Success {
		t.Error("expected failed analysis for .pdf")
	}
	if !strings.Contains(analysis.Error, "unsupported file format") {
		t.Errorf("unexpected error message %q", analysis.Error)
	}
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		name  string
		level model.RiskLevel
		score int
		want  string
	}{
		{"high level", model.RiskLevelHigh, 10, "HIGH RISK"},
		{"high score dominates low level", model.RiskLevelLow, 70, "HIGH RISK"},
		{"medium level", model.RiskLevelMedium, 0, "MEDIUM RISK"},
		{"medium score", model.RiskLevelLow, 40, "MEDIUM RISK"},
		{"low", model.RiskLevelLow, 39, "LOW RISK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommendation(tt.level, tt.score); !strings.Contains(got, tt.want) {
				t.Errorf("expected %s recommendation, got %q", tt.want, got)
			}
		})
	}
}

func TestNeedsTranslation(t *testing.T) {
	tests := []struct {
		language string
		want     bool
	}{
		{"en", false},
		{"hi", true},
		{"mixed", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := needsTranslation(tt.language); got != tt.want {
			t.Errorf("needsTranslation(%q) = %v, want %v", tt.language, got, tt.want)
		}
	}
}

func TestPipeline_WarningsGoToStderr(t *testing.T) {
	cfg := testConfig(t)
	// Point the store into a missing directory so the update fails
	cfg.KnowledgeBase.Path = filepath.Join(t.TempDir(), "missing", "knowledge_base.json")
	pipeline := NewPipeline(cfg)

	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte(sampleContract), 0644); err != nil {
		t.Fatalf("write contract: %v", err)
	}

	stdout, stderr := captureOutput(t, func() {
		if _, err := pipeline.AnalyzeFile(context.Background(), path); err != nil {
			t.Errorf("analyze: %v", err)
		}
	})

	if !strings.Contains(stderr, "Warning: Failed to update knowledge base") {
		t.Errorf("expected warning on stderr, got %q", stderr)
	}
	if strings.Contains(stdout, "Warning:") {
		t.Errorf("warnings must not pollute stdout, got %q", stdout)
	}
}

func captureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	fn()

	outW.Close()
	errW.Close()
	outData, _ := io.ReadAll(outR)
	errData, _ := io.ReadAll(errR)
	return string(outData), string(errData)
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 200); got != "short" {
		t.Errorf("short text must pass through, got %q", got)
	}
	long := strings.Repeat("a", 250)
	got := truncate(long, 200)
	if len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Errorf("unexpected truncation result, len %d", len(got))
	}
}
