package kb

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rmehta/clauseguard/internal/model"
)

func testKnowledgeBase(t *testing.T) *KnowledgeBase {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "knowledge_base.json"))
	knowledge := New(store)
	knowledge.now = func() time.Time { return time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC) }
	return knowledge
}

func TestFileStore_Load_MissingFileReturnsFresh(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	record, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if record.Statistics.TotalAnalyses != 0 {
		t.Errorf("expected fresh record, got %d analyses", record.Statistics.TotalAnalyses)
	}
	if record.Statistics.IssuesIdentified == nil {
		t.Error("expected initialized issues map")
	}
}

func TestKnowledgeBase_RecordAnalysis_Accumulates(t *testing.T) {
	knowledge := testKnowledgeBase(t)

	first := model.ContractRiskResult{
		CompositeRiskScore: 60,
		RiskCategories: map[model.RiskCategory]int{
			model.RiskPenalty:   2,
			model.RiskIndemnity: 1,
			model.RiskLockIn:    0, // Zero counts are not recorded
		},
	}
	second := model.ContractRiskResult{
		CompositeRiskScore: 20,
		RiskCategories: map[model.RiskCategory]int{
			model.RiskPenalty: 1,
		},
	}

	if err := knowledge.RecordAnalysis(first); err != nil {
		t.Fatalf("record first: %v", err)
	}
	if err := knowledge.RecordAnalysis(second); err != nil {
		t.Fatalf("record second: %v", err)
	}

	stats, err := knowledge.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalAnalyses != 2 {
		t.Errorf("expected 2 analyses, got %d", stats.TotalAnalyses)
	}
	if stats.AverageRiskScore != 40 {
		t.Errorf("expected running average 40, got %.1f", stats.AverageRiskScore)
	}
	if stats.IssuesIdentified["penalty"] != 3 {
		t.Errorf("expected penalty count 3, got %d", stats.IssuesIdentified["penalty"])
	}
	if stats.IssuesIdentified["indemnity"] != 1 {
		t.Errorf("expected indemnity count 1, got %d", stats.IssuesIdentified["indemnity"])
	}
	if _, recorded := stats.IssuesIdentified["lock_in"]; recorded {
		t.Error("zero-count category must not be recorded")
	}

	// penalty (3) ranks above indemnity (1)
	if len(stats.MostCommonRisks) != 2 || stats.MostCommonRisks[0] != "penalty" {
		t.Errorf("unexpected ranking: %v", stats.MostCommonRisks)
	}
}

func TestKnowledgeBase_RecordAnalysis_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge_base.json")

	first := New(NewFileStore(path))
	if err := first.RecordAnalysis(model.ContractRiskResult{CompositeRiskScore: 80}); err != nil {
		t.Fatalf("record: %v", err)
	}

	second := New(NewFileStore(path))
	stats, err := second.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnalyses != 1 || stats.AverageRiskScore != 80 {
		t.Errorf("expected persisted stats, got %+v", stats)
	}
}

func TestKnowledgeBase_RecordAnalysis_ConcurrentUpdatesAllLand(t *testing.T) {
	knowledge := testKnowledgeBase(t)

	const analyses = 50
	var wg sync.WaitGroup
	errs := make(chan error, analyses)
	for i := 0; i < analyses; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- knowledge.RecordAnalysis(model.ContractRiskResult{
				CompositeRiskScore: 40,
				RiskCategories: map[model.RiskCategory]int{
					model.RiskPenalty: 1,
				},
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := knowledge.Stats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnalyses != analyses {
		t.Errorf("lost updates: expected %d analyses, got %d", analyses, stats.TotalAnalyses)
	}
	if stats.IssuesIdentified["penalty"] != analyses {
		t.Errorf("lost issue counts: expected %d, got %d", analyses, stats.IssuesIdentified["penalty"])
	}
	if stats.AverageRiskScore != 40 {
		t.Errorf("expected average 40, got %.1f", stats.AverageRiskScore)
	}
}

func TestRankIssues_TopFiveDeterministic(t *testing.T) {
	issues := map[string]int{
		"penalty":                4,
		"indemnity":              4,
		"arbitration":            1,
		"auto_renewal":           2,
		"lock_in":                2,
		"non_compete":            3,
		"unilateral_termination": 5,
	}

	ranked := rankIssues(issues)

	if len(ranked) != 5 {
		t.Fatalf("expected top 5, got %d", len(ranked))
	}
	want := []string{"unilateral_termination", "indemnity", "penalty", "non_compete", "auto_renewal"}
	for i, key := range want {
		if ranked[i] != key {
			t.Errorf("position %d: expected %s, got %s (full: %v)", i, key, ranked[i], ranked)
		}
	}
}
