package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rmehta/clauseguard/internal/model"
)

// maxCommonRisks caps the most-common-risks ranking
const maxCommonRisks = 5

// Stats aggregates findings across all past analyses
type Stats struct {
	TotalAnalyses    int            `json:"total_analyses"`
	IssuesIdentified map[string]int `json:"issues_identified"`
	AverageRiskScore float64        `json:"average_risk_score"`
	MostCommonRisks  []string       `json:"most_common_risks"`
}

// Record is the persisted knowledge base document
type Record struct {
	Statistics  Stats     `json:"statistics"`
	LastUpdated time.Time `json:"last_updated"`
}

// Store persists the knowledge base between analyses.
// The analysis core never touches it; updates happen at the pipeline boundary.
type Store interface {
	Load() (*Record, error)
	Save(record *Record) error
}

// FileStore is a JSON-file-backed Store
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the record, returning a fresh one if the file does not exist
func (s *FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return newRecord(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	if record.Statistics.IssuesIdentified == nil {
		record.Statistics.IssuesIdentified = make(map[string]int)
	}
	return &record, nil
}

// Save writes the record
func (s *FileStore) Save(record *Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal knowledge base: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write knowledge base: %w", err)
	}
	return nil
}

func newRecord() *Record {
	return &Record{
		Statistics: Stats{
			IssuesIdentified: make(map[string]int),
		},
	}
}

// KnowledgeBase combines a Store with the statistics update rules.
// The mutex serializes the load-modify-save cycle; batch workers record
// through one shared instance.
type KnowledgeBase struct {
	store Store
	mu    sync.Mutex
	now   func() time.Time
}

// New creates a knowledge base over the given store
func New(store Store) *KnowledgeBase {
	return &KnowledgeBase{store: store, now: time.Now}
}

// RecordAnalysis folds one finished risk result into the aggregate statistics
func (kb *KnowledgeBase) RecordAnalysis(result model.ContractRiskResult) error {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	record, err := kb.store.Load()
	if err != nil {
		return err
	}

	stats := &record.Statistics
	stats.TotalAnalyses++

	for category, count := range result.RiskCategories {
		if count > 0 {
			stats.IssuesIdentified[string(category)] += count
		}
	}

	// Running average over all analyses
	total := float64(stats.TotalAnalyses)
	stats.AverageRiskScore = (stats.AverageRiskScore*(total-1) + float64(result.CompositeRiskScore)) / total

	stats.MostCommonRisks = rankIssues(stats.IssuesIdentified)

	record.LastUpdated = kb.now()
	return kb.store.Save(record)
}

// Stats returns the current aggregate statistics
func (kb *KnowledgeBase) Stats() (Stats, error) {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	record, err := kb.store.Load()
	if err != nil {
		return Stats{}, err
	}
	return record.Statistics, nil
}

// rankIssues returns the top issue keys by count, ties broken alphabetically
// so the ranking is deterministic.
func rankIssues(issues map[string]int) []string {
	keys := make([]string, 0, len(issues))
	for key := range issues {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if issues[keys[i]] != issues[keys[j]] {
			return issues[keys[i]] > issues[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if len(keys) > maxCommonRisks {
		keys = keys[:maxCommonRisks]
	}
	return keys
}
