// Package audit appends one entry per completed analysis to daily JSON
// log files, giving a reviewable trail of what was analyzed and when.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one audit log record
type Entry struct {
	Timestamp      time.Time `json:"timestamp"`
	EventType      string    `json:"event_type"`
	FileName       string    `json:"file_name"`
	ContractType   string    `json:"contract_type,omitempty"`
	RiskLevel      string    `json:"risk_level,omitempty"`
	RiskScore      int       `json:"risk_score,omitempty"`
	ProcessingTime float64   `json:"processing_time,omitempty"`
	Language       string    `json:"language,omitempty"`
}

// EventAnalysis marks a completed contract analysis
const EventAnalysis = "contract_analysis"

// Logger writes entries to one JSON array file per day under dir.
// Files are named audit_log_YYYYMMDD.json. The mutex serializes the
// read-append-rewrite cycle across concurrent analyses.
type Logger struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewLogger creates a logger writing to dir
func NewLogger(dir string) *Logger {
	return &Logger{dir: dir, now: time.Now}
}

// Log appends an entry to today's log file. The entry timestamp is set
// here; callers only fill the event fields.
func (l *Logger) Log(entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry.Timestamp = now

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	path := l.pathFor(now)
	entries, err := readEntries(path)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal audit log: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// Entries returns the entries logged on the given day
func (l *Logger) Entries(day time.Time) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return readEntries(l.pathFor(day))
}

func (l *Logger) pathFor(day time.Time) string {
	return filepath.Join(l.dir, fmt.Sprintf("audit_log_%s.json", day.Format("20060102")))
}

func readEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse audit log: %w", err)
	}
	return entries, nil
}
