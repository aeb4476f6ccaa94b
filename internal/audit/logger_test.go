package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestLogger_Log_AppendsToDailyFile(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)
	day := time.Date(2024, 4, 15, 9, 30, 0, 0, time.UTC)
	logger.now = func() time.Time { return day }

	first := Entry{
		EventType: EventAnalysis,
		FileName:  "vendor_agreement.txt",
		RiskLevel: "HIGH",
		RiskScore: 72,
		Language:  "en",
	}
	second := Entry{
		EventType: EventAnalysis,
		FileName:  "nda.txt",
		RiskLevel: "LOW",
		RiskScore: 10,
		Language:  "en",
	}

	if err := logger.Log(first); err != nil {
		t.Fatalf("log first: %v", err)
	}
	if err := logger.Log(second); err != nil {
		t.Fatalf("log second: %v", err)
	}

	path := filepath.Join(dir, "audit_log_20240415.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected daily log file: %v", err)
	}

	entries, err := logger.Entries(day)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].FileName != "vendor_agreement.txt" || entries[1].FileName != "nda.txt" {
		t.Errorf("entries out of order: %+v", entries)
	}
	if !entries[0].Timestamp.Equal(day) {
		t.Errorf("expected timestamp set by logger, got %v", entries[0].Timestamp)
	}
}

func TestLogger_Log_SeparateFilesPerDay(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	monday := time.Date(2024, 4, 15, 23, 59, 0, 0, time.UTC)
	tuesday := time.Date(2024, 4, 16, 0, 1, 0, 0, time.UTC)

	logger.now = func() time.Time { return monday }
	if err := logger.Log(Entry{EventType: EventAnalysis, FileName: "a.txt"}); err != nil {
		t.Fatalf("log monday: %v", err)
	}

	logger.now = func() time.Time { return tuesday }
	if err := logger.Log(Entry{EventType: EventAnalysis, FileName: "b.txt"}); err != nil {
		t.Fatalf("log tuesday: %v", err)
	}

	mondayEntries, err := logger.Entries(monday)
	if err != nil {
		t.Fatalf("monday entries: %v", err)
	}
	tuesdayEntries, err := logger.Entries(tuesday)
	if err != nil {
		t.Fatalf("tuesday entries: %v", err)
	}

	if len(mondayEntries) != 1 || len(tuesdayEntries) != 1 {
		t.Errorf("expected one entry per day, got %d and %d", len(mondayEntries), len(tuesdayEntries))
	}
}

func TestLogger_Log_ConcurrentEntriesAllLand(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)
	day := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	logger.now = func() time.Time { return day }

	const logs = 20
	var wg sync.WaitGroup
	errs := make(chan error, logs)
	for i := 0; i < logs; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- logger.Log(Entry{
				EventType: EventAnalysis,
				FileName:  fmt.Sprintf("contract_%02d.txt", n),
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	entries, err := logger.Entries(day)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != logs {
		t.Errorf("lost entries: expected %d, got %d", logs, len(entries))
	}
}

func TestLogger_Entries_MissingDayIsEmpty(t *testing.T) {
	logger := NewLogger(t.TempDir())

	entries, err := logger.Entries(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected no error for missing day, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
