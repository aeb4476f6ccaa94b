package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/rmehta/clauseguard/internal/model"
)

// stubAnalyzer implements Analyzer with canned results
type stubAnalyzer struct {
	mu      sync.Mutex
	calls   []string
	failOn  string
	failErr error
}

func (s *stubAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.Analysis, error) {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	s.mu.Unlock()

	if s.failOn != "" && filepath.Base(path) == s.failOn {
		return nil, s.failErr
	}
	return &model.Analysis{Success: true, FileName: filepath.Base(path)}, nil
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	analyzer := &stubAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	paths := []string{"a.txt", "b.txt", "c.txt"}
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	got := make([]string, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			t.Errorf("unexpected error for %s: %v", result.Path, result.Error)
		}
		if result.Analysis == nil || !result.Analysis.Success {
			t.Errorf("expected successful analysis for %s", result.Path)
		}
		got = append(got, result.Path)
	}
	sort.Strings(got)
	for i, path := range paths {
		if got[i] != path {
			t.Errorf("missing result for %s, got %v", path, got)
		}
	}
}

func TestBatchProcessor_FailuresDoNotStopBatch(t *testing.T) {
	analyzer := &stubAnalyzer{failOn: "b.txt", failErr: errors.New("extract failed")}
	processor := NewBatchProcessor(analyzer, 1)

	results := processor.ProcessPaths(context.Background(), []string{"a.txt", "b.txt", "c.txt"})

	failed := 0
	for _, result := range results {
		if result.GetError() != nil {
			failed++
			if result.Path != "b.txt" {
				t.Errorf("unexpected failing path %s", result.Path)
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected exactly 1 failure, got %d", failed)
	}
}

func TestBatchProcessor_LargeBatchCompletes(t *testing.T) {
	// Far more files than the pool's internal buffers can hold at the
	// default concurrency; the batch must still run to completion.
	analyzer := &stubAnalyzer{}
	processor := NewBatchProcessor(analyzer, 1)

	paths := make([]string, 30)
	for i := range paths {
		paths[i] = fmt.Sprintf("contract_%02d.txt", i)
	}

	done := make(chan []*AnalyzeResult)
	go func() {
		done <- processor.ProcessPaths(context.Background(), paths)
	}()

	select {
	case results := <-done:
		if len(results) != len(paths) {
			t.Errorf("expected %d results, got %d", len(paths), len(results))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch stalled before draining all results")
	}
}

func TestBatchProcessor_ContextCancelAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	analyzer := &stubAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	done := make(chan []*AnalyzeResult)
	go func() {
		done <- processor.ProcessPaths(ctx, []string{"a.txt", "b.txt", "c.txt"})
	}()

	select {
	case results := <-done:
		// Cancellation races individual submissions; the guarantee is a
		// prompt return, with at most the already-queued jobs finishing
		if len(results) > 3 {
			t.Errorf("unexpected result count %d", len(results))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled batch did not return")
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(&stubAnalyzer{}, 4)

	if results := processor.ProcessPaths(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCollectContractFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.html", "notes.pdf", "README.md", "c.TXT"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := CollectContractFiles(dir)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.TXT"),
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], paths[i])
		}
	}
}

func TestCollectContractFiles_MissingDir(t *testing.T) {
	if _, err := CollectContractFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
