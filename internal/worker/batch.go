package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// Analyzer runs a full analysis on one contract file
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Analysis, error)
}

// AnalyzeJob analyzes one contract file
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute runs the analysis
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	analysis, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &AnalyzeResult{
		Path:     j.Path,
		Analysis: analysis,
		Error:    err,
	}
}

// AnalyzeResult is the outcome of analyzing one file
type AnalyzeResult struct {
	Path     string
	Analysis *model.Analysis
	Error    error
}

// GetError returns the error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple contract files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given files concurrently. Results come back
// in completion order, not input order. Cancelling ctx aborts the
// remaining work.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}
	return analyzeResults
}

// ProcessDir analyzes every supported contract file in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*AnalyzeResult, error) {
	paths, err := CollectContractFiles(dir)
	if err != nil {
		return nil, err
	}
	return b.ProcessPaths(ctx, paths), nil
}

// CollectContractFiles lists supported contract files in a directory,
// sorted for deterministic batch order.
func CollectContractFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".text", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
