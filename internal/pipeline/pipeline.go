// Package pipeline orchestrates a complete contract review: document
// extraction, clause segmentation, entity and risk passes, optional LLM
// enrichment, and the knowledge base and audit trail updates.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/rmehta/clauseguard/internal/audit"
	"github.com/rmehta/clauseguard/internal/cache"
	"github.com/rmehta/clauseguard/internal/document"
	"github.com/rmehta/clauseguard/internal/extract"
	"github.com/rmehta/clauseguard/internal/kb"
	"github.com/rmehta/clauseguard/internal/llm"
	"github.com/rmehta/clauseguard/internal/model"
	"github.com/rmehta/clauseguard/internal/risk"
)

// Pipeline wires the analysis stages together
type Pipeline struct {
	reader    *document.Reader
	segmenter *extract.ClauseSegmenter
	entities  *extract.EntityExtractor
	scorer    *risk.Scorer
	enricher  *llm.Enricher // Optional (nil or disabled when no provider configured)
	knowledge *kb.KnowledgeBase
	auditor   *audit.Logger // Optional
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var enricher *llm.Enricher
	if cfg.LLM.Provider != "" {
		e, err := llm.NewEnricher(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			if cfg.Cache.Enabled {
				e = e.WithCache(cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL))
			}
			if cfg.RateLimiting.RequestsPerSecond > 0 {
				e = e.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimiting.RequestsPerSecond), cfg.RateLimiting.BurstSize))
			}
			enricher = e
		}
	}

	var auditor *audit.Logger
	if cfg.Audit.Enabled {
		auditor = audit.NewLogger(cfg.Audit.Dir)
	}

	return &Pipeline{
		reader:    document.NewReader(),
		segmenter: extract.NewClauseSegmenter(),
		entities:  extract.NewEntityExtractor(),
		scorer:    risk.NewScorer(),
		enricher:  enricher,
		knowledge: kb.New(kb.NewFileStore(cfg.KnowledgeBase.Path)),
		auditor:   auditor,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// KnowledgeBase exposes the pipeline's knowledge base
func (p *Pipeline) KnowledgeBase() *kb.KnowledgeBase {
	return p.knowledge
}

// Enricher exposes the optional LLM enricher; nil when disabled
func (p *Pipeline) Enricher() *llm.Enricher {
	return p.enricher
}

// AnalyzeFile reads one contract file and runs the full analysis.
// Unsupported formats produce a failed Analysis, not a Go error; errors
// are reserved for I/O problems.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Analysis, error) {
	start := time.Now()

	extracted, err := p.reader.ExtractFile(path)
	if err != nil {
		return nil, err
	}

	fileName := filepath.Base(path)
	if !extracted.Success {
		return &model.Analysis{
			Success:  false,
			FileName: fileName,
			Metadata: model.Metadata{FileType: extracted.FileType},
			Error:    extracted.Error,
		}, nil
	}

	text := document.Preprocess(extracted.Text)
	language := document.DetectLanguage(text)

	// Contracts carrying Devanagari text go through translation before
	// the English-keyword passes. Without a provider the text is
	// analyzed as-is.
	if needsTranslation(language) && p.enricher.IsEnabled() {
		translated, err := p.enricher.TranslateHindi(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Hindi translation failed: %v\n", err)
		} else if translated != "" {
			text = translated
		}
	}

	analysis := p.AnalyzeText(ctx, text)
	analysis.FileName = fileName
	analysis.Metadata.FileType = extracted.FileType
	analysis.Metadata.CharCount = extracted.CharCount
	analysis.Metadata.WordCount = extracted.WordCount
	analysis.Metadata.Language = language
	analysis.Metadata.ProcessingTime = time.Since(start).Seconds()
	analysis.Metadata.AnalysisTimestamp = time.Now().UTC()

	p.recordAnalysis(analysis)

	return analysis, nil
}

// AnalyzeText runs the deterministic passes plus optional enrichment
// over already-extracted text. Knowledge base and audit updates happen
// in AnalyzeFile, not here.
func (p *Pipeline) AnalyzeText(ctx context.Context, text string) *model.Analysis {
	clauses := p.segmenter.Segment(text)
	entities := p.entities.Extract(text)
	riskResult := p.scorer.AnalyzeContract(clauses)
	unfavorable := risk.DetectUnfavorableTerms(clauses)
	compliance := extract.CheckCompliance(text)

	var ambiguous []model.AmbiguousClause
	for _, clause := range clauses {
		result := extract.DetectAmbiguity(clause.Text)
		if result.IsAmbiguous {
			ambiguous = append(ambiguous, model.AmbiguousClause{
				ClauseID:   clause.ID,
				ClauseText: truncate(clause.Text, 200),
				Ambiguity:  result,
			})
		}
	}

	analysis := &model.Analysis{
		Success:          true,
		Clauses:          clauses,
		Entities:         entities,
		RiskAnalysis:     riskResult,
		UnfavorableTerms: unfavorable,
		Compliance:       compliance,
		AmbiguousClauses: ambiguous,
		Recommendation:   Recommendation(riskResult.OverallRiskLevel, riskResult.CompositeRiskScore),
	}

	// Enrichment runs after scoring and never affects it
	if p.enricher.IsEnabled() {
		analysis.LLM = p.enricher.Enrich(ctx, text, clauses, entities, riskResult)
	}

	return analysis
}

// RenderReport writes the requested report outputs and prints a summary
func (p *Pipeline) RenderReport(analysis *model.Analysis, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(analysis, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(analysis, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(analysis)
	return nil
}

// Recommendation maps the overall risk to advice for the business owner.
// A score past a band's threshold is enough on its own, so a composite
// of 70+ reads as high risk even if the level came out lower.
func Recommendation(level model.RiskLevel, score int) string {
	switch {
	case level == model.RiskLevelHigh || score >= 70:
		return "⚠️ HIGH RISK: We strongly recommend legal review before signing. Several unfavorable terms identified."
	case level == model.RiskLevelMedium || score >= 40:
		return "⚡ MEDIUM RISK: Review highlighted clauses carefully. Consider negotiating key terms."
	default:
		return "✅ LOW RISK: Contract appears relatively balanced. Review standard terms and proceed with caution."
	}
}

// recordAnalysis updates the knowledge base and audit trail.
// Failures warn instead of failing the analysis.
func (p *Pipeline) recordAnalysis(analysis *model.Analysis) {
	if err := p.knowledge.RecordAnalysis(analysis.RiskAnalysis); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to update knowledge base: %v\n", err)
	}

	if p.auditor == nil {
		return
	}
	entry := audit.Entry{
		EventType:      audit.EventAnalysis,
		FileName:       analysis.FileName,
		RiskLevel:      string(analysis.RiskAnalysis.OverallRiskLevel),
		RiskScore:      analysis.RiskAnalysis.CompositeRiskScore,
		ProcessingTime: analysis.Metadata.ProcessingTime,
		Language:       analysis.Metadata.Language,
	}
	if analysis.LLM != nil {
		if t, ok := analysis.LLM.ContractType["contract_type"].(string); ok {
			entry.ContractType = t
		}
	}
	if err := p.auditor.Log(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to write audit log: %v\n", err)
	}
}

// needsTranslation reports whether the detected language carries
// Devanagari content the English-keyword passes cannot scan directly
func needsTranslation(language string) bool {
	return language == "hi" || language == "mixed"
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
