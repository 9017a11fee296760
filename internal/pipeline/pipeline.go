package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/cache"
	"github.com/clauselens/clauselens/internal/catalog"
	"github.com/clauselens/clauselens/internal/input"
	"github.com/clauselens/clauselens/internal/lang"
	"github.com/clauselens/clauselens/internal/llm"
	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/risk"
	"github.com/clauselens/clauselens/internal/segment"
	"github.com/clauselens/clauselens/internal/worker"
)

// Pipeline orchestrates the complete document analysis: segmentation,
// classification, risk scoring, and the optional LLM summaries
type Pipeline struct {
	catalog    *catalog.Catalog
	segmenter  *segment.Segmenter
	scorer     *risk.Scorer
	fetcher    *Fetcher
	summarizer *llm.Summarizer // nil if disabled
	cache      cache.Cache     // nil if disabled
	config     *model.Config
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	c := catalog.New()

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if provider != nil {
			limiter := worker.NewLimiter(cfg.LLM.RateRPS, 1)
			summarizer = llm.NewSummarizer(provider, limiter)
		}
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			resultCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		catalog:    c,
		segmenter:  segment.NewSegmenter(c),
		scorer:     risk.NewScorer(c),
		fetcher:    NewFetcher(cfg.HTTP),
		summarizer: summarizer,
		cache:      resultCache,
		config:     cfg,
	}
}

// WithScorer substitutes the risk scorer (used by tests to inject a
// deterministic fallback)
func (p *Pipeline) WithScorer(s *risk.Scorer) *Pipeline {
	p.scorer = s
	return p
}

// Analyze segments the text and scores every clause, returning pairs in
// clause-id order. It never fails: degenerate input produces degenerate
// clauses, never an error.
func (p *Pipeline) Analyze(text string) []model.Pair {
	clauses := p.segmenter.Segment(text)
	if len(clauses) == 0 {
		return nil
	}

	assessments := p.scoreAll(clauses)

	pairs := make([]model.Pair, len(clauses))
	for i, clause := range clauses {
		pairs[i] = model.Pair{Clause: clause, Risk: assessments[i]}
	}
	return pairs
}

// scoreAll runs the risk scorer over clauses on a bounded worker pool and
// re-sorts the results into clause-id order
func (p *Pipeline) scoreAll(clauses []model.Clause) []model.RiskAssessment {
	workers := p.config.Concurrency.ScoreWorkers
	if workers > len(clauses) {
		workers = len(clauses)
	}

	pool := worker.NewPool(workers)
	pool.Start()

	for _, clause := range clauses {
		pool.Submit(&scoreJob{clause: clause, scorer: p.scorer})
	}

	results := pool.Wait()

	assessments := make([]model.RiskAssessment, 0, len(results))
	for _, result := range results {
		assessments = append(assessments, result.(*scoreResult).assessment)
	}
	// Pool completion order is arbitrary
	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].ClauseID < assessments[j].ClauseID
	})

	return assessments
}

// scoreJob scores one clause on the pool
type scoreJob struct {
	clause model.Clause
	scorer *risk.Scorer
}

type scoreResult struct {
	assessment model.RiskAssessment
}

func (r *scoreResult) GetError() error { return nil }

func (j *scoreJob) Execute(ctx context.Context) worker.Result {
	assessment := j.scorer.Score(j.clause.Text)
	assessment.ClauseID = j.clause.ID
	return &scoreResult{assessment: assessment}
}

// AnalyzeDocument produces the full report for already-extracted text,
// consulting the result cache first
func (p *Pipeline) AnalyzeDocument(ctx context.Context, name, source, text string) *model.Report {
	if p.cache != nil {
		key := cache.DocumentKey(text)
		if data, found := p.cache.Get(key); found {
			var report model.Report
			if err := json.Unmarshal(data, &report); err == nil {
				report.Document = name
				report.Source = source
				return &report
			}
		}
	}

	pairs := p.Analyze(text)

	clauses := make([]model.Clause, len(pairs))
	risks := make([]model.RiskAssessment, len(pairs))
	for i, pair := range pairs {
		clauses[i] = pair.Clause
		risks[i] = pair.Risk
	}

	detected := lang.Detect(text)

	report := &model.Report{
		Document:           name,
		Source:             source,
		AnalyzedAt:         time.Now().UTC(),
		TextLength:         len(text),
		Language:           detected.Language,
		LanguageConfidence: detected.Confidence,
		Clauses:            clauses,
		Risks:              risks,
	}

	// Summaries come last and never influence the analysis above
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		report.Summaries = p.summarizer.Generate(ctx, text)
	}

	if p.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.cache.Set(cache.DocumentKey(text), data, 0)
		}
	}

	return report
}

// AnalyzeSource reads a document from a local path or an http(s) URL and
// analyzes it
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	if isURL(source) {
		fetched, err := p.fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		return p.AnalyzeDocument(ctx, fetched.Subject, fetched.FinalURL, fetched.Text), nil
	}

	text, err := input.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return p.AnalyzeDocument(ctx, name, source, text), nil
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
