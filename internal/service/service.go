// Package service coordinates the news pipeline: fetch, score, summarize,
// memo, and per-language caching. It is the single entry point for the HTTP
// layer.
package service

import (
	"context"
	"sync"
	"time"

	"ainewsdesk/internal/feeds"
	"ainewsdesk/internal/logger"
	"ainewsdesk/internal/metrics"
	"ainewsdesk/internal/news"
	"ainewsdesk/internal/summarize"

	"golang.org/x/sync/semaphore"
)

// failureNotice is served when a pipeline run fails outright.
const failureNotice = "Failed to fetch news."

// Fetcher yields normalized raw items from all configured feed sources.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]feeds.RawItem, error)
}

// Result is one assembled news payload for a single language.
type Result struct {
	News []news.Item `json:"news"`
	Memo string      `json:"memo"`
}

type entry struct {
	data      Result
	timestamp time.Time
}

// Service memoizes pipeline results per language for a fixed TTL. Entries are
// replaced whole; no partial mutation of a stored entry ever happens.
// Concurrent misses on the same language may both recompute; the last writer
// wins and both see a consistent result.
type Service struct {
	fetcher    Fetcher
	summarizer summarize.Summarizer
	ttl        time.Duration
	topItems   int
	sem        *semaphore.Weighted
	now        func() time.Time

	mu      sync.RWMutex
	entries map[summarize.Language]entry
}

func New(fetcher Fetcher, summarizer summarize.Summarizer, ttl time.Duration, topItems, concurrency int) *Service {
	return &Service{
		fetcher:    fetcher,
		summarizer: summarizer,
		ttl:        ttl,
		topItems:   topItems,
		sem:        semaphore.NewWeighted(int64(concurrency)),
		now:        time.Now,
		entries:    make(map[summarize.Language]entry),
	}
}

// GetNews serves the cached payload for lang when it is still fresh, or runs
// the full pipeline and caches the outcome. A failed run yields an empty list
// plus a failure notice and is deliberately not cached, so the next call
// retries.
func (s *Service) GetNews(ctx context.Context, lang summarize.Language) Result {
	s.mu.RLock()
	e, ok := s.entries[lang]
	s.mu.RUnlock()
	if ok && s.now().Sub(e.timestamp) < s.ttl {
		logger.Debug("Serving cached news", "lang", string(lang))
		metrics.Global.IncrementCacheHits()
		return e.data
	}
	metrics.Global.IncrementCacheMisses()

	result, err := s.run(ctx, lang)
	if err != nil {
		logger.Error("News pipeline failed", "lang", string(lang), "error", err)
		metrics.Global.SetError(err.Error())
		return Result{News: []news.Item{}, Memo: failureNotice}
	}

	s.mu.Lock()
	s.entries[lang] = entry{data: result, timestamp: s.now()}
	s.mu.Unlock()
	return result
}

// run executes one full pipeline pass for lang.
func (s *Service) run(ctx context.Context, lang summarize.Language) (Result, error) {
	start := time.Now()

	raw, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return Result{}, err
	}
	logger.Info("Fetched feed items", "count", len(raw))
	metrics.Global.AddItemsProcessed(len(raw))

	scored := news.FilterAndScore(raw, s.now())
	logger.Info("Scored news items", "kept", len(scored), "dropped", len(raw)-len(scored))

	top := scored
	if len(top) > s.topItems {
		top = top[:s.topItems]
	}

	s.enrich(ctx, top, lang)

	memo := s.summarizer.IndustryMemo(ctx, top, lang)

	if top == nil {
		top = []news.Item{}
	}

	metrics.Global.RecordPipelineTime(time.Since(start))
	metrics.Global.SetLastRun()
	return Result{News: top, Memo: memo}, nil
}

// enrich replaces the placeholder summaries in place. Items are processed
// concurrently, and the short and long summary of one item are requested
// concurrently with each other; ordering of the slice is never changed.
func (s *Service) enrich(ctx context.Context, items []news.Item, lang summarize.Language) {
	var wg sync.WaitGroup
	for i := range items {
		text := items[i].Title + "\n" + items[i].SummaryLong

		wg.Add(2)
		go func(dst *string) {
			defer wg.Done()
			*dst = s.summarizeBounded(ctx, text, summarize.Short, lang)
		}(&items[i].SummaryShort)
		go func(dst *string) {
			defer wg.Done()
			*dst = s.summarizeBounded(ctx, text, summarize.Long, lang)
		}(&items[i].SummaryLong)
	}
	wg.Wait()
}

// summarizeBounded caps the number of in-flight summarization calls.
func (s *Service) summarizeBounded(ctx context.Context, text string, length summarize.Length, lang summarize.Language) string {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return (&summarize.Fallback{}).Summarize(ctx, text, length, lang)
	}
	defer s.sem.Release(1)
	return s.summarizer.Summarize(ctx, text, length, lang)
}
