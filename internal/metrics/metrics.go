package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched        int64
	FeedsFailed         int64
	ItemsProcessed      int64
	SummariesGenerated  int64
	SummariesFallenBack int64
	CacheHits           int64
	CacheMisses         int64

	// Timings
	LastPipelineTime    time.Duration
	TotalPipelineTime   time.Duration
	AveragePipelineTime time.Duration
	PipelineCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFeedsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) IncrementFeedsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFailed++
}

func (m *Metrics) AddItemsProcessed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsProcessed += int64(n)
}

func (m *Metrics) IncrementSummariesGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummariesGenerated++
}

func (m *Metrics) IncrementSummariesFallenBack() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummariesFallenBack++
}

func (m *Metrics) IncrementCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *Metrics) IncrementCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *Metrics) RecordPipelineTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastPipelineTime = duration
	m.TotalPipelineTime += duration
	m.PipelineCount++

	if m.PipelineCount > 0 {
		m.AveragePipelineTime = m.TotalPipelineTime / time.Duration(m.PipelineCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":            m.FeedsFetched,
		"feeds_failed":             m.FeedsFailed,
		"items_processed":          m.ItemsProcessed,
		"summaries_generated":      m.SummariesGenerated,
		"summaries_fallen_back":    m.SummariesFallenBack,
		"cache_hits":               m.CacheHits,
		"cache_misses":             m.CacheMisses,
		"last_pipeline_time_ms":    m.LastPipelineTime.Milliseconds(),
		"average_pipeline_time_ms": m.AveragePipelineTime.Milliseconds(),
		"last_run_time":            m.LastRunTime.Format(time.RFC3339),
		"last_error_time":          m.LastErrorTime.Format(time.RFC3339),
		"last_error":               m.LastError,
		"is_healthy":               m.IsHealthy,
	}
}
