// Package metrics 는 이름 생성 호출 통계를 집계한다.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Store 는 이름 생성 통계를 저장한다.
type Store struct {
	totalRequests   int64
	totalNames      int64
	totalFallbacks  int64
	totalDurationMs int64

	mu       sync.RWMutex
	byStyle  map[string]int64
	byGender map[string]int64
}

// NewStore 는 통계 저장소를 생성한다.
func NewStore() *Store {
	return &Store{
		byStyle:  make(map[string]int64),
		byGender: make(map[string]int64),
	}
}

// RecordGeneration 는 생성 호출 한 건을 기록한다.
func (s *Store) RecordGeneration(style string, gender string, names int, fallbacks int, duration time.Duration) {
	atomic.AddInt64(&s.totalRequests, 1)
	atomic.AddInt64(&s.totalNames, int64(names))
	atomic.AddInt64(&s.totalFallbacks, int64(fallbacks))
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())

	s.mu.Lock()
	if style != "" {
		s.byStyle[style] += int64(names)
	}
	if gender != "" {
		s.byGender[gender] += int64(names)
	}
	s.mu.Unlock()
}

// Snapshot 는 통계 스냅샷을 반환한다.
func (s *Store) Snapshot() map[string]any {
	totalRequests := atomic.LoadInt64(&s.totalRequests)
	totalNames := atomic.LoadInt64(&s.totalNames)
	totalFallbacks := atomic.LoadInt64(&s.totalFallbacks)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)

	avgDuration := 0.0
	if totalRequests > 0 {
		avgDuration = float64(durationMs) / float64(totalRequests)
	}

	s.mu.RLock()
	byStyle := make(map[string]int64, len(s.byStyle))
	for style, count := range s.byStyle {
		byStyle[style] = count
	}
	byGender := make(map[string]int64, len(s.byGender))
	for gender, count := range s.byGender {
		byGender[gender] = count
	}
	s.mu.RUnlock()

	return map[string]any{
		"total_requests":    totalRequests,
		"total_names":       totalNames,
		"total_fallbacks":   totalFallbacks,
		"total_duration_ms": durationMs,
		"avg_duration_ms":   avgDuration,
		"names_by_style":    byStyle,
		"names_by_gender":   byGender,
	}
}
