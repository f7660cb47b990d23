package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestStoreRecordsGeneration(t *testing.T) {
	store := NewStore()
	store.RecordGeneration("isekai", "female", 10, 1, 5*time.Millisecond)
	store.RecordGeneration("western", "male", 5, 0, 3*time.Millisecond)

	snapshot := store.Snapshot()
	if snapshot["total_requests"].(int64) != 2 {
		t.Fatalf("expected 2 requests, got %v", snapshot["total_requests"])
	}
	if snapshot["total_names"].(int64) != 15 {
		t.Fatalf("expected 15 names, got %v", snapshot["total_names"])
	}
	if snapshot["total_fallbacks"].(int64) != 1 {
		t.Fatalf("expected 1 fallback, got %v", snapshot["total_fallbacks"])
	}

	byStyle := snapshot["names_by_style"].(map[string]int64)
	if byStyle["isekai"] != 10 || byStyle["western"] != 5 {
		t.Fatalf("unexpected style counts: %v", byStyle)
	}
}

func TestStoreConcurrentRecording(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.RecordGeneration("mixed", "female", 1, 0, time.Millisecond)
		}()
	}
	wg.Wait()

	snapshot := store.Snapshot()
	if snapshot["total_requests"].(int64) != 50 {
		t.Fatalf("expected 50 requests, got %v", snapshot["total_requests"])
	}
}
