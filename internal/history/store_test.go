package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/valkey-io/valkey-go"

	"github.com/haneul-labs/namegen-server-go/internal/config"
)

func newTestStore(t *testing.T, maxEntries int) (*Store, *miniredis.Miniredis) {
	mini := miniredis.RunT(t)
	cfg := config.HistoryConfig{
		URL:          "redis://" + mini.Addr(),
		Enabled:      true,
		DisableCache: true,
		TTLMinutes:   1,
		MaxEntries:   maxEntries,
	}
	store, err := NewStore(cfg)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		mini.Close()
	})
	return store, mini
}

func testEntry(name string, style string) Entry {
	return Entry{
		Name:      name,
		Style:     style,
		Gender:    "female",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewStoreRequiredButDisabled(t *testing.T) {
	cfg := config.HistoryConfig{Enabled: false, Required: true}
	if _, err := NewStore(cfg); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewStoreFallsBackToMemory(t *testing.T) {
	cfg := config.HistoryConfig{Enabled: false, TTLMinutes: 1, MaxEntries: 10}
	store, err := NewStore(cfg)
	if err != nil {
		t.Fatalf("expected memory store, got error: %v", err)
	}

	if err := store.Record(context.Background(), testEntry("에밀리아", "isekai")); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := store.Recent(context.Background(), "isekai", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "에밀리아" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	all, err := store.Recent(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected entry in combined key, got %d", len(all))
	}
}

func TestNewStoreMiniredisRequiresDisableCache(t *testing.T) {
	mini := miniredis.RunT(t)
	cfg := config.HistoryConfig{
		URL:          "redis://" + mini.Addr(),
		Enabled:      true,
		DisableCache: false,
		TTLMinutes:   1,
		MaxEntries:   10,
	}
	if _, err := NewStore(cfg); err == nil {
		t.Fatalf("expected error")
	} else if !errors.Is(err, valkey.ErrNoCache) {
		t.Fatalf("expected valkey.ErrNoCache, got: %v", err)
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store, _ := newTestStore(t, 10)

	entries := []Entry{
		testEntry("에밀리아", "isekai"),
		testEntry("간달프", "western"),
		testEntry("아리나", "composed"),
	}
	if err := store.Record(context.Background(), entries...); err != nil {
		t.Fatalf("record: %v", err)
	}

	isekai, err := store.Recent(context.Background(), "isekai", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(isekai) != 1 || isekai[0].Name != "에밀리아" {
		t.Fatalf("unexpected isekai entries: %+v", isekai)
	}

	all, err := store.Recent(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 combined entries, got %d", len(all))
	}
}

func TestStoreTrimsToMaxEntries(t *testing.T) {
	store, _ := newTestStore(t, 2)

	for _, name := range []string{"하나", "둘", "셋"} {
		if err := store.Record(context.Background(), testEntry(name, "isekai")); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := store.Recent(context.Background(), "isekai", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected trimmed list, got %d", len(entries))
	}
	if entries[0].Name != "둘" || entries[1].Name != "셋" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store, _ := newTestStore(t, 10)

	for _, name := range []string{"하나", "둘", "셋", "넷"} {
		if err := store.Record(context.Background(), testEntry(name, "composed")); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := store.Recent(context.Background(), "composed", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "셋" || entries[1].Name != "넷" {
		t.Fatalf("expected newest entries, got %+v", entries)
	}
}

func TestStoreStyleCountAndPing(t *testing.T) {
	store, _ := newTestStore(t, 10)

	if err := store.Record(context.Background(), testEntry("에밀리아", "isekai")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := store.Record(context.Background(), testEntry("간달프", "western")); err != nil {
		t.Fatalf("record: %v", err)
	}

	// isekai + western + all
	count, err := store.StyleCount(context.Background())
	if err != nil {
		t.Fatalf("style count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 keys, got %d", count)
	}

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}
