// Package history 는 최근 생성된 이름의 기록 저장소다.
// Valkey 백엔드를 기본으로 하고, 비활성 시 메모리 백엔드로 동작한다.
package history

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	"github.com/haneul-labs/namegen-server-go/internal/config"
)

var (
	// ErrStoreDisabled 는 저장소 비활성 오류다.
	ErrStoreDisabled = errors.New("history store disabled")
)

type storeBackend int

const (
	storeBackendMemory storeBackend = iota
	storeBackendValkey
)

// styleAll 은 스타일 미지정 조회용 통합 키다.
const styleAll = "all"

// Entry 는 기록된 이름 한 건이다.
type Entry struct {
	Name         string    `json:"name"`
	Style        string    `json:"style"`
	Gender       string    `json:"gender"`
	UsedFallback bool      `json:"used_fallback,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store 는 Valkey 기반 최근 이름 저장소다.
type Store struct {
	client  valkey.Client
	cfg     config.HistoryConfig
	enabled bool
	backend storeBackend

	mu        sync.Mutex
	entries   map[string][]Entry
	expiresAt map[string]time.Time
}

// NewStore 는 이름 기록 저장소를 생성한다.
// 비활성이면 메모리 백엔드로 대체하되, Required 설정이면 실패한다.
func NewStore(cfg config.HistoryConfig) (*Store, error) {
	if !cfg.Enabled {
		if cfg.Required {
			return nil, errors.New("history store required but disabled")
		}
		return newMemoryStore(cfg), nil
	}

	conn, err := parseStoreURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse history store url: %w", err)
	}

	var tlsConfig *tls.Config
	if conn.useTLS {
		host, _, splitErr := net.SplitHostPort(conn.addr)
		if splitErr != nil {
			return nil, fmt.Errorf("parse history store addr: %w", splitErr)
		}
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12, ServerName: host}
	}

	client, err := valkey.NewClient(valkey.ClientOption{
		TLSConfig:    tlsConfig,
		Username:     conn.username,
		Password:     conn.password,
		InitAddress:  []string{conn.addr},
		SelectDB:     conn.selectDB,
		DisableCache: cfg.DisableCache,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to valkey: %w", err)
	}

	return &Store{
		client:  client,
		cfg:     cfg,
		enabled: true,
		backend: storeBackendValkey,
	}, nil
}

func newMemoryStore(cfg config.HistoryConfig) *Store {
	return &Store{
		cfg:       cfg,
		enabled:   true,
		backend:   storeBackendMemory,
		entries:   make(map[string][]Entry),
		expiresAt: make(map[string]time.Time),
	}
}

// IsEnabled 는 저장소 활성화 여부를 반환한다.
func (s *Store) IsEnabled() bool {
	return s.enabled
}

// Close 는 Valkey 연결을 종료한다.
func (s *Store) Close() {
	if s == nil {
		return
	}
	if s.backend == storeBackendValkey && s.client != nil {
		s.client.Close()
	}
}

// styleKey 스타일별 최근 이름 리스트 키
func (s *Store) styleKey(style string) string {
	if style == "" {
		style = styleAll
	}
	return fmt.Sprintf("names:recent:%s", style)
}

func (s *Store) ttl() time.Duration {
	return time.Duration(s.cfg.TTLMinutes) * time.Minute
}

// Record 는 생성된 이름을 스타일별 키와 통합 키에 동시에 기록한다.
// RPUSH + EXPIRE + LTRIM 을 키당 한 번씩 묶어 1 RTT 로 처리한다.
func (s *Store) Record(ctx context.Context, entries ...Entry) error {
	if !s.enabled {
		return ErrStoreDisabled
	}
	if len(entries) == 0 {
		return nil
	}
	if s.backend == storeBackendMemory {
		return s.recordMemory(entries...)
	}

	// 스타일별로 그룹화한 뒤 통합 키에도 같은 항목을 넣는다
	grouped := make(map[string][]string)
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal history entry: %w", err)
		}
		payload, err := encodePayload(data, s.cfg.CompressMinBytes)
		if err != nil {
			return fmt.Errorf("encode history entry: %w", err)
		}
		styleKey := s.styleKey(entry.Style)
		grouped[styleKey] = append(grouped[styleKey], payload)
		if allKey := s.styleKey(styleAll); allKey != styleKey {
			grouped[allKey] = append(grouped[allKey], payload)
		}
	}

	cmds := make([]valkey.Completed, 0, len(grouped)*3)
	for key, elements := range grouped {
		cmds = append(cmds, s.client.B().Rpush().Key(key).Element(elements...).Build())
		cmds = append(cmds, s.client.B().Expire().Key(key).Seconds(int64(s.ttl().Seconds())).Build())
		if s.cfg.MaxEntries > 0 {
			cmds = append(cmds, s.client.B().Ltrim().Key(key).Start(int64(-s.cfg.MaxEntries)).Stop(-1).Build())
		}
	}

	results := s.client.DoMulti(ctx, cmds...)
	for _, result := range results {
		if err := result.Error(); err != nil {
			return fmt.Errorf("record history: %w", err)
		}
	}
	return nil
}

// Recent 는 해당 스타일의 최근 이름을 오래된 순으로 반환한다.
// style 이 비어 있으면 통합 키에서 읽는다.
func (s *Store) Recent(ctx context.Context, style string, limit int) ([]Entry, error) {
	if !s.enabled {
		return nil, ErrStoreDisabled
	}
	if limit <= 0 || limit > s.cfg.MaxEntries {
		limit = s.cfg.MaxEntries
	}
	if s.backend == storeBackendMemory {
		return s.recentMemory(style, limit), nil
	}

	cmd := s.client.B().Lrange().Key(s.styleKey(style)).Start(int64(-limit)).Stop(-1).Build()
	results, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("get recent names: %w", err)
	}

	entries := make([]Entry, 0, len(results))
	for _, item := range results {
		data, err := decodePayload([]byte(item))
		if err != nil {
			continue // skip invalid entries
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// StyleCount 는 기록된 스타일 키 수를 SCAN 으로 근사 집계한다.
func (s *Store) StyleCount(ctx context.Context) (int, error) {
	if !s.enabled {
		return 0, nil
	}
	if s.backend == storeBackendMemory {
		return s.styleCountMemory(), nil
	}

	var count int
	var cursor uint64
	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match("names:recent:*").Count(100).Build()
		result, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return 0, fmt.Errorf("scan history keys: %w", err)
		}
		count += len(result.Elements)
		cursor = result.Cursor
		if cursor == 0 {
			break
		}
	}
	return count, nil
}

// Ping Valkey 연결 확인
func (s *Store) Ping(ctx context.Context) error {
	if !s.enabled {
		return ErrStoreDisabled
	}
	if s.backend == storeBackendMemory {
		return nil
	}

	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping valkey: %w", err)
	}
	return nil
}
