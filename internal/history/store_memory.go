package history

import "time"

// recordMemory 메모리 백엔드 기록
func (s *Store) recordMemory(entries ...Entry) error {
	now := time.Now()
	expiresAt := s.computeExpiry(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneExpiredLocked(now)

	for _, entry := range entries {
		keys := []string{s.styleKey(entry.Style)}
		if allKey := s.styleKey(styleAll); allKey != keys[0] {
			keys = append(keys, allKey)
		}
		for _, key := range keys {
			existing := append(s.entries[key], entry)
			if s.cfg.MaxEntries > 0 && len(existing) > s.cfg.MaxEntries {
				existing = existing[len(existing)-s.cfg.MaxEntries:]
			}
			s.entries[key] = existing
			if !expiresAt.IsZero() {
				s.expiresAt[key] = expiresAt
			} else {
				delete(s.expiresAt, key)
			}
		}
	}
	return nil
}

// recentMemory 메모리 백엔드 최근 이름 조회
func (s *Store) recentMemory(style string, limit int) []Entry {
	now := time.Now()
	key := s.styleKey(style)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneExpiredLocked(now)

	entries := s.entries[key]
	if len(entries) == 0 {
		return nil
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return append([]Entry(nil), entries...)
}

// styleCountMemory 메모리 백엔드 키 수 조회
func (s *Store) styleCountMemory() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneExpiredLocked(now)
	return len(s.entries)
}

// computeExpiry TTL 기반 만료 시간 계산
func (s *Store) computeExpiry(now time.Time) time.Time {
	ttl := s.ttl()
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// pruneExpiredLocked 만료된 키 정리 (락 보유 상태에서 호출)
func (s *Store) pruneExpiredLocked(now time.Time) {
	for key, expiresAt := range s.expiresAt {
		if expiresAt.IsZero() || now.Before(expiresAt) {
			continue
		}
		delete(s.expiresAt, key)
		delete(s.entries, key)
	}
}
