package namegen

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/haneul-labs/namegen-server-go/internal/cache"
	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/textnorm"
)

// ScreenMatch 는 매칭된 검열 규칙 정보다.
type ScreenMatch struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// ScreenResult 는 이름 검열 결과다.
type ScreenResult struct {
	Score     float64       `json:"score"`
	Hits      []ScreenMatch `json:"hits"`
	Threshold float64       `json:"threshold"`
}

// Flagged 는 이름이 차단 대상인지 여부를 반환한다.
func (r ScreenResult) Flagged() bool {
	return r.Score >= r.Threshold
}

// NameScreen 은 조합형 이름을 룰팩으로 검사한다.
// 같은 이름의 중복 평가는 TTL 캐시와 singleflight 로 억제된다.
type NameScreen struct {
	cfg    config.ScreenConfig
	logger *slog.Logger
	packs  []compiledScreenPack
	cache  *cache.TTLCache[string, ScreenResult]
	group  singleflight.Group
}

// NewNameScreen 은 이름 검열기를 생성한다. 룰팩 디렉터리가 없으면
// 실행 파일 경로 기준의 rulepacks 디렉터리를 차선으로 찾는다.
func NewNameScreen(cfg config.ScreenConfig, logger *slog.Logger) *NameScreen {
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	screen := &NameScreen{
		cfg:    cfg,
		logger: logger,
		cache:  cache.NewTTLCache[string, ScreenResult](cfg.CacheMaxSize, cacheTTL),
	}

	if cfg.Enabled {
		screen.loadPacks()
	}
	return screen
}

// Evaluate 는 이름을 평가한다. 검열이 비활성화면 항상 통과한다.
func (s *NameScreen) Evaluate(name string) ScreenResult {
	if s == nil || !s.cfg.Enabled || len(s.packs) == 0 {
		return ScreenResult{Score: 0, Hits: nil, Threshold: s.threshold()}
	}

	if cached, ok := s.cache.Get(name); ok {
		return cached
	}

	value, _, _ := s.group.Do(name, func() (any, error) {
		result := s.evaluateInternal(name)
		s.cache.Set(name, result)
		return result, nil
	})

	if result, ok := value.(ScreenResult); ok {
		return result
	}
	return ScreenResult{Score: 0, Hits: nil, Threshold: s.threshold()}
}

// Flagged 는 이름이 차단 대상인지 여부를 반환한다.
func (s *NameScreen) Flagged(name string) bool {
	return s.Evaluate(name).Flagged()
}

func (s *NameScreen) loadPacks() {
	dir := s.cfg.RulepacksDir
	if dir == "" {
		dir = "rulepacks"
	}

	if len(findScreenPackFiles(dir)) == 0 {
		executable, err := os.Executable()
		if err == nil {
			fallback := filepath.Join(filepath.Dir(executable), "rulepacks")
			if len(findScreenPackFiles(fallback)) > 0 {
				dir = fallback
			}
		}
	}

	s.packs = loadScreenPacks(dir, s.logger)
	if s.logger != nil {
		s.logger.Info("name_screen_ready", "packs", len(s.packs), "threshold", s.threshold())
	}
}

func (s *NameScreen) threshold() float64 {
	if s == nil || len(s.packs) == 0 {
		return 1.0
	}
	maxThreshold := 0.0
	for _, pack := range s.packs {
		if pack.Threshold > maxThreshold {
			maxThreshold = pack.Threshold
		}
	}
	if maxThreshold > 0 {
		return maxThreshold
	}
	return 1.0
}

func (s *NameScreen) evaluateInternal(name string) ScreenResult {
	normalized := textnorm.Normalize(name)
	score, hits := s.evaluatePacks(normalized)
	return ScreenResult{Score: score, Hits: hits, Threshold: s.threshold()}
}

func (s *NameScreen) evaluatePacks(text string) (float64, []ScreenMatch) {
	total := 0.0
	hits := make([]ScreenMatch, 0)
	textLower := strings.ToLower(text)

	for _, pack := range s.packs {
		for _, rule := range pack.RegexRules {
			if rule.Pattern.MatchString(text) {
				total += rule.Weight
				hits = append(hits, ScreenMatch{ID: rule.ID, Weight: rule.Weight})
			}
		}

		if pack.PhraseMatcher == nil {
			continue
		}
		matches := pack.PhraseMatcher.MatchThreadSafe([]byte(textLower))
		for _, index := range matches {
			if index < 0 || index >= len(pack.Phrases) {
				continue
			}
			phrase := pack.Phrases[index]
			weight := pack.PhraseWeights[phrase]
			if weight <= 0 {
				continue
			}
			total += weight
			hits = append(hits, ScreenMatch{ID: "phrase:" + phrase, Weight: weight})
		}
	}

	return total, hits
}
