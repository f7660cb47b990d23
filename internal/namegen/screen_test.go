package namegen

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/randx"
)

func writeRulepack(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write rulepack: %v", err)
	}
	return dir
}

func testScreenConfig(dir string) config.ScreenConfig {
	return config.ScreenConfig{
		Enabled:         true,
		RulepacksDir:    dir,
		CacheMaxSize:    100,
		CacheTTLSeconds: 60,
	}
}

func TestNameScreenFlagsPhrase(t *testing.T) {
	dir := writeRulepack(t, `
version: 1
threshold: 1.0
rules:
  - id: blocked_names
    type: phrases
    weight: 1.0
    phrases:
      - "아리나"
`)
	screen := NewNameScreen(testScreenConfig(dir), nil)

	if !screen.Flagged("아리나") {
		t.Fatalf("expected phrase match to flag")
	}
	if screen.Flagged("에밀리아") {
		t.Fatalf("unexpected flag for clean name")
	}
}

func TestNameScreenFlagsRegex(t *testing.T) {
	dir := writeRulepack(t, `
version: 1
threshold: 1.0
rules:
  - id: repeated_syllable
    type: regex
    pattern: "(아리){2,}"
    weight: 1.0
`)
	screen := NewNameScreen(testScreenConfig(dir), nil)

	if !screen.Flagged("아리아리") {
		t.Fatalf("expected regex match to flag")
	}
	if screen.Flagged("아리아") {
		t.Fatalf("unexpected flag for single occurrence")
	}
}

func TestNameScreenDisabledPassesEverything(t *testing.T) {
	screen := NewNameScreen(config.ScreenConfig{Enabled: false, CacheMaxSize: 10, CacheTTLSeconds: 60}, nil)

	if screen.Flagged("아무이름") {
		t.Fatalf("disabled screen must not flag")
	}
}

func TestNameScreenCachesResult(t *testing.T) {
	dir := writeRulepack(t, `
version: 1
threshold: 1.0
rules:
  - id: blocked_names
    type: phrases
    weight: 1.0
    phrases:
      - "아리나"
`)
	screen := NewNameScreen(testScreenConfig(dir), nil)

	first := screen.Evaluate("아리나")
	second := screen.Evaluate("아리나")
	if first.Score != second.Score || first.Flagged() != second.Flagged() {
		t.Fatalf("cached evaluation diverged: %+v vs %+v", first, second)
	}
}

func TestComposedRerollIsBounded(t *testing.T) {
	// 모든 이름을 차단하는 룰팩이어도 생성은 실패하지 않는다
	dir := writeRulepack(t, `
version: 1
threshold: 1.0
rules:
  - id: block_everything
    type: regex
    pattern: ".+"
    weight: 1.0
`)
	lex, err := LoadLexicon()
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	screen := NewNameScreen(testScreenConfig(dir), nil)
	rng := randx.New(rand.New(rand.NewPCG(1, 1)))
	gen := NewGenerator(lex, rng, screen, testGeneratorConfig(), nil)

	result := gen.Generate(Request{Style: StyleComposed, Gender: GenderFemale})
	if result.Name == "" {
		t.Fatalf("composed generation must not fail under a blocking rulepack")
	}
}
