package namegen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"gopkg.in/yaml.v3"
)

// 조합형 이름 검열 룰팩. 음절 조합이 우연히 만들어내는 부적절한
// 이름(욕설, 비하 표현 등)을 걸러내기 위한 규칙 집합이다.
type rawScreenPack struct {
	Version   int             `yaml:"version"`
	Threshold float64         `yaml:"threshold"`
	Rules     []rawScreenRule `yaml:"rules"`
}

type rawScreenRule struct {
	ID      string   `yaml:"id"`
	Type    string   `yaml:"type"`
	Pattern string   `yaml:"pattern"`
	Phrases []string `yaml:"phrases"`
	Weight  float64  `yaml:"weight"`
}

type screenRegexRule struct {
	ID      string
	Pattern *regexp.Regexp
	Weight  float64
}

type compiledScreenPack struct {
	Threshold     float64
	RegexRules    []screenRegexRule
	PhraseMatcher *ahocorasick.Matcher
	Phrases       []string
	PhraseWeights map[string]float64
}

func loadScreenPacks(dir string, logger *slog.Logger) []compiledScreenPack {
	paths := findScreenPackFiles(dir)
	if len(paths) == 0 {
		if logger != nil {
			logger.Warn("screen_rulepacks_not_found", "dir", dir)
		}
		return nil
	}

	packs := make([]compiledScreenPack, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if logger != nil {
				logger.Warn("screen_rulepack_read_failed", "path", path, "err", err)
			}
			continue
		}

		var raw rawScreenPack
		if err := yaml.Unmarshal(data, &raw); err != nil {
			if logger != nil {
				logger.Warn("screen_rulepack_parse_failed", "path", path, "err", err)
			}
			continue
		}

		pack, err := compileScreenPack(raw, logger)
		if err != nil {
			if logger != nil {
				logger.Warn("screen_rulepack_compile_failed", "path", path, "err", err)
			}
			continue
		}
		packs = append(packs, pack)
	}

	return packs
}

func findScreenPackFiles(dir string) []string {
	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	return files
}

func compileScreenPack(raw rawScreenPack, logger *slog.Logger) (compiledScreenPack, error) {
	if raw.Version == 0 {
		raw.Version = 1
	}
	if raw.Threshold == 0 {
		raw.Threshold = 1.0
	}

	var regexes []screenRegexRule
	phrases := make([]string, 0)
	phraseWeights := make(map[string]float64)

	for _, rule := range raw.Rules {
		switch strings.ToLower(strings.TrimSpace(rule.Type)) {
		case "regex":
			if rule.ID == "" || rule.Pattern == "" {
				return compiledScreenPack{}, fmt.Errorf("invalid regex rule")
			}
			pattern, err := regexp.Compile("(?i)" + rule.Pattern)
			if err != nil {
				if logger != nil {
					logger.Warn("screen_rulepack_regex_invalid", "rule_id", rule.ID, "err", err)
				}
				continue
			}
			regexes = append(regexes, screenRegexRule{
				ID:      rule.ID,
				Pattern: pattern,
				Weight:  rule.Weight,
			})
		case "phrases":
			if rule.ID == "" || len(rule.Phrases) == 0 {
				return compiledScreenPack{}, fmt.Errorf("invalid phrases rule")
			}
			for _, phrase := range rule.Phrases {
				value := strings.ToLower(phrase)
				phrases = append(phrases, value)
				phraseWeights[value] = rule.Weight
			}
		default:
			return compiledScreenPack{}, fmt.Errorf("unknown rule type: %s", rule.Type)
		}
	}

	var matcher *ahocorasick.Matcher
	if len(phrases) > 0 {
		patterns := make([][]byte, 0, len(phrases))
		for _, phrase := range phrases {
			patterns = append(patterns, []byte(phrase))
		}
		matcher = ahocorasick.NewMatcher(patterns)
	}

	return compiledScreenPack{
		Threshold:     raw.Threshold,
		RegexRules:    regexes,
		PhraseMatcher: matcher,
		Phrases:       phrases,
		PhraseWeights: phraseWeights,
	}, nil
}
