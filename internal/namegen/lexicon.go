package namegen

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/goccy/go-json"
)

//go:embed lexicons/*.json
var lexiconsFS embed.FS

// genderedNames JSON 파싱용 중간 구조체.
type genderedNames struct {
	Female []string `json:"female"`
	Male   []string `json:"male"`
}

// syllableTable 은 조합형 이름의 음절 슬롯이다.
type syllableTable struct {
	Prefix       []string `json:"prefix"`
	Middle       []string `json:"middle"`
	FemaleSuffix []string `json:"female_suffix"`
	MaleSuffix   []string `json:"male_suffix"`
}

// elementTable 은 속성별 기반 이름과 별칭, 성별 어미다.
type elementTable struct {
	Names       map[string][]string `json:"names"`
	Aliases     map[string]string   `json:"aliases"`
	FemaleTails []string            `json:"female_tails"`
	MaleTails   []string            `json:"male_tails"`
}

type nobleTable struct {
	Surnames []string `json:"surnames"`
}

type traitTable struct {
	Personalities []string `json:"personalities"`
	BatchClasses  []string `json:"batch_classes"`
}

// Lexicon 은 임베드된 어휘 테이블 전체를 보관한다.
// 로드 이후 불변이며 여러 고루틴에서 공유해도 안전하다.
type Lexicon struct {
	isekai    genderedNames
	western   genderedNames
	syllables syllableTable
	classes   map[string][]string
	elements  elementTable
	nobles    nobleTable
	traits    traitTable
}

// LoadLexicon 은 임베드된 JSON 테이블을 로드하고 검증한다.
// 참조되는 목록이 하나라도 비어 있으면 실패한다.
func LoadLexicon() (*Lexicon, error) {
	lex := &Lexicon{}

	if err := readLexiconFile("isekai.json", &lex.isekai); err != nil {
		return nil, err
	}
	if err := readLexiconFile("western.json", &lex.western); err != nil {
		return nil, err
	}
	if err := readLexiconFile("syllables.json", &lex.syllables); err != nil {
		return nil, err
	}
	if err := readLexiconFile("classes.json", &lex.classes); err != nil {
		return nil, err
	}
	if err := readLexiconFile("elements.json", &lex.elements); err != nil {
		return nil, err
	}
	if err := readLexiconFile("nobles.json", &lex.nobles); err != nil {
		return nil, err
	}
	if err := readLexiconFile("traits.json", &lex.traits); err != nil {
		return nil, err
	}

	if err := lex.validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

func readLexiconFile(filename string, target any) error {
	data, err := fs.ReadFile(lexiconsFS, "lexicons/"+filename)
	if err != nil {
		return fmt.Errorf("read lexicon %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("unmarshal lexicon %s: %w", filename, err)
	}
	return nil
}

func (l *Lexicon) validate() error {
	checks := []struct {
		name string
		size int
	}{
		{"isekai.female", len(l.isekai.Female)},
		{"isekai.male", len(l.isekai.Male)},
		{"western.female", len(l.western.Female)},
		{"western.male", len(l.western.Male)},
		{"syllables.prefix", len(l.syllables.Prefix)},
		{"syllables.middle", len(l.syllables.Middle)},
		{"syllables.female_suffix", len(l.syllables.FemaleSuffix)},
		{"syllables.male_suffix", len(l.syllables.MaleSuffix)},
		{"classes", len(l.classes)},
		{"elements.names", len(l.elements.Names)},
		{"elements.aliases", len(l.elements.Aliases)},
		{"elements.female_tails", len(l.elements.FemaleTails)},
		{"elements.male_tails", len(l.elements.MaleTails)},
		{"nobles.surnames", len(l.nobles.Surnames)},
		{"traits.personalities", len(l.traits.Personalities)},
		{"traits.batch_classes", len(l.traits.BatchClasses)},
	}
	for _, check := range checks {
		if check.size == 0 {
			return fmt.Errorf("lexicon list is empty: %s", check.name)
		}
	}

	for key, names := range l.classes {
		if len(names) == 0 {
			return fmt.Errorf("lexicon class has no names: %s", key)
		}
	}
	for key, names := range l.elements.Names {
		if len(names) == 0 {
			return fmt.Errorf("lexicon element has no names: %s", key)
		}
	}
	for alias, target := range l.elements.Aliases {
		if _, ok := l.elements.Names[target]; !ok {
			return fmt.Errorf("element alias %s points to unknown element: %s", alias, target)
		}
	}
	return nil
}

// fullNames 는 스타일과 성별에 맞는 전체 이름 목록을 반환한다.
func (l *Lexicon) fullNames(style Style, gender Gender) []string {
	var table genderedNames
	switch style {
	case StyleWestern:
		table = l.western
	default:
		table = l.isekai
	}
	if gender == GenderMale {
		return table.Male
	}
	return table.Female
}

// ResolveElement 는 한글/영문 속성 별칭을 정규 키로 변환한다.
func (l *Lexicon) ResolveElement(element string) (string, bool) {
	if element == "" {
		return "", false
	}
	if target, ok := l.elements.Aliases[element]; ok {
		return target, true
	}
	if _, ok := l.elements.Names[element]; ok {
		return element, true
	}
	return "", false
}

// ElementKeys 는 정규 속성 키 목록을 정렬된 순서로 반환한다.
func (l *Lexicon) ElementKeys() []string {
	keys := make([]string, 0, len(l.elements.Names))
	for key := range l.elements.Names {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ClassKeys 는 클래스 키 목록을 반환한다.
func (l *Lexicon) ClassKeys() []string {
	keys := make([]string, 0, len(l.classes))
	for key := range l.classes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Counts 는 헬스체크용 목록 크기 요약을 반환한다.
func (l *Lexicon) Counts() map[string]int {
	return map[string]int{
		"isekai_female":   len(l.isekai.Female),
		"isekai_male":     len(l.isekai.Male),
		"western_female":  len(l.western.Female),
		"western_male":    len(l.western.Male),
		"syllable_prefix": len(l.syllables.Prefix),
		"syllable_middle": len(l.syllables.Middle),
		"classes":         len(l.classes),
		"elements":        len(l.elements.Names),
		"noble_surnames":  len(l.nobles.Surnames),
		"personalities":   len(l.traits.Personalities),
	}
}
