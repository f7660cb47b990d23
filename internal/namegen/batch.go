package namegen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/haneul-labs/namegen-server-go/internal/randx"
)

// DefaultBatchSize 는 카테고리별 배치의 기본 개수다.
const DefaultBatchSize = 5

// multiStyles 는 mixed 배치 생성 시 레코드마다 추첨하는 스타일이다.
var multiStyles = []Style{StyleIsekai, StyleWestern, StyleComposed, StyleElemental, StyleNoble}

// GenerateMultiple 은 상세 메타데이터가 붙은 이름 목록을 생성한다.
// count 가 0 이하이면 기본 개수를 쓰고, 최대 배치 크기로 잘린다.
func (g *Generator) GenerateMultiple(count int, gender Gender, style Style) []CharacterDetail {
	if count <= 0 {
		count = g.cfg.DefaultCount
	}
	if count > g.cfg.MaxBatchSize {
		count = g.cfg.MaxBatchSize
	}
	if gender == "" {
		gender = ParseGender(g.cfg.DefaultGender)
	}
	if style == "" {
		style = ParseStyle(g.cfg.DefaultStyle)
	}

	results := make([]CharacterDetail, 0, count)
	for i := 0; i < count; i++ {
		currentStyle := style
		if style == StyleMixed {
			currentStyle = randx.Pick(g.rng, multiStyles)
		}

		var element string
		if g.rng.Chance(g.cfg.BatchElementOdds) {
			element = randx.Pick(g.rng, g.lex.ElementKeys())
		}

		var class string
		if g.rng.Chance(g.cfg.BatchClassOdds) {
			class = randx.Pick(g.rng, g.lex.traits.BatchClasses)
		}

		result := g.Generate(Request{
			Style:          currentStyle,
			Gender:         gender,
			CharacterClass: class,
			Element:        element,
		})

		detail := CharacterDetail{
			Name:           result.Name,
			Gender:         gender,
			Style:          currentStyle,
			CharacterClass: class,
			Element:        element,
			Personality:    randx.Pick(g.rng, g.lex.traits.Personalities),
		}
		if detail.CharacterClass == "" {
			detail.CharacterClass = DefaultCharacterClass
		}
		if detail.Element == "" {
			detail.Element = DefaultElement
		}
		results = append(results, detail)
	}
	return results
}

// BatchByCategories 는 네 가지 카테고리의 이름 묶음을 생성한다.
// 카테고리별 버킷은 동시에 채워진다.
func (g *Generator) BatchByCategories(ctx context.Context, countPerCategory int) map[string]any {
	if countPerCategory <= 0 {
		countPerCategory = DefaultBatchSize
	}
	if countPerCategory > g.cfg.MaxBatchSize {
		countPerCategory = g.cfg.MaxBatchSize
	}

	var (
		isekai   []BatchCharacterInfo
		western  []BatchCharacterInfo
		composed []BatchCharacterInfo
		noble    []NobleFamilyInfo
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		isekai = g.batchNames(countPerCategory, StyleIsekai, CategoryIsekaiAnime, originIsekai)
		return nil
	})
	group.Go(func() error {
		western = g.batchNames(countPerCategory, StyleWestern, CategoryWesternFantasy, originWestern)
		return nil
	})
	group.Go(func() error {
		composed = g.batchNames(countPerCategory, StyleComposed, CategoryComposed, originComposed)
		return nil
	})
	group.Go(func() error {
		noble = g.batchNobleFamilies(countPerCategory)
		return nil
	})
	_ = group.Wait()

	return map[string]any{
		CategoryIsekaiAnime:    isekai,
		CategoryWesternFantasy: western,
		CategoryComposed:       composed,
		CategoryNobleFamily:    noble,
	}
}

func (g *Generator) batchNames(count int, style Style, category string, origin string) []BatchCharacterInfo {
	items := make([]BatchCharacterInfo, 0, count)
	for i := 0; i < count; i++ {
		gender := GenderFemale
		if g.rng.Chance(0.5) {
			gender = GenderMale
		}
		result := g.generateByStyle(style, gender)
		items = append(items, BatchCharacterInfo{
			Name:   result.Name,
			Type:   category,
			Origin: origin,
		})
	}
	return items
}

// batchNobleFamilies 는 영주/영부인이 성씨를 공유하는 가문 항목을 만든다.
func (g *Generator) batchNobleFamilies(count int) []NobleFamilyInfo {
	items := make([]NobleFamilyInfo, 0, count)
	for i := 0; i < count; i++ {
		lordFirst, surname := nobleName(g.rng, g.lex, GenderMale)
		ladyFirst, _ := nobleName(g.rng, g.lex, GenderFemale)
		items = append(items, NobleFamilyInfo{
			FamilyName: surname,
			Lord:       FormatNobleName(lordFirst, surname),
			Lady:       FormatNobleName(ladyFirst, surname),
			Type:       CategoryNobleFamily,
		})
	}
	return items
}
