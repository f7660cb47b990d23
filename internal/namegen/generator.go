package namegen

import (
	"log/slog"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/randx"
	"github.com/haneul-labs/namegen-server-go/internal/textnorm"
)

// mixedStyles 는 mixed 단일 생성 시 추첨 대상 스타일이다.
var mixedStyles = []Style{StyleIsekai, StyleWestern, StyleComposed}

// dispatchRule 은 우선순위 디스패치 테이블의 한 행이다.
// applies 가 참인 첫 번째 규칙의 handle 이 실행된다.
type dispatchRule struct {
	name    string
	applies func(Request) bool
	handle  func(Request) Result
}

// Generator 는 스타일별 생성기를 묶는 통합 이름 생성기다.
// 모든 난수는 주입된 LockedRand 에서 나오므로 고루틴 안전하다.
type Generator struct {
	lex      *Lexicon
	rng      *randx.LockedRand
	screen   *NameScreen
	cfg      config.GeneratorConfig
	logger   *slog.Logger
	dispatch []dispatchRule
}

// NewGenerator 는 이름 생성기를 만든다. screen 은 nil 이어도 된다.
func NewGenerator(
	lex *Lexicon,
	rng *randx.LockedRand,
	screen *NameScreen,
	cfg config.GeneratorConfig,
	logger *slog.Logger,
) *Generator {
	g := &Generator{
		lex:    lex,
		rng:    rng,
		screen: screen,
		cfg:    cfg,
		logger: logger,
	}

	// 우선순위: 클래스 > 속성 > 스타일
	g.dispatch = []dispatchRule{
		{
			name:    "class",
			applies: func(req Request) bool { return req.CharacterClass != "" },
			handle:  g.generateByClass,
		},
		{
			name:    "element",
			applies: func(req Request) bool { return req.Element != "" },
			handle:  g.generateByElement,
		},
		{
			name:    "style",
			applies: func(Request) bool { return true },
			handle: func(req Request) Result {
				return g.generateByStyle(req.Style, req.Gender)
			},
		},
	}
	return g
}

// Lexicon 은 로드된 어휘 테이블을 반환한다.
func (g *Generator) Lexicon() *Lexicon {
	return g.lex
}

// Generate 는 요청에 맞는 단일 이름을 생성한다. 실패하지 않는다.
func (g *Generator) Generate(req Request) Result {
	req = g.applyDefaults(req)

	for _, rule := range g.dispatch {
		if rule.applies(req) {
			return rule.handle(req)
		}
	}
	// 마지막 규칙이 항상 참이므로 도달하지 않는다.
	return g.generateByStyle(req.Style, req.Gender)
}

func (g *Generator) applyDefaults(req Request) Request {
	if req.Style == "" {
		req.Style = ParseStyle(g.cfg.DefaultStyle)
	}
	if req.Gender == "" {
		req.Gender = ParseGender(g.cfg.DefaultGender)
	}
	req.CharacterClass = textnorm.Normalize(req.CharacterClass)
	req.Element = textnorm.NormalizeKey(req.Element)
	return req
}

func (g *Generator) generateByClass(req Request) Result {
	name, fallback := classNameFor(g.rng, g.lex, req.CharacterClass, req.Gender)
	style := StyleClass
	if fallback {
		style = StyleIsekai
		if g.logger != nil {
			g.logger.Debug("unknown_class_fallback", "class", req.CharacterClass)
		}
	}
	return Result{Name: name, Style: style, UsedFallback: fallback}
}

func (g *Generator) generateByElement(req Request) Result {
	name, fallback := elementalNameFor(g.rng, g.lex, req.Element, req.Gender)
	style := StyleElemental
	if fallback {
		style = StyleIsekai
		if g.logger != nil {
			g.logger.Debug("unknown_element_fallback", "element", req.Element)
		}
	}
	return Result{Name: name, Style: style, UsedFallback: fallback}
}

func (g *Generator) generateByStyle(style Style, gender Gender) Result {
	switch style {
	case StyleIsekai, StyleWestern:
		return Result{Name: randx.Pick(g.rng, g.lex.fullNames(style, gender)), Style: style}
	case StyleComposed:
		return Result{Name: g.composeScreened(gender), Style: StyleComposed}
	case StyleNoble:
		first, surname := nobleName(g.rng, g.lex, gender)
		return Result{Name: FormatNobleName(first, surname), Style: StyleNoble}
	case StyleElemental:
		element := randx.Pick(g.rng, g.lex.ElementKeys())
		name, _ := elementalNameFor(g.rng, g.lex, element, gender)
		return Result{Name: name, Style: StyleElemental}
	default:
		// mixed (그리고 클래스 지정 없는 class 스타일): 랜덤 스타일 재추첨
		return g.generateByStyle(randx.Pick(g.rng, mixedStyles), gender)
	}
}

// composeScreened 는 조합형 이름을 만들고, 검열에 걸리면 제한 횟수까지
// 다시 뽑는다. 마지막 시도는 검열 결과와 무관하게 반환된다.
func (g *Generator) composeScreened(gender Gender) string {
	attempts := g.cfg.ComposedRerollMax
	if attempts < 1 {
		attempts = 1
	}

	name := composeName(g.rng, g.lex, gender)
	if g.screen == nil {
		return name
	}

	for attempt := 0; attempt < attempts && g.screen.Flagged(name); attempt++ {
		if g.logger != nil {
			g.logger.Debug("composed_name_rerolled", "name", name, "attempt", attempt+1)
		}
		name = composeName(g.rng, g.lex, gender)
	}
	return name
}
