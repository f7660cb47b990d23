package namegen

import "github.com/haneul-labs/namegen-server-go/internal/randx"

// classMutationOdds 는 클래스 기반 이름에 중간 음절을 삽입할 확률이다.
const classMutationOdds = 0.3

// classNameFor 는 클래스 특화 이름을 생성한다.
// 알 수 없는 클래스는 isekai 이름으로 대체하고 fallback 을 표시한다.
func classNameFor(rng *randx.LockedRand, lex *Lexicon, class string, gender Gender) (string, bool) {
	bases, ok := lex.classes[class]
	if !ok {
		return randx.Pick(rng, lex.fullNames(StyleIsekai, gender)), true
	}

	base := randx.Pick(rng, bases)
	if rng.Chance(classMutationOdds) {
		return insertMiddleSyllable(rng, lex, base), false
	}
	return base, false
}

// insertMiddleSyllable 는 기반 이름의 앞 두 글자 뒤에 중간 음절 하나를 삽입한다.
// 예: "미스틱" + "라" → "미스라틱"
func insertMiddleSyllable(rng *randx.LockedRand, lex *Lexicon, base string) string {
	runes := []rune(base)
	if len(runes) < 2 {
		return base
	}
	syllable := randx.Pick(rng, lex.syllables.Middle)
	return string(runes[:2]) + syllable + string(runes[2:])
}
