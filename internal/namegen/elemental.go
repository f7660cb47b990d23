package namegen

import "github.com/haneul-labs/namegen-server-go/internal/randx"

// elementTailOdds 는 속성 기반 이름에 성별 어미를 붙일 확률이다.
const elementTailOdds = 0.5

// elementalNameFor 는 속성 특화 이름을 생성한다.
// element 는 한글/영문 별칭 모두 허용하며, 알 수 없는 속성은
// isekai 이름으로 대체하고 fallback 을 표시한다.
func elementalNameFor(rng *randx.LockedRand, lex *Lexicon, element string, gender Gender) (string, bool) {
	key, ok := lex.ResolveElement(element)
	if !ok {
		return randx.Pick(rng, lex.fullNames(StyleIsekai, gender)), true
	}

	base := randx.Pick(rng, lex.elements.Names[key])
	if rng.Chance(elementTailOdds) {
		tails := lex.elements.FemaleTails
		if gender == GenderMale {
			tails = lex.elements.MaleTails
		}
		base += randx.Pick(rng, tails)
	}
	return base, false
}
