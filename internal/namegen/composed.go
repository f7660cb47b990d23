package namegen

import (
	"strings"

	"github.com/haneul-labs/namegen-server-go/internal/randx"
)

// doubledVowelCleaner 는 음절 조합 시 생기는 모음 중복을 정리한다.
// 예: "아아리나" → "아리나"
var doubledVowelCleaner = strings.NewReplacer(
	"아아", "아",
	"에에", "에",
	"이이", "이",
	"오오", "오",
	"우우", "우",
)

// composeName 은 접두 + 중간 + 성별 접미 음절을 조합해 이름을 만든다.
func composeName(rng *randx.LockedRand, lex *Lexicon, gender Gender) string {
	prefix := randx.Pick(rng, lex.syllables.Prefix)
	middle := randx.Pick(rng, lex.syllables.Middle)

	suffixes := lex.syllables.FemaleSuffix
	if gender == GenderMale {
		suffixes = lex.syllables.MaleSuffix
	}
	suffix := randx.Pick(rng, suffixes)

	return doubledVowelCleaner.Replace(prefix + middle + suffix)
}
