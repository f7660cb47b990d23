package namegen

import "github.com/haneul-labs/namegen-server-go/internal/randx"

// nobleName 은 서양 판타지 개인 이름과 독립 추첨한 성씨를 반환한다.
func nobleName(rng *randx.LockedRand, lex *Lexicon, gender Gender) (first string, surname string) {
	first = randx.Pick(rng, lex.fullNames(StyleWestern, gender))
	surname = randx.Pick(rng, lex.nobles.Surnames)
	return first, surname
}

// FormatNobleName 은 귀족 이름을 "이름 성씨" 형식으로 만든다.
func FormatNobleName(first string, surname string) string {
	return first + " " + surname
}
