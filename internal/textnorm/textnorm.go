// Package textnorm 은 이름 생성 요청 입력(스타일, 직업, 속성 등)을
// 사전 매칭 전에 정규화합니다. 한글은 보존하고, 비한글 문자에만
// homoglyph skeleton 변환을 적용합니다.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/forPelevin/gomoji"
	"github.com/mtibben/confusables"
	"github.com/ymw0407/jamo/pkg/jamo"
	"golang.org/x/text/unicode/norm"
)

// jamoTable: 한글 자모 범위를 통합한 테이블
// unicode.Is()는 이진 탐색을 수행하므로 빠릅니다.
var jamoTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x11FF, Stride: 1}, // Hangul Jamo
		{Lo: 0x3130, Hi: 0x318F, Stride: 1}, // Hangul Compatibility Jamo
		{Lo: 0xA960, Hi: 0xA97F, Stride: 1}, // Hangul Jamo Extended-A
		{Lo: 0xD7B0, Hi: 0xD7FF, Stride: 1}, // Hangul Jamo Extended-B
	},
}

// hangulTable: 완성형 한글 범위 (자모 제외)
var hangulTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}, // Hangul Syllables (가-힣)
	},
}

// isASCIIOnly: 문자열이 ASCII만 포함하는지 확인 (Zero Allocation)
func isASCIIOnly(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Normalize 는 사전 키 매칭에 쓸 수 있도록 입력을 정규화합니다.
// NFC 정규화 후 연속 자모를 완성형으로 조합하고, 비한글 문자에만
// skeleton 변환을 적용한 뒤 제어 문자를 제거합니다.
// 예: "ㅁㅏㅂㅓㅂㅅㅏ" → "마법사", "ｗｅｓｔｅｒｎ" → "western"
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)

	// [Fast Path] ASCII만 포함된 경우 skeleton 변환 불필요
	if isASCIIOnly(trimmed) {
		return stripControlChars(trimmed)
	}

	// NFD 입력 우회 방지: 먼저 NFC로 정규화
	nfcText := norm.NFC.String(trimmed)

	// 자모만 입력된 키(예: "ㅁㅏㅂㅓㅂㅅㅏ")도 사전에 매칭되도록 조합
	composed := ComposeJamoSequences(nfcText)

	normalized := normalizeWithKoreanPreserved(composed)
	return stripControlChars(normalized)
}

// NormalizeKey 는 Normalize 후 ASCII를 소문자로 접습니다.
// 스타일/속성 영문 별칭("ISEKAI", "Fire")의 대소문자 차이를 흡수합니다.
func NormalizeKey(text string) string {
	return strings.ToLower(Normalize(text))
}

// normalizeWithKoreanPreserved: 한글 문자는 보존하면서 나머지만 skeleton 변환
func normalizeWithKoreanPreserved(text string) string {
	var result strings.Builder
	var nonKoreanBuffer strings.Builder
	result.Grow(len(text))

	flushNonKorean := func() {
		if nonKoreanBuffer.Len() == 0 {
			return
		}
		// 비한글 텍스트에만 skeleton + NFKC 적용
		skeleton := confusables.Skeleton(nonKoreanBuffer.String())
		result.WriteString(norm.NFKC.String(skeleton))
		nonKoreanBuffer.Reset()
	}

	for _, r := range text {
		if unicode.Is(hangulTable, r) || unicode.Is(jamoTable, r) {
			flushNonKorean()
			result.WriteRune(r)
		} else {
			nonKoreanBuffer.WriteRune(r)
		}
	}
	flushNonKorean()

	return result.String()
}

// stripControlChars: 제어 문자가 없으면 원본을 그대로 반환합니다.
func stripControlChars(text string) string {
	hasControl := false
	for _, r := range text {
		if unicode.Is(unicode.Cf, r) || unicode.Is(unicode.Cc, r) {
			hasControl = true
			break
		}
	}
	if !hasControl {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if unicode.Is(unicode.Cf, r) || unicode.Is(unicode.Cc, r) {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

// ContainsEmoji 는 입력에 이모지가 포함되어 있는지 확인합니다.
func ContainsEmoji(text string) bool {
	return gomoji.ContainsEmoji(text)
}

// IsJamoOnly 는 입력이 한글 자모로만 구성되어 있는지 확인합니다.
// 공백, 숫자, 구두점은 허용하고 완성형 한글이 포함되면 false입니다.
func IsJamoOnly(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	hasJamo := false
	for _, r := range trimmed {
		if unicode.Is(jamoTable, r) {
			hasJamo = true
			continue
		}
		if unicode.IsSpace(r) || unicode.IsDigit(r) || unicode.IsPunct(r) {
			continue
		}
		return false
	}
	return hasJamo
}

// ComposeJamoSequences 는 연속 자모 시퀀스를 완성형으로 조합합니다.
// 예: "ㅁㅏㅂㅓㅂㅅㅏ 직업" → "마법사 직업"
// 조합에 실패한 자모는 원본 그대로 유지됩니다.
func ComposeJamoSequences(text string) string {
	var result strings.Builder
	var jamoBuffer strings.Builder
	result.Grow(len(text))

	flushJamo := func() {
		if jamoBuffer.Len() == 0 {
			return
		}
		jamoStr := jamoBuffer.String()
		composed, err := jamo.ComposeHangeul(jamoStr)
		if err == nil && len(composed) > 0 {
			result.WriteString(composed[0])
		} else {
			result.WriteString(jamoStr)
		}
		jamoBuffer.Reset()
	}

	for _, r := range text {
		if unicode.Is(jamoTable, r) {
			jamoBuffer.WriteRune(r)
		} else {
			flushJamo()
			result.WriteRune(r)
		}
	}
	flushJamo()

	return result.String()
}
