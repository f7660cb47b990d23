// Package namegen 은 이세계/판타지 스타일의 한글 캐릭터 이름을 생성합니다.
// 스타일별 생성기와 우선순위 디스패치, 배치 생성을 제공합니다.
package namegen

import (
	"sort"

	"github.com/haneul-labs/namegen-server-go/internal/textnorm"
)

// Style 은 이름 생성 스타일 타입이다.
type Style string

const (
	// StyleIsekai 는 이세계 애니메이션 스타일이다.
	StyleIsekai Style = "isekai"
	// StyleWestern 은 서양 판타지 스타일이다.
	StyleWestern Style = "western"
	// StyleComposed 는 음절 조합 스타일이다.
	StyleComposed Style = "composed"
	// StyleClass 는 캐릭터 클래스 기반 스타일이다.
	StyleClass Style = "class"
	// StyleElemental 은 원소/속성 기반 스타일이다.
	StyleElemental Style = "elemental"
	// StyleNoble 은 귀족 가문 스타일이다.
	StyleNoble Style = "noble"
	// StyleMixed 는 매 호출마다 랜덤 스타일을 고른다.
	StyleMixed Style = "mixed"
)

var styleNames = map[string]Style{
	"isekai":    StyleIsekai,
	"western":   StyleWestern,
	"composed":  StyleComposed,
	"class":     StyleClass,
	"elemental": StyleElemental,
	"noble":     StyleNoble,
	"mixed":     StyleMixed,
}

// ParseStyle 은 문자열을 Style 로 변환한다. 알 수 없는 값은 mixed 로 처리한다.
func ParseStyle(value string) Style {
	if style, ok := styleNames[textnorm.NormalizeKey(value)]; ok {
		return style
	}
	return StyleMixed
}

// StyleNames 는 지원하는 스타일 이름을 정렬된 순서로 반환한다.
func StyleNames() []string {
	names := make([]string, 0, len(styleNames))
	for name := range styleNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gender 는 성별 타입이다.
type Gender string

const (
	// GenderFemale 은 여성이다.
	GenderFemale Gender = "female"
	// GenderMale 은 남성이다.
	GenderMale Gender = "male"
)

// ParseGender 는 문자열을 Gender 로 변환한다. male 외의 값은 female 로 처리한다.
func ParseGender(value string) Gender {
	if textnorm.NormalizeKey(value) == "male" {
		return GenderMale
	}
	return GenderFemale
}

// Request 는 단일 이름 생성 요청이다. 빈 필드는 기본값을 따른다.
type Request struct {
	Style          Style
	Gender         Gender
	CharacterClass string
	Element        string
}

// Result 는 단일 이름 생성 결과다.
// UsedFallback 은 알 수 없는 클래스/속성으로 isekai 로 대체 생성됐음을 뜻한다.
type Result struct {
	Name         string `json:"name"`
	Style        Style  `json:"style"`
	UsedFallback bool   `json:"used_fallback"`
}

// CharacterDetail 은 배치 생성 결과의 개별 캐릭터 메타데이터다.
type CharacterDetail struct {
	Name           string `json:"name"`
	Gender         Gender `json:"gender"`
	Style          Style  `json:"style"`
	CharacterClass string `json:"character_class"`
	Element        string `json:"element"`
	Personality    string `json:"personality"`
}

// BatchCharacterInfo 는 카테고리 배치의 개별 이름 항목이다.
type BatchCharacterInfo struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Origin string `json:"origin"`
}

// NobleFamilyInfo 는 카테고리 배치의 귀족 가문 항목이다.
// 영주와 영부인은 같은 성씨를 공유한다.
type NobleFamilyInfo struct {
	FamilyName string `json:"family_name"`
	Lord       string `json:"lord"`
	Lady       string `json:"lady"`
	Type       string `json:"type"`
}

// 배치 카테고리 키 및 출처 라벨.
const (
	CategoryIsekaiAnime    = "isekai_anime"
	CategoryWesternFantasy = "western_fantasy"
	CategoryComposed       = "composed"
	CategoryNobleFamily    = "noble_family"

	originIsekai   = "Re:Zero 스타일"
	originWestern  = "반지의 제왕 스타일"
	originComposed = "음절 조합"
)

// 배치 생성 시 태그가 없을 때의 기본값.
const (
	DefaultCharacterClass = "일반"
	DefaultElement        = "없음"
)
