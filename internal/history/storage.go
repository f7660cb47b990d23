package history

import "context"

// Storage 는 이름 기록 저장소 인터페이스다.
// 테스트에서 mock 구현을 주입할 수 있도록 한다.
type Storage interface {
	// IsEnabled 저장소 활성화 여부
	IsEnabled() bool

	// Record 생성된 이름 기록
	Record(ctx context.Context, entries ...Entry) error

	// Recent 최근 이름 조회
	Recent(ctx context.Context, style string, limit int) ([]Entry, error)

	// StyleCount 기록된 스타일 키 수
	StyleCount(ctx context.Context) (int, error)

	// Ping 연결 확인
	Ping(ctx context.Context) error

	// Close 리소스 정리
	Close()
}

// Store가 Storage 인터페이스를 구현하는지 컴파일 타임 확인
var _ Storage = (*Store)(nil)
