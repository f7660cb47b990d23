package history

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstd 프레임 매직 넘버. 페이로드 자체로 압축 여부를 판별한다.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// 싱글톤 encoder/decoder - goroutine-safe 재사용
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	initOnce    sync.Once
	errInit     error
)

func initZstd() error {
	initOnce.Do(func() {
		var err error
		zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			errInit = fmt.Errorf("create zstd encoder: %w", err)
			return
		}
		zstdDecoder, err = zstd.NewReader(nil)
		if err != nil {
			errInit = fmt.Errorf("create zstd decoder: %w", err)
		}
	})
	return errInit
}

// encodePayload 는 임계값 이상의 페이로드를 zstd 로 압축한다.
// 압축이 오히려 커지면 원본을 그대로 쓴다.
func encodePayload(src []byte, minBytes int) (string, error) {
	if minBytes <= 0 || len(src) < minBytes {
		return string(src), nil
	}
	if err := initZstd(); err != nil {
		return "", err
	}

	compressed := zstdEncoder.EncodeAll(src, make([]byte, 0, len(src)))
	if len(compressed) >= len(src) {
		return string(src), nil
	}
	return string(compressed), nil
}

// decodePayload 는 zstd 매직이 붙은 페이로드를 해제하고 나머지는 그대로 반환한다.
func decodePayload(src []byte) ([]byte, error) {
	if !bytes.HasPrefix(src, zstdMagic) {
		return src, nil
	}
	if err := initZstd(); err != nil {
		return nil, err
	}

	decoded, err := zstdDecoder.DecodeAll(src, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return decoded, nil
}
