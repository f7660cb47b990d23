package di

import (
	cryptorand "crypto/rand"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/logging"
	"github.com/haneul-labs/namegen-server-go/internal/randx"
)

// ProvideLogger: 로거를 구성해 반환합니다.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// ProvideRand: crypto/rand 시드 기반의 고루틴 안전 난수 소스를 반환합니다.
func ProvideRand() (*randx.LockedRand, error) {
	var seed [32]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seed rand: %w", err)
	}
	return randx.New(rand.New(rand.NewChaCha8(seed))), nil
}
