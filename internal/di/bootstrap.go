package di

import (
	"fmt"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/handler"
	"github.com/haneul-labs/namegen-server-go/internal/history"
	"github.com/haneul-labs/namegen-server-go/internal/metrics"
	"github.com/haneul-labs/namegen-server-go/internal/namegen"
	"github.com/haneul-labs/namegen-server-go/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	metricsStore := metrics.NewStore()

	lexicon, err := namegen.LoadLexicon()
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}

	rng, err := ProvideRand()
	if err != nil {
		return nil, fmt.Errorf("rand: %w", err)
	}

	screen := namegen.NewNameScreen(cfg.Screen, logger)
	generator := namegen.NewGenerator(lexicon, rng, screen, cfg.Generator, logger)

	historyStore, err := history.NewStore(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}

	namesHandler := handler.NewNamesHandler(cfg, generator, historyStore, metricsStore, logger)

	router := handler.NewRouter(cfg, logger, generator, historyStore, namesHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, generator, historyStore, metricsStore), nil
}
