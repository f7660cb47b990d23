// Package di 는 애플리케이션 의존성을 수동으로 조립한다.
package di

import (
	"log/slog"
	"net/http"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/history"
	"github.com/haneul-labs/namegen-server-go/internal/metrics"
	"github.com/haneul-labs/namegen-server-go/internal/namegen"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server       *http.Server
	Logger       *slog.Logger
	Config       *config.Config
	Generator    *namegen.Generator
	HistoryStore *history.Store
	Metrics      *metrics.Store
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	generator *namegen.Generator,
	historyStore *history.Store,
	metricsStore *metrics.Store,
) *App {
	return &App{
		Server:       server,
		Logger:       logger,
		Config:       cfg,
		Generator:    generator,
		HistoryStore: historyStore,
		Metrics:      metricsStore,
	}
}

// Close: 앱 리소스를 정리합니다.
func (a *App) Close() {
	if a.HistoryStore != nil {
		a.HistoryStore.Close()
	}
}
