package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/health"
	"github.com/haneul-labs/namegen-server-go/internal/history"
	"github.com/haneul-labs/namegen-server-go/internal/namegen"
)

// GeneratorStatusResponse: 생성기 구성 응답입니다.
type GeneratorStatusResponse struct {
	DefaultStyle  string         `json:"default_style"`
	DefaultGender string         `json:"default_gender"`
	DefaultCount  int            `json:"default_count"`
	MaxBatchSize  int            `json:"max_batch_size"`
	ScreenEnabled bool           `json:"screen_enabled"`
	LexiconCounts map[string]int `json:"lexicon_counts"`
	Styles        []string       `json:"styles"`
	Elements      []string       `json:"elements"`
	Classes       []string       `json:"classes"`
	HTTP2Enabled  bool           `json:"http2_enabled"`
	TransportMode string         `json:"transport_mode"`
}

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, generator *namegen.Generator, store history.Storage) {
	router.GET("/health", func(c *gin.Context) {
		// Liveness: 외부 의존성(Valkey 등) 상태로 인해 다운 판정되지 않도록 shallow 로 유지합니다.
		payload := health.Collect(c.Request.Context(), cfg, store, false)
		c.JSON(http.StatusOK, payload)
	})

	router.GET("/health/ready", func(c *gin.Context) {
		payload := health.Collect(c.Request.Context(), cfg, store, true)
		status := http.StatusOK
		if payload.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	router.GET("/health/generator", func(c *gin.Context) {
		transportMode := "h1"
		if cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}

		lexicon := generator.Lexicon()
		response := GeneratorStatusResponse{
			DefaultStyle:  cfg.Generator.DefaultStyle,
			DefaultGender: cfg.Generator.DefaultGender,
			DefaultCount:  cfg.Generator.DefaultCount,
			MaxBatchSize:  cfg.Generator.MaxBatchSize,
			ScreenEnabled: cfg.Screen.Enabled,
			LexiconCounts: lexicon.Counts(),
			Styles:        namegen.StyleNames(),
			Elements:      lexicon.ElementKeys(),
			Classes:       lexicon.ClassKeys(),
			HTTP2Enabled:  cfg.HTTP.HTTP2Enabled,
			TransportMode: transportMode,
		}

		c.JSON(http.StatusOK, response)
	})
}
