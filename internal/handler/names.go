package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/handler/shared"
	"github.com/haneul-labs/namegen-server-go/internal/history"
	"github.com/haneul-labs/namegen-server-go/internal/httperror"
	"github.com/haneul-labs/namegen-server-go/internal/metrics"
	"github.com/haneul-labs/namegen-server-go/internal/namegen"
)

const historyRecordTimeout = 2 * time.Second

// GenerateNameRequest 는 단일 이름 생성 요청 본문이다.
type GenerateNameRequest struct {
	Style          string `json:"style"`
	Gender         string `json:"gender"`
	CharacterClass string `json:"character_class"`
	Element        string `json:"element"`
}

// GenerateNameResponse 는 단일 이름 생성 응답 본문이다.
type GenerateNameResponse struct {
	Name         string `json:"name"`
	Style        string `json:"style"`
	UsedFallback bool   `json:"used_fallback"`
}

// GenerateMultipleRequest 는 다중 이름 생성 요청 본문이다.
// 챗봇 클라이언트가 count 를 문자열로 보내는 경우가 있어 약한 타입 디코딩을 쓴다.
type GenerateMultipleRequest struct {
	Count  int    `json:"count"`
	Gender string `json:"gender"`
	Style  string `json:"style"`
}

// GenerateMultipleResponse 는 다중 이름 생성 응답 본문이다.
type GenerateMultipleResponse struct {
	Names []namegen.CharacterDetail `json:"names"`
	Count int                       `json:"count"`
}

// BatchGenerateRequest 는 카테고리 배치 생성 요청 본문이다.
type BatchGenerateRequest struct {
	CountPerCategory int `json:"count_per_category"`
}

// BatchGenerateResponse 는 카테고리 배치 생성 응답 본문이다.
type BatchGenerateResponse struct {
	BatchNames map[string]any `json:"batch_names"`
}

// RecentNamesResponse 는 최근 이름 조회 응답 본문이다.
type RecentNamesResponse struct {
	Style string          `json:"style"`
	Count int             `json:"count"`
	Names []history.Entry `json:"names"`
}

// NamesHandler 는 이름 생성 API 핸들러다.
type NamesHandler struct {
	cfg       *config.Config
	generator *namegen.Generator
	store     history.Storage
	metrics   *metrics.Store
	logger    *slog.Logger
}

// NewNamesHandler 는 이름 생성 핸들러를 생성한다.
func NewNamesHandler(
	cfg *config.Config,
	generator *namegen.Generator,
	store history.Storage,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *NamesHandler {
	return &NamesHandler{
		cfg:       cfg,
		generator: generator,
		store:     store,
		metrics:   metricsStore,
		logger:    logger,
	}
}

// RegisterRoutes 는 이름 생성 라우트를 등록한다.
func (h *NamesHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api")
	group.POST("/generate-name", h.handleGenerate)
	group.POST("/generate-multiple-names", h.handleGenerateMultiple)
	group.POST("/batch-generate-names", h.handleBatchGenerate)
	group.GET("/names/recent", h.handleRecent)
	group.GET("/names/metrics", h.handleMetrics)
}

func (h *NamesHandler) handleGenerate(c *gin.Context) {
	payload := map[string]any{}
	if !bindJSONAllowEmpty(c, &payload) {
		return
	}
	var req GenerateNameRequest
	if err := shared.Decode(payload, &req); err != nil {
		writeError(c, httperror.NewValidationError(err))
		return
	}

	startedAt := time.Now()
	result := h.generator.Generate(namegen.Request{
		Style:          h.parseStyle(req.Style),
		Gender:         h.parseGender(req.Gender),
		CharacterClass: req.CharacterClass,
		Element:        req.Element,
	})

	gender := h.effectiveGender(req.Gender)
	fallbacks := 0
	if result.UsedFallback {
		fallbacks = 1
	}
	h.metrics.RecordGeneration(string(result.Style), string(gender), 1, fallbacks, time.Since(startedAt))

	h.recordAsync(history.Entry{
		Name:         result.Name,
		Style:        string(result.Style),
		Gender:       string(gender),
		UsedFallback: result.UsedFallback,
		CreatedAt:    time.Now(),
	})

	c.JSON(http.StatusOK, GenerateNameResponse{
		Name:         result.Name,
		Style:        string(result.Style),
		UsedFallback: result.UsedFallback,
	})
}

func (h *NamesHandler) handleGenerateMultiple(c *gin.Context) {
	payload := map[string]any{}
	if !bindJSONAllowEmpty(c, &payload) {
		return
	}
	var req GenerateMultipleRequest
	if err := shared.Decode(payload, &req); err != nil {
		writeError(c, httperror.NewValidationError(err))
		return
	}
	if req.Count < 0 {
		writeError(c, httperror.NewInvalidInput("count must be a positive integer"))
		return
	}

	startedAt := time.Now()
	details := h.generator.GenerateMultiple(req.Count, h.parseGender(req.Gender), h.parseStyle(req.Style))

	gender := h.effectiveGender(req.Gender)
	h.metrics.RecordGeneration(string(h.parseStyle(req.Style)), string(gender), len(details), 0, time.Since(startedAt))

	entries := make([]history.Entry, 0, len(details))
	now := time.Now()
	for _, detail := range details {
		entries = append(entries, history.Entry{
			Name:      detail.Name,
			Style:     string(detail.Style),
			Gender:    string(detail.Gender),
			CreatedAt: now,
		})
	}
	h.recordAsync(entries...)

	c.JSON(http.StatusOK, GenerateMultipleResponse{
		Names: details,
		Count: len(details),
	})
}

func (h *NamesHandler) handleBatchGenerate(c *gin.Context) {
	payload := map[string]any{}
	if !bindJSONAllowEmpty(c, &payload) {
		return
	}
	var req BatchGenerateRequest
	if err := shared.Decode(payload, &req); err != nil {
		writeError(c, httperror.NewValidationError(err))
		return
	}
	if req.CountPerCategory < 0 {
		writeError(c, httperror.NewInvalidInput("count_per_category must be a positive integer"))
		return
	}
	count := req.CountPerCategory
	if count == 0 {
		count = namegen.DefaultBatchSize
	}
	if count > h.cfg.Generator.MaxBatchSize {
		count = h.cfg.Generator.MaxBatchSize
	}

	startedAt := time.Now()
	batch := h.generator.BatchByCategories(c.Request.Context(), count)
	h.metrics.RecordGeneration("batch", "", count*4, 0, time.Since(startedAt))

	c.JSON(http.StatusOK, BatchGenerateResponse{BatchNames: batch})
}

func (h *NamesHandler) handleRecent(c *gin.Context) {
	if !h.store.IsEnabled() {
		writeError(c, history.ErrStoreDisabled)
		return
	}

	style := strings.TrimSpace(c.Query("style"))
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(c, httperror.NewInvalidInput("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	entries, err := h.store.Recent(c.Request.Context(), style, limit)
	if err != nil {
		shared.LogError(h.logger, "history_recent", err)
		writeError(c, err)
		return
	}

	if style == "" {
		style = "all"
	}
	c.JSON(http.StatusOK, RecentNamesResponse{
		Style: style,
		Count: len(entries),
		Names: entries,
	})
}

func (h *NamesHandler) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}

// recordAsync 는 생성 경로를 막지 않도록 기록을 비동기로 수행한다.
// 실패는 로그로만 남긴다.
func (h *NamesHandler) recordAsync(entries ...history.Entry) {
	if !h.store.IsEnabled() || len(entries) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyRecordTimeout)
		defer cancel()
		if err := h.store.Record(ctx, entries...); err != nil {
			shared.LogError(h.logger, "history_record", err)
		}
	}()
}

func (h *NamesHandler) parseStyle(value string) namegen.Style {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return namegen.ParseStyle(value)
}

func (h *NamesHandler) parseGender(value string) namegen.Gender {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return namegen.ParseGender(value)
}

func (h *NamesHandler) effectiveGender(value string) namegen.Gender {
	if strings.TrimSpace(value) == "" {
		return namegen.Gender(h.cfg.Generator.DefaultGender)
	}
	return namegen.ParseGender(value)
}
