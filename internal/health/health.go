// Package health 는 서비스 상태 수집을 담당한다.
package health

import (
	"context"
	"time"

	"github.com/haneul-labs/namegen-server-go/internal/config"
	"github.com/haneul-labs/namegen-server-go/internal/history"
)

var startTime = time.Now()

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status       string               `json:"status"`
	Components   map[string]Component `json:"components"`
	HistoryStore map[string]any       `json:"history_store"`
}

// Collect 는 헬스 상태를 수집한다.
// deepChecks 가 false 면 외부 의존성 상태로 다운 판정되지 않도록 shallow 로 유지한다.
func Collect(ctx context.Context, cfg *config.Config, store history.Storage, deepChecks bool) Response {
	components := make(map[string]Component)

	components["app"] = buildAppStatus()

	historyStatus := buildHistoryStoreStatus(ctx, cfg, store, deepChecks)
	components["history_store"] = historyStatus

	overall := "ok"
	for _, component := range components {
		if component.Status != "ok" {
			overall = "degraded"
			break
		}
	}

	return Response{
		Status:       overall,
		Components:   components,
		HistoryStore: historyStatus.Detail,
	}
}

func buildAppStatus() Component {
	uptimeSeconds := int(time.Since(startTime).Seconds())
	return Component{
		Status: "ok",
		Detail: map[string]any{
			"uptime_seconds": uptimeSeconds,
		},
	}
}

func buildHistoryStoreStatus(ctx context.Context, cfg *config.Config, store history.Storage, deepChecks bool) Component {
	reachability := false
	storeEnabled := false
	storeURL := ""
	ttlMinutes := 0
	styleCount := 0
	styleCountErr := ""

	if cfg != nil {
		storeEnabled = cfg.History.Enabled
		storeURL = cfg.History.URL
		ttlMinutes = cfg.History.TTLMinutes
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if store != nil && store.IsEnabled() && deepChecks {
		checkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()

		if err := store.Ping(checkCtx); err != nil {
			styleCountErr = err.Error()
		} else {
			reachability = true
			count, err := store.StyleCount(checkCtx)
			if err != nil {
				styleCountErr = err.Error()
			} else {
				styleCount = count
			}
		}
	}

	status := "ok"
	if storeEnabled && deepChecks && !reachability {
		status = "degraded"
	}

	detail := map[string]any{
		"store_enabled":   storeEnabled,
		"store_connected": reachability,
		"style_count":     styleCount,
		"store_url":       storeURL,
		"ttl_minutes":     ttlMinutes,
		"deep_checked":    deepChecks,
	}
	if styleCountErr != "" {
		detail["style_count_error"] = styleCountErr
	}

	return Component{
		Status: status,
		Detail: detail,
	}
}
