package httperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/haneul-labs/namegen-server-go/internal/history"
)

func TestFromErrorPassesThroughAPIError(t *testing.T) {
	original := NewInvalidInput("bad count")
	converted := FromError(original)
	if converted != original {
		t.Fatalf("expected identity conversion")
	}
}

func TestFromErrorHistoryDisabled(t *testing.T) {
	converted := FromError(history.ErrStoreDisabled)
	if converted.Code != ErrorCodeHistoryUnavailable {
		t.Fatalf("expected HISTORY_UNAVAILABLE, got %s", converted.Code)
	}
	if converted.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", converted.Status)
	}
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	converted := FromError(errors.New("boom"))
	if converted.Code != ErrorCodeInternal {
		t.Fatalf("expected INTERNAL_ERROR, got %s", converted.Code)
	}
	if converted.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", converted.Status)
	}
}

func TestResponseIncludesRequestID(t *testing.T) {
	status, body := Response(NewMissingField("style"), "req-123")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.ErrorCode != string(ErrorCodeMissingField) {
		t.Fatalf("unexpected error code: %s", body.ErrorCode)
	}
	if body.RequestID == nil || *body.RequestID != "req-123" {
		t.Fatalf("request id missing")
	}
	if body.Details["field"] != "style" {
		t.Fatalf("unexpected details: %v", body.Details)
	}
}

func TestResponseNilRequestID(t *testing.T) {
	_, body := Response(NewUnauthorized(nil), "")
	if body.RequestID != nil {
		t.Fatalf("expected nil request id")
	}
}
