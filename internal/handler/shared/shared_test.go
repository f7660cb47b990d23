package shared

import (
	"testing"
)

type sampleRequest struct {
	Count int    `json:"count"`
	Style string `json:"style"`
}

func TestDecodeWeaklyTypedCount(t *testing.T) {
	var req sampleRequest
	if err := Decode(map[string]any{"count": "5", "style": "isekai"}, &req); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if req.Count != 5 || req.Style != "isekai" {
		t.Fatalf("unexpected result: %+v", req)
	}
}

func TestDecodeRejectsBadType(t *testing.T) {
	var req sampleRequest
	if err := Decode(map[string]any{"count": []any{"x"}}, &req); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDecodeStrictRejectsUnknownField(t *testing.T) {
	var req sampleRequest
	if err := DecodeStrict(map[string]any{"count": 1, "bogus": true}, &req); err == nil {
		t.Fatalf("expected unknown field error")
	}
}
