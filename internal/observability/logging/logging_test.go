package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestValidateAndExtractRequestID(t *testing.T) {
	valid := uuid.NewString()

	if got := ValidateAndExtractRequestID(valid); got != valid {
		t.Errorf("ValidateAndExtractRequestID(valid) = %q, want %q", got, valid)
	}

	for _, in := range []string{"", "not-a-uuid"} {
		got := ValidateAndExtractRequestID(in)
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("ValidateAndExtractRequestID(%q) = %q, want a fresh uuid", in, got)
		}
	}
}

func TestLoggerAddsContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		Service:       ServiceInfo{Name: "timeline", Version: "test"},
		Environment:   EnvProd,
		DefaultModule: Module("activity-timeline"),
		Writer:        &buf,
	})

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithModule(ctx, Module("gantt"))
	logger.InfoContext(ctx, "laid out", slog.Int("groups", 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}

	want := map[string]any{
		"msg":        "laid out",
		"service":    "timeline",
		"request_id": "req-1",
		"module":     "gantt",
		"groups":     float64(2),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], v)
		}
	}
}

func TestLoggerUsesDefaultModule(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{
		Environment:   EnvProd,
		DefaultModule: Module("activity-timeline"),
		Writer:        &buf,
	})

	logger.InfoContext(context.Background(), "hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line: %v", err)
	}
	if entry["module"] != "activity-timeline" {
		t.Errorf("module = %v, want activity-timeline", entry["module"])
	}
	if _, ok := entry["request_id"]; ok {
		t.Error("request_id present without a request in context")
	}
}
