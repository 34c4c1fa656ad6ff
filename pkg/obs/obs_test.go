package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_ProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger("production", &buf).Info("hello", "k", "v")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON line, got %q", buf.String())
	}
	if line["msg"] != "hello" || line["k"] != "v" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestNewLogger_DevelopmentLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	newLogger("development", &buf).Debug("dbg")
	if !strings.Contains(buf.String(), "msg=dbg") {
		t.Fatalf("expected debug line in text format, got %q", buf.String())
	}
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "svc", "test", "")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
