package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cagncvs/minimal-api/pkg/db"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/repository"
)

func setEnv(t *testing.T, dsn string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DSN", dsn)
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("ENV", "test")
	t.Setenv("REDIS_URL", "")
	t.Setenv("RABBIT_URL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func TestRun_RequiresSecret(t *testing.T) {
	setEnv(t, "sqlite://:memory:")
	os.Unsetenv("JWT_SECRET")

	if err := run(context.Background()); err == nil {
		t.Fatalf("expected config error without JWT_SECRET")
	}
}

func TestRun_ReturnsDatabaseError(t *testing.T) {
	setEnv(t, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")

	if err := run(context.Background()); err == nil {
		t.Fatalf("expected error for unreachable database")
	}
}

func TestRun_SeedsAndShutsDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.db")
	setEnv(t, "sqlite://"+path)

	// the deadline stands in for SIGTERM once startup has finished
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}

	gdb, err := db.Open("sqlite://" + path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close(gdb)
	a, err := repository.NewAdminRepo(gdb).ByEmail(context.Background(), "administrador@teste.com")
	if err != nil || a == nil {
		t.Fatalf("expected seeded admin, got %+v (%v)", a, err)
	}
}
