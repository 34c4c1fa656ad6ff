package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.PageSize != 10 {
		t.Fatalf("expected page size 10, got %d", c.PageSize)
	}
	if c.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %q", c.HTTPAddr)
	}
	if c.JWTTTL() != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %s", c.JWTTTL())
	}
	if c.RedisURL != "" || c.RabbitURL != "" {
		t.Fatalf("optional collaborators should be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("LOGIN_RPS", "0.5")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.PageSize != 25 {
		t.Fatalf("expected 25, got %d", c.PageSize)
	}
	if c.LoginRPS != 0.5 {
		t.Fatalf("expected 0.5, got %v", c.LoginRPS)
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
}
