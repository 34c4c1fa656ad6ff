package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newRegistry(t *testing.T) (*RedisRegistry, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	reg, err := NewRedisRegistry("redis://" + mr.Addr() + "/0")
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	t.Cleanup(func() { _ = reg.Close() })
	return reg, mr
}

func TestRedisRegistry_StoreActiveRevoke(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	if err := reg.Store(ctx, "jti-1", "adm@teste.com", time.Hour); err != nil {
		t.Fatalf("store: %v", err)
	}
	ok, err := reg.Active(ctx, "jti-1")
	if err != nil || !ok {
		t.Fatalf("expected active session, got %v %v", ok, err)
	}

	if err := reg.Revoke(ctx, "jti-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = reg.Active(ctx, "jti-1")
	if err != nil || ok {
		t.Fatalf("expected revoked session, got %v %v", ok, err)
	}
}

func TestRedisRegistry_Expires(t *testing.T) {
	reg, mr := newRegistry(t)
	ctx := context.Background()

	if err := reg.Store(ctx, "jti-2", "adm@teste.com", time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	ok, err := reg.Active(ctx, "jti-2")
	if err != nil || ok {
		t.Fatalf("expected expired session, got %v %v", ok, err)
	}
}

func TestNewRedisRegistry_BadURL(t *testing.T) {
	if _, err := NewRedisRegistry("not a url"); err == nil {
		t.Fatalf("expected parse error")
	}
}
