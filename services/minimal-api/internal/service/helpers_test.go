package service

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cagncvs/minimal-api/pkg/auth"
	"github.com/cagncvs/minimal-api/pkg/db"
	"github.com/cagncvs/minimal-api/pkg/obs"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/repository"
)

type published struct {
	key string
	v   any
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []published
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, published{key: key, v: v})
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		out = append(out, m.key)
	}
	return out
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("sqlite://:memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func newAdminSvc(t *testing.T) (*AdminSvc, *repository.AdminRepo, *recordingPublisher) {
	t.Helper()
	repo := repository.NewAdminRepo(openTestDB(t))
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	pub := &recordingPublisher{}
	return NewAdminSvc(repo, auth.NewHasherWithCost(bcrypt.MinCost), pub, 10, obs.Discard()), repo, pub
}
