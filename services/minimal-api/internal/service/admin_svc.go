package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cagncvs/minimal-api/pkg/events"
	"github.com/cagncvs/minimal-api/pkg/mq"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

type AdminSvc struct {
	repo     AdminStore
	hasher   PasswordHasher
	pub      mq.JSONPublisher
	pageSize int
	logger   *slog.Logger
}

func NewAdminSvc(r AdminStore, h PasswordHasher, pub mq.JSONPublisher, pageSize int, logger *slog.Logger) *AdminSvc {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &AdminSvc{repo: r, hasher: h, pub: pub, pageSize: pageSize, logger: logger}
}

func (s *AdminSvc) Insert(ctx context.Context, in domain.NewAdministrator) (*domain.Administrator, error) {
	existing, err := s.repo.ByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing administrator: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	a := &domain.Administrator{Email: in.Email, PasswordHash: hash, Role: in.Role}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("administrator created", "admin_id", a.ID, "email", a.Email)
	s.publish(ctx, events.RKAdminCreated, events.New(events.RKAdminCreated, events.AdminCreated{
		ID: a.ID, Email: a.Email, Role: string(a.Role),
	}))
	return a, nil
}

// FindByID returns nil without error when no administrator has that id.
func (s *AdminSvc) FindByID(ctx context.Context, id int) (*domain.Administrator, error) {
	a, err := s.repo.ByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return a, err
}

func (s *AdminSvc) ListAll(ctx context.Context, page int) ([]domain.Administrator, error) {
	return s.repo.List(ctx, page, s.pageSize)
}

// Login returns nil without error when the credentials do not match.
func (s *AdminSvc) Login(ctx context.Context, email, password string) (*domain.Administrator, error) {
	a, err := s.repo.ByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("login: unknown email", "email", email)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if !s.hasher.Check(password, a.PasswordHash) {
		s.logger.Warn("login: wrong password", "email", email)
		return nil, nil
	}
	return a, nil
}

// EnsureSeed creates the bootstrap administrator unless one with that email
// already exists.
func (s *AdminSvc) EnsureSeed(ctx context.Context, email, password string, role domain.Role) error {
	if email == "" || password == "" {
		return nil
	}
	_, err := s.Insert(ctx, domain.NewAdministrator{Email: email, Password: password, Role: role})
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil
	}
	return err
}

func (s *AdminSvc) publish(ctx context.Context, key string, v any) {
	if err := s.pub.PublishJSON(ctx, key, v); err != nil {
		s.logger.Error("publish event failed", "key", key, "error", err)
	}
}
