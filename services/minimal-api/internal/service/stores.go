package service

import (
	"context"

	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

// Stores return domain.ErrNotFound for missing ids; the services turn that
// into an absent (nil) result.

type AdminStore interface {
	Create(ctx context.Context, a *domain.Administrator) error
	ByID(ctx context.Context, id int) (*domain.Administrator, error)
	ByEmail(ctx context.Context, email string) (*domain.Administrator, error)
	List(ctx context.Context, page, size int) ([]domain.Administrator, error)
}

type VehicleStore interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	ByID(ctx context.Context, id int) (*domain.Vehicle, error)
	List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int) (bool, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
