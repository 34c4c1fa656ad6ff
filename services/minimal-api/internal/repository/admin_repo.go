package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

type AdminRepo struct{ db *gorm.DB }

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (r *AdminRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Administrator{})
}

func (r *AdminRepo) Create(ctx context.Context, a *domain.Administrator) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("create administrator: %w", err)
	}
	return nil
}

func (r *AdminRepo) ByID(ctx context.Context, id int) (*domain.Administrator, error) {
	var a domain.Administrator
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AdminRepo) ByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	var a domain.Administrator
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AdminRepo) List(ctx context.Context, page, size int) ([]domain.Administrator, error) {
	out := []domain.Administrator{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(size).
		Offset(domain.Offset(page, size)).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}
	return out, nil
}

// Clear empties the table. Test setup only.
func (r *AdminRepo) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Administrator{}).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
