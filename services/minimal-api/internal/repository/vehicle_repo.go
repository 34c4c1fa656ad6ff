package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cagncvs/minimal-api/pkg/db"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

type VehicleRepo struct{ db *gorm.DB }

func NewVehicleRepo(db *gorm.DB) *VehicleRepo {
	return &VehicleRepo{db: db}
}

func (r *VehicleRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Vehicle{})
}

func (r *VehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepo) ByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &v, nil
}

func (r *VehicleRepo) List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	qb := r.db.WithContext(ctx).Model(&domain.Vehicle{})
	if n := strings.TrimSpace(f.Name); n != "" {
		qb = db.ContainsFold(qb, "nome", n)
	}
	if b := strings.TrimSpace(f.Brand); b != "" {
		qb = db.ContainsFold(qb, "marca", b)
	}
	out := []domain.Vehicle{}
	err := qb.Order("id ASC").
		Limit(f.PageSize).
		Offset(domain.Offset(f.Page, f.PageSize)).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return out, nil
}

// Update overwrites name, brand and year of an existing row.
func (r *VehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur domain.Vehicle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&cur, "id = ?", v.ID).Error
		if err != nil {
			return notFound(err)
		}
		cur.Name, cur.Brand, cur.Year = v.Name, v.Brand, v.Year
		if err := tx.Save(&cur).Error; err != nil {
			return fmt.Errorf("update vehicle: %w", err)
		}
		return nil
	})
}

// Delete reports whether a row was removed.
func (r *VehicleRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete vehicle: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Clear empties the table. Test setup only.
func (r *VehicleRepo) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Vehicle{}).Error
}
