package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cagncvs/minimal-api/pkg/events"
	"github.com/cagncvs/minimal-api/pkg/mq"
	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

type VehicleSvc struct {
	repo     VehicleStore
	pub      mq.JSONPublisher
	pageSize int
	logger   *slog.Logger
}

func NewVehicleSvc(r VehicleStore, pub mq.JSONPublisher, pageSize int, logger *slog.Logger) *VehicleSvc {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &VehicleSvc{repo: r, pub: pub, pageSize: pageSize, logger: logger}
}

// Insert stores v and fills in its generated ID.
func (s *VehicleSvc) Insert(ctx context.Context, v *domain.Vehicle) error {
	v.ID = 0
	if err := s.repo.Create(ctx, v); err != nil {
		return err
	}
	s.publish(ctx, events.RKVehicleCreated, events.New(events.RKVehicleCreated, toEvent(v)))
	return nil
}

func (s *VehicleSvc) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	v, err := s.repo.ByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

func (s *VehicleSvc) ListAll(ctx context.Context, page int, name, brand string) ([]domain.Vehicle, error) {
	return s.repo.List(ctx, domain.VehicleFilter{
		Page:     page,
		PageSize: s.pageSize,
		Name:     name,
		Brand:    brand,
	})
}

// Update returns domain.ErrNotFound when v.ID does not exist.
func (s *VehicleSvc) Update(ctx context.Context, v *domain.Vehicle) error {
	if err := s.repo.Update(ctx, v); err != nil {
		return err
	}
	s.publish(ctx, events.RKVehicleUpdated, events.New(events.RKVehicleUpdated, toEvent(v)))
	return nil
}

// Delete is a no-op for unknown ids.
func (s *VehicleSvc) Delete(ctx context.Context, v *domain.Vehicle) error {
	removed, err := s.repo.Delete(ctx, v.ID)
	if err != nil {
		return err
	}
	if removed {
		s.publish(ctx, events.RKVehicleDeleted, events.New(events.RKVehicleDeleted, events.VehicleDeleted{ID: v.ID}))
	}
	return nil
}

func (s *VehicleSvc) publish(ctx context.Context, key string, v any) {
	if err := s.pub.PublishJSON(ctx, key, v); err != nil {
		s.logger.Error("publish event failed", "key", key, "error", err)
	}
}

func toEvent(v *domain.Vehicle) events.Vehicle {
	return events.Vehicle{ID: v.ID, Name: v.Name, Brand: v.Brand, Year: v.Year}
}
