// Package memory is an in-process VehicleStore. Each Store is independent;
// build a fresh one per test.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

type VehicleStore struct {
	mu     sync.Mutex
	rows   map[int]domain.Vehicle
	nextID int
}

// NewVehicleStore seeds the store with vehicles; seeds without an ID get one.
func NewVehicleStore(seed ...domain.Vehicle) *VehicleStore {
	s := &VehicleStore{rows: make(map[int]domain.Vehicle), nextID: 1}
	for _, v := range seed {
		_ = s.Create(context.Background(), &v)
	}
	return s
}

func (s *VehicleStore) Create(_ context.Context, v *domain.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == 0 {
		v.ID = s.nextID
	}
	if v.ID >= s.nextID {
		s.nextID = v.ID + 1
	}
	s.rows[v.ID] = *v
	return nil
}

func (s *VehicleStore) ByID(_ context.Context, id int) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (s *VehicleStore) List(_ context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	name := strings.ToLower(strings.TrimSpace(f.Name))
	brand := strings.ToLower(strings.TrimSpace(f.Brand))
	matched := make([]domain.Vehicle, 0, len(ids))
	for _, id := range ids {
		v := s.rows[id]
		if name != "" && !strings.Contains(strings.ToLower(v.Name), name) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(v.Brand), brand) {
			continue
		}
		matched = append(matched, v)
	}

	start := domain.Offset(f.Page, f.PageSize)
	if start >= len(matched) {
		return []domain.Vehicle{}, nil
	}
	end := min(start+f.PageSize, len(matched))
	return matched[start:end], nil
}

func (s *VehicleStore) Update(_ context.Context, v *domain.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.rows[v.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Name, cur.Brand, cur.Year = v.Name, v.Brand, v.Year
	s.rows[v.ID] = cur
	return nil
}

func (s *VehicleStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}
