package memory

import (
	"context"
	"testing"

	"github.com/cagncvs/minimal-api/services/minimal-api/internal/domain"
)

func TestNewVehicleStore_Seed(t *testing.T) {
	s := NewVehicleStore(
		domain.Vehicle{ID: 1, Name: "Fiesta", Brand: "Ford", Year: 2015},
		domain.Vehicle{ID: 2, Name: "HB20", Brand: "Hyundai", Year: 2022},
		domain.Vehicle{ID: 3, Name: "Uno", Brand: "Fiat", Year: 2024},
	)
	ctx := context.Background()

	v := &domain.Vehicle{Name: "Onix", Brand: "Chevrolet", Year: 2021}
	if err := s.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.ID != 4 {
		t.Fatalf("expected next id 4, got %d", v.ID)
	}
}

func TestVehicleStore_Independent(t *testing.T) {
	a := NewVehicleStore(domain.Vehicle{Name: "Uno", Brand: "Fiat", Year: 2024})
	b := NewVehicleStore()

	list, err := b.List(context.Background(), domain.VehicleFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("stores must not share state, got %+v", list)
	}
	if _, err := a.ByID(context.Background(), 1); err != nil {
		t.Fatalf("seeded vehicle missing: %v", err)
	}
}

func TestVehicleStore_ReturnsCopies(t *testing.T) {
	s := NewVehicleStore(domain.Vehicle{Name: "Uno", Brand: "Fiat", Year: 2024})
	ctx := context.Background()

	v, _ := s.ByID(ctx, 1)
	v.Name = "mutated"

	again, _ := s.ByID(ctx, 1)
	if again.Name != "Uno" {
		t.Fatalf("caller mutation leaked into the store: %q", again.Name)
	}
}
