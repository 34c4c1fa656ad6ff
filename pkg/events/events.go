// Package events holds the routing keys and payloads published on the events
// exchange. Producers and the notification worker both import it.
package events

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	RKVehicleCreated = "vehicle.created"
	RKVehicleUpdated = "vehicle.updated"
	RKVehicleDeleted = "vehicle.deleted"

	RKAdminCreated = "admin.created"
)

// Bindings covers every key above.
var Bindings = []string{"vehicle.*", "admin.*"}

type Envelope[T any] struct {
	Event      string `json:"event"`
	Version    int    `json:"version"`
	OccurredAt string `json:"occurred_at"` // RFC3339
	Data       T      `json:"data"`
}

func New[T any](key string, data T) Envelope[T] {
	return Envelope[T]{
		Event:      key,
		Version:    1,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}
}

type Vehicle struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Brand string `json:"marca"`
	Year  int    `json:"ano"`
}

type VehicleDeleted struct {
	ID int `json:"id"`
}

type AdminCreated struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"perfil"`
}

func Decode[T any](b []byte) (Envelope[T], error) {
	var env Envelope[T]
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope[T]{}, fmt.Errorf("decode payload failed: %w", err)
	}
	return env, nil
}
