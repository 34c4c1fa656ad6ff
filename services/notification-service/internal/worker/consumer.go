package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/cagncvs/minimal-api/pkg/events"
	"github.com/cagncvs/minimal-api/services/notification-service/internal/notifier"
)

// errPoison marks deliveries that can never succeed; they are dead-lettered
// instead of requeued.
var errPoison = errors.New("poison message")

type Worker struct {
	notifier notifier.Notifier
	logger   *slog.Logger
}

func New(n notifier.Notifier, logger *slog.Logger) *Worker {
	return &Worker{notifier: n, logger: logger}
}

// Run acks handled deliveries until ctx is done or msgs is closed.
func (w *Worker) Run(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			err := w.handleDelivery(d)
			switch {
			case err == nil:
				_ = d.Ack(false)
			case errors.Is(err, errPoison):
				w.logger.Warn("dead-lettering delivery", "key", d.RoutingKey, "error", err)
				_ = d.Nack(false, false)
			default:
				w.logger.Error("handle delivery failed, requeue", "key", d.RoutingKey, "error", err)
				_ = d.Nack(false, true)
			}
		}
	}
}

func (w *Worker) handleDelivery(d amqp.Delivery) error {
	subject, msg, err := render(d.RoutingKey, d.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", errPoison, err)
	}
	if subject == "" {
		w.logger.Debug("skip unknown key", "key", d.RoutingKey)
		return nil
	}
	return w.notifier.Notify(subject, msg)
}

// render returns an empty subject for keys it does not know.
func render(key string, body []byte) (string, string, error) {
	switch key {
	case events.RKVehicleCreated:
		ev, err := events.Decode[events.Vehicle](body)
		if err != nil {
			return "", "", err
		}
		v := ev.Data
		return "Vehicle created", fmt.Sprintf("Vehicle %d: %s %s (%d) was registered.", v.ID, v.Brand, v.Name, v.Year), nil

	case events.RKVehicleUpdated:
		ev, err := events.Decode[events.Vehicle](body)
		if err != nil {
			return "", "", err
		}
		v := ev.Data
		return "Vehicle updated", fmt.Sprintf("Vehicle %d is now %s %s (%d).", v.ID, v.Brand, v.Name, v.Year), nil

	case events.RKVehicleDeleted:
		ev, err := events.Decode[events.VehicleDeleted](body)
		if err != nil {
			return "", "", err
		}
		return "Vehicle deleted", fmt.Sprintf("Vehicle %d was removed.", ev.Data.ID), nil

	case events.RKAdminCreated:
		ev, err := events.Decode[events.AdminCreated](body)
		if err != nil {
			return "", "", err
		}
		return "Administrator created", fmt.Sprintf("%s joined with profile %s.", ev.Data.Email, ev.Data.Role), nil
	}
	return "", "", nil
}
