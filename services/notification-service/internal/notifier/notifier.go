package notifier

import (
	"log/slog"
)

// Notifier is the delivery channel for rendered events (console today,
// email/chat later).
type Notifier interface {
	Notify(subject, message string) error
}

type ConsoleNotifier struct {
	logger *slog.Logger
}

func NewConsole(logger *slog.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	c.logger.Info("notification", "subject", subject, "message", message)
	return nil
}
