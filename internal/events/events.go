// Package events publishes booking events so that downstream consumers
// (notifications, analytics) can follow what happens to each package.
package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Type identifies what happened.
type Type string

const (
	PassengerAdded Type = "passenger.added"
	ActivityBooked Type = "activity.booked"
)

// Event is one booking-related occurrence. ActivityID and Amount are zero
// for PassengerAdded.
type Event struct {
	Type        Type      `json:"type"`
	PackageID   uuid.UUID `json:"package_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
	ActivityID  uuid.UUID `json:"activity_id,omitzero"`
	Amount      float64   `json:"amount,omitempty"`
	Balance     float64   `json:"balance"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes each event as a structured log line.
// It is the publisher used when no Kafka brokers are configured.
type LogPublisher struct {
	log *slog.Logger
}

// NewLogPublisher returns a LogPublisher writing to log.
func NewLogPublisher(log *slog.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, e Event) error {
	p.log.InfoContext(ctx, "booking event",
		"type", e.Type,
		"package_id", e.PackageID,
		"passenger_id", e.PassengerID,
		"activity_id", e.ActivityID,
		"amount", e.Amount,
		"balance", e.Balance,
		"occurred_at", e.OccurredAt,
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

var _ Publisher = (*LogPublisher)(nil)
