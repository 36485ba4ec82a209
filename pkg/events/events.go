package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/stayvista/stayvista-api/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// LogPublisher writes events to the log instead of a broker. Used in dev
// mode so the API runs without a NATS server.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher { return &LogPublisher{} }

func (l *LogPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	logger.InfoContext(ctx, "event (dev mode)", "subject", subject, "data", string(payload))
	return nil
}

func (l *LogPublisher) Close() error { return nil }

// Event subjects
const (
	BookingCreated  = "booking.created"
	BookingCanceled = "booking.canceled"

	PaymentIntentCreated = "payment.intent.created"
)

// Event payloads
type BookingCreatedEvent struct {
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	GuestEmail string    `json:"guest_email"`
	HostEmail  string    `json:"host_email"`
	TotalPrice float64   `json:"total_price"`
	Time       time.Time `json:"time"`
}

type BookingCanceledEvent struct {
	BookingID  string    `json:"booking_id"`
	CanceledAt time.Time `json:"canceled_at"`
}

type PaymentIntentCreatedEvent struct {
	IntentID string `json:"intent_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
