package notification

import (
	"billremind/internal/core/domain/reminder"
	"context"
	"errors"
	"time"
)

type ID int64

// ErrAlreadyCreated is returned by a Sink when a notification for the
// same reminder and billing cycle already exists. It is the sink-side
// guard behind the cycle-scoped idempotency guarantee.
var ErrAlreadyCreated = errors.New("notification already created for this billing cycle")

// Notification is a one-shot record consumed by the dashboard's
// display layer. Created once; only IsSeen is mutated afterwards, and
// not by this engine.
type Notification struct {
	ID           ID
	Title        string
	Description  string
	VendorName   string
	Amount       float64
	BillingDate  time.Time
	ReminderTime time.Time
	IsSeen       bool
	CreatedAt    time.Time
}

type CreateInput struct {
	ReminderID   reminder.ID
	Title        string
	Description  string
	VendorName   string
	Amount       float64
	BillingDate  time.Time
	ReminderTime time.Time
}

// Sink persists notifications with IsSeen=false.
type Sink interface {
	Create(ctx context.Context, input CreateInput) (ID, error)
}

// Event announces a freshly created notification to the display layer.
type Event struct {
	NotificationID ID        `json:"notification_id"`
	Title          string    `json:"title"`
	VendorName     string    `json:"vendor_name"`
	Amount         float64   `json:"amount"`
	BillingDate    time.Time `json:"billing_date"`
	ReminderTime   time.Time `json:"reminder_time"`
}

type EventPublisher interface {
	PublishNotificationCreated(ctx context.Context, event Event) error
}
