package reminder

import (
	"context"
	"time"
)

type CreateInput struct {
	VendorName  string
	Description string
	Side        Side
	Agreement   string
	Amount      float64
	BillingDate time.Time
	Type        Type
	BeforeDays  int
	TimeOfDay   string
	State       CycleState
	CreatedAt   time.Time
}

// ReminderRepository persists reminders. Both range queries use a
// half-open [from, to) interval over the billing date.
type ReminderRepository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	List(ctx context.Context) ([]Reminder, error)
	FindByBillingDateRange(ctx context.Context, from time.Time, to time.Time) ([]Reminder, error)
	// FindPendingByBillingDateRange additionally excludes paid reminders.
	FindPendingByBillingDateRange(ctx context.Context, from time.Time, to time.Time) ([]Reminder, error)
	Update(ctx context.Context, r Reminder) (Reminder, error)
}
