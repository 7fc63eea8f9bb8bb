package reminder

import (
	e "billremind/internal/core/domain/errors"
	"fmt"
	"time"
)

type ID int64

const MaxBeforeDays = 30

// Reminder is a recurring vendor bill. BillingDate always points at the
// current cycle boundary once a rollover has run for it.
type Reminder struct {
	ID          ID
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
	Payments    []Payment
	CreatedAt   time.Time
}

// Payment is a recorded payment slip for one billing month. The
// scheduling logic never reads these.
type Payment struct {
	Month   string `json:"month"`
	SlipURL string `json:"slip_url"`
}

func (r *Reminder) Validate() error {
	if r.VendorName == "" {
		return e.NewInvalidStateError("vendor name must not be empty")
	}
	if !r.Side.IsValid() {
		return e.NewInvalidStateError("sender/receiver side is not valid")
	}
	if !r.Type.IsValid() {
		return e.NewInvalidStateError(fmt.Sprintf("reminder type '%s' is not valid", r.Type))
	}
	if r.Type == TypeBeforeDays && (r.BeforeDays < 0 || r.BeforeDays > MaxBeforeDays) {
		return e.NewInvalidStateError(
			fmt.Sprintf("before days must be between 0 and %d", MaxBeforeDays),
		)
	}
	if _, err := ParseTimeOfDay(r.TimeOfDay); err != nil {
		return e.NewInvalidStateError(fmt.Sprintf("time of day '%s' is not valid", r.TimeOfDay))
	}
	if r.BillingDate.IsZero() {
		return e.NewInvalidStateError("billing date must be set")
	}
	return nil
}
