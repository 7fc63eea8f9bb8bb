package reminder

import "errors"

var ErrParsePaymentStatus = errors.New("invalid payment status")

type PaymentStatus struct {
	v string
}

func (s PaymentStatus) String() string {
	return s.v
}

// PaymentStatusFrom wraps a raw stored value without validating it.
func PaymentStatusFrom(value string) PaymentStatus {
	return PaymentStatus{v: value}
}

func ParsePaymentStatus(value string) (PaymentStatus, error) {
	switch value {
	case "PENDING":
		return PaymentStatusPending, nil
	case "PAID":
		return PaymentStatusPaid, nil
	default:
		return PaymentStatusUnknown, ErrParsePaymentStatus
	}
}

var (
	PaymentStatusUnknown = PaymentStatus{}
	PaymentStatusPending = PaymentStatus{v: "PENDING"}
	PaymentStatusPaid    = PaymentStatus{v: "PAID"}
)

// CycleState is the per-cycle state of a reminder, folding the payment
// status and the cycle-scoped notification flag into one tagged value so
// that a paid reminder with a dangling notification flag cannot be
// represented.
//
// The machine cycles indefinitely:
//
//	StatePending  --dispatch--> StateNotified
//	StateNotified --rollover--> StatePending
//	StatePaid     --rollover--> StatePending
//	any           --payment---> StatePaid
type CycleState struct {
	v string
}

func (s CycleState) String() string {
	return s.v
}

var (
	// StatePending: the current cycle's bill is unpaid and no
	// notification has been created for it yet.
	StatePending = CycleState{v: "pending"}
	// StateNotified: the bill is unpaid and this cycle's notification
	// already exists.
	StateNotified = CycleState{v: "notified"}
	// StatePaid: the bill was recorded as paid for this cycle.
	StatePaid = CycleState{v: "paid"}
)

// StateFrom decodes the stored (paymentStatus, notificationCreated)
// pair. A PAID status wins over the notification flag.
func StateFrom(status PaymentStatus, notificationCreated bool) CycleState {
	if status == PaymentStatusPaid {
		return StatePaid
	}
	if notificationCreated {
		return StateNotified
	}
	return StatePending
}

func (s CycleState) PaymentStatus() PaymentStatus {
	if s == StatePaid {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

func (s CycleState) NotificationCreated() bool {
	return s == StateNotified
}

// NewCycle starts a fresh unpaid cycle. The reset is unconditional: a
// bill paid last cycle starts the next one unpaid.
func (s CycleState) NewCycle() CycleState {
	return StatePending
}

// Notified records a successful notification dispatch for this cycle.
func (s CycleState) Notified() CycleState {
	if s == StatePaid {
		return s
	}
	return StateNotified
}

// Paid records an external payment for the current cycle.
func (s CycleState) Paid() CycleState {
	return StatePaid
}
