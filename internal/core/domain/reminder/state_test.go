package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFrom(t *testing.T) {
	cases := []struct {
		id                  string
		status              PaymentStatus
		notificationCreated bool
		expected            CycleState
	}{
		{id: "pending, not notified", status: PaymentStatusPending, notificationCreated: false, expected: StatePending},
		{id: "pending, notified", status: PaymentStatusPending, notificationCreated: true, expected: StateNotified},
		{id: "paid, not notified", status: PaymentStatusPaid, notificationCreated: false, expected: StatePaid},
		{id: "paid, dangling notification flag", status: PaymentStatusPaid, notificationCreated: true, expected: StatePaid},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			assert.Equal(t, testcase.expected, StateFrom(testcase.status, testcase.notificationCreated))
		})
	}
}

func TestStateTransitions(t *testing.T) {
	assert := assert.New(t)

	// Dispatch: S0 -> S1.
	assert.Equal(StateNotified, StatePending.Notified())

	// Rollover resets every state, paid included.
	assert.Equal(StatePending, StateNotified.NewCycle())
	assert.Equal(StatePending, StatePaid.NewCycle())
	assert.Equal(StatePending, StatePending.NewCycle())

	// External payment wins from any state.
	assert.Equal(StatePaid, StatePending.Paid())
	assert.Equal(StatePaid, StateNotified.Paid())

	// A paid cycle cannot become notified.
	assert.Equal(StatePaid, StatePaid.Notified())
}

func TestStateAccessors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(PaymentStatusPending, StatePending.PaymentStatus())
	assert.False(StatePending.NotificationCreated())

	assert.Equal(PaymentStatusPending, StateNotified.PaymentStatus())
	assert.True(StateNotified.NotificationCreated())

	assert.Equal(PaymentStatusPaid, StatePaid.PaymentStatus())
	assert.False(StatePaid.NotificationCreated())
}
