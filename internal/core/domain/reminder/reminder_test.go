package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validReminder() Reminder {
	return Reminder{
		VendorName:  "Acme Hosting",
		Description: "Monthly server rent",
		Side:        SideSender,
		Agreement:   "AG-2024-001",
		Amount:      149.99,
		BillingDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        TypeBeforeDays,
		BeforeDays:  5,
		TimeOfDay:   "09:00",
		State:       StatePending,
	}
}

func TestReminderValidate(t *testing.T) {
	t.Run("valid before days reminder", func(t *testing.T) {
		rem := validReminder()
		assert.Nil(t, rem.Validate())
	})

	t.Run("valid weekly reminder", func(t *testing.T) {
		rem := validReminder()
		rem.Type = TypeWeekly
		rem.BeforeDays = 0
		assert.Nil(t, rem.Validate())
	})

	cases := []struct {
		id     string
		mutate func(rem *Reminder)
	}{
		{
			id:     "empty vendor name",
			mutate: func(rem *Reminder) { rem.VendorName = "" },
		},
		{
			id:     "unknown side",
			mutate: func(rem *Reminder) { rem.Side = SideFrom("observer") },
		},
		{
			id:     "unknown reminder type",
			mutate: func(rem *Reminder) { rem.Type = TypeFrom("MONTHLY") },
		},
		{
			id:     "negative before days",
			mutate: func(rem *Reminder) { rem.BeforeDays = -1 },
		},
		{
			id:     "before days above the limit",
			mutate: func(rem *Reminder) { rem.BeforeDays = MaxBeforeDays + 1 },
		},
		{
			id:     "malformed time of day",
			mutate: func(rem *Reminder) { rem.TimeOfDay = "9am" },
		},
		{
			id:     "zero billing date",
			mutate: func(rem *Reminder) { rem.BillingDate = time.Time{} },
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rem := validReminder()
			testcase.mutate(&rem)
			assert.NotNil(t, rem.Validate())
		})
	}
}
