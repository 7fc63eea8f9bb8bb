package reminder

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownReminderType = errors.New("unknown reminder type")

// NextTrigger computes the next notification instant for the reminder,
// never in the past relative to now.
//
// BEFORE_DAYS starts at (billingDate - beforeDays) at the reminder's
// time of day and nudges forward one day at a time until the instant is
// not in the past. WEEKLY lands on the next Monday at the time of day
// (today, if today is Monday and the time has not passed yet) and moves
// in whole weeks.
func (r Reminder) NextTrigger(now time.Time) (time.Time, error) {
	timeOfDay, err := ParseTimeOfDay(r.TimeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("reminder %d: %w", r.ID, err)
	}

	switch r.Type {
	case TypeBeforeDays:
		t := timeOfDay.On(r.BillingDate.AddDate(0, 0, -r.BeforeDays))
		for t.Before(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, nil
	case TypeWeekly:
		daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
		t := timeOfDay.On(now.AddDate(0, 0, daysUntilMonday))
		for t.Before(now) {
			t = t.AddDate(0, 0, 7)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("reminder %d: %w: %s", r.ID, ErrUnknownReminderType, r.Type)
	}
}
