package reminder

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// NextBillingDate advances a billing date by exactly one calendar month,
// preserving the day of month and clamping to the last valid day of the
// target month (Jan 31 -> Feb 28/29).
func NextBillingDate(t time.Time) time.Time {
	return carbon.Time2Carbon(t).AddMonthsNoOverflow(1).Carbon2Time()
}

// RolloverWindow returns the half-open day window [start, end) covering
// the day before now. Reminders whose billing date fell in this window
// are due for a cycle rollover.
func RolloverWindow(now time.Time) (start, end time.Time) {
	today := carbon.Time2Carbon(now).StartOfDay()
	return today.SubDay().Carbon2Time(), today.Carbon2Time()
}

// SweepWindow returns the half-open window [startOfMonth(now),
// startOfMonthAfterNext(now)) scanned by the notification sweep: the
// current month and the whole next month.
func SweepWindow(now time.Time) (start, end time.Time) {
	month := carbon.Time2Carbon(now).StartOfMonth()
	return month.Carbon2Time(), month.AddMonths(2).Carbon2Time()
}
