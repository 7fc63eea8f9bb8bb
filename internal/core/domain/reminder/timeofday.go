package reminder

import (
	"errors"
	"fmt"
	"time"
)

var ErrParseTimeOfDay = errors.New("invalid time of day")

const timeOfDayLayout = "15:04"

// TimeOfDay anchors a computed trigger instant to a local HH:MM wall
// clock time.
type TimeOfDay struct {
	hour   int
	minute int
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, value)
	// time.Parse tolerates single-digit hours; the stored format is
	// strict HH:MM, so anything that does not round-trip is rejected.
	if err != nil || t.Format(timeOfDayLayout) != value {
		return TimeOfDay{}, ErrParseTimeOfDay
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On returns the instant at this wall clock time on the given day.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.hour, t.minute, 0, 0, day.Location())
}
