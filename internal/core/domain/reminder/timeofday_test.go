package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		value    string
		expected string
		isError  bool
	}{
		{value: "09:00", expected: "09:00"},
		{value: "00:00", expected: "00:00"},
		{value: "23:59", expected: "23:59"},
		{value: "9:00", isError: true},
		{value: "09:0", isError: true},
		{value: "09:00 ", isError: true},
		{value: "24:00", isError: true},
		{value: "09:60", isError: true},
		{value: "9am", isError: true},
		{value: "", isError: true},
	}

	for _, testcase := range cases {
		t.Run(testcase.value, func(t *testing.T) {
			parsed, err := ParseTimeOfDay(testcase.value)
			if testcase.isError {
				if err == nil {
					t.Fatal(testcase.value, parsed)
				}
				return
			}
			if err != nil || parsed.String() != testcase.expected {
				t.Fatal(testcase.value, parsed, err)
			}
		})
	}
}

func TestTimeOfDayOn(t *testing.T) {
	timeOfDay, err := ParseTimeOfDay("09:30")
	assert.Nil(t, err)

	day := time.Date(2024, 3, 15, 22, 45, 11, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), timeOfDay.On(day))
}
