package createreminder

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger    *logging.FakeLogger
	reminders *reminder.TestReminderRepository
	service   services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminders = reminder.NewTestReminderRepository()
	suite.service = New(
		suite.logger,
		suite.reminders,
		func() time.Time { return Now },
	)
}

func TestCreateReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func validInput() Input {
	return Input{
		VendorName:  "Acme Hosting",
		Description: "Monthly server rent",
		Side:        reminder.SideSender,
		Agreement:   "AG-2024-001",
		Amount:      149.99,
		BillingDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        reminder.TypeBeforeDays,
		BeforeDays:  5,
		TimeOfDay:   "09:00",
	}
}

func (s *testSuite) TestSuccess() {
	// Exercise ---
	result, err := s.service.Run(context.Background(), validInput())

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(reminder.ID(1), result.Reminder.ID)
	assert.Equal("Acme Hosting", result.Reminder.VendorName)
	assert.Equal(reminder.StatePending, result.Reminder.State)
	assert.Equal(Now, result.Reminder.CreatedAt)
	assert.Len(s.reminders.Reminders, 1)
}

func (s *testSuite) TestInvalidInput() {
	cases := []struct {
		id     string
		mutate func(input *Input)
	}{
		{
			id:     "empty vendor name",
			mutate: func(input *Input) { input.VendorName = "" },
		},
		{
			id:     "unknown reminder type",
			mutate: func(input *Input) { input.Type = reminder.TypeFrom("MONTHLY") },
		},
		{
			id:     "before days above the limit",
			mutate: func(input *Input) { input.BeforeDays = reminder.MaxBeforeDays + 1 },
		},
		{
			id:     "malformed time of day",
			mutate: func(input *Input) { input.TimeOfDay = "25:99" },
		},
		{
			id:     "single-digit hour in time of day",
			mutate: func(input *Input) { input.TimeOfDay = "9:00" },
		},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			// Setup ---
			input := validInput()
			testcase.mutate(&input)

			// Exercise ---
			_, err := s.service.Run(context.Background(), input)

			// Verify ---
			assert := s.Require()
			var invalidState *e.InvalidStateError
			assert.ErrorAs(err, &invalidState)
			assert.Empty(s.reminders.Reminders)
		})
	}
}

func (s *testSuite) TestCreateError() {
	// Setup ---
	s.reminders.CreateError = errors.New("store unavailable")

	// Exercise ---
	_, err := s.service.Run(context.Background(), validInput())

	// Verify ---
	s.Require().ErrorIs(err, s.reminders.CreateError)
	s.Contains(s.logger.LoggedLevels(), logging.ERROR)
}
