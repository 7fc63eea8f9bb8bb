package schedulereminders

import (
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/notification"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	dispatchnotification "billremind/internal/core/services/dispatch_notification"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) // Friday

type testSuite struct {
	suite.Suite
	logger    *logging.FakeLogger
	reminders *reminder.TestReminderRepository
	sink      *notification.TestNotificationSink
	events    *notification.TestEventPublisher
	service   services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminders = reminder.NewTestReminderRepository()
	suite.sink = notification.NewTestNotificationSink()
	suite.events = notification.NewTestEventPublisher()
	dispatcher := dispatchnotification.New(suite.logger, suite.sink, suite.events)
	suite.service = New(
		suite.logger,
		suite.reminders,
		dispatcher,
		func() time.Time { return Now },
	)
}

func TestScheduleRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) seed(reminders ...reminder.Reminder) {
	s.reminders.Reminders = append(s.reminders.Reminders, reminders...)
}

func beforeDaysReminder(id int64) reminder.Reminder {
	return reminder.Reminder{
		ID:          reminder.ID(id),
		VendorName:  "Acme Hosting",
		Amount:      149.99,
		BillingDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        reminder.TypeBeforeDays,
		BeforeDays:  5,
		TimeOfDay:   "09:00",
		State:       reminder.StatePending,
	}
}

func (s *testSuite) TestSweepsCurrentAndNextMonth() {
	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Empty(result.Notified)
	s.Require().Len(s.reminders.PendingRangeWith, 1)
	s.Equal(
		[2]time.Time{
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		s.reminders.PendingRangeWith[0],
	)
}

func (s *testSuite) TestBeforeDaysReminderNotified() {
	// Setup ---
	s.seed(beforeDaysReminder(1))

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]reminder.ID{reminder.ID(1)}, result.Notified)

	assert.Len(s.sink.Created, 1)
	created := s.sink.Created[0]
	assert.Equal(reminder.ID(1), created.ReminderID)
	assert.Equal("Upcoming Payment Reminder - Acme Hosting", created.Title)
	assert.Equal("Payment of 149.99 for Acme Hosting is due on March 15, 2024.", created.Description)
	assert.Equal(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), created.ReminderTime)

	marked, err := s.reminders.GetByID(context.Background(), reminder.ID(1))
	assert.Nil(err)
	assert.Equal(reminder.StateNotified, marked.State)
}

func (s *testSuite) TestStaleTriggerNudgedForward() {
	// Setup ---
	// now is past the naive (billingDate - beforeDays) instant, so the
	// trigger moves to the next 09:00 that is not in the past.
	service := New(
		s.logger,
		s.reminders,
		dispatchnotification.New(s.logger, s.sink, s.events),
		func() time.Time { return time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC) },
	)
	s.seed(beforeDaysReminder(1))

	// Exercise ---
	result, err := service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(result.Notified, 1)
	assert.Len(s.sink.Created, 1)
	assert.Equal(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), s.sink.Created[0].ReminderTime)
}

func (s *testSuite) TestWeeklyReminderNotified() {
	// Setup ---
	weekly := beforeDaysReminder(1)
	weekly.Type = reminder.TypeWeekly
	weekly.BeforeDays = 0
	s.seed(weekly)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(result.Notified, 1)
	assert.Len(s.sink.Created, 1)
	created := s.sink.Created[0]
	assert.Equal("Weekly Payment Reminder - Acme Hosting", created.Title)
	assert.Equal(time.Monday, created.ReminderTime.Weekday())
	assert.Equal(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), created.ReminderTime)
}

func (s *testSuite) TestSecondSweepIsIdempotent() {
	// Setup ---
	s.seed(beforeDaysReminder(1))

	// Exercise ---
	first, err := s.service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	second, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Len(first.Notified, 1)
	s.Empty(second.Notified)
	s.Len(s.sink.Created, 1)
}

func (s *testSuite) TestUnknownTypeSkipped() {
	// Setup ---
	unknown := beforeDaysReminder(1)
	unknown.Type = reminder.TypeFrom("FORTNIGHTLY")
	s.seed(unknown, beforeDaysReminder(2))

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(1, result.SkippedCount)
	assert.Equal([]reminder.ID{reminder.ID(2)}, result.Notified)
	assert.Contains(s.logger.LoggedLevels(), logging.WARNING)

	skipped, err := s.reminders.GetByID(context.Background(), reminder.ID(1))
	assert.Nil(err)
	assert.Equal(reminder.StatePending, skipped.State)
}

func (s *testSuite) TestMalformedTimeOfDaySkipped() {
	// Setup ---
	malformed := beforeDaysReminder(1)
	malformed.TimeOfDay = "quarter past nine"
	s.seed(malformed)

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Equal(1, result.SkippedCount)
	s.Empty(result.Notified)
	s.Empty(s.sink.Created)
}

func (s *testSuite) TestDispatchFailureLeavesReminderUntouched() {
	// Setup ---
	s.seed(beforeDaysReminder(1))
	s.sink.CreateError = errors.New("sink unavailable")

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(1, result.FailedCount)
	assert.Empty(result.Notified)

	rem, err := s.reminders.GetByID(context.Background(), reminder.ID(1))
	assert.Nil(err)
	assert.Equal(reminder.StatePending, rem.State)
	assert.Empty(s.reminders.Updated)
}

func (s *testSuite) TestAlreadyCreatedMarksReminder() {
	// Setup ---
	// A previous run crashed between the sink write and the reminder
	// update; the sink reports the duplicate and the mark self-heals.
	s.seed(beforeDaysReminder(1))
	s.sink.CreateError = notification.ErrAlreadyCreated

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]reminder.ID{reminder.ID(1)}, result.Notified)
	assert.Empty(s.sink.Created)

	marked, err := s.reminders.GetByID(context.Background(), reminder.ID(1))
	assert.Nil(err)
	assert.Equal(reminder.StateNotified, marked.State)
}

func (s *testSuite) TestExplicitRemindersBypassSweep() {
	// Setup ---
	rolled := beforeDaysReminder(1)
	rolled.State = reminder.StateNotified // stale flag from a caller bug
	s.seed(beforeDaysReminder(1))
	batch := []reminder.Reminder{rolled}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminders: batch})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Empty(s.reminders.PendingRangeWith)
	assert.Equal([]reminder.ID{reminder.ID(1)}, result.Notified)
	assert.Len(s.sink.Created, 1)
	// The caller's slice is not mutated by the in-memory reset.
	assert.Equal(reminder.StateNotified, batch[0].State)
}

func (s *testSuite) TestStoreQueryError() {
	// Setup ---
	s.reminders.FindPendingError = errors.New("store unavailable")

	// Exercise ---
	_, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	assert := s.Require()
	assert.ErrorIs(err, s.reminders.FindPendingError)
	assert.Contains(s.logger.LoggedLevels(), logging.ERROR)
}

func (s *testSuite) TestMarkFailureCountsAsFailed() {
	// Setup ---
	s.seed(beforeDaysReminder(1))
	s.reminders.UpdateErrorByID[reminder.ID(1)] = errors.New("row locked")

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{})

	// Verify ---
	s.Nil(err)
	s.Equal(1, result.FailedCount)
	s.Empty(result.Notified)
	// The notification was created; the next sweep self-heals via the
	// sink's duplicate guard instead of double-notifying.
	s.Len(s.sink.Created, 1)
}
