package rollbillingcycles

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	"context"
	"time"
)

type Input struct{}

type Result struct {
	// Rolled holds the reminders whose billing date was advanced, as
	// persisted. The caller feeds them straight to the scheduler.
	Rolled      []reminder.Reminder
	FailedCount int
}

// service advances reminders whose billing date was yesterday to the
// next calendar month and resets their cycle state. Paid reminders roll
// over the same way as pending ones.
type service struct {
	log       logging.Logger
	reminders reminder.ReminderRepository
	now       func() time.Time
}

func New(
	log logging.Logger,
	reminders reminder.ReminderRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, reminders: reminders, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()
	from, to := reminder.RolloverWindow(now)

	due, err := s.reminders.FindByBillingDateRange(ctx, from, to)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("from", from), logging.Entry("to", to))
		return result, err
	}
	s.log.Info(
		ctx,
		"Got reminders for billing cycle rollover.",
		logging.Entry("count", len(due)),
		logging.Entry("from", from),
		logging.Entry("to", to),
	)

	for _, rem := range due {
		rem.BillingDate = reminder.NextBillingDate(rem.BillingDate)
		rem.State = rem.State.NewCycle()
		rolled, err := s.reminders.Update(ctx, rem)
		if err != nil {
			// One bad reminder must not block the rest of the batch;
			// it stays in yesterday's window and rolls on a later run.
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
			result.FailedCount++
			continue
		}
		result.Rolled = append(result.Rolled, rolled)
	}

	if len(result.Rolled) > 0 || result.FailedCount > 0 {
		s.log.Info(
			ctx,
			"Billing cycles rolled over.",
			logging.Entry("rolledCount", len(result.Rolled)),
			logging.Entry("failedCount", result.FailedCount),
		)
	}
	return result, nil
}
