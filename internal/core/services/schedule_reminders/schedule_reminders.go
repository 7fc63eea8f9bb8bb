package schedulereminders

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	dispatchnotification "billremind/internal/core/services/dispatch_notification"
	"context"
	"fmt"
	"time"
)

type Input struct {
	// Reminders, when non-empty, restricts the run to reminders just
	// rolled over by the cycle roller; their state is reset before
	// computing. When empty the service sweeps the whole current and
	// next-month window.
	Reminders []reminder.Reminder
}

type Result struct {
	Notified     []reminder.ID
	SkippedCount int
	FailedCount  int
}

type service struct {
	log        logging.Logger
	reminders  reminder.ReminderRepository
	dispatcher services.Service[dispatchnotification.Input, dispatchnotification.Result]
	now        func() time.Time
}

func New(
	log logging.Logger,
	reminders reminder.ReminderRepository,
	dispatcher services.Service[dispatchnotification.Input, dispatchnotification.Result],
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, reminders: reminders, dispatcher: dispatcher, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	now := s.now()

	var candidates []reminder.Reminder
	if len(input.Reminders) > 0 {
		// Rolled reminders arrive with a fresh cycle state from the
		// roller; reset again on a copy so the computation never sees
		// a stale flag and the caller's slice stays untouched.
		candidates = make([]reminder.Reminder, len(input.Reminders))
		for ix, rem := range input.Reminders {
			rem.State = rem.State.NewCycle()
			candidates[ix] = rem
		}
	} else {
		candidates, err = s.sweep(ctx, now)
		if err != nil {
			return result, err
		}
	}

	for _, rem := range candidates {
		if rem.State.NotificationCreated() {
			continue
		}
		triggerAt, err := rem.NextTrigger(now)
		if err != nil {
			// Malformed or unknown-type reminders are skipped, not
			// failed: the batch continues and the flag stays down.
			s.log.Warning(
				ctx,
				"Could not compute reminder trigger, skipping.",
				logging.Entry("reminderID", rem.ID),
				logging.Entry("err", err),
			)
			result.SkippedCount++
			continue
		}

		dispatched, err := s.dispatcher.Run(ctx, dispatchnotification.Input{
			ReminderID:   rem.ID,
			Title:        title(rem),
			Description:  description(rem),
			VendorName:   rem.VendorName,
			Amount:       rem.Amount,
			BillingDate:  rem.BillingDate,
			ReminderTime: triggerAt,
		})
		if err != nil {
			// Dispatch-then-mark: the reminder stays untouched so the
			// next sweep retries it.
			result.FailedCount++
			continue
		}

		rem.State = rem.State.Notified()
		if _, err := s.reminders.Update(ctx, rem); err != nil {
			logging.Error(ctx, s.log, err,
				logging.Entry("reminderID", rem.ID),
				logging.Entry("notificationID", dispatched.NotificationID),
			)
			result.FailedCount++
			continue
		}
		result.Notified = append(result.Notified, rem.ID)
	}

	if len(result.Notified) > 0 || result.SkippedCount > 0 || result.FailedCount > 0 {
		s.log.Info(
			ctx,
			"Reminder scheduling finished.",
			logging.Entry("notifiedCount", len(result.Notified)),
			logging.Entry("skippedCount", result.SkippedCount),
			logging.Entry("failedCount", result.FailedCount),
		)
	}
	return result, nil
}

func (s *service) sweep(ctx context.Context, now time.Time) ([]reminder.Reminder, error) {
	from, to := reminder.SweepWindow(now)
	pending, err := s.reminders.FindPendingByBillingDateRange(ctx, from, to)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("from", from), logging.Entry("to", to))
		return nil, err
	}
	s.log.Info(
		ctx,
		"Got pending reminders for the notification sweep.",
		logging.Entry("count", len(pending)),
		logging.Entry("from", from),
		logging.Entry("to", to),
	)
	return pending, nil
}

func title(rem reminder.Reminder) string {
	if rem.Type == reminder.TypeWeekly {
		return "Weekly Payment Reminder - " + rem.VendorName
	}
	return "Upcoming Payment Reminder - " + rem.VendorName
}

func description(rem reminder.Reminder) string {
	return fmt.Sprintf(
		"Payment of %.2f for %s is due on %s.",
		rem.Amount,
		rem.VendorName,
		rem.BillingDate.Format("January 2, 2006"),
	)
}
