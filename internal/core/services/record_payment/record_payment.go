package recordpayment

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	"context"
)

type Input struct {
	ReminderID reminder.ID
	Month      string
	SlipURL    string
}

type Result struct {
	Reminder reminder.Reminder
}

// service records a payment for the current cycle: the reminder moves
// to the paid state and the slip is appended to its payment history.
// The next rollover starts a fresh unpaid cycle regardless.
type service struct {
	log       logging.Logger
	reminders reminder.ReminderRepository
}

func New(log logging.Logger, reminders reminder.ReminderRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	return &service{log: log, reminders: reminders}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem, err := s.reminders.GetByID(ctx, input.ReminderID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}

	rem.State = rem.State.Paid()
	rem.Payments = append(rem.Payments, reminder.Payment{Month: input.Month, SlipURL: input.SlipURL})

	updated, err := s.reminders.Update(ctx, rem)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Payment recorded.",
		logging.Entry("reminderID", updated.ID),
		logging.Entry("month", input.Month),
	)
	result.Reminder = updated
	return result, nil
}
