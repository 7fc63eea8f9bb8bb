package createreminder

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	"context"
	"time"
)

type Input struct {
	VendorName  string
	Description string
	Side        reminder.Side
	Agreement   string
	Amount      float64
	BillingDate time.Time
	Type        reminder.Type
	BeforeDays  int
	TimeOfDay   string
}

type Result struct {
	Reminder reminder.Reminder
}

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
	rem := reminder.Reminder{
		VendorName:  input.VendorName,
		Description: input.Description,
		Side:        input.Side,
		Agreement:   input.Agreement,
		Amount:      input.Amount,
		BillingDate: input.BillingDate,
		Type:        input.Type,
		BeforeDays:  input.BeforeDays,
		TimeOfDay:   input.TimeOfDay,
		State:       reminder.StatePending,
	}
	if err := rem.Validate(); err != nil {
		return result, err
	}

	created, err := s.reminders.Create(ctx, reminder.CreateInput{
		VendorName:  input.VendorName,
		Description: input.Description,
		Side:        input.Side,
		Agreement:   input.Agreement,
		Amount:      input.Amount,
		BillingDate: input.BillingDate,
		Type:        input.Type,
		BeforeDays:  input.BeforeDays,
		TimeOfDay:   input.TimeOfDay,
		State:       reminder.StatePending,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("vendorName", input.VendorName))
		return result, err
	}

	s.log.Info(
		ctx,
		"Billing reminder created.",
		logging.Entry("reminderID", created.ID),
		logging.Entry("vendorName", created.VendorName),
		logging.Entry("billingDate", created.BillingDate),
	)
	result.Reminder = created
	return result, nil
}
