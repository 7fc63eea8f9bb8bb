package listreminders

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	"context"
)

type Input struct{}

type Result struct {
	Reminders []reminder.Reminder
}

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
	reminders, err := s.reminders.List(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	result.Reminders = reminders
	return result, nil
}
