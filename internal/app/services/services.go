package services

import (
	"billremind/internal/app/deps"
	"billremind/internal/core/services"
	createreminder "billremind/internal/core/services/create_reminder"
	dispatchnotification "billremind/internal/core/services/dispatch_notification"
	listreminders "billremind/internal/core/services/list_reminders"
	recordpayment "billremind/internal/core/services/record_payment"
	rollbillingcycles "billremind/internal/core/services/roll_billing_cycles"
	rundailybilling "billremind/internal/core/services/run_daily_billing"
	schedulereminders "billremind/internal/core/services/schedule_reminders"
)

type Services struct {
	RunDailyBilling services.Service[rundailybilling.Input, rundailybilling.Result]
	CreateReminder  services.Service[createreminder.Input, createreminder.Result]
	ListReminders   services.Service[listreminders.Input, listreminders.Result]
	RecordPayment   services.Service[recordpayment.Input, recordpayment.Result]
}

func InitServices(deps *deps.Deps) *Services {
	dispatcher := dispatchnotification.New(
		deps.Logger,
		deps.NotificationSink,
		deps.NotificationEvents,
	)
	scheduler := schedulereminders.New(
		deps.Logger,
		deps.ReminderRepository,
		dispatcher,
		deps.Now,
	)
	roller := rollbillingcycles.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)

	return &Services{
		RunDailyBilling: rundailybilling.New(deps.Logger, deps.Locker, roller, scheduler),
		CreateReminder:  createreminder.New(deps.Logger, deps.ReminderRepository, deps.Now),
		ListReminders:   listreminders.New(deps.Logger, deps.ReminderRepository),
		RecordPayment:   recordpayment.New(deps.Logger, deps.ReminderRepository),
	}
}
