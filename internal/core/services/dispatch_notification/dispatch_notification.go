package dispatchnotification

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/notification"
	"billremind/internal/core/domain/reminder"
	"billremind/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	ReminderID   reminder.ID
	Title        string
	Description  string
	VendorName   string
	Amount       float64
	BillingDate  time.Time
	ReminderTime time.Time
}

type Result struct {
	NotificationID notification.ID
	// AlreadyCreated reports that the sink had a notification for this
	// reminder and cycle from an earlier, partially failed run.
	AlreadyCreated bool
}

// service performs a single create against the notification sink. It
// never retries; on failure the caller leaves the reminder untouched
// so the next sweep picks it up again.
type service struct {
	log    logging.Logger
	sink   notification.Sink
	events notification.EventPublisher
}

func New(
	log logging.Logger,
	sink notification.Sink,
	events notification.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sink == nil {
		panic(e.NewNilArgumentError("sink"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &service{log: log, sink: sink, events: events}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	id, err := s.sink.Create(ctx, notification.CreateInput{
		ReminderID:   input.ReminderID,
		Title:        input.Title,
		Description:  input.Description,
		VendorName:   input.VendorName,
		Amount:       input.Amount,
		BillingDate:  input.BillingDate,
		ReminderTime: input.ReminderTime,
	})
	if errors.Is(err, notification.ErrAlreadyCreated) {
		// A previous run crashed between the sink write and the
		// reminder update. The notification exists, so the caller may
		// mark the reminder as processed.
		s.log.Info(
			ctx,
			"Notification for this cycle already exists, skipping create.",
			logging.Entry("reminderID", input.ReminderID),
			logging.Entry("billingDate", input.BillingDate),
		)
		return Result{AlreadyCreated: true}, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}
	result.NotificationID = id

	if err := s.events.PublishNotificationCreated(ctx, notification.Event{
		NotificationID: id,
		Title:          input.Title,
		VendorName:     input.VendorName,
		Amount:         input.Amount,
		BillingDate:    input.BillingDate,
		ReminderTime:   input.ReminderTime,
	}); err != nil {
		// The record is persisted; the display layer reads the sink
		// directly, so a lost event only delays the live bell update.
		logging.Error(ctx, s.log, err, logging.Entry("notificationID", id))
	}

	s.log.Info(
		ctx,
		"Billing notification created.",
		logging.Entry("notificationID", id),
		logging.Entry("reminderID", input.ReminderID),
		logging.Entry("reminderTime", input.ReminderTime),
	)
	return result, nil
}
