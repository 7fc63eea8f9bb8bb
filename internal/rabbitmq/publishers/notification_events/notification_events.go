package notificationevents

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/domain/notification"
	"billremind/internal/rabbitmq"
	"context"
	"encoding/json"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes a JSON event per created notification so the
// dashboard's display layer can refresh its bell feed without polling.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	routingKey string,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *RabbitMQ) PublishNotificationCreated(ctx context.Context, event notification.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("notificationID", event.NotificationID))
		return err
	}
	p.log.Info(
		ctx,
		"Notification event has been published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("notificationID", event.NotificationID),
	)
	return nil
}
