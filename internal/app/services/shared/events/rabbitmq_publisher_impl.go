package events

import (
	"context"
	"healthcare-service/internal/app/contracts"
	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// AMQPChannel is the part of *amqp091.Channel the publisher needs.
type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel  AMQPChannel
	Exchange string
}

// NewRabbitMQPublisher declares a durable topic exchange and publishes each event
// with its type as the routing key.
func NewRabbitMQPublisher(channel AMQPChannel, exchange string) (contracts.EventPublisher, error) {
	err := channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event contracts.EntityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"resource":     event.Resource,
		},
	}

	err = p.Channel.PublishWithContext(ctx, p.Exchange, event.Type, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() contracts.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event contracts.EntityEvent) error {
	return nil
}
