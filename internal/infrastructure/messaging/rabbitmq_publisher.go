package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"oficina_xpto/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "payment-events"

// queueBindings pre-declares the consumer queues so events published before
// any consumer connects are not dropped by the topic exchange.
var queueBindings = map[string]string{
	"budget-generated":  "budget.created",
	"payment-completed": "payment.completed",
	"payment-failed":    "payment.failed",
}

// RabbitMQPublisher publishes workflow events to the payment-events topic
// exchange with persistent delivery.

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ interfaces.IEventPublisher = (*RabbitMQPublisher)(nil)

// NewRabbitMQPublisher connects to the broker and declares the exchange and
// the well-known queues with their bindings.
func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchangeName, err)
	}

	for queue, routingKey := range queueBindings {
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
		if err := channel.QueueBind(queue, routingKey, exchangeName, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue %s: %w", queue, err)
		}
	}

	log.Printf("[messaging][rabbitmq] connected, exchange %s ready", exchangeName)
	return &RabbitMQPublisher{conn: conn, channel: channel}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", routingKey, err)
	}

	err = p.channel.PublishWithContext(ctx,
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	log.Printf("[messaging][rabbitmq] published event %s", routingKey)
	return nil
}

func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
