package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

const (
	UpdatesExchange = "batch_updates"
	BatchQueue      = "extraction_batches"
)

// RoutingKey returns the topic key an update is published under.
func RoutingKey(update Update) string {
	return fmt.Sprintf("batch.%s", update.BatchID)
}

// AMQPPublisher publishes status updates to the updates topic exchange.
type AMQPPublisher struct {
	conn *amqp.Connection
}

// NewAMQPPublisher declares the updates exchange on conn.
func NewAMQPPublisher(conn *amqp.Connection) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		UpdatesExchange, // name
		"topic",         // kind
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, update Update) error {
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.Publish(
		UpdatesExchange,
		RoutingKey(update),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
