package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends reservation lifecycle events to RabbitMQ. A publisher
// with an empty URL is disabled and drops events silently; reservation
// flow never fails on broker trouble, errors are logged and returned so
// callers can choose to ignore them.
type Publisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	return &Publisher{
		url: url,
		log: log.With(zap.String("component", "queue_publisher")),
	}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.url != ""
}

// Publish declares the durable queue (idempotent) and sends the event as
// a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, queueName string, event ReservationEvent) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("Broker dial failed", zap.Error(err))
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("Broker channel open failed", zap.Error(err))
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		p.log.Warn("Queue declare failed",
			zap.String("queue", queueName),
			zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("Marshal event failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		p.log.Warn("Publish failed",
			zap.String("queue", queueName),
			zap.Error(err))
		return err
	}

	return nil
}
