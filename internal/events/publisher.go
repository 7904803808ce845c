// internal/events/publisher.go
package events

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

const planQueue = "plan_events"

// PlanGenerated is the event emitted after a plan request reaches a terminal
// outcome. It carries request metadata only, never the plan itself.
type PlanGenerated struct {
	RequestID string `json:"request_id"`
	Outcome   string `json:"outcome"`
	Channels  int    `json:"channels"`
}

// Publisher interface
type Publisher interface {
	PublishPlanGenerated(evt PlanGenerated) error
}

// AMQPPublisher publishes plan events to RabbitMQ. A connection is dialed
// per publish; events are fire-and-forget and must never block a response.
type AMQPPublisher struct {
	URL string
}

func (p *AMQPPublisher) PublishPlanGenerated(evt PlanGenerated) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return fmt.Errorf("connect to queue: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open queue channel: %w", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		planQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",
		q.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
