package nats

import (
	"fmt"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject, optionally behind
// a queue group for load balancing
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject on an existing client. Handler errors
// are logged and never stop the subscription.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.GetConn().QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		sub, err = client.GetConn().Subscribe(subject, wrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	return &Consumer{subscription: sub}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
