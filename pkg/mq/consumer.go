package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

// LikeEventHandler processes one like event; returning an error leaves
// the delivery unacked for redelivery.
type LikeEventHandler func(ctx context.Context, event *LikeEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := ch.Qos(32, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	return &Consumer{conn: conn, channel: ch}, nil
}

// ConsumeLikeEvents pumps the like queue until ctx is cancelled.
func (c *Consumer) ConsumeLikeEvents(ctx context.Context, handler LikeEventHandler) error {
	deliveries, err := c.channel.Consume(
		LikeEventQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", LikeEventQueue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("like event channel closed")
			}
			var event LikeEvent
			if err := json.Unmarshal(delivery.Body, &event); err != nil {
				hlog.Warnf("dropping malformed like event: %v", err)
				_ = delivery.Ack(false)
				continue
			}
			if err := handler(ctx, &event); err != nil {
				hlog.Errorf("like event %s handler failed: %v", event.EventID, err)
				_ = delivery.Nack(false, true)
				continue
			}
			_ = delivery.Ack(false)
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
