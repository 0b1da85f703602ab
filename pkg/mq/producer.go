package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

const (
	EngagementEventExchange = "engagement_events"

	LikeEventQueue         = "like_event_queue"
	SubscriptionEventQueue = "subscription_event_queue"

	LikeRoutingKey         = "engagement.like"
	SubscriptionRoutingKey = "engagement.subscription"
)

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		EngagementEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare engagement event exchange: %w", err)
	}

	queues := map[string]string{
		LikeEventQueue:         LikeRoutingKey,
		SubscriptionEventQueue: SubscriptionRoutingKey,
	}
	for queue, key := range queues {
		if _, err := p.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
		if err := p.channel.QueueBind(queue, key, EngagementEventExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", queue, err)
		}
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(pubCtx,
		EngagementEventExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// PublishLikeEvent is fire-and-forget: the toggle already committed, a
// lost event only delays counter reconciliation.
func (p *Producer) PublishLikeEvent(ctx context.Context, event *LikeEvent) {
	if err := p.publish(ctx, LikeRoutingKey, event); err != nil {
		hlog.Warnf("failed to publish like event %s: %v", event.EventID, err)
	}
}

func (p *Producer) PublishSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) {
	if err := p.publish(ctx, SubscriptionRoutingKey, event); err != nil {
		hlog.Warnf("failed to publish subscription event %s: %v", event.EventID, err)
	}
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
