package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"petstay/config"
	"petstay/shared/constant"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const exchangeKind = "topic"

var ErrNotConfigured = errors.New("rabbitmq url is not configured")

type Client interface {
	PublishJSON(ctx context.Context, routingKey string, value any) error
	Consume(ctx context.Context, queue string, keys []string, handler func(delivery amqp.Delivery)) error
	Close() error
}

type clientImpl struct {
	config *config.Config

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// New returns a client that dials lazily, so processes that never publish need no broker.
func New(config *config.Config) Client {
	return &clientImpl{
		config: config,
	}
}

func (c *clientImpl) channel() (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch != nil && !c.ch.IsClosed() {
		return c.ch, nil
	}

	url := c.config.RabbitMQ.URL
	if url == constant.Empty {
		return nil, ErrNotConfigured
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Error().Err(err).Msg("Failed to dial RabbitMQ")

		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("open channel: %w", err)
	}

	exchange := c.config.RabbitMQ.Exchange
	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("Connected to RabbitMQ")

	c.conn = conn
	c.ch = ch

	return ch, nil
}

func (c *clientImpl) PublishJSON(ctx context.Context, routingKey string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ch, err := c.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, c.config.RabbitMQ.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("Failed to publish message to RabbitMQ.")

		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Consume binds queue to keys and hands every delivery to handler until ctx is done.
// The handler owns acknowledgement.
func (c *clientImpl) Consume(ctx context.Context, queue string, keys []string, handler func(delivery amqp.Delivery)) error {
	ch, err := c.channel()
	if err != nil {
		return err
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	for _, key := range keys {
		if err := ch.QueueBind(q.Name, key, c.config.RabbitMQ.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	deliveries, err := ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", q.Name, err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("queue", q.Name).Msg("Consumer context done.")

			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for %s", q.Name)
			}

			handler(delivery)
		}
	}
}

func (c *clientImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ch != nil {
		_ = c.ch.Close()
	}

	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}
