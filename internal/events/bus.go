package events

//go:generate go run go.uber.org/mock/mockgen -source=./bus.go -destination=./mocks/bus_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"petstay/config"
	"petstay/infras/kafka"
	"petstay/infras/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	DriverKafka    = "kafka"
	DriverRabbitMQ = "rabbitmq"
)

// Handler receives decoded events. It must be safe to call more than once for the same event.
type Handler func(ctx context.Context, event Event)

type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(ctx context.Context, handler Handler) error
}

// NewBus picks the transport named by EVENTS_DRIVER. Anything but rabbitmq means kafka.
func NewBus(cfg *config.Config, kafkaClient kafka.Client, rabbitClient rabbitmq.Client) Bus {
	if cfg.Events.Driver == DriverRabbitMQ {
		return &rabbitBus{client: rabbitClient, cfg: cfg}
	}

	return &kafkaBus{client: kafkaClient, cfg: cfg}
}

type kafkaBus struct {
	client kafka.Client
	cfg    *config.Config
}

// Publish keys by booking so every event of one booking stays ordered on a partition.
func (b *kafkaBus) Publish(ctx context.Context, event Event) error {
	return b.client.SendMessages(ctx, b.cfg.Events.Topic, kafka.Message{ //nolint:wrapcheck
		Key:   event.BookingID,
		Value: event,
	})
}

func (b *kafkaBus) Subscribe(ctx context.Context, handler Handler) error {
	return b.client.Consume(ctx, b.cfg.Kafka.ConsumerGroup, b.cfg.Events.Topic, func(ctx context.Context, msg kafkaGo.Message) { //nolint:wrapcheck
		event, err := kafka.Decode[Event](msg)
		if err != nil {
			log.Error().Err(err).Str("key", string(msg.Key)).Msg("dropping undecodable event")

			return
		}

		handler(ctx, event)
	})
}

type rabbitBus struct {
	client rabbitmq.Client
	cfg    *config.Config
}

func (b *rabbitBus) Publish(ctx context.Context, event Event) error {
	return b.client.PublishJSON(ctx, string(event.Type), event) //nolint:wrapcheck
}

func (b *rabbitBus) Subscribe(ctx context.Context, handler Handler) error {
	keys := make([]string, len(Types))
	for i, typ := range Types {
		keys[i] = string(typ)
	}

	return b.client.Consume(ctx, b.cfg.RabbitMQ.Queue, keys, func(delivery amqp.Delivery) { //nolint:wrapcheck
		var event Event

		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			log.Error().Err(err).Str("routing_key", delivery.RoutingKey).Msg("dropping undecodable event")
			nack(delivery)

			return
		}

		handler(ctx, event)

		if err := delivery.Ack(false); err != nil {
			log.Error().Err(err).Msg("failed to ack event")
		}
	})
}

func nack(delivery amqp.Delivery) {
	if err := delivery.Nack(false, false); err != nil {
		log.Error().Err(fmt.Errorf("nack %s: %w", delivery.RoutingKey, err)).Msg("failed to reject event")
	}
}
