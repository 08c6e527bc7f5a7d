package event

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	statsService "petstay/internal/domains/stats/service"
	"petstay/internal/events"
	"syscall"

	"github.com/rs/zerolog/log"
)

// Consumer feeds booking events into the stats service until the process is signalled.
type Consumer struct {
	bus   events.Bus
	stats statsService.Stats
}

func New(bus events.Bus, stats statsService.Stats) *Consumer {
	return &Consumer{
		bus:   bus,
		stats: stats,
	}
}

func (c *Consumer) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Stats consumer stopped")
	}

	log.Info().Msg("Stats consumer shut down.")
}

// Run publishes one snapshot up front so the dashboard is warm, then blocks on the bus.
func (c *Consumer) Run(ctx context.Context) error {
	if _, err := c.stats.Publish(ctx); err != nil {
		log.Warn().Err(err).Msg("initial stats snapshot failed")
	}

	log.Info().Msg("Starting up stats consumer.")

	err := c.bus.Subscribe(ctx, c.stats.HandleEvent)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to consume booking events: %w", err)
	}

	return nil
}
