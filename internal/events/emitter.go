package events

//go:generate go run go.uber.org/mock/mockgen -source=./emitter.go -destination=./mocks/emitter_mock.go -package=mocks

import (
	"context"
	"petstay/config"
	"petstay/infras/otel"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// Emitter announces committed transitions. Delivery is best effort: a failed publish is
// logged and never reported to the caller.
type Emitter interface {
	Emit(ctx context.Context, typ Type, booking bookingModel.Booking)
}

type emitterImpl struct {
	bus  Bus
	cfg  *config.Config
	otel otel.Otel
}

func NewEmitter(bus Bus, cfg *config.Config, otel otel.Otel) Emitter {
	return &emitterImpl{
		bus:  bus,
		cfg:  cfg,
		otel: otel,
	}
}

func (e *emitterImpl) Emit(ctx context.Context, typ Type, booking bookingModel.Booking) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Emit")
	defer scope.End()

	// the transition is already committed, so a cancelled request must not drop the event
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := New(e.cfg.Events.Source, typ, booking)

	scope.SetAttributes(map[string]any{
		"event.type":       string(typ),
		"event.booking_id": booking.ID,
	})

	if err := e.bus.Publish(ctx, event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", string(typ)).Str("booking_id", booking.ID).Msg("failed to publish booking event")

		return
	}

	log.Info().Str("type", string(typ)).Str("booking_id", booking.ID).Msg("booking event published")
}
