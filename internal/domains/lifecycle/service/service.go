package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petstay/config"
	"petstay/infras/otel"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/lifecycle/model/dto"
	"petstay/internal/domains/lifecycle/repository"
	roomModel "petstay/internal/domains/room/model"
	"petstay/internal/events"
	"petstay/internal/notification"
	"petstay/internal/visualtoken"
	"petstay/permissions"
	"petstay/shared"
	"petstay/shared/cache"
	"petstay/shared/constant"
	"petstay/shared/failure"

	"github.com/rs/zerolog/log"
)

// Lifecycle moves bookings through Pending, Confirmed, Checked-In and Checked-Out, with
// Cancelled reachable before check-in. Every call authorizes the principal in ctx first.
type Lifecycle interface {
	Confirm(ctx context.Context, id string) (dto.TransitionResponse, error)
	Cancel(ctx context.Context, id string) (dto.TransitionResponse, error)
	Restore(ctx context.Context, id string) (dto.TransitionResponse, error)
	CheckIn(ctx context.Context, id string) (dto.TransitionResponse, error)
	CheckOut(ctx context.Context, id string) (dto.TransitionResponse, error)
}

type serviceImpl struct {
	store       repository.Store
	allocator   Allocator
	coordinator Coordinator
	policy      permissions.Policy
	tokens      visualtoken.Issuer
	notifier    notification.Sender
	emitter     events.Emitter
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	store repository.Store,
	allocator Allocator,
	coordinator Coordinator,
	policy permissions.Policy,
	tokens visualtoken.Issuer,
	notifier notification.Sender,
	emitter events.Emitter,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Lifecycle {
	return &serviceImpl{
		store:       store,
		allocator:   allocator,
		coordinator: coordinator,
		policy:      policy,
		tokens:      tokens,
		notifier:    notifier,
		emitter:     emitter,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, user, err := s.load(ctx, id, permissions.OperationConfirm)
	if err != nil {
		return res, err
	}

	if err = guard(booking, bookingModel.StatusConfirmed); err != nil {
		return res, err
	}

	key, err := s.tokens.Issue(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to issue qr code")

		return res, fmt.Errorf("failed to issue qr code: %w", err)
	}

	updated, err := s.coordinator.Transition(ctx, booking, bookingModel.StatusConfirmed, map[string]any{
		bookingModel.FieldQRCodeKey: key,
	}, user)
	if err != nil {
		if discardErr := s.tokens.Discard(context.WithoutCancel(ctx), key); discardErr != nil {
			log.Error().Err(discardErr).Str("key", key).Msg("failed to discard orphaned qr code")
		}

		return res, err
	}

	updated.QRCodeKey = key

	qrURL, err := s.tokens.URL(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to resolve qr code url")
	}

	delivery := s.notifier.Send(ctx, updated.OwnerName, updated.ID, qrURL)

	if err := s.coordinator.RecordDelivery(ctx, updated.ID, delivery, user); err != nil {
		log.Error().Err(err).Str("booking_id", updated.ID).Msg("failed to record email status")
	}

	updated.EmailStatus = delivery.Status
	updated.EmailSentAt = &delivery.SentAt

	s.emitter.Emit(ctx, events.BookingConfirmed, updated)
	s.invalidate(ctx)

	res.FromModel(updated)
	res.Notification = &dto.Notification{}
	res.Notification.FromDelivery(delivery.Status, delivery.SentAt, qrURL)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, user, err := s.load(ctx, id, permissions.OperationCancel)
	if err != nil {
		return res, err
	}

	if err = guard(booking, bookingModel.StatusCancelled); err != nil {
		return res, err
	}

	held, err := s.heldRoom(ctx, booking)
	if err != nil {
		return res, err
	}

	updated, err := s.coordinator.Release(ctx, booking, held, bookingModel.StatusCancelled, user)
	if err != nil {
		return res, err
	}

	s.emitter.Emit(ctx, events.BookingCancelled, updated)
	s.invalidate(ctx)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Restore(ctx context.Context, id string) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, user, err := s.load(ctx, id, permissions.OperationRestore)
	if err != nil {
		return res, err
	}

	if err = guard(booking, bookingModel.StatusPending); err != nil {
		return res, err
	}

	updated, err := s.coordinator.Transition(ctx, booking, bookingModel.StatusPending, nil, user)
	if err != nil {
		return res, err
	}

	s.emitter.Emit(ctx, events.BookingRestored, updated)
	s.invalidate(ctx)

	res.FromModel(updated)

	return res, nil
}

// CheckIn allocates a room to a confirmed booking. Repeating it on a checked-in booking
// succeeds without touching any record.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, user, err := s.load(ctx, id, permissions.OperationCheckIn)
	if err != nil {
		return res, err
	}

	if booking.Status == bookingModel.StatusCheckedIn {
		room, err := s.store.GetRoom(ctx, booking.RoomNumber)
		if err != nil {
			return res, fmt.Errorf("failed to get room: %w", err)
		}

		res.FromModel(booking)
		res.WithRoom(room)
		res.AlreadyCheckedIn = true

		return res, nil
	}

	if err = guard(booking, bookingModel.StatusCheckedIn); err != nil {
		return res, err
	}

	category, ok := bookingModel.ParseCategory(booking.PetSpecies)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("pet species %q has no room category", booking.PetSpecies)) // nolint:wrapcheck
	}

	room, err := s.allocator.Allocate(ctx, category)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	updated, err := s.coordinator.CheckIn(ctx, booking, room, user)
	if err != nil {
		return res, err
	}

	s.emitter.Emit(ctx, events.BookingCheckedIn, updated)
	s.invalidate(ctx)

	res.FromModel(updated)
	res.WithRoom(room)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.TransitionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, user, err := s.load(ctx, id, permissions.OperationCheckOut)
	if err != nil {
		return res, err
	}

	if err = guard(booking, bookingModel.StatusCheckedOut); err != nil {
		return res, err
	}

	room, err := s.heldRoom(ctx, booking)
	if err != nil {
		return res, err
	}

	updated, err := s.coordinator.Release(ctx, booking, room, bookingModel.StatusCheckedOut, user)
	if err != nil {
		return res, err
	}

	s.emitter.Emit(ctx, events.BookingCheckedOut, updated)
	s.invalidate(ctx)

	res.FromModel(updated)
	res.WithRoom(room)

	return res, nil
}

// load authorizes the caller for operation and reads the booking.
func (s *serviceImpl) load(ctx context.Context, id, operation string) (booking bookingModel.Booking, user string, err error) {
	user, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == "" {
		return booking, user, failure.Unauthorized("missing identity") // nolint:wrapcheck
	}

	if !s.policy.Authorize(user, operation) {
		log.Warn().Str("principal", user).Str("operation", operation).Msg("operation denied")

		return booking, user, failure.Forbidden(fmt.Sprintf("%s is not allowed to run %s", user, operation)) // nolint:wrapcheck
	}

	if err = bookingModel.ValidateID(id); err != nil {
		return booking, user, err
	}

	booking, err = s.store.GetBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, user, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, user, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, user, nil
}

// heldRoom returns the room booking still occupies. A room that has drifted to another
// holder, or no room at all, comes back zero so the booking can still leave.
func (s *serviceImpl) heldRoom(ctx context.Context, booking bookingModel.Booking) (roomModel.Room, error) {
	if booking.RoomNumber == constant.Empty {
		return roomModel.Room{}, nil
	}

	room, err := s.store.GetRoom(ctx, booking.RoomNumber)
	if err != nil {
		return roomModel.Room{}, fmt.Errorf("failed to get room: %w", err)
	}

	if room.OccupiedBy != booking.ID {
		log.Warn().Str("booking_id", booking.ID).Str("room_number", room.RoomNumber).Str("occupied_by", room.OccupiedBy).
			Msg("room is not held by booking, leaving it untouched")

		return roomModel.Room{}, nil
	}

	return room, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, bookingModel.CachePrefix)
		shared.InvalidateCaches(c, s.cache, roomModel.CachePrefix)
	}()
}

func guard(booking bookingModel.Booking, next bookingModel.Status) error {
	if booking.Status.CanTransitionTo(next) {
		return nil
	}

	return failure.PreconditionFailed(fmt.Sprintf("booking %s is %s and cannot become %s", booking.ID, booking.Status, next)) // nolint:wrapcheck
}
