package service

import (
	"context"
	"errors"
	"fmt"
	"petstay/infras/otel"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/lifecycle/repository"
	roomModel "petstay/internal/domains/room/model"
	"petstay/internal/notification"
	"petstay/shared/constant"
	"petstay/shared/failure"
	"petstay/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// Coordinator turns a transition into conditional legs and commits them atomically.
// Every leg is conditioned on the state the caller read, so a concurrent writer makes
// the whole commit fail instead of being overwritten.
type Coordinator interface {
	CheckIn(ctx context.Context, booking bookingModel.Booking, room roomModel.Room, user string) (bookingModel.Booking, error)
	Release(ctx context.Context, booking bookingModel.Booking, room roomModel.Room, next bookingModel.Status, user string) (bookingModel.Booking, error)
	Transition(ctx context.Context, booking bookingModel.Booking, next bookingModel.Status, set map[string]any, user string) (bookingModel.Booking, error)
	RecordDelivery(ctx context.Context, bookingID string, status notification.DeliveryStatus, user string) error
}

type coordinatorImpl struct {
	store repository.Store
	otel  otel.Otel
}

func NewCoordinator(store repository.Store, otel otel.Otel) Coordinator {
	return &coordinatorImpl{
		store: store,
		otel:  otel,
	}
}

// CheckIn occupies room and moves booking to Checked-In in one commit.
// A lost race on either record is reported as an allocation conflict.
func (c *coordinatorImpl) CheckIn(ctx context.Context, booking bookingModel.Booking, room roomModel.Room, user string) (updated bookingModel.Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coordinator.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()

	roomLeg := repository.Leg{
		Table:  roomModel.TableName,
		ID:     room.ID,
		Expect: map[string]any{roomModel.FieldOccupied: false},
		Set: stamp(map[string]any{
			roomModel.FieldOccupied:   true,
			roomModel.FieldOccupiedBy: booking.ID,
		}, now, user),
	}

	bookingLeg := repository.Leg{
		Table:  bookingModel.TableName,
		ID:     booking.ID,
		Expect: map[string]any{bookingModel.FieldStatus: bookingModel.StatusConfirmed},
		Set: stamp(map[string]any{
			bookingModel.FieldStatus:      bookingModel.StatusCheckedIn,
			bookingModel.FieldRoomNumber:  room.RoomNumber,
			bookingModel.FieldCheckInTime: now,
		}, now, user),
	}

	if err = c.store.Commit(ctx, roomLeg, bookingLeg); err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			log.Warn().Str("booking_id", booking.ID).Str("room", room.RoomNumber).Msg("check-in lost a race")

			return booking, failure.AllocationConflict(fmt.Sprintf("room %s or booking %s changed concurrently, retry check-in", room.RoomNumber, booking.ID)) // nolint:wrapcheck
		}

		return booking, fmt.Errorf("failed to commit check-in: %w", err)
	}

	updated = booking
	updated.Status = bookingModel.StatusCheckedIn
	updated.RoomNumber = room.RoomNumber
	updated.CheckInTime = &now
	touch(&updated, now, user)

	return updated, nil
}

// Release moves booking to next and frees room when the booking holds it. A zero room
// means there is nothing to free. Cancelled bookings also drop their room number;
// checked-out ones keep it.
func (c *coordinatorImpl) Release(ctx context.Context, booking bookingModel.Booking, room roomModel.Room, next bookingModel.Status, user string) (updated bookingModel.Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coordinator.Release")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()
	updated = booking
	updated.Status = next

	set := map[string]any{bookingModel.FieldStatus: next}

	switch next {
	case bookingModel.StatusCheckedOut:
		set[bookingModel.FieldCheckOutTime] = now
		updated.CheckOutTime = &now
	case bookingModel.StatusCancelled:
		set[bookingModel.FieldRoomNumber] = constant.Empty
		updated.RoomNumber = constant.Empty
	}

	legs := []repository.Leg{{
		Table:  bookingModel.TableName,
		ID:     booking.ID,
		Expect: map[string]any{bookingModel.FieldStatus: booking.Status},
		Set:    stamp(set, now, user),
	}}

	if room.ID != "" {
		legs = append(legs, repository.Leg{
			Table: roomModel.TableName,
			ID:    room.ID,
			Expect: map[string]any{
				roomModel.FieldOccupied:   true,
				roomModel.FieldOccupiedBy: booking.ID,
			},
			Set: stamp(map[string]any{
				roomModel.FieldOccupied:   false,
				roomModel.FieldOccupiedBy: constant.Empty,
			}, now, user),
		})
	}

	if err = c.store.Commit(ctx, legs...); err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			return booking, failure.PreconditionFailed(fmt.Sprintf("booking %s changed concurrently, expected %s", booking.ID, booking.Status)) // nolint:wrapcheck
		}

		return booking, fmt.Errorf("failed to commit release: %w", err)
	}

	touch(&updated, now, user)

	return updated, nil
}

// Transition is a single conditional status write. set carries extra columns to write
// with it; the caller mirrors them on the returned booking.
func (c *coordinatorImpl) Transition(ctx context.Context, booking bookingModel.Booking, next bookingModel.Status, set map[string]any, user string) (updated bookingModel.Booking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coordinator.Transition")
	defer scope.End()
	defer scope.TraceIfError(&err)

	now := timezone.Now()

	fields := map[string]any{bookingModel.FieldStatus: next}
	for col, value := range set {
		fields[col] = value
	}

	err = c.store.Commit(ctx, repository.Leg{
		Table:  bookingModel.TableName,
		ID:     booking.ID,
		Expect: map[string]any{bookingModel.FieldStatus: booking.Status},
		Set:    stamp(fields, now, user),
	})
	if err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			return booking, failure.PreconditionFailed(fmt.Sprintf("booking %s is no longer %s", booking.ID, booking.Status)) // nolint:wrapcheck
		}

		return booking, fmt.Errorf("failed to commit transition: %w", err)
	}

	updated = booking
	updated.Status = next
	touch(&updated, now, user)

	return updated, nil
}

// RecordDelivery stores the outcome of a notification regardless of the booking's status.
func (c *coordinatorImpl) RecordDelivery(ctx context.Context, bookingID string, status notification.DeliveryStatus, user string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coordinator.RecordDelivery")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = c.store.Commit(ctx, repository.Leg{
		Table: bookingModel.TableName,
		ID:    bookingID,
		Set: stamp(map[string]any{
			bookingModel.FieldEmailStatus: status.Status,
			bookingModel.FieldEmailSentAt: status.SentAt,
		}, timezone.Now(), user),
	})
	if err != nil {
		return fmt.Errorf("failed to record delivery status: %w", err)
	}

	return nil
}

func stamp(set map[string]any, now time.Time, user string) map[string]any {
	set[constant.FieldModifiedAt] = now
	set[constant.FieldModifiedBy] = user

	return set
}

func touch(booking *bookingModel.Booking, now time.Time, user string) {
	booking.ModifiedAt = now
	booking.ModifiedBy = user
}
