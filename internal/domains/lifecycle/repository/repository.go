package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"petstay/infras/otel"
	bookingModel "petstay/internal/domains/booking/model"
	bookingRepo "petstay/internal/domains/booking/repository"
	roomModel "petstay/internal/domains/room/model"
	roomRepo "petstay/internal/domains/room/repository"
	"petstay/shared"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	gRepo "petstay/shared/repository"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const expectArgPrefix = "expect_"

// ErrConditionFailed is returned by Commit when any leg's expectation no longer holds.
// No leg is applied in that case.
var ErrConditionFailed = gRepo.ErrConditionFailed

// Leg is one conditional write of an atomic commit: the row of Table keyed by ID is updated
// with Set only if every column in Expect still holds the expected value.
type Leg struct {
	Table  string
	ID     string
	Expect map[string]any
	Set    map[string]any
}

type Store interface {
	GetBooking(ctx context.Context, id string) (bookingModel.Booking, error)
	GetRoom(ctx context.Context, roomNumber string) (roomModel.Room, error)
	FindFreeRooms(ctx context.Context, petType string) ([]roomModel.Room, error)
	CountRooms(ctx context.Context) (int, error)
	SeedRooms(ctx context.Context, rooms []roomModel.Room) (int, error)
	Commit(ctx context.Context, legs ...Leg) error
}

type storeImpl struct {
	bookings   bookingRepo.Booking
	rooms      roomRepo.Room
	transactor gRepo.Transactor
	otel       otel.Otel
}

func New(bookings bookingRepo.Booking, rooms roomRepo.Room, transactor gRepo.Transactor, otel otel.Otel) Store {
	return &storeImpl{
		bookings:   bookings,
		rooms:      rooms,
		transactor: transactor,
		otel:       otel,
	}
}

func (s *storeImpl) GetBooking(ctx context.Context, id string) (bookingModel.Booking, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lifecycle.GetBooking")
	defer scope.End()

	return s.bookings.Get(ctx, shared.FilterByID(id, bookingModel.FieldID, bookingModel.TableName)) //nolint:wrapcheck
}

func (s *storeImpl) GetRoom(ctx context.Context, roomNumber string) (roomModel.Room, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lifecycle.GetRoom")
	defer scope.End()

	return s.rooms.Get(ctx, shared.FilterByID(roomNumber, roomModel.FieldRoomNumber, roomModel.TableName)) //nolint:wrapcheck
}

// FindFreeRooms lists unoccupied rooms of petType, lowest room number first.
func (s *storeImpl) FindFreeRooms(ctx context.Context, petType string) ([]roomModel.Room, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lifecycle.FindFreeRooms")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  roomModel.TableName + "." + roomModel.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldPetType,
				Value:    petType,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldOccupied,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}

	return s.rooms.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (s *storeImpl) CountRooms(ctx context.Context) (int, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lifecycle.CountRooms")
	defer scope.End()

	return s.rooms.Count(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (s *storeImpl) SeedRooms(ctx context.Context, rooms []roomModel.Room) (int, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lifecycle.SeedRooms")
	defer scope.End()

	return s.rooms.InsertMissing(ctx, rooms) //nolint:wrapcheck
}

// Commit applies every leg in one transaction, rooms before bookings so concurrent commits
// take row locks in the same order.
func (s *storeImpl) Commit(ctx context.Context, legs ...Leg) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lifecycle.Commit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	ordered := OrderLegs(legs)

	if len(ordered) == 1 {
		return s.apply(ctx, nil, ordered[0])
	}

	err = s.transactor.WithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, leg := range ordered {
			if err := s.apply(ctx, tx, leg); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil && !errors.Is(err, ErrConditionFailed) {
		log.Error().Err(err).Int("legs", len(ordered)).Msg("failed to commit legs")
	}

	return err //nolint:wrapcheck
}

func (s *storeImpl) apply(ctx context.Context, tx *sqlx.Tx, leg Leg) error {
	filter := LegFilter(leg)

	switch leg.Table {
	case roomModel.TableName:
		if tx == nil {
			return s.rooms.UpdateIf(ctx, leg.Set, filter) //nolint:wrapcheck
		}

		return s.rooms.UpdateIfTx(ctx, tx, leg.Set, filter) //nolint:wrapcheck
	case bookingModel.TableName:
		if tx == nil {
			return s.bookings.UpdateIf(ctx, leg.Set, filter) //nolint:wrapcheck
		}

		return s.bookings.UpdateIfTx(ctx, tx, leg.Set, filter) //nolint:wrapcheck
	default:
		return fmt.Errorf("unknown table %q", leg.Table)
	}
}

// OrderLegs returns legs with room writes first, keeping the relative order otherwise.
func OrderLegs(legs []Leg) []Leg {
	ordered := slices.Clone(legs)

	slices.SortStableFunc(ordered, func(a, b Leg) int {
		return tableRank(a.Table) - tableRank(b.Table)
	})

	return ordered
}

func tableRank(table string) int {
	if table == roomModel.TableName {
		return 0
	}

	return 1
}

// LegFilter builds the where clause of a leg: its key plus every expectation.
func LegFilter(leg Leg) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  expectArgPrefix + constant.FieldID,
				Field:    constant.FieldID,
				Value:    leg.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    leg.Table,
			},
		},
	}

	for _, col := range slices.Sorted(maps.Keys(leg.Expect)) {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  expectArgPrefix + col,
			Field:    col,
			Value:    leg.Expect[col],
			Operator: gDto.FilterOperatorEq,
			Table:    leg.Table,
		})
	}

	return filter
}
