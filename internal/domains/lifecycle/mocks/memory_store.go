package mocks

import (
	"context"
	"fmt"
	"maps"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/lifecycle/repository"
	roomModel "petstay/internal/domains/room/model"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// MemoryStore is an in-process repository.Store. Commit is atomic across legs and
// honours every expectation, so it can stand in for postgres in lifecycle scenarios.
type MemoryStore struct {
	mu       sync.Mutex
	bookings map[string]bookingModel.Booking
	rooms    map[string]roomModel.Room

	// CommitErr, when set, is returned by the next Commit instead of applying it.
	CommitErr error
	Commits   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: map[string]bookingModel.Booking{},
		rooms:    map[string]roomModel.Room{},
	}
}

func (m *MemoryStore) PutBooking(booking bookingModel.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings[booking.ID] = booking
}

func (m *MemoryStore) PutRoom(room roomModel.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rooms[room.ID] = room
}

func (m *MemoryStore) Booking(id string) bookingModel.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bookings[id]
}

// Rooms returns every room ordered by room number.
func (m *MemoryStore) Rooms() []roomModel.Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sortedRooms()
}

func (m *MemoryStore) GetBooking(_ context.Context, id string) (bookingModel.Booking, error) {
	return m.Booking(id), nil
}

func (m *MemoryStore) GetRoom(_ context.Context, roomNumber string) (roomModel.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, room := range m.rooms {
		if room.RoomNumber == roomNumber {
			return room, nil
		}
	}

	return roomModel.Room{}, nil
}

func (m *MemoryStore) FindFreeRooms(_ context.Context, petType string) ([]roomModel.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	free := []roomModel.Room{}

	for _, room := range m.sortedRooms() {
		if room.PetType == petType && !room.Occupied {
			free = append(free, room)
		}
	}

	return free, nil
}

func (m *MemoryStore) CountRooms(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.rooms), nil
}

func (m *MemoryStore) SeedRooms(_ context.Context, rooms []roomModel.Room) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	taken := map[string]bool{}
	for _, room := range m.rooms {
		taken[room.RoomNumber] = true
	}

	created := 0

	for _, room := range rooms {
		if taken[room.RoomNumber] {
			continue
		}

		taken[room.RoomNumber] = true
		m.rooms[room.ID] = room
		created++
	}

	return created, nil
}

func (m *MemoryStore) Commit(_ context.Context, legs ...repository.Leg) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CommitErr != nil {
		err := m.CommitErr
		m.CommitErr = nil

		return err
	}

	bookings := maps.Clone(m.bookings)
	rooms := maps.Clone(m.rooms)

	for _, leg := range repository.OrderLegs(legs) {
		var err error

		switch leg.Table {
		case bookingModel.TableName:
			err = applyLeg(bookings, leg)
		case roomModel.TableName:
			err = applyLeg(rooms, leg)
		default:
			err = fmt.Errorf("unknown table %q", leg.Table)
		}

		if err != nil {
			return err
		}
	}

	m.bookings = bookings
	m.rooms = rooms
	m.Commits++

	return nil
}

func (m *MemoryStore) sortedRooms() []roomModel.Room {
	rooms := slices.Collect(maps.Values(m.rooms))

	slices.SortFunc(rooms, func(a, b roomModel.Room) int {
		return strings.Compare(a.RoomNumber, b.RoomNumber)
	})

	return rooms
}

func applyLeg[T any](rows map[string]T, leg repository.Leg) error {
	row, ok := rows[leg.ID]
	if !ok {
		return repository.ErrConditionFailed
	}

	value := reflect.ValueOf(&row).Elem()

	for col, expected := range leg.Expect {
		field, found := fieldByTag(value, col)
		if !found {
			return fmt.Errorf("unknown column %q", col)
		}

		if !matches(field, expected) {
			return repository.ErrConditionFailed
		}
	}

	for col, next := range leg.Set {
		field, found := fieldByTag(value, col)
		if !found {
			return fmt.Errorf("unknown column %q", col)
		}

		assign(field, next)
	}

	rows[leg.ID] = row

	return nil
}

func fieldByTag(value reflect.Value, tag string) (reflect.Value, bool) {
	for i := range value.NumField() {
		field := value.Type().Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if nested, ok := fieldByTag(value.Field(i), tag); ok {
				return nested, true
			}

			continue
		}

		if field.Tag.Get("db") == tag {
			return value.Field(i), true
		}
	}

	return reflect.Value{}, false
}

func matches(field reflect.Value, expected any) bool {
	actual := field.Interface()
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return expected == nil
		}

		actual = field.Elem().Interface()
	}

	return fmt.Sprint(actual) == fmt.Sprint(expected)
}

func assign(field reflect.Value, next any) {
	if next == nil {
		field.Set(reflect.Zero(field.Type()))

		return
	}

	value := reflect.ValueOf(next)

	if field.Kind() == reflect.Pointer && value.Kind() != reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(value.Convert(field.Type().Elem()))
		field.Set(ptr)

		return
	}

	field.Set(value.Convert(field.Type()))
}
