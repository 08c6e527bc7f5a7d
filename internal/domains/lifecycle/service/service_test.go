package service_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"petstay/config"
	otelMocks "petstay/infras/otel/mocks"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/internal/domains/lifecycle/mocks"
	"petstay/internal/domains/lifecycle/repository"
	"petstay/internal/domains/lifecycle/service"
	roomModel "petstay/internal/domains/room/model"
	"petstay/internal/events"
	eventMocks "petstay/internal/events/mocks"
	"petstay/internal/notification"
	notificationMocks "petstay/internal/notification/mocks"
	vtMocks "petstay/internal/visualtoken/mocks"
	"petstay/permissions"
	cacheMocks "petstay/shared/cache/mocks"
	"petstay/shared/constant"
	"petstay/shared/failure"
	"petstay/shared/timezone"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	operatorEmail = "admin@petstay.example.com"
	staffEmail    = "desk@petstay.example.com"
)

var (
	bookingZero = bookingID(0)
	bookingOne  = bookingID(1)
	bookingTwo  = bookingID(2)
)

func bookingID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

type harness struct {
	store    *mocks.MemoryStore
	tokens   *vtMocks.MockIssuer
	notifier *notificationMocks.MockSender
	svc      service.Lifecycle

	mu      sync.Mutex
	emitted []events.Type
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Access.Operators = []string{operatorEmail}
	cfg.App.Access.Staff = []string{staffEmail}
	cfg.Rooms.Dog.Count = 10
	cfg.Rooms.Dog.FirstNumber = 101
	cfg.Rooms.Dog.Prefix = "D"
	cfg.Rooms.Cat.Count = 10
	cfg.Rooms.Cat.FirstNumber = 201
	cfg.Rooms.Cat.Prefix = "C"

	return cfg
}

// newHarness wires the lifecycle against the in-memory store. Token, notification and
// cache collaborators accept any number of calls unless a test tightens them.
func newHarness(t *testing.T, strict bool) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := newConfig()
	otel := otelMocks.NewOtel()

	h := &harness{
		store:    mocks.NewMemoryStore(),
		tokens:   vtMocks.NewMockIssuer(ctrl),
		notifier: notificationMocks.NewMockSender(ctrl),
	}

	emitter := eventMocks.NewMockEmitter(ctrl)
	emitter.EXPECT().
		Emit(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, typ events.Type, _ bookingModel.Booking) {
			h.mu.Lock()
			defer h.mu.Unlock()

			h.emitted = append(h.emitted, typ)
		}).
		AnyTimes()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	if !strict {
		h.tokens.EXPECT().
			Issue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (string, error) {
				return "qr-codes/" + id + ".png", nil
			}).
			AnyTimes()
		h.tokens.EXPECT().URL(gomock.Any(), gomock.Any()).Return("https://signed/qr.png", nil).AnyTimes()
		h.notifier.EXPECT().
			Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(notification.DeliveryStatus{Status: bookingModel.EmailStatusSuccess, SentAt: timezone.Now()}).
			AnyTimes()
	}

	h.svc = service.New(
		h.store,
		service.NewAllocator(h.store, cfg, otel),
		service.NewCoordinator(h.store, otel),
		permissions.NewPolicy(permissions.Get(), cfg),
		h.tokens,
		h.notifier,
		emitter,
		mockCache,
		cfg,
		otel,
	)

	t.Cleanup(func() { time.Sleep(10 * time.Millisecond) })

	return h
}

func (h *harness) events() []events.Type {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]events.Type{}, h.emitted...)
}

func as(email string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserEmail, email)
}

func newBooking(id, species string, status bookingModel.Status) bookingModel.Booking {
	return bookingModel.Booking{
		ID:         id,
		OwnerName:  "Owner " + id,
		Email:      id + "@example.com",
		PetName:    "Pet " + id,
		PetSpecies: species,
		Status:     status,
	}
}

func newRoom(number, petType string) roomModel.Room {
	return roomModel.Room{ID: "room-" + number, RoomNumber: number, PetType: petType}
}

func roomByNumber(t *testing.T, store *mocks.MemoryStore, number string) roomModel.Room {
	t.Helper()

	for _, room := range store.Rooms() {
		if room.RoomNumber == number {
			return room
		}
	}

	t.Fatalf("room %s not found", number)

	return roomModel.Room{}
}

func TestLifecycle_EndToEnd(t *testing.T) {
	h := newHarness(t, false)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusPending))

	res, err := h.svc.Confirm(as(operatorEmail), bookingOne)
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", res.Status)
	require.NotNil(t, res.Notification)
	assert.Equal(t, bookingModel.EmailStatusSuccess, res.Notification.Status)
	assert.Equal(t, "https://signed/qr.png", res.Notification.QRCodeURL)

	confirmed := h.store.Booking(bookingOne)
	assert.Equal(t, "qr-codes/B1.png", confirmed.QRCodeKey)
	assert.Equal(t, bookingModel.EmailStatusSuccess, confirmed.EmailStatus)
	assert.NotNil(t, confirmed.EmailSentAt)
	assert.Equal(t, operatorEmail, confirmed.ModifiedBy)

	res, err = h.svc.CheckIn(as(staffEmail), bookingOne)
	require.NoError(t, err)
	assert.Equal(t, "Checked-In", res.Status)
	assert.Equal(t, "D101", res.RoomNumber)
	require.NotNil(t, res.Room)
	assert.Equal(t, "Dog", res.Room.PetType)
	assert.False(t, res.AlreadyCheckedIn)

	checkedIn := h.store.Booking(bookingOne)
	assert.Equal(t, "D101", checkedIn.RoomNumber)
	assert.NotNil(t, checkedIn.CheckInTime)

	room := roomByNumber(t, h.store, "D101")
	assert.True(t, room.Occupied)
	assert.Equal(t, bookingOne, room.OccupiedBy)

	res, err = h.svc.CheckOut(as(operatorEmail), bookingOne)
	require.NoError(t, err)
	assert.Equal(t, "Checked-Out", res.Status)

	checkedOut := h.store.Booking(bookingOne)
	assert.Equal(t, bookingModel.StatusCheckedOut, checkedOut.Status)
	assert.Equal(t, "D101", checkedOut.RoomNumber)
	assert.NotNil(t, checkedOut.CheckOutTime)

	room = roomByNumber(t, h.store, "D101")
	assert.False(t, room.Occupied)
	assert.Empty(t, room.OccupiedBy)

	assert.Equal(t, []events.Type{events.BookingConfirmed, events.BookingCheckedIn, events.BookingCheckedOut}, h.events())
}

func TestLifecycle_ConfirmIsNotReentrant(t *testing.T) {
	h := newHarness(t, true)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusPending))

	h.tokens.EXPECT().Issue(gomock.Any(), bookingOne).Return("qr-codes/one.png", nil).Times(1)
	h.tokens.EXPECT().URL(gomock.Any(), "qr-codes/one.png").Return("https://signed/one.png", nil).Times(1)
	h.notifier.EXPECT().
		Send(gomock.Any(), "Owner "+bookingOne, bookingOne, "https://signed/one.png").
		Return(notification.DeliveryStatus{Status: bookingModel.EmailStatusSuccess, SentAt: timezone.Now()}).
		Times(1)

	_, err := h.svc.Confirm(as(operatorEmail), bookingOne)
	require.NoError(t, err)

	_, err = h.svc.Confirm(as(operatorEmail), bookingOne)
	assert.True(t, failure.HasReason(err, failure.ReasonPreconditionFailed))
	assert.Equal(t, "qr-codes/one.png", h.store.Booking(bookingOne).QRCodeKey)
	assert.Equal(t, []events.Type{events.BookingConfirmed}, h.events())
}

func TestLifecycle_ConfirmLosesRace(t *testing.T) {
	h := newHarness(t, true)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusPending))
	h.store.CommitErr = repository.ErrConditionFailed

	h.tokens.EXPECT().Issue(gomock.Any(), bookingOne).Return("qr-codes/orphan.png", nil)
	h.tokens.EXPECT().Discard(gomock.Any(), "qr-codes/orphan.png").Return(nil)

	_, err := h.svc.Confirm(as(operatorEmail), bookingOne)

	assert.True(t, failure.HasReason(err, failure.ReasonPreconditionFailed))
	assert.Equal(t, bookingModel.StatusPending, h.store.Booking(bookingOne).Status)
	assert.Empty(t, h.events())
}

func TestLifecycle_ConfirmTokenFailure(t *testing.T) {
	h := newHarness(t, true)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusPending))

	h.tokens.EXPECT().Issue(gomock.Any(), bookingOne).Return("", errors.New("bucket unavailable"))

	_, err := h.svc.Confirm(as(operatorEmail), bookingOne)

	assert.Equal(t, failure.ReasonInternal, failure.GetReason(err))
	assert.Equal(t, bookingModel.StatusPending, h.store.Booking(bookingOne).Status)
	assert.Zero(t, h.store.Commits)
}

func TestLifecycle_ConfirmNotificationFailure(t *testing.T) {
	h := newHarness(t, true)
	h.store.PutBooking(newBooking(bookingOne, "Cat", bookingModel.StatusPending))

	h.tokens.EXPECT().Issue(gomock.Any(), bookingOne).Return("qr-codes/b1.png", nil)
	h.tokens.EXPECT().URL(gomock.Any(), "qr-codes/b1.png").Return("", errors.New("presign failed"))
	h.notifier.EXPECT().
		Send(gomock.Any(), "Owner "+bookingOne, bookingOne, "").
		Return(notification.DeliveryStatus{Status: "Failed: mailbox unavailable", SentAt: timezone.Now()})

	res, err := h.svc.Confirm(as(operatorEmail), bookingOne)
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", res.Status)
	assert.Equal(t, "Failed: mailbox unavailable", res.Notification.Status)

	stored := h.store.Booking(bookingOne)
	assert.Equal(t, bookingModel.StatusConfirmed, stored.Status)
	assert.Equal(t, "Failed: mailbox unavailable", stored.EmailStatus)
}

func TestLifecycle_CheckInIsIdempotent(t *testing.T) {
	h := newHarness(t, false)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))

	first, err := h.svc.CheckIn(as(staffEmail), bookingOne)
	require.NoError(t, err)

	commits := h.store.Commits
	before := roomByNumber(t, h.store, first.RoomNumber)

	second, err := h.svc.CheckIn(as(staffEmail), bookingOne)
	require.NoError(t, err)

	assert.True(t, second.AlreadyCheckedIn)
	assert.Equal(t, first.RoomNumber, second.RoomNumber)
	require.NotNil(t, second.Room)
	assert.Equal(t, first.RoomNumber, second.Room.RoomNumber)
	assert.Equal(t, commits, h.store.Commits)
	assert.Equal(t, before, roomByNumber(t, h.store, first.RoomNumber))
	assert.Equal(t, []events.Type{events.BookingCheckedIn}, h.events())
}

func TestLifecycle_CheckInRejected(t *testing.T) {
	tests := []struct {
		name    string
		booking bookingModel.Booking
		reason  string
	}{
		{
			name:    "departed guest",
			booking: newBooking(bookingOne, "Dog", bookingModel.StatusCheckedOut),
			reason:  failure.ReasonPreconditionFailed,
		},
		{
			name:    "not confirmed",
			booking: newBooking(bookingOne, "Dog", bookingModel.StatusPending),
			reason:  failure.ReasonPreconditionFailed,
		},
		{
			name:    "cancelled",
			booking: newBooking(bookingOne, "Cat", bookingModel.StatusCancelled),
			reason:  failure.ReasonPreconditionFailed,
		},
		{
			name:    "species without room category",
			booking: newBooking(bookingOne, "Bird", bookingModel.StatusConfirmed),
			reason:  failure.ReasonValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, false)
			h.store.PutBooking(tt.booking)

			_, err := h.svc.CheckIn(as(staffEmail), tt.booking.ID)

			assert.True(t, failure.HasReason(err, tt.reason), "got %v", err)
			assert.Equal(t, tt.booking.Status, h.store.Booking(tt.booking.ID).Status)
			assert.Empty(t, h.store.Rooms())
			assert.Empty(t, h.events())
		})
	}
}

func TestLifecycle_CheckInNoRoomAvailable(t *testing.T) {
	h := newHarness(t, false)

	occupied := newRoom("D101", "Dog")
	occupied.Occupied = true
	occupied.OccupiedBy = bookingZero

	h.store.PutRoom(occupied)
	h.store.PutRoom(newRoom("C201", "Cat"))
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))

	_, err := h.svc.CheckIn(as(staffEmail), bookingOne)

	assert.True(t, failure.HasReason(err, failure.ReasonNoRoomAvailable))
	assert.Len(t, h.store.Rooms(), 2)
	assert.Equal(t, bookingModel.StatusConfirmed, h.store.Booking(bookingOne).Status)
}

func TestLifecycle_CheckInPicksLowestRoom(t *testing.T) {
	h := newHarness(t, false)

	h.store.PutRoom(newRoom("D103", "Dog"))
	h.store.PutRoom(newRoom("D102", "Dog"))
	h.store.PutRoom(newRoom("C201", "Cat"))
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))

	res, err := h.svc.CheckIn(as(staffEmail), bookingOne)

	require.NoError(t, err)
	assert.Equal(t, "D102", res.RoomNumber)
}

func TestLifecycle_CancelAndRestore(t *testing.T) {
	h := newHarness(t, false)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))

	res, err := h.svc.Cancel(as(operatorEmail), bookingOne)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", res.Status)

	_, err = h.svc.Cancel(as(operatorEmail), bookingOne)
	assert.True(t, failure.HasReason(err, failure.ReasonPreconditionFailed))

	res, err = h.svc.Restore(as(operatorEmail), bookingOne)
	require.NoError(t, err)
	assert.Equal(t, "Pending", res.Status)

	_, err = h.svc.Restore(as(operatorEmail), bookingOne)
	assert.True(t, failure.HasReason(err, failure.ReasonPreconditionFailed))

	assert.Equal(t, []events.Type{events.BookingCancelled, events.BookingRestored}, h.events())
}

func TestLifecycle_CancelReleasesHeldRoom(t *testing.T) {
	h := newHarness(t, false)

	room := newRoom("D101", "Dog")
	room.Occupied = true
	room.OccupiedBy = bookingOne

	booking := newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed)
	booking.RoomNumber = "D101"

	h.store.PutRoom(room)
	h.store.PutBooking(booking)

	_, err := h.svc.Cancel(as(operatorEmail), bookingOne)
	require.NoError(t, err)

	released := roomByNumber(t, h.store, "D101")
	assert.False(t, released.Occupied)
	assert.Empty(t, released.OccupiedBy)
	assert.Empty(t, h.store.Booking(bookingOne).RoomNumber)

	_, err = h.svc.Restore(as(operatorEmail), bookingOne)
	require.NoError(t, err)
	assert.False(t, roomByNumber(t, h.store, "D101").Occupied)
}

func TestLifecycle_CancelAfterCheckIn(t *testing.T) {
	h := newHarness(t, false)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))

	_, err := h.svc.CheckIn(as(staffEmail), bookingOne)
	require.NoError(t, err)

	_, err = h.svc.Cancel(as(operatorEmail), bookingOne)

	assert.True(t, failure.HasReason(err, failure.ReasonPreconditionFailed))
	assert.Equal(t, bookingModel.StatusCheckedIn, h.store.Booking(bookingOne).Status)
	assert.True(t, roomByNumber(t, h.store, "D101").Occupied)
}

func TestLifecycle_CheckOutLeavesForeignRoom(t *testing.T) {
	h := newHarness(t, false)

	room := newRoom("D101", "Dog")
	room.Occupied = true
	room.OccupiedBy = bookingTwo

	booking := newBooking(bookingOne, "Dog", bookingModel.StatusCheckedIn)
	booking.RoomNumber = "D101"

	h.store.PutRoom(room)
	h.store.PutBooking(booking)

	res, err := h.svc.CheckOut(as(operatorEmail), bookingOne)
	require.NoError(t, err)

	assert.Equal(t, string(bookingModel.StatusCheckedOut), res.Status)
	assert.Nil(t, res.Room)
	assert.Equal(t, bookingModel.StatusCheckedOut, h.store.Booking(bookingOne).Status)
	assert.Equal(t, "D101", h.store.Booking(bookingOne).RoomNumber)

	untouched := roomByNumber(t, h.store, "D101")
	assert.True(t, untouched.Occupied)
	assert.Equal(t, bookingTwo, untouched.OccupiedBy)
}

func TestLifecycle_Authorization(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		call   func(svc service.Lifecycle, ctx context.Context) error
		code   int
		reason string
	}{
		{
			name: "no identity",
			ctx:  context.Background(),
			call: func(svc service.Lifecycle, ctx context.Context) error {
				_, err := svc.CheckIn(ctx, bookingOne)

				return err
			},
			code:   401,
			reason: failure.ReasonUnauthorized,
		},
		{
			name: "staff cannot confirm",
			ctx:  as(staffEmail),
			call: func(svc service.Lifecycle, ctx context.Context) error {
				_, err := svc.Confirm(ctx, bookingOne)

				return err
			},
			code:   403,
			reason: failure.ReasonUnauthorized,
		},
		{
			name: "stranger cannot check in",
			ctx:  as("guest@example.com"),
			call: func(svc service.Lifecycle, ctx context.Context) error {
				_, err := svc.CheckIn(ctx, bookingOne)

				return err
			},
			code:   403,
			reason: failure.ReasonUnauthorized,
		},
		{
			name: "unknown booking",
			ctx:  as(operatorEmail),
			call: func(svc service.Lifecycle, ctx context.Context) error {
				_, err := svc.CheckOut(ctx, bookingID(404))

				return err
			},
			code:   404,
			reason: failure.ReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, false)
			h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusPending))

			err := tt.call(h.svc, tt.ctx)

			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.reason, failure.GetReason(err))
			assert.Equal(t, bookingModel.StatusPending, h.store.Booking(bookingOne).Status)
		})
	}
}

func TestLifecycle_MalformedBookingID(t *testing.T) {
	h := newHarness(t, true)
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))

	operations := map[string]func(ctx context.Context, id string) error{
		"confirm":  func(ctx context.Context, id string) error { _, err := h.svc.Confirm(ctx, id); return err },
		"cancel":   func(ctx context.Context, id string) error { _, err := h.svc.Cancel(ctx, id); return err },
		"restore":  func(ctx context.Context, id string) error { _, err := h.svc.Restore(ctx, id); return err },
		"checkin":  func(ctx context.Context, id string) error { _, err := h.svc.CheckIn(ctx, id); return err },
		"checkout": func(ctx context.Context, id string) error { _, err := h.svc.CheckOut(ctx, id); return err },
	}

	for name, op := range operations {
		for _, id := range []string{"", "abc"} {
			t.Run(name+"/"+id, func(t *testing.T) {
				err := op(as(operatorEmail), id)

				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, failure.ReasonValidation, failure.GetReason(err))
			})
		}
	}

	assert.Zero(t, h.store.Commits)
	assert.Empty(t, h.events())
}

func TestLifecycle_ConcurrentCheckInsShareOneRoom(t *testing.T) {
	h := newHarness(t, false)
	h.store.PutRoom(newRoom("D101", "Dog"))
	h.store.PutBooking(newBooking(bookingOne, "Dog", bookingModel.StatusConfirmed))
	h.store.PutBooking(newBooking(bookingTwo, "Dog", bookingModel.StatusConfirmed))

	var wg sync.WaitGroup

	errs := make([]error, 2)

	for i, id := range []string{bookingOne, bookingTwo} {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = h.svc.CheckIn(as(staffEmail), id)
		}()
	}

	wg.Wait()

	succeeded := 0

	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}

		assert.True(t,
			failure.HasReason(err, failure.ReasonAllocationConflict) || failure.HasReason(err, failure.ReasonNoRoomAvailable),
			"unexpected error %v", err)
	}

	assert.Equal(t, 1, succeeded)

	room := roomByNumber(t, h.store, "D101")
	assert.True(t, room.Occupied)
	assert.Equal(t, bookingModel.StatusCheckedIn, h.store.Booking(room.OccupiedBy).Status)
}

func TestLifecycle_RoomExclusivityUnderInterleavings(t *testing.T) {
	h := newHarness(t, false)

	for _, number := range []string{"D101", "D102"} {
		h.store.PutRoom(newRoom(number, "Dog"))
	}

	for _, number := range []string{"C201", "C202"} {
		h.store.PutRoom(newRoom(number, "Cat"))
	}

	ids := []string{}

	for i := range 12 {
		species := "Dog"
		if i%2 == 1 {
			species = "Cat"
		}

		id := bookingID(i)
		ids = append(ids, id)
		h.store.PutBooking(newBooking(id, species, bookingModel.StatusPending))
	}

	operations := []func(ctx context.Context, id string) error{
		func(ctx context.Context, id string) error { _, err := h.svc.Confirm(ctx, id); return err },
		func(ctx context.Context, id string) error { _, err := h.svc.CheckIn(ctx, id); return err },
		func(ctx context.Context, id string) error { _, err := h.svc.CheckOut(ctx, id); return err },
		func(ctx context.Context, id string) error { _, err := h.svc.Cancel(ctx, id); return err },
		func(ctx context.Context, id string) error { _, err := h.svc.Restore(ctx, id); return err },
	}

	var wg sync.WaitGroup

	for worker := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			rng := rand.New(rand.NewSource(int64(worker)))

			for range 200 {
				id := ids[rng.Intn(len(ids))]
				op := operations[rng.Intn(len(operations))]

				err := op(as(operatorEmail), id)
				if err != nil {
					assert.NotEqual(t, failure.ReasonInternal, failure.GetReason(err), "unexpected error %v", err)
				}
			}
		}()
	}

	wg.Wait()

	holders := map[string][]string{}

	for _, id := range ids {
		booking := h.store.Booking(id)
		if booking.Status == bookingModel.StatusCheckedIn {
			holders[booking.RoomNumber] = append(holders[booking.RoomNumber], id)
		}
	}

	for _, room := range h.store.Rooms() {
		if room.Occupied {
			assert.Equal(t, []string{room.OccupiedBy}, holders[room.RoomNumber], "room %s", room.RoomNumber)
		} else {
			assert.Empty(t, holders[room.RoomNumber], "room %s", room.RoomNumber)
		}
	}
}
