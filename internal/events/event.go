package events

import (
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	BookingConfirmed  Type = "BookingConfirmed"
	BookingCancelled  Type = "BookingCancelled"
	BookingRestored   Type = "BookingRestored"
	BookingCheckedIn  Type = "BookingCheckedIn"
	BookingCheckedOut Type = "BookingCheckedOut"
)

// Types lists every event a booking transition can produce.
var Types = []Type{BookingConfirmed, BookingCancelled, BookingRestored, BookingCheckedIn, BookingCheckedOut}

// Event is the payload published after a committed transition.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Source     string    `json:"source"`
	BookingID  string    `json:"booking_id"`
	Status     string    `json:"status"`
	OwnerName  string    `json:"owner_name,omitempty"`
	RoomNumber string    `json:"room_number,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(source string, typ Type, booking bookingModel.Booking) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Source:     source,
		BookingID:  booking.ID,
		Status:     string(booking.Status),
		OwnerName:  booking.OwnerName,
		RoomNumber: booking.RoomNumber,
		OccurredAt: timezone.Now(),
	}
}
