package dto

import (
	bookingModel "petstay/internal/domains/booking/model"
	roomModel "petstay/internal/domains/room/model"
	"petstay/shared/constant"
	"time"
)

type Room struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	PetType    string `json:"pet_type"`
}

func (r *Room) FromModel(m roomModel.Room) {
	r.ID = m.ID
	r.RoomNumber = m.RoomNumber
	r.PetType = m.PetType
}

type Notification struct {
	Status    string `json:"status"`
	SentAt    string `json:"sent_at"`
	QRCodeURL string `json:"qr_code_url,omitempty"`
}

func (n *Notification) FromDelivery(status string, sentAt time.Time, qrCodeURL string) {
	n.Status = status
	n.SentAt = sentAt.Format(constant.DateFormat)
	n.QRCodeURL = qrCodeURL
}

// TransitionResponse describes a booking right after a lifecycle operation.
type TransitionResponse struct {
	BookingID        string        `json:"booking_id"`
	Status           string        `json:"status"`
	RoomNumber       string        `json:"room_number,omitempty"`
	Room             *Room         `json:"room,omitempty"`
	AlreadyCheckedIn bool          `json:"already_checked_in,omitempty"`
	Notification     *Notification `json:"notification,omitempty"`
}

func (t *TransitionResponse) FromModel(m bookingModel.Booking) {
	t.BookingID = m.ID
	t.Status = string(m.Status)
	t.RoomNumber = m.RoomNumber
}

func (t *TransitionResponse) WithRoom(m roomModel.Room) {
	if m.ID == "" {
		return
	}

	t.Room = &Room{}
	t.Room.FromModel(m)
}
