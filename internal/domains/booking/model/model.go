package model

import (
	"fmt"
	"net/url"
	"petstay/shared/failure"
	"petstay/shared/model"
	"petstay/shared/validator"
	"slices"
	"strings"
	"time"
)

const (
	TableName   = "bookings"
	EntityName  = "booking"
	CachePrefix = "booking"

	FieldID           = "id"
	FieldOwnerName    = "owner_name"
	FieldEmail        = "email"
	FieldPhoneNumber  = "phone_number"
	FieldPetName      = "pet_name"
	FieldPetSpecies   = "pet_species"
	FieldPetBreed     = "pet_breed"
	FieldPetAge       = "pet_age"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldArrivalTime  = "arrival_time"
	FieldStatus       = "status"
	FieldRoomNumber   = "room_number"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
	FieldQRCodeKey    = "qr_code_key"
	FieldPetPhotoKey  = "pet_photo_key"
	FieldEmailStatus  = "email_status"
	FieldEmailSentAt  = "email_sent_at"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusCancelled  Status = "Cancelled"
	StatusCheckedIn  Status = "Checked-In"
	StatusCheckedOut Status = "Checked-Out"
)

// transitions lists, per target status, the statuses a booking may move from.
var transitions = map[Status][]Status{
	StatusConfirmed:  {StatusPending},
	StatusCancelled:  {StatusPending, StatusConfirmed},
	StatusPending:    {StatusCancelled},
	StatusCheckedIn:  {StatusConfirmed},
	StatusCheckedOut: {StatusCheckedIn},
}

// CanTransitionTo reports whether a booking in status s may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[next], s)
}

// ValidateID rejects identifiers the bookings.id column cannot hold.
func ValidateID(id string) error {
	if err := validator.ValidateVar(id, "required,uuid"); err != nil {
		return failure.BadRequestFromString("booking id must be a valid UUID") // nolint:wrapcheck
	}

	return nil
}

type Category string

const (
	CategoryDog Category = "Dog"
	CategoryCat Category = "Cat"
)

var Categories = []Category{CategoryDog, CategoryCat}

// ParseCategory maps a free-text species onto a room category.
func ParseCategory(species string) (Category, bool) {
	for _, category := range Categories {
		if string(category) == species {
			return category, true
		}
	}

	return "", false
}

// NormalizeSpecies returns the canonical category name for dog/cat in any casing and
// leaves other species as typed.
func NormalizeSpecies(species string) string {
	trimmed := strings.TrimSpace(species)

	for _, category := range Categories {
		if strings.EqualFold(string(category), trimmed) {
			return string(category)
		}
	}

	return trimmed
}

const (
	EmailStatusSuccess      = "Success"
	EmailStatusFailedPrefix = "Failed: "
)

type Booking struct {
	ID           string     `db:"id"`
	OwnerName    string     `db:"owner_name"`
	Email        string     `db:"email"`
	PhoneNumber  string     `db:"phone_number"`
	PetName      string     `db:"pet_name"`
	PetSpecies   string     `db:"pet_species"`
	PetBreed     string     `db:"pet_breed"`
	PetAge       string     `db:"pet_age"`
	CheckInDate  time.Time  `db:"check_in_date"`
	CheckOutDate time.Time  `db:"check_out_date"`
	ArrivalTime  string     `db:"arrival_time"`
	Status       Status     `db:"status"`
	RoomNumber   string     `db:"room_number"`
	CheckInTime  *time.Time `db:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time"`
	QRCodeKey    string     `db:"qr_code_key"`
	PetPhotoKey  string     `db:"pet_photo_key"`
	EmailStatus  string     `db:"email_status"`
	EmailSentAt  *time.Time `db:"email_sent_at"`
	model.Metadata
}

// CheckInLink is the deep link a guest follows, or a QR code resolves to, to check in.
func CheckInLink(frontendURL, bookingID string) string {
	return fmt.Sprintf("%s/checkin.html?bookingId=%s", strings.TrimRight(frontendURL, "/"), url.QueryEscape(bookingID))
}
