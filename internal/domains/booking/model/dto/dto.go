package dto

import (
	"fmt"
	"path"
	"petstay/internal/domains/booking/model"
	"petstay/shared"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	gModel "petstay/shared/model"
	"petstay/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	OwnerName    string `json:"owner_name"     validate:"required,max=100"`
	Email        string `json:"email"          validate:"required,email,max=100"`
	PhoneNumber  string `json:"phone_number"   validate:"required,max=20"`
	PetName      string `json:"pet_name"       validate:"required,max=100"`
	PetSpecies   string `json:"pet_species"    validate:"omitempty,max=50"`
	PetBreed     string `json:"pet_breed"      validate:"omitempty,max=100"`
	PetAge       string `json:"pet_age"        validate:"omitempty,max=20"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	ArrivalTime  string `json:"arrival_time"   validate:"omitempty,max=20"`
	PetPhotoKey  string `json:"pet_photo_key"  validate:"omitempty,max=255"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.ParseDate(c.CheckInDate)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check in date: %w", err)
	}

	checkOut, err := timezone.ParseDate(c.CheckOutDate)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check out date: %w", err)
	}

	now := timezone.Now()

	return model.Booking{
		ID:           uuid.NewString(),
		OwnerName:    strings.TrimSpace(c.OwnerName),
		Email:        strings.TrimSpace(c.Email),
		PhoneNumber:  strings.TrimSpace(c.PhoneNumber),
		PetName:      strings.TrimSpace(c.PetName),
		PetSpecies:   model.NormalizeSpecies(c.PetSpecies),
		PetBreed:     c.PetBreed,
		PetAge:       c.PetAge,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		ArrivalTime:  c.ArrivalTime,
		Status:       model.StatusPending,
		PetPhotoKey:  c.PetPhotoKey,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
	OwnerName string `json:"owner_name"`
	Status    string `json:"status"`
}

func (r *CreateBookingResponse) FromModel(booking model.Booking) {
	r.BookingID = booking.ID
	r.OwnerName = booking.OwnerName
	r.Status = string(booking.Status)
}

type BookingResponse struct {
	ID           string `json:"id"`
	OwnerName    string `json:"owner_name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PetName      string `json:"pet_name"`
	PetSpecies   string `json:"pet_species"`
	PetBreed     string `json:"pet_breed"`
	PetAge       string `json:"pet_age"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	ArrivalTime  string `json:"arrival_time"`
	Status       string `json:"status"`
	RoomNumber   string `json:"room_number"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	QRCodeKey    string `json:"qr_code_key,omitempty"`
	QRCodeURL    string `json:"qr_code_url,omitempty"`
	PetPhotoKey  string `json:"pet_photo_key,omitempty"`
	PetPhotoURL  string `json:"pet_photo_url,omitempty"`
	EmailStatus  string `json:"email_status,omitempty"`
	EmailSentAt  string `json:"email_sent_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.OwnerName = booking.OwnerName
	r.Email = booking.Email
	r.PhoneNumber = booking.PhoneNumber
	r.PetName = booking.PetName
	r.PetSpecies = booking.PetSpecies
	r.PetBreed = booking.PetBreed
	r.PetAge = booking.PetAge
	r.CheckInDate = timezone.FormatDate(booking.CheckInDate)
	r.CheckOutDate = timezone.FormatDate(booking.CheckOutDate)
	r.ArrivalTime = booking.ArrivalTime
	r.Status = string(booking.Status)
	r.RoomNumber = booking.RoomNumber
	r.CheckInTime = formatOptional(booking.CheckInTime)
	r.CheckOutTime = formatOptional(booking.CheckOutTime)
	r.QRCodeKey = booking.QRCodeKey
	r.PetPhotoKey = booking.PetPhotoKey
	r.EmailStatus = booking.EmailStatus
	r.EmailSentAt = formatOptional(booking.EmailSentAt)
	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type PetPhotoUploadRequest struct {
	PetSpecies  string `json:"pet_species"  validate:"required,species"`
	ContentType string `json:"content_type" validate:"required,mimetypes=image/jpeg image/png"`
}

// Key builds uploads/<species>/<uuid>.<ext> for the requested image type.
func (p *PetPhotoUploadRequest) Key() string {
	extension := ".png"
	if p.NormalizedContentType() == "image/jpeg" {
		extension = ".jpg"
	}

	return path.Join("uploads", strings.ToLower(strings.TrimSpace(p.PetSpecies)), uuid.NewString()+extension)
}

func (p *PetPhotoUploadRequest) NormalizedContentType() string {
	return strings.ToLower(strings.TrimSpace(p.ContentType))
}

type PetPhotoUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return constant.Empty
	}

	return timezone.Format(*t, constant.DateFormat)
}
