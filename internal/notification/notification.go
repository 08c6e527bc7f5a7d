package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"petstay/config"
	"petstay/infras/ses"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const subjectPrefix = "PetStay Booking Confirmed - "

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<html>
  <body style="font-family: Arial, sans-serif;">
    <h2 style="color: #2e6c80;">PetStay Booking Confirmed</h2>
    <p><strong>Owner:</strong> {{.OwnerName}}</p>
    <p><strong>Booking ID:</strong> {{.BookingID}}</p>
    <p>Click this link to check-in: <a href="{{.Link}}">{{.Link}}</a></p>
    {{- if .QRCodeURL}}
    <p>Or scan the QR code below:</p>
    <p><img src="{{.QRCodeURL}}" width="200" height="200" alt="QR Code" /></p>
    {{- end}}
    <p style="color: #888;">PetStay Team</p>
  </body>
</html>`))

// DeliveryStatus is what gets recorded on the booking after a send attempt.
type DeliveryStatus struct {
	Status string    `json:"status"`
	SentAt time.Time `json:"sent_at"`
}

func (d DeliveryStatus) Delivered() bool {
	return d.Status == bookingModel.EmailStatusSuccess
}

type Sender interface {
	Send(ctx context.Context, ownerName, bookingID, visualURL string) DeliveryStatus
}

type senderImpl struct {
	ses ses.SES
	cfg *config.Config
}

func New(ses ses.SES, cfg *config.Config) Sender {
	return &senderImpl{
		ses: ses,
		cfg: cfg,
	}
}

// Send mails the confirmation to the team inbox. It never fails: a delivery error is
// reported through the returned status.
func (s *senderImpl) Send(ctx context.Context, ownerName, bookingID, visualURL string) DeliveryStatus {
	email, err := s.compose(ownerName, bookingID, visualURL)
	if err == nil {
		_, err = s.ses.SendEmail(ctx, email)
	}

	status := DeliveryStatus{
		Status: bookingModel.EmailStatusSuccess,
		SentAt: timezone.Now(),
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to send confirmation email")

		status.Status = bookingModel.EmailStatusFailedPrefix + err.Error()
	}

	return status
}

func (s *senderImpl) compose(ownerName, bookingID, visualURL string) (ses.Email, error) {
	link := bookingModel.CheckInLink(s.cfg.App.FrontendURL, bookingID)

	var html bytes.Buffer

	err := confirmationHTML.Execute(&html, map[string]string{
		"OwnerName": ownerName,
		"BookingID": bookingID,
		"Link":      link,
		"QRCodeURL": visualURL,
	})
	if err != nil {
		return ses.Email{}, fmt.Errorf("failed to render confirmation email: %w", err)
	}

	return ses.Email{
		From:    s.cfg.External.SES.Sender,
		To:      s.cfg.External.SES.Recipients,
		Subject: subjectPrefix + ownerName,
		Text:    fmt.Sprintf("Owner: %s\nBooking ID: %s\nCheck-in link: %s", ownerName, bookingID, link),
		HTML:    html.String(),
	}, nil
}
