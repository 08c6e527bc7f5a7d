package visualtoken

//go:generate go run go.uber.org/mock/mockgen -source=./visualtoken.go -destination=./mocks/visualtoken_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"petstay/config"
	"petstay/infras/otel"
	"petstay/infras/s3"
	bookingModel "petstay/internal/domains/booking/model"
	"petstay/shared/constant"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	directory   = "qr-codes"
	contentType = "image/png"
	imageSize   = 256
)

// Issuer renders and stores the QR code a guest presents at check-in.
type Issuer interface {
	Issue(ctx context.Context, bookingID string) (key string, err error)
	URL(ctx context.Context, key string) (string, error)
	Discard(ctx context.Context, key string) error
}

type issuerImpl struct {
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(s3 s3.S3, cfg *config.Config, otel otel.Otel) Issuer {
	return &issuerImpl{
		s3:   s3,
		cfg:  cfg,
		otel: otel,
	}
}

// Issue uploads a PNG encoding the booking's check-in link and returns its object key.
func (i *issuerImpl) Issue(ctx context.Context, bookingID string) (key string, err error) {
	ctx, scope := i.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".visualtoken.Issue")
	defer scope.End()
	defer scope.TraceIfError(&err)

	png, err := qrcode.Encode(bookingModel.CheckInLink(i.cfg.App.FrontendURL, bookingID), qrcode.Medium, imageSize)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to render qr code: %w", err)
	}

	key = path.Join(directory, uuid.NewString()+".png")

	if err = i.s3.PutObject(ctx, constant.Empty, key, contentType, png); err != nil {
		return constant.Empty, fmt.Errorf("failed to store qr code: %w", err)
	}

	log.Info().Str("booking_id", bookingID).Str("key", key).Msg("qr code issued")

	return key, nil
}

func (i *issuerImpl) URL(ctx context.Context, key string) (string, error) {
	expire := time.Duration(i.cfg.External.S3.PresignExpireSeconds) * time.Second

	url, err := i.s3.PresignGet(ctx, constant.Empty, key, expire)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to resolve qr code url: %w", err)
	}

	return url, nil
}

func (i *issuerImpl) Discard(ctx context.Context, key string) error {
	if err := i.s3.DeleteObject(ctx, constant.Empty, key); err != nil {
		return fmt.Errorf("failed to discard qr code: %w", err)
	}

	return nil
}
