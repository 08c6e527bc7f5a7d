package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petstay/config"
	"petstay/infras/otel"
	"petstay/infras/s3"
	"petstay/internal/domains/booking/model"
	"petstay/internal/domains/booking/model/dto"
	"petstay/internal/domains/booking/repository"
	"petstay/internal/visualtoken"
	"petstay/shared"
	"petstay/shared/cache"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	"petstay/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = model.CachePrefix + ":get"
	cacheGetAllBooking = model.CachePrefix + ":gets"
	cacheCountBooking  = model.CachePrefix + ":count"

	defaultSortBy = model.TableName + "." + model.FieldCheckInDate
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	PetPhotoUploadURL(ctx context.Context, req dto.PetPhotoUploadRequest) (dto.PetPhotoUploadResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	tokens visualtoken.Issuer
	s3     s3.S3
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Booking, tokens visualtoken.Issuer, s3 s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		tokens: tokens,
		s3:     s3,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	// guests book without an account
	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if user == constant.Empty {
		user = req.Email
	}

	booking, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format, use YYYY-MM-DD") // nolint:wrapcheck
	}

	if booking.CheckOutDate.Before(booking.CheckInDate) {
		return res, failure.BadRequestFromString("check out date must not be before check in date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("owner", booking.OwnerName).Msg("booking created")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

// GetAll lists bookings newest planned check-in first unless the caller sorts otherwise.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.SortBy == constant.Empty {
		req.SortBy = defaultSortBy
		req.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		s.attachAllURLs(ctx, res.Bookings)

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	// presigned links expire, so only the plain rows are cached
	cached := res

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	res.Bookings = append([]dto.BookingResponse(nil), res.Bookings...)
	s.attachAllURLs(ctx, res.Bookings)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = model.ValidateID(id); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		s.attachURLs(ctx, &res)

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	cached := res

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	s.attachURLs(ctx, &res)

	return res, nil
}

// PetPhotoUploadURL hands out a short-lived PUT link so the browser uploads the photo
// straight to the bucket.
func (s *serviceImpl) PetPhotoUploadURL(ctx context.Context, req dto.PetPhotoUploadRequest) (res dto.PetPhotoUploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.PetPhotoUploadURL")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := req.Key()
	expire := time.Duration(s.cfg.External.S3.UploadExpireSeconds) * time.Second

	url, err := s.s3.PresignPut(ctx, s.cfg.External.S3.PhotoBucketName, key, req.NormalizedContentType(), expire)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to presign pet photo upload")

		return res, fmt.Errorf("failed to presign pet photo upload: %w", err)
	}

	res.UploadURL = url
	res.Key = key

	return res, nil
}

func (s *serviceImpl) attachAllURLs(ctx context.Context, bookings []dto.BookingResponse) {
	for i := range bookings {
		s.attachURLs(ctx, &bookings[i])
	}
}

// attachURLs resolves object keys to presigned links. A key that cannot be resolved
// leaves its link empty.
func (s *serviceImpl) attachURLs(ctx context.Context, booking *dto.BookingResponse) {
	if booking.QRCodeKey != constant.Empty {
		url, err := s.tokens.URL(ctx, booking.QRCodeKey)
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to resolve qr code url")
		}

		booking.QRCodeURL = url
	}

	if booking.PetPhotoKey != constant.Empty {
		expire := time.Duration(s.cfg.External.S3.PresignExpireSeconds) * time.Second

		url, err := s.s3.PresignGet(ctx, s.cfg.External.S3.PhotoBucketName, booking.PetPhotoKey, expire)
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to resolve pet photo url")
		}

		booking.PetPhotoURL = url
	}
}
