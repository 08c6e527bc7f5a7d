package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petstay/config"
	"petstay/infras/otel/mocks"
	s3Mocks "petstay/infras/s3/mocks"
	bookingMocks "petstay/internal/domains/booking/mocks"
	"petstay/internal/domains/booking/model"
	"petstay/internal/domains/booking/model/dto"
	"petstay/internal/domains/booking/service"
	tokenMocks "petstay/internal/visualtoken/mocks"
	cacheMocks "petstay/shared/cache/mocks"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	"petstay/shared/failure"
)

const bookingOne = "6f1c2a5e-8d7b-4c1e-9a1f-0e2d3c4b5a69"

type fixture struct {
	repo   *bookingMocks.MockBooking
	tokens *tokenMocks.MockIssuer
	s3     *s3Mocks.MockS3
	cache  *cacheMocks.MockRedisCache
	svc    service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.PhotoBucketName = "petstay-photos"
	cfg.External.S3.PresignExpireSeconds = 3600
	cfg.External.S3.UploadExpireSeconds = 300

	f := fixture{
		repo:   bookingMocks.NewMockBooking(ctrl),
		tokens: tokenMocks.NewMockIssuer(ctrl),
		s3:     s3Mocks.NewMockS3(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.tokens, f.s3, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	t.Cleanup(func() { time.Sleep(10 * time.Millisecond) })

	return f
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		OwnerName:    "Alice",
		Email:        "alice@example.com",
		PhoneNumber:  "+62 811 000 111",
		PetName:      "Rex",
		PetSpecies:   " dog ",
		CheckInDate:  "2025-03-01",
		CheckOutDate: "2025-03-05",
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        func() dto.CreateBookingRequest
		setupMock  func(f fixture)
		wantReason string
	}{
		{
			name: "new booking starts pending",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, "Dog", booking.PetSpecies)
						assert.Equal(t, "alice@example.com", booking.CreatedBy)
						assert.Empty(t, booking.RoomNumber)
						assert.NotEmpty(t, booking.ID)

						return nil
					})
			},
		},
		{
			name: "other species are stored as typed",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.PetSpecies = "Bird"

				return req
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "Bird", booking.PetSpecies)

						return nil
					})
			},
		},
		{
			name: "check out before check in",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.CheckOutDate = "2025-02-27"

				return req
			},
			setupMock:  func(fixture) {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "malformed date",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.CheckInDate = "01/03/2025"

				return req
			},
			setupMock:  func(fixture) {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "repository error",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantReason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req())

			if tt.wantReason != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Alice", res.OwnerName)
			assert.Equal(t, string(model.StatusPending), res.Status)
			assert.NotEmpty(t, res.BookingID)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	stored := model.Booking{
		ID:          bookingOne,
		OwnerName:   "Alice",
		PetSpecies:  "Dog",
		Status:      model.StatusConfirmed,
		QRCodeKey:   "qr-codes/abc.png",
		PetPhotoKey: "uploads/dog/rex.jpg",
	}

	t.Run("resolves presigned links", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:get:"+bookingOne, gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.tokens.EXPECT().URL(gomock.Any(), "qr-codes/abc.png").Return("https://signed/qr.png", nil)
		f.s3.EXPECT().
			PresignGet(gomock.Any(), "petstay-photos", "uploads/dog/rex.jpg", time.Hour).
			Return("https://signed/rex.jpg", nil)

		res, err := f.svc.Get(context.Background(), bookingOne)

		require.NoError(t, err)
		assert.Equal(t, "Confirmed", res.Status)
		assert.Equal(t, "https://signed/qr.png", res.QRCodeURL)
		assert.Equal(t, "https://signed/rex.jpg", res.PetPhotoURL)
	})

	t.Run("unresolvable photo leaves the link empty", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.tokens.EXPECT().URL(gomock.Any(), gomock.Any()).Return("https://signed/qr.png", nil)
		f.s3.EXPECT().PresignGet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("access denied"))

		res, err := f.svc.Get(context.Background(), bookingOne)

		require.NoError(t, err)
		assert.Empty(t, res.PetPhotoURL)
	})

	t.Run("cache hit still signs fresh links", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.BookingResponse)
				res.ID = bookingOne
				res.QRCodeKey = "qr-codes/abc.png"

				return nil
			})
		f.tokens.EXPECT().URL(gomock.Any(), "qr-codes/abc.png").Return("https://signed/fresh.png", nil)

		res, err := f.svc.Get(context.Background(), bookingOne)

		require.NoError(t, err)
		assert.Equal(t, "https://signed/fresh.png", res.QRCodeURL)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	for _, id := range []string{"", "abc"} {
		t.Run("malformed id "+id, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Get(context.Background(), id)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, failure.ReasonValidation, failure.GetReason(err))
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, "bookings.check_in_date", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Booking{
				{ID: "B2", Status: model.StatusPending},
				{ID: "B1", Status: model.StatusConfirmed, QRCodeKey: "qr-codes/b1.png"},
			}, nil
		})
	f.tokens.EXPECT().URL(gomock.Any(), "qr-codes/b1.png").Return("https://signed/b1.png", nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.Bookings, 2)
	assert.Empty(t, res.Bookings[0].QRCodeURL)
	assert.Equal(t, "https://signed/b1.png", res.Bookings[1].QRCodeURL)
}

func TestBookingService_PetPhotoUploadURL(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.PetPhotoUploadRequest
		wantPrefix  string
		wantSuffix  string
		contentType string
	}{
		{
			name:        "jpeg for a dog",
			req:         dto.PetPhotoUploadRequest{PetSpecies: "Dog", ContentType: "image/jpeg"},
			wantPrefix:  "uploads/dog/",
			wantSuffix:  ".jpg",
			contentType: "image/jpeg",
		},
		{
			name:        "png for a cat in mixed case",
			req:         dto.PetPhotoUploadRequest{PetSpecies: " CAT", ContentType: "Image/PNG"},
			wantPrefix:  "uploads/cat/",
			wantSuffix:  ".png",
			contentType: "image/png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.s3.EXPECT().
				PresignPut(gomock.Any(), "petstay-photos", gomock.Any(), tt.contentType, 5*time.Minute).
				DoAndReturn(func(_ context.Context, _, key, _ string, _ time.Duration) (string, error) {
					return "https://signed/put/" + key, nil
				})

			res, err := f.svc.PetPhotoUploadURL(context.Background(), tt.req)

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(res.Key, tt.wantPrefix), res.Key)
			assert.True(t, strings.HasSuffix(res.Key, tt.wantSuffix), res.Key)
			assert.Equal(t, "https://signed/put/"+res.Key, res.UploadURL)
		})
	}
}

func TestBookingService_CreateRecordsSignedInUser(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			assert.Equal(t, "desk@petstay.example.com", booking.CreatedBy)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "desk@petstay.example.com")

	_, err := f.svc.Create(ctx, validRequest())

	assert.NoError(t, err)
}
