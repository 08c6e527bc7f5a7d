package booking_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"petstay/infras/otel/mocks"
	bookingMocks "petstay/internal/domains/booking/mocks"
	"petstay/internal/domains/booking/model"
	"petstay/internal/domains/booking/model/dto"
	"petstay/internal/handlers/booking"
	gDto "petstay/shared/dto"
	"petstay/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	var body struct {
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error, body.Reason
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{
		"owner_name": "Alice",
		"email": "alice@example.com",
		"phone_number": "+6281234",
		"pet_name": "Rex",
		"pet_species": "dog",
		"check_in_date": "2025-03-01",
		"check_out_date": "2025-03-04"
	}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
		wantReason string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
					assert.Equal(t, "Rex", req.PetName)
					assert.Equal(t, "2025-03-04", req.CheckOutDate)

					return dto.CreateBookingResponse{BookingID: "B1", OwnerName: "Alice", Status: string(model.StatusPending)}, nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing pet name",
			body:       `{"owner_name":"Alice","email":"alice@example.com","phone_number":"1","check_in_date":"2025-03-01","check_out_date":"2025-03-02"}`,
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
			wantReason: failure.ReasonValidation,
		},
		{
			name:       "date in wrong layout",
			body:       strings.Replace(validBody, "2025-03-01", "01/03/2025", 1),
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
			wantReason: failure.ReasonValidation,
		},
		{
			name: "service rejects range",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, failure.BadRequestFromString("check out date must not be before check in date"))
			},
			wantStatus: http.StatusBadRequest,
			wantReason: failure.ReasonValidation,
		},
		{
			name: "storage failure hides detail",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.CreateBookingResponse{}, errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantReason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPost, "/v1/bookings", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantReason == "" {
				assert.JSONEq(t, `{"data":{"booking_id":"B1","owner_name":"Alice","status":"Pending"}}`, rec.Body.String())

				return
			}

			msg, reason := decodeError(t, rec)
			assert.Equal(t, tt.wantReason, reason)
			assert.NotContains(t, msg, "pq:")
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("filters and paging forwarded", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				assert.Equal(t, 2, params.Page)
				assert.Equal(t, 5, params.Limit)
				require.Len(t, filter.Filters, 2)
				assert.Equal(t, gDto.Filter{
					Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: "Confirmed", Table: model.TableName,
				}, filter.Filters[0])
				assert.Equal(t, model.FieldCheckInDate, filter.Filters[1].(gDto.Filter).Field)

				return dto.GetBookingsResponse{}, nil
			})

		rec := serve(router, http.MethodGet, "/v1/bookings?status=Confirmed&check_in_date=2025-03-01&page=2&limit=5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sort column is whitelisted", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				assert.Equal(t, "bookings.owner_name", params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				assert.Empty(t, filter.Filters)

				return dto.GetBookingsResponse{}, nil
			})

		rec := serve(router, http.MethodGet, "/v1/bookings?sort_by=owner_name&sort_dir=desc", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad date filter", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodGet, "/v1/bookings?check_in_date=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetBookingByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Get(gomock.Any(), "B1").Return(dto.BookingResponse{ID: "B1", Status: string(model.StatusConfirmed), QRCodeURL: "https://cdn/qr"}, nil)

		rec := serve(router, http.MethodGet, "/v1/bookings/B1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"qr_code_url":"https://cdn/qr"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.BookingResponse{}, failure.NotFound("booking not found"))

		rec := serve(router, http.MethodGet, "/v1/bookings/missing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		_, reason := decodeError(t, rec)
		assert.Equal(t, failure.ReasonNotFound, reason)
	})
}

func TestHandler_PetPhotoUploadURL(t *testing.T) {
	t.Run("issued", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().PetPhotoUploadURL(gomock.Any(), dto.PetPhotoUploadRequest{PetSpecies: "Cat", ContentType: "image/png"}).
			Return(dto.PetPhotoUploadResponse{UploadURL: "https://s3/put", Key: "uploads/cat/x.png"}, nil)

		rec := serve(router, http.MethodPost, "/v1/uploads/pet-photo", `{"pet_species":"Cat","content_type":"image/png"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"upload_url":"https://s3/put","key":"uploads/cat/x.png"}}`, rec.Body.String())
	})

	t.Run("unsupported image type", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/v1/uploads/pet-photo", `{"pet_species":"Cat","content_type":"image/gif"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
