package booking

import (
	"net/http"
	"petstay/infras/otel"
	"petstay/internal/domains/booking/model"
	"petstay/internal/domains/booking/model/dto"
	"petstay/internal/domains/booking/service"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	"petstay/shared/timezone"
	"petstay/shared/validator"
	"petstay/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var (
	filterableColumns = []string{model.FieldStatus, model.FieldPetSpecies, model.FieldCheckInDate}

	sortableColumns = map[string]string{
		model.FieldCheckInDate: model.TableName + "." + model.FieldCheckInDate,
		model.FieldOwnerName:   model.TableName + "." + model.FieldOwnerName,
		model.FieldStatus:      model.TableName + "." + model.FieldStatus,
		"created_at":           model.TableName + ".created_at",
	}
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings", handler.CreateBooking)
	router.Get("/bookings", handler.GetBookings)
	router.Get("/bookings/{id}", handler.GetBookingByID)
	router.Post("/uploads/pet-photo", handler.PetPhotoUploadURL)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Register a stay. New bookings start as Pending until an operator confirms them.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.BookingID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description List bookings, newest planned check-in first, with presigned QR code and pet photo links.
// @Tags Booking
// @Accept json
// @Produce json
// @Param page query int false "Page number, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param sort_by query string false "Sort column (check_in_date, owner_name, status, created_at)"
// @Param sort_dir query string false "ASC or DESC"
// @Param status query string false "Filter by status (Pending, Confirmed, Cancelled, Checked-In, Checked-Out)"
// @Param pet_species query string false "Filter by pet species"
// @Param check_in_date query string false "Filter by planned check-in date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, sortableColumns)

	filterGroup, err := listFilter(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("bookings.total", bookings.TotalData)

	response.WithJSON(w, http.StatusOK, bookings)
}

// listFilter turns the status, pet_species and check_in_date query parameters into
// equality filters on the bookings table.
func listFilter(r *http.Request) (gDto.FilterGroup, error) {
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	query := r.URL.Query()

	for _, field := range filterableColumns {
		value := strings.TrimSpace(query.Get(field))
		if value == "" {
			continue
		}

		if field == model.FieldCheckInDate {
			if err := validator.ValidateVar(value, "datetime="+timezone.DateLayout); err != nil {
				return filterGroup, err
			}
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking, e.g. from the check-in link encoded in its QR code.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// PetPhotoUploadURL issues a presigned upload link for a pet photo.
// @Summary Get a pet photo upload URL
// @Description Returns a short-lived PUT URL; the returned key goes into the booking's pet_photo_key.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.PetPhotoUploadRequest true "Pet Photo Upload Request"
// @Success 200 {object} response.Data[dto.PetPhotoUploadResponse] "Upload URL"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/uploads/pet-photo [post]
func (handler *Handler) PetPhotoUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PetPhotoUploadURL")
	defer scope.End()

	req := dto.PetPhotoUploadRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PetPhotoUploadURL(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue pet photo upload url")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
