package lifecycle

import (
	"context"
	"net/http"
	"petstay/infras/otel"
	"petstay/internal/domains/lifecycle/model/dto"
	"petstay/internal/domains/lifecycle/service"
	"petstay/shared/constant"
	"petstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type transition func(ctx context.Context, id string) (dto.TransitionResponse, error)

type Handler struct {
	service service.Lifecycle
	otel    otel.Otel
}

func New(service service.Lifecycle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/{id}/confirm", handler.Confirm)
	router.Post("/bookings/{id}/cancel", handler.Cancel)
	router.Post("/bookings/{id}/restore", handler.Restore)
	router.Post("/bookings/{id}/checkin", handler.CheckIn)
	router.Post("/bookings/{id}/checkout", handler.CheckOut)
}

// Confirm approves a pending booking.
// @Summary Confirm a booking
// @Description Pending → Confirmed. Issues the check-in QR code and e-mails the confirmation.
// @Tags Lifecycle
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "PRECONDITION_FAILED"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	handler.run(w, r, "Confirm", handler.service.Confirm)
}

// Cancel withdraws a booking that has not checked in.
// @Summary Cancel a booking
// @Description Pending or Confirmed → Cancelled. A held room is released in the same commit.
// @Tags Lifecycle
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "PRECONDITION_FAILED"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	handler.run(w, r, "Cancel", handler.service.Cancel)
}

// Restore reopens a cancelled booking.
// @Summary Restore a booking
// @Description Cancelled → Pending.
// @Tags Lifecycle
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "PRECONDITION_FAILED"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/restore [post]
// @Security BearerAuth
func (handler *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	handler.run(w, r, "Restore", handler.service.Restore)
}

// CheckIn admits the guest and allocates a room.
// @Summary Check a booking in
// @Description Confirmed → Checked-In with the lowest free room of the pet's category. Repeating it returns the held room.
// @Tags Lifecycle
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error "VALIDATION_ERROR"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "PRECONDITION_FAILED, ALLOCATION_CONFLICT or NO_ROOM_AVAILABLE"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkin [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	handler.run(w, r, "CheckIn", handler.service.CheckIn)
}

// CheckOut ends the stay and frees the room.
// @Summary Check a booking out
// @Description Checked-In → Checked-Out. The room is released in the same commit.
// @Tags Lifecycle
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "PRECONDITION_FAILED"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	handler.run(w, r, "CheckOut", handler.service.CheckOut)
}

func (handler *Handler) run(w http.ResponseWriter, r *http.Request, name string, fn transition) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := fn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Str("transition", name).Msg("booking transition failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + id + " is now " + res.Status)

	response.WithJSON(w, http.StatusOK, res)
}
