package room

import (
	"net/http"
	"petstay/infras/otel"
	"petstay/internal/domains/room/service"
	"petstay/shared/constant"
	"petstay/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/availability", handler.GetAvailability)
	router.Post("/rooms/seed", handler.SeedRooms)
}

// GetAvailability reports free rooms per category.
// @Summary Room availability
// @Description Free and total rooms for dogs and cats, plus every room with its occupant. An empty inventory is seeded first.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	availability, err := handler.service.Availability(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// SeedRooms creates the configured room layout.
// @Summary Seed rooms
// @Description Insert every configured room that does not exist yet. Existing rooms are left untouched.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.SeedResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/seed [post]
// @Security BearerAuth
func (handler *Handler) SeedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SeedRooms")
	defer scope.End()

	res, err := handler.service.Seed(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to seed rooms")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent(strconv.Itoa(res.Created) + " rooms seeded by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
