package stats

import (
	"net/http"
	"petstay/infras/otel"
	"petstay/internal/domains/stats/service"
	"petstay/shared/constant"
	"petstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stats", handler.GetStats)
	router.Get("/stats/trend", handler.GetTrend)
}

// GetStats returns the latest dashboard snapshot.
// @Summary Dashboard statistics
// @Description Current guests, free rooms, occupancy per category and species counts.
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Data[dto.Snapshot]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	snapshot, err := handler.service.Latest(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, snapshot)
}

// GetTrend returns booking counts per check-in date.
// @Summary Booking trend
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Data[[]dto.TrendPoint]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/trend [get]
// @Security BearerAuth
func (handler *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrend")
	defer scope.End()

	trend, err := handler.service.Trend(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking trend")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trend)
}
