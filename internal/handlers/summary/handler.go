package summary

import (
	"habitrack/infras/otel"
	"habitrack/internal/domains/summary/service"
	"habitrack/shared"
	"habitrack/shared/constant"
	"habitrack/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Summary
	otel    otel.Otel
}

func New(service service.Summary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/summary", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSummary)
		routerGroup.Get("/habit/{habitId}", handler.GetHabitSummary)
	})
}

// GetSummary returns weekly and monthly completion stats across all habits.
// @Summary Overall summary
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} response.Error
// @Router /summary [get]
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// GetHabitSummary returns weekly and monthly stats for one habit.
// @Summary Habit summary
// @Tags Summary
// @Produce json
// @Param habitId path int true "Habit ID"
// @Success 200 {object} dto.HabitSummaryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /summary/habit/{habitId} [get]
func (handler *Handler) GetHabitSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHabitSummary")
	defer scope.End()

	habitID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamHabitID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	summary, err := handler.service.ForHabit(ctx, habitID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to get habit summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}
