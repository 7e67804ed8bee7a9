package checkin

import (
	"habitrack/infras/otel"
	"habitrack/internal/domains/checkin/model/dto"
	"habitrack/internal/domains/checkin/service"
	"habitrack/shared"
	"habitrack/shared/constant"
	"habitrack/shared/validator"
	"habitrack/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Checkin
	otel    otel.Otel
}

func New(service service.Checkin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkins", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAllCheckins)
		routerGroup.Get("/{habitId}", handler.GetCheckins)
		routerGroup.Post("/{habitId}", handler.UpsertCheckin)
		routerGroup.Delete("/{habitId}/{date}", handler.DeleteCheckin)
	})
}

// GetCheckins lists the check-ins of one habit.
// @Summary List check-ins for a habit
// @Description Check-ins ordered by date descending, optionally bounded by an inclusive date window.
// @Tags Checkin
// @Produce json
// @Param habitId path int true "Habit ID"
// @Param startDate query string false "First day (yyyy-MM-dd)"
// @Param endDate query string false "Last day (yyyy-MM-dd)"
// @Success 200 {array} dto.CheckinResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /checkins/{habitId} [get]
func (handler *Handler) GetCheckins(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckins")
	defer scope.End()

	habitID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamHabitID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()
	req := dto.ListCheckinsRequest{
		StartDate: query.Get(constant.RequestParamStartDate),
		EndDate:   query.Get(constant.RequestParamEndDate),
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	checkins, err := handler.service.ListForHabit(ctx, habitID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to get check-ins")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, checkins)
}

// UpsertCheckin records the status of a habit for one day.
// @Summary Create or update a check-in
// @Description A second write for the same habit and date replaces the status.
// @Tags Checkin
// @Accept json
// @Produce json
// @Param habitId path int true "Habit ID"
// @Param request body dto.UpsertCheckinRequest true "Check-in"
// @Success 201 {object} dto.CheckinResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /checkins/{habitId} [post]
func (handler *Handler) UpsertCheckin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertCheckin")
	defer scope.End()

	habitID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamHabitID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpsertCheckinRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid check-in request")

		response.WithError(writer, err)

		return
	}

	checkin, err := handler.service.Upsert(ctx, habitID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to upsert check-in")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, checkin)
}

// DeleteCheckin clears the status of a habit for one day.
// @Summary Delete a check-in
// @Tags Checkin
// @Produce json
// @Param habitId path int true "Habit ID"
// @Param date path string true "Day (yyyy-MM-dd)"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /checkins/{habitId}/{date} [delete]
func (handler *Handler) DeleteCheckin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCheckin")
	defer scope.End()

	habitID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamHabitID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	day := chi.URLParam(request, constant.RequestParamDate)

	if err = handler.service.Delete(ctx, habitID, day); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("habit_id", habitID).Str("date", day).Msg("failed to delete check-in")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, constant.MessageCheckinDeleted)
}

// GetAllCheckins lists every check-in with its habit name.
// @Summary List all check-ins
// @Description Diagnostic listing ordered by date descending then habit name.
// @Tags Checkin
// @Produce json
// @Success 200 {array} dto.CheckinWithHabitResponse
// @Failure 500 {object} response.Error
// @Router /checkins [get]
func (handler *Handler) GetAllCheckins(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllCheckins")
	defer scope.End()

	checkins, err := handler.service.ListAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get all check-ins")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, checkins)
}
