package habit

import (
	"habitrack/infras/otel"
	"habitrack/internal/domains/habit/model/dto"
	"habitrack/internal/domains/habit/service"
	"habitrack/shared"
	"habitrack/shared/constant"
	"habitrack/shared/validator"
	"habitrack/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Habit
	otel    otel.Otel
}

func New(service service.Habit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/habits", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHabits)
		routerGroup.Post("/", handler.CreateHabit)
		routerGroup.Get("/{id}", handler.GetHabitByID)
		routerGroup.Delete("/{id}", handler.DeleteHabit)
	})
}

// GetHabits lists every habit.
// @Summary List habits
// @Description Retrieve all habits, newest first.
// @Tags Habit
// @Produce json
// @Success 200 {array} dto.HabitResponse
// @Failure 500 {object} response.Error
// @Router /habits [get]
func (handler *Handler) GetHabits(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHabits")
	defer scope.End()

	habits, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get habits")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, habits)
}

// CreateHabit creates a habit.
// @Summary Create a habit
// @Description Create a habit with a unique name and an optional description.
// @Tags Habit
// @Accept json
// @Produce json
// @Param request body dto.CreateHabitRequest true "Create Habit Request"
// @Success 201 {object} dto.HabitResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /habits [post]
func (handler *Handler) CreateHabit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHabit")
	defer scope.End()

	req := dto.CreateHabitRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid create habit request")

		response.WithError(writer, err)

		return
	}

	habit, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create habit")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Habit created")

	response.WithJSON(writer, http.StatusCreated, habit)
}

// GetHabitByID returns one habit.
// @Summary Get a habit by ID
// @Tags Habit
// @Produce json
// @Param id path int true "Habit ID"
// @Success 200 {object} dto.HabitResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /habits/{id} [get]
func (handler *Handler) GetHabitByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHabitByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	habit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("habit_id", id).Msg("failed to get habit")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, habit)
}

// DeleteHabit deletes a habit together with its check-ins.
// @Summary Delete a habit
// @Tags Habit
// @Produce json
// @Param id path int true "Habit ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /habits/{id} [delete]
func (handler *Handler) DeleteHabit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHabit")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("habit_id", id).Msg("failed to delete habit")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Habit deleted")

	response.WithMessage(writer, http.StatusOK, constant.MessageHabitDeleted)
}
