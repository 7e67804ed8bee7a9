package service

import (
	"context"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/internal/domains/habit/model"
	"habitrack/internal/domains/habit/model/dto"
	"habitrack/internal/domains/habit/repository"
	"habitrack/shared"
	"habitrack/shared/constant"
	gDto "habitrack/shared/dto"
	"habitrack/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

type Habit interface {
	List(ctx context.Context) ([]dto.HabitResponse, error)
	Create(ctx context.Context, req dto.CreateHabitRequest) (dto.HabitResponse, error)
	Get(ctx context.Context, id int64) (dto.HabitResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Habit
	otel otel.Otel
}

func New(repo repository.Habit, otel otel.Otel) Habit {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// List returns every habit, newest first.
func (s *serviceImpl) List(ctx context.Context) (res []dto.HabitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".habit.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.OrderBy(
		gDto.Sort{Field: model.FieldCreatedAt, Dir: gDto.SortDirDesc},
		gDto.Sort{Field: model.FieldID, Dir: gDto.SortDirDesc},
	)

	habits, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get habits")

		return nil, failure.Store(constant.ErrFetchHabits, err) //nolint:wrapcheck
	}

	return dto.FromModels(habits), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHabitRequest) (res dto.HabitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".habit.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.Name) == "" {
		return res, failure.BadRequestFromString(constant.ErrHabitNameRequired) //nolint:wrapcheck
	}

	habit, err := s.repo.Insert(ctx, req.ToModel())
	if database.IsUniqueViolation(err) {
		return res, failure.Conflict(constant.ErrHabitNameTaken) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create habit")

		return res, failure.Store(constant.ErrCreateHabit, err) //nolint:wrapcheck
	}

	scope.SetAttribute("habit.id", habit.ID)
	res.FromModel(habit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.HabitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".habit.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return res, failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	habit, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("habit_id", id).Msg("failed to get habit")

		return res, failure.Store(constant.ErrFetchHabit, err) //nolint:wrapcheck
	}

	if habit.ID == 0 {
		return res, failure.NotFound(constant.ErrHabitNotFound) //nolint:wrapcheck
	}

	res.FromModel(habit)

	return res, nil
}

// Delete removes the habit; its check-ins go with it through the cascade.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".habit.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id <= 0 {
		return failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("habit_id", id).Msg("failed to delete habit")

		return failure.Store(constant.ErrDeleteHabit, err) //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(constant.ErrHabitNotFound) //nolint:wrapcheck
	}

	return nil
}
