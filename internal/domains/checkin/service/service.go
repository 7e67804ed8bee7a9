package service

import (
	"context"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/internal/domains/checkin/model"
	"habitrack/internal/domains/checkin/model/dto"
	"habitrack/internal/domains/checkin/repository"
	habitModel "habitrack/internal/domains/habit/model"
	habitRepo "habitrack/internal/domains/habit/repository"
	"habitrack/shared"
	"habitrack/shared/constant"
	"habitrack/shared/date"
	gDto "habitrack/shared/dto"
	"habitrack/shared/failure"

	"github.com/rs/zerolog/log"
)

type Checkin interface {
	ListForHabit(ctx context.Context, habitID int64, req dto.ListCheckinsRequest) ([]dto.CheckinResponse, error)
	Upsert(ctx context.Context, habitID int64, req dto.UpsertCheckinRequest) (dto.CheckinResponse, error)
	Delete(ctx context.Context, habitID int64, day string) error
	ListAll(ctx context.Context) ([]dto.CheckinWithHabitResponse, error)
}

type serviceImpl struct {
	repo      repository.Checkin
	habitRepo habitRepo.Habit
	otel      otel.Otel
}

func New(repo repository.Checkin, habitRepo habitRepo.Habit, otel otel.Otel) Checkin {
	return &serviceImpl{
		repo:      repo,
		habitRepo: habitRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) ListForHabit(ctx context.Context, habitID int64, req dto.ListCheckinsRequest) (res []dto.CheckinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.ListForHabit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if habitID <= 0 {
		return nil, failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	start, end, err := req.Range()
	if err != nil {
		return nil, err
	}

	filter := gDto.And(gDto.Filter{
		Field:    model.FieldHabitID,
		Value:    habitID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	if !start.IsZero() {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "start_date",
			Field:    model.FieldDate,
			Value:    start,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if !end.IsZero() {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "end_date",
			Field:    model.FieldDate,
			Value:    end,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	checkins, err := s.repo.GetAll(ctx, gDto.OrderBy(gDto.Sort{Field: model.FieldDate, Dir: gDto.SortDirDesc}), filter)
	if err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to get check-ins")

		return nil, failure.Store(constant.ErrFetchCheckins, err) //nolint:wrapcheck
	}

	return dto.FromModels(checkins), nil
}

// Upsert records the status for (habit, date), replacing any earlier status
// for the same day.
func (s *serviceImpl) Upsert(ctx context.Context, habitID int64, req dto.UpsertCheckinRequest) (res dto.CheckinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if habitID <= 0 {
		return res, failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	checkin, err := req.ToModel(habitID)
	if err != nil {
		return res, err
	}

	exist, err := s.habitRepo.Exist(ctx, shared.FilterByID(habitID, habitModel.FieldID, habitModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to verify habit")

		return res, failure.Store(constant.ErrVerifyHabit, err) //nolint:wrapcheck
	}

	if !exist {
		return res, failure.NotFound(constant.ErrHabitNotFound) //nolint:wrapcheck
	}

	checkin, err = s.repo.Upsert(ctx, checkin)
	if database.IsForeignKeyViolation(err) {
		return res, failure.NotFound(constant.ErrHabitNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Str("date", checkin.Date.String()).Msg("failed to upsert check-in")

		return res, failure.Store(constant.ErrUpsertCheckin, err) //nolint:wrapcheck
	}

	scope.SetAttribute("checkin.id", checkin.ID)
	scope.SetAttribute("checkin.status", string(checkin.Status))
	res.FromModel(checkin)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, habitID int64, day string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if habitID <= 0 {
		return failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	parsed, err := date.Parse(day)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, gDto.And(
		gDto.Filter{Field: model.FieldHabitID, Value: habitID, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldDate, Value: parsed, Operator: gDto.FilterOperatorEq},
	))
	if err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Str("date", day).Msg("failed to delete check-in")

		return failure.Store(constant.ErrDeleteCheckin, err) //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.NotFound(constant.ErrCheckinNotFound) //nolint:wrapcheck
	}

	return nil
}

// ListAll is a diagnostic listing of every check-in with its habit name.
func (s *serviceImpl) ListAll(ctx context.Context) (res []dto.CheckinWithHabitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkin.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.OrderBy(
		gDto.Sort{Field: model.FieldDate, Dir: gDto.SortDirDesc},
		gDto.Sort{Field: model.FieldHabitName, Dir: gDto.SortDirAsc},
	)

	checkins, err := s.repo.GetAllWithHabit(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-ins")

		return nil, failure.Store(constant.ErrFetchCheckins, err) //nolint:wrapcheck
	}

	return dto.FromJoinedModels(checkins), nil
}
