package service

import (
	"context"
	"habitrack/infras/otel"
	"habitrack/internal/domains/summary/model/dto"
	"habitrack/internal/domains/summary/repository"
	"habitrack/shared/constant"
	"habitrack/shared/date"
	"habitrack/shared/failure"
	"habitrack/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Summary interface {
	Overview(ctx context.Context) (dto.SummaryResponse, error)
	ForHabit(ctx context.Context, habitID int64) (dto.HabitSummaryResponse, error)
}

// Clock reports the current instant; periods are derived from its calendar
// day in the application timezone.
type Clock func() time.Time

type serviceImpl struct {
	repo  repository.Summary
	otel  otel.Otel
	clock Clock
}

func New(repo repository.Summary, otel otel.Otel) Summary {
	return NewWithClock(repo, otel, timezone.Now)
}

func NewWithClock(repo repository.Summary, otel otel.Otel, clock Clock) Summary {
	return &serviceImpl{
		repo:  repo,
		otel:  otel,
		clock: clock,
	}
}

func (s *serviceImpl) periods() (week, month date.Range) {
	today := date.Of(timezone.ToAppTime(s.clock()))

	return date.WeekOf(today), date.MonthOf(today)
}

func (s *serviceImpl) Overview(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".summary.Overview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	week, month := s.periods()

	total, err := s.repo.CountHabits(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count habits")

		return res, failure.Store(constant.ErrFetchSummary, err) //nolint:wrapcheck
	}

	weekly, err := s.repo.PeriodTotals(ctx, week)
	if err != nil {
		log.Error().Err(err).Str("period", week.String()).Msg("failed to aggregate weekly stats")

		return res, failure.Store(constant.ErrFetchSummary, err) //nolint:wrapcheck
	}

	monthly, err := s.repo.PeriodTotals(ctx, month)
	if err != nil {
		log.Error().Err(err).Str("period", month.String()).Msg("failed to aggregate monthly stats")

		return res, failure.Store(constant.ErrFetchSummary, err) //nolint:wrapcheck
	}

	return dto.SummaryResponse{
		TotalHabits: total,
		Weekly:      dto.NewPeriodStats(week, weekly),
		Monthly:     dto.NewPeriodStats(month, monthly),
	}, nil
}

// ForHabit does not check that the habit exists; an unknown id yields zeroes.
func (s *serviceImpl) ForHabit(ctx context.Context, habitID int64) (res dto.HabitSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".summary.ForHabit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if habitID <= 0 {
		return res, failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	week, month := s.periods()

	weekly, err := s.repo.HabitPeriodTotals(ctx, habitID, week)
	if err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to aggregate weekly habit stats")

		return res, failure.Store(constant.ErrFetchHabitSummary, err) //nolint:wrapcheck
	}

	monthly, err := s.repo.HabitPeriodTotals(ctx, habitID, month)
	if err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Msg("failed to aggregate monthly habit stats")

		return res, failure.Store(constant.ErrFetchHabitSummary, err) //nolint:wrapcheck
	}

	return dto.HabitSummaryResponse{
		HabitID: habitID,
		Weekly:  dto.NewHabitPeriodStats(week, weekly),
		Monthly: dto.NewHabitPeriodStats(month, monthly),
	}, nil
}
