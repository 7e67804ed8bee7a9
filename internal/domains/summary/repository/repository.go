package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/internal/domains/summary/model"
	"habitrack/shared/constant"
	"habitrack/shared/date"
	"habitrack/shared/logger"
)

const (
	countHabitsQuery = `SELECT COUNT(*) FROM habits`

	periodTotalsQuery = `SELECT
		COUNT(DISTINCT h.id) AS total_habits,
		COUNT(DISTINCT CASE WHEN c.status = 'done' THEN h.id END) AS completed_habits,
		COUNT(CASE WHEN c.status = 'done' THEN 1 END) AS total_completions,
		COUNT(CASE WHEN c.status = 'missed' THEN 1 END) AS total_misses
	FROM habits h
	LEFT JOIN checkins c ON h.id = c.habit_id AND c.date BETWEEN :start_date AND :end_date`

	habitPeriodTotalsQuery = `SELECT
		COUNT(*) AS total_days,
		COUNT(CASE WHEN status = 'done' THEN 1 END) AS completed_days,
		COUNT(CASE WHEN status = 'missed' THEN 1 END) AS missed_days
	FROM checkins
	WHERE habit_id = :habit_id AND date BETWEEN :start_date AND :end_date`
)

type Summary interface {
	CountHabits(ctx context.Context) (int, error)
	PeriodTotals(ctx context.Context, period date.Range) (model.PeriodTotals, error)
	HabitPeriodTotals(ctx context.Context, habitID int64, period date.Range) (model.HabitPeriodTotals, error)
}

type repositoryImpl struct {
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Summary {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) CountHabits(ctx context.Context) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".summary.CountHabits")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countHabitsQuery)

	var count int
	if err := r.db.Read.GetContext(ctx, &count, countHabitsQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count habits: %w", err)
	}

	return count, nil
}

func (r *repositoryImpl) PeriodTotals(ctx context.Context, period date.Range) (model.PeriodTotals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".summary.PeriodTotals")
	defer scope.End()

	scope.SetAttribute("period", period.String())

	var totals model.PeriodTotals

	err := r.get(ctx, scope, &totals, periodTotalsQuery, map[string]any{
		"start_date": period.Start,
		"end_date":   period.End,
	})

	return totals, err
}

func (r *repositoryImpl) HabitPeriodTotals(ctx context.Context, habitID int64, period date.Range) (model.HabitPeriodTotals, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".summary.HabitPeriodTotals")
	defer scope.End()

	scope.SetAttribute("habit.id", habitID)
	scope.SetAttribute("period", period.String())

	var totals model.HabitPeriodTotals

	err := r.get(ctx, scope, &totals, habitPeriodTotalsQuery, map[string]any{
		"habit_id":   habitID,
		"start_date": period.Start,
		"end_date":   period.End,
	})

	return totals, err
}

func (r *repositoryImpl) get(ctx context.Context, scope otel.Scope, dest any, query string, args map[string]any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, dest, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to aggregate (%s): %w", model.EntityName, err)
	}

	return nil
}
