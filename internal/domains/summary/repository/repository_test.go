package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitrack/helper"
	otelMocks "habitrack/infras/otel/mocks"
	checkinModel "habitrack/internal/domains/checkin/model"
	checkinRepository "habitrack/internal/domains/checkin/repository"
	habitModel "habitrack/internal/domains/habit/model"
	habitRepository "habitrack/internal/domains/habit/repository"
	"habitrack/internal/domains/summary/model"
	"habitrack/internal/domains/summary/repository"
	"habitrack/shared/date"
	gModel "habitrack/shared/model"
)

func TestSummaryRepository(t *testing.T) {
	ctx := context.Background()

	db, err := helper.OpenSQLite(filepath.Join(t.TempDir(), "habits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	otl := otelMocks.NewOtel()
	habits := habitRepository.New(db, otl)
	checkins := checkinRepository.New(db, otl)
	repo := repository.New(db, otl)

	ids := map[string]int64{}
	for _, name := range []string{"Read", "Walk", "Stretch"} {
		habit, err := habits.Insert(ctx, habitModel.Habit{Name: name, Metadata: gModel.Metadata{CreatedAt: gModel.Now()}})
		require.NoError(t, err)

		ids[name] = habit.ID
	}

	add := func(name, day string, status checkinModel.Status) checkinModel.Checkin {
		return checkinModel.Checkin{
			HabitID:  ids[name],
			Date:     date.MustParse(day),
			Status:   status,
			Metadata: gModel.Metadata{CreatedAt: gModel.Now()},
		}
	}

	require.NoError(t, checkins.InsertBulk(ctx, []checkinModel.Checkin{
		add("Read", "2024-01-07", checkinModel.StatusDone),
		add("Read", "2024-01-08", checkinModel.StatusDone),
		add("Read", "2024-01-09", checkinModel.StatusMissed),
		add("Walk", "2024-01-13", checkinModel.StatusDone),
		add("Walk", "2024-01-20", checkinModel.StatusMissed),
		add("Stretch", "2024-01-10", checkinModel.StatusMissed),
		add("Stretch", "2023-12-31", checkinModel.StatusDone),
	}))

	week := date.Range{Start: date.MustParse("2024-01-07"), End: date.MustParse("2024-01-13")}
	month := date.Range{Start: date.MustParse("2024-01-01"), End: date.MustParse("2024-01-31")}

	t.Run("habit count is global", func(t *testing.T) {
		count, err := repo.CountHabits(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("week totals with inclusive bounds", func(t *testing.T) {
		totals, err := repo.PeriodTotals(ctx, week)
		require.NoError(t, err)
		assert.Equal(t, model.PeriodTotals{
			TotalHabits:      3,
			CompletedHabits:  2,
			TotalCompletions: 3,
			TotalMisses:      2,
		}, totals)
	})

	t.Run("month totals", func(t *testing.T) {
		totals, err := repo.PeriodTotals(ctx, month)
		require.NoError(t, err)
		assert.Equal(t, 3, totals.TotalCompletions)
		assert.Equal(t, 3, totals.TotalMisses)
		assert.Equal(t, 2, totals.CompletedHabits)
	})

	t.Run("per habit totals", func(t *testing.T) {
		totals, err := repo.HabitPeriodTotals(ctx, ids["Read"], week)
		require.NoError(t, err)
		assert.Equal(t, model.HabitPeriodTotals{TotalDays: 3, CompletedDays: 2, MissedDays: 1}, totals)

		none, err := repo.HabitPeriodTotals(ctx, 9999, month)
		require.NoError(t, err)
		assert.Zero(t, none)
	})
}
