package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "habitrack/infras/otel/mocks"
	summaryMocks "habitrack/internal/domains/summary/mocks"
	"habitrack/internal/domains/summary/model"
	"habitrack/internal/domains/summary/service"
	"habitrack/shared/date"
	"habitrack/shared/failure"
	"habitrack/shared/timezone"
)

// Wednesday.
func fixedClock() time.Time {
	return time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
}

var (
	week  = date.Range{Start: date.MustParse("2024-01-07"), End: date.MustParse("2024-01-13")}
	month = date.Range{Start: date.MustParse("2024-01-01"), End: date.MustParse("2024-01-31")}
)

func newService(t *testing.T) (service.Summary, *summaryMocks.MockSummary) {
	t.Helper()

	prev := timezone.GetLocation()
	timezone.SetLocation(time.UTC)
	t.Cleanup(func() { timezone.SetLocation(prev) })

	repo := summaryMocks.NewMockSummary(gomock.NewController(t))

	return service.NewWithClock(repo, otelMocks.NewOtel(), fixedClock), repo
}

func TestSummaryService_Overview(t *testing.T) {
	t.Run("weekly and monthly stats", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().CountHabits(gomock.Any()).Return(3, nil)
		repo.EXPECT().PeriodTotals(gomock.Any(), week).Return(model.PeriodTotals{
			TotalHabits: 3, CompletedHabits: 2, TotalCompletions: 3, TotalMisses: 1,
		}, nil)
		repo.EXPECT().PeriodTotals(gomock.Any(), month).Return(model.PeriodTotals{
			TotalHabits: 3, CompletedHabits: 3, TotalCompletions: 10, TotalMisses: 5,
		}, nil)

		res, err := svc.Overview(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalHabits)

		assert.Equal(t, "2024-01-07 to 2024-01-13", res.Weekly.Period)
		assert.Equal(t, 2, res.Weekly.CompletedHabits)
		assert.Equal(t, 75, res.Weekly.CompletionRate)

		assert.Equal(t, "2024-01-01 to 2024-01-31", res.Monthly.Period)
		assert.Equal(t, 67, res.Monthly.CompletionRate)
	})

	t.Run("empty store", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().CountHabits(gomock.Any()).Return(0, nil)
		repo.EXPECT().PeriodTotals(gomock.Any(), gomock.Any()).Return(model.PeriodTotals{}, nil).Times(2)

		res, err := svc.Overview(context.Background())
		require.NoError(t, err)
		assert.Zero(t, res.Weekly.CompletionRate)
		assert.Zero(t, res.Monthly.CompletionRate)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().CountHabits(gomock.Any()).Return(0, errors.New("locked"))

		_, err := svc.Overview(context.Background())
		assert.True(t, failure.IsStore(err))
		assert.Equal(t, "Failed to fetch summary stats", err.Error())
	})
}

func TestSummaryService_ForHabit(t *testing.T) {
	t.Run("per habit stats", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().HabitPeriodTotals(gomock.Any(), int64(5), week).Return(model.HabitPeriodTotals{
			TotalDays: 4, CompletedDays: 3, MissedDays: 1,
		}, nil)
		repo.EXPECT().HabitPeriodTotals(gomock.Any(), int64(5), month).Return(model.HabitPeriodTotals{}, nil)

		res, err := svc.ForHabit(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.HabitID)
		assert.Equal(t, 4, res.Weekly.TotalDays)
		assert.Equal(t, 75, res.Weekly.CompletionRate)
		assert.Equal(t, 0, res.Monthly.CompletionRate)
		assert.Equal(t, month.Start, res.Monthly.StartDate)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.ForHabit(context.Background(), -1)
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().HabitPeriodTotals(gomock.Any(), int64(5), week).Return(model.HabitPeriodTotals{}, errors.New("locked"))

		_, err := svc.ForHabit(context.Background(), 5)
		assert.True(t, failure.IsStore(err))
		assert.Equal(t, "Failed to fetch habit stats", err.Error())
	})
}
