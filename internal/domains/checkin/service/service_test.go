package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "habitrack/infras/otel/mocks"
	checkinMocks "habitrack/internal/domains/checkin/mocks"
	"habitrack/internal/domains/checkin/model"
	"habitrack/internal/domains/checkin/model/dto"
	"habitrack/internal/domains/checkin/service"
	habitMocks "habitrack/internal/domains/habit/mocks"
	"habitrack/shared/date"
	gDto "habitrack/shared/dto"
	"habitrack/shared/failure"
)

func newService(t *testing.T) (service.Checkin, *checkinMocks.MockCheckin, *habitMocks.MockHabit) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := checkinMocks.NewMockCheckin(ctrl)
	habitRepo := habitMocks.NewMockHabit(ctrl)

	return service.New(repo, habitRepo, otelMocks.NewOtel()), repo, habitRepo
}

func TestCheckinService_ListForHabit(t *testing.T) {
	t.Run("no bounds filters by habit only", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Checkin, error) {
				assert.Equal(t, "ORDER BY date DESC", params.GetOrderClause())
				assert.Len(t, filter.Filters, 1)

				return []model.Checkin{
					{ID: 2, HabitID: 1, Date: date.MustParse("2024-01-02"), Status: model.StatusMissed},
					{ID: 1, HabitID: 1, Date: date.MustParse("2024-01-01"), Status: model.StatusDone},
				}, nil
			})

		res, err := svc.ListForHabit(context.Background(), 1, dto.ListCheckinsRequest{})
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "2024-01-02", res[0].Date.String())
		assert.Equal(t, "missed", res[0].Status)
	})

	t.Run("both bounds are inclusive filters", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Checkin, error) {
				where, args := filter.GetWhereClause()
				assert.Equal(t, "(checkins.habit_id = :habit_id AND checkins.date >= :start_date AND checkins.date <= :end_date)", where)
				assert.Equal(t, date.MustParse("2024-01-01"), args["start_date"])
				assert.Equal(t, date.MustParse("2024-01-07"), args["end_date"])

				return []model.Checkin{}, nil
			})

		res, err := svc.ListForHabit(context.Background(), 1, dto.ListCheckinsRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"})
		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _, _ := newService(t)

		tests := []struct {
			name    string
			habitID int64
			req     dto.ListCheckinsRequest
		}{
			{name: "invalid habit id", habitID: 0},
			{name: "malformed start", habitID: 1, req: dto.ListCheckinsRequest{StartDate: "01/02/2024"}},
			{name: "malformed end", habitID: 1, req: dto.ListCheckinsRequest{EndDate: "2024-13-01"}},
			{name: "inverted range", habitID: 1, req: dto.ListCheckinsRequest{StartDate: "2024-01-07", EndDate: "2024-01-01"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.ListForHabit(context.Background(), tt.habitID, tt.req)
				require.Error(t, err)
				assert.True(t, failure.IsValidation(err))
			})
		}
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("disk I/O error"))

		_, err := svc.ListForHabit(context.Background(), 1, dto.ListCheckinsRequest{})
		assert.True(t, failure.IsStore(err))
		assert.Equal(t, "Failed to fetch check-ins", err.Error())
	})
}

func TestCheckinService_Upsert(t *testing.T) {
	valid := dto.UpsertCheckinRequest{Date: "2024-01-01", Status: "done"}

	t.Run("upserts for an existing habit", func(t *testing.T) {
		svc, repo, habitRepo := newService(t)

		habitRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, checkin model.Checkin) (model.Checkin, error) {
				assert.Equal(t, int64(4), checkin.HabitID)
				assert.Equal(t, "2024-01-01", checkin.Date.String())
				assert.Equal(t, model.StatusDone, checkin.Status)

				checkin.ID = 10

				return checkin, nil
			})

		res, err := svc.Upsert(context.Background(), 4, valid)
		require.NoError(t, err)
		assert.Equal(t, int64(10), res.ID)
		assert.Equal(t, int64(4), res.HabitID)
		assert.Equal(t, "done", res.Status)
	})

	t.Run("missing habit", func(t *testing.T) {
		svc, _, habitRepo := newService(t)

		habitRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Upsert(context.Background(), 4, valid)
		require.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
		assert.Equal(t, "Habit not found", err.Error())
	})

	t.Run("habit removed between check and write", func(t *testing.T) {
		svc, repo, habitRepo := newService(t)

		habitRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(model.Checkin{}, &pq.Error{Code: "23503"})

		_, err := svc.Upsert(context.Background(), 4, valid)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("verify failure", func(t *testing.T) {
		svc, _, habitRepo := newService(t)

		habitRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("locked"))

		_, err := svc.Upsert(context.Background(), 4, valid)
		assert.True(t, failure.IsStore(err))
		assert.Equal(t, "Failed to verify habit", err.Error())
	})

	t.Run("write failure", func(t *testing.T) {
		svc, repo, habitRepo := newService(t)

		habitRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(model.Checkin{}, errors.New("locked"))

		_, err := svc.Upsert(context.Background(), 4, valid)
		assert.True(t, failure.IsStore(err))
		assert.Equal(t, "Failed to create/update check-in", err.Error())
	})

	t.Run("validation", func(t *testing.T) {
		svc, _, _ := newService(t)

		tests := []struct {
			name    string
			req     dto.UpsertCheckinRequest
			message string
		}{
			{name: "missing date", req: dto.UpsertCheckinRequest{Status: "done"}, message: "Date is required"},
			{name: "bad status", req: dto.UpsertCheckinRequest{Date: "2024-01-01", Status: "skipped"}, message: `Status must be either "done" or "missed"`},
			{name: "bad date", req: dto.UpsertCheckinRequest{Date: "yesterday", Status: "done"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Upsert(context.Background(), 4, tt.req)
				require.Error(t, err)
				assert.True(t, failure.IsValidation(err))

				if tt.message != "" {
					assert.Equal(t, tt.message, err.Error())
				}
			})
		}
	})
}

func TestCheckinService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int64, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, int64(3), args["habit_id"])
				assert.Equal(t, date.MustParse("2024-01-05"), args["date"])

				return 1, nil
			})

		assert.NoError(t, svc.Delete(context.Background(), 3, "2024-01-05"))
	})

	t.Run("nothing to delete", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := svc.Delete(context.Background(), 3, "2024-01-05")
		assert.True(t, failure.IsNotFound(err))
		assert.Equal(t, "Check-in not found", err.Error())
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Delete(context.Background(), 3, "2024-1-5")
		assert.True(t, failure.IsValidation(err))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))

		err := svc.Delete(context.Background(), 3, "2024-01-05")
		assert.True(t, failure.IsStore(err))
	})
}

func TestCheckinService_ListAll(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		GetAllWithHabit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.CheckinWithHabit, error) {
			assert.Equal(t, "ORDER BY date DESC, habit_name ASC", params.GetOrderClause())

			return []model.CheckinWithHabit{
				{Checkin: model.Checkin{ID: 1, HabitID: 2, Date: date.MustParse("2024-01-01"), Status: model.StatusDone}, HabitName: "Read"},
			}, nil
		})

	res, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Read", res[0].HabitName)
	assert.Equal(t, int64(2), res[0].HabitID)
}
