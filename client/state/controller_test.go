package state_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"habitrack/client/api"
	"habitrack/client/state"
	"habitrack/client/state/mocks"
	"habitrack/shared/date"
)

func newController(t *testing.T) (*state.Controller, *mocks.MockBackend) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)

	return state.NewController(backend, state.NewStore()), backend
}

func TestController_ToggleCycle(t *testing.T) {
	controller, backend := newController(t)
	ctx := context.Background()
	day := date.New(2024, 1, 1)

	backend.EXPECT().Summary(gomock.Any()).Return(api.Summary{}, nil).Times(4)

	gomock.InOrder(
		backend.EXPECT().UpsertCheckin(gomock.Any(), int64(1), day, "done").
			Return(api.Checkin{HabitID: 1, Date: day, Status: "done"}, nil),
		backend.EXPECT().UpsertCheckin(gomock.Any(), int64(1), day, "missed").
			Return(api.Checkin{HabitID: 1, Date: day, Status: "missed"}, nil),
		backend.EXPECT().DeleteCheckin(gomock.Any(), int64(1), day).Return(nil),
		backend.EXPECT().UpsertCheckin(gomock.Any(), int64(1), day, "done").
			Return(api.Checkin{HabitID: 1, Date: day, Status: "done"}, nil),
	)

	want := []state.Status{state.StatusDone, state.StatusMissed, state.StatusUnset, state.StatusDone}
	for i, expected := range want {
		got, err := controller.Toggle(ctx, 1, day)
		require.NoError(t, err, "click %d", i+1)
		assert.Equal(t, expected, got, "click %d", i+1)
		assert.Equal(t, expected, controller.Store().State().StatusOf(1, day))
	}
}

func TestController_ToggleDeleteAlreadyGone(t *testing.T) {
	controller, backend := newController(t)
	day := date.New(2024, 1, 1)

	controller.Store().Dispatch(state.UpdateCheckin{HabitID: 1, Date: day, Status: state.StatusMissed})

	backend.EXPECT().DeleteCheckin(gomock.Any(), int64(1), day).
		Return(&api.Error{StatusCode: http.StatusNotFound, Message: "Check-in not found"})
	backend.EXPECT().Summary(gomock.Any()).Return(api.Summary{}, nil)

	got, err := controller.Toggle(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, state.StatusUnset, got)
}

func TestController_ToggleFailureKeepsStatus(t *testing.T) {
	controller, backend := newController(t)
	day := date.New(2024, 1, 1)

	controller.Store().Dispatch(state.UpdateCheckin{HabitID: 1, Date: day, Status: state.StatusDone})

	backend.EXPECT().UpsertCheckin(gomock.Any(), int64(1), day, "missed").Return(api.Checkin{}, errors.New("offline"))

	got, err := controller.Toggle(context.Background(), 1, day)
	require.Error(t, err)
	assert.Equal(t, state.StatusDone, got)
	assert.Equal(t, "Failed to update check-in", controller.Store().State().Err)
}

func TestController_CreateHabit(t *testing.T) {
	t.Run("rejects invalid names without a request", func(t *testing.T) {
		controller, _ := newController(t)

		_, err := controller.CreateHabit(context.Background(), " x ", "")
		assert.Equal(t, state.ErrHabitNameTooShort, err)
	})

	t.Run("prepends the created habit", func(t *testing.T) {
		controller, backend := newController(t)

		controller.Store().Dispatch(state.SetHabits{Habits: []api.Habit{{ID: 1, Name: "Walk"}}})

		backend.EXPECT().CreateHabit(gomock.Any(), "Read", "pages").Return(api.Habit{ID: 2, Name: "Read"}, nil)
		backend.EXPECT().Summary(gomock.Any()).Return(api.Summary{TotalHabits: 2}, nil)

		habit, err := controller.CreateHabit(context.Background(), "Read", "pages")
		require.NoError(t, err)
		assert.Equal(t, int64(2), habit.ID)

		current := controller.Store().State()
		assert.Equal(t, int64(2), current.Habits[0].ID)
		assert.Equal(t, 2, current.Summary.TotalHabits)
	})

	t.Run("records the failure", func(t *testing.T) {
		controller, backend := newController(t)

		backend.EXPECT().CreateHabit(gomock.Any(), "Read", "").
			Return(api.Habit{}, &api.Error{StatusCode: http.StatusBadRequest, Message: "Habit with this name already exists"})

		_, err := controller.CreateHabit(context.Background(), "Read", "")
		require.Error(t, err)
		assert.Equal(t, "Failed to create habit", controller.Store().State().Err)
	})
}

func TestController_DeleteHabit(t *testing.T) {
	controller, backend := newController(t)
	day := date.New(2024, 1, 1)

	controller.Store().Dispatch(state.SetHabits{Habits: []api.Habit{{ID: 1}, {ID: 2}}})
	controller.Store().Dispatch(state.UpdateCheckin{HabitID: 1, Date: day, Status: state.StatusDone})

	backend.EXPECT().DeleteHabit(gomock.Any(), int64(1)).Return(nil)
	backend.EXPECT().Summary(gomock.Any()).Return(api.Summary{}, nil)

	require.NoError(t, controller.DeleteHabit(context.Background(), 1))

	current := controller.Store().State()
	assert.Equal(t, []api.Habit{{ID: 2}}, current.Habits)
	assert.Empty(t, current.Checkins)
}

func TestController_Load(t *testing.T) {
	controller, backend := newController(t)
	today := date.New(2024, 1, 10)
	week := date.WeekOf(today)

	backend.EXPECT().ListHabits(gomock.Any()).Return([]api.Habit{{ID: 1}, {ID: 2}}, nil)
	backend.EXPECT().ListCheckins(gomock.Any(), int64(1), week.Start, week.End).
		Return([]api.Checkin{{HabitID: 1, Date: today, Status: "done"}}, nil)
	backend.EXPECT().ListCheckins(gomock.Any(), int64(2), week.Start, week.End).
		Return(nil, errors.New("timeout"))
	backend.EXPECT().Summary(gomock.Any()).Return(api.Summary{TotalHabits: 2}, nil)

	require.NoError(t, controller.Load(context.Background(), today))

	current := controller.Store().State()
	assert.Len(t, current.Habits, 2)
	assert.Equal(t, state.StatusDone, current.StatusOf(1, today))
	assert.False(t, current.Loading)
	require.NotNil(t, current.Summary)
}

func TestController_LoadFailure(t *testing.T) {
	controller, backend := newController(t)

	backend.EXPECT().ListHabits(gomock.Any()).Return(nil, errors.New("connection refused"))

	require.Error(t, controller.Load(context.Background(), date.New(2024, 1, 10)))
	assert.Equal(t, "Failed to fetch habits", controller.Store().State().Err)
}

func TestController_FetchWeekDropsDeletedCheckins(t *testing.T) {
	controller, backend := newController(t)
	day := date.New(2024, 1, 3)
	week := date.WeekOf(day)

	controller.Store().Dispatch(state.SetHabits{Habits: []api.Habit{{ID: 1, Name: "Read"}}})
	controller.Store().Dispatch(state.UpdateCheckin{HabitID: 1, Date: day, Status: state.StatusDone})
	controller.Store().Dispatch(state.UpdateCheckin{HabitID: 1, Date: day.AddDays(-10), Status: state.StatusMissed})

	backend.EXPECT().ListCheckins(gomock.Any(), int64(1), week.Start, week.End).Return([]api.Checkin{}, nil)

	controller.FetchWeek(context.Background(), day)

	got := controller.Store().State()
	assert.Equal(t, state.StatusUnset, got.StatusOf(1, day))
	assert.Equal(t, state.StatusMissed, got.StatusOf(1, day.AddDays(-10)))
}
