package state

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"context"

	"habitrack/client/api"
	"habitrack/shared/date"
)

// Backend is the subset of *api.Client the controller needs.
type Backend interface {
	ListHabits(ctx context.Context) ([]api.Habit, error)
	CreateHabit(ctx context.Context, name, description string) (api.Habit, error)
	DeleteHabit(ctx context.Context, id int64) error
	ListCheckins(ctx context.Context, habitID int64, start, end date.Date) ([]api.Checkin, error)
	UpsertCheckin(ctx context.Context, habitID int64, day date.Date, status string) (api.Checkin, error)
	DeleteCheckin(ctx context.Context, habitID int64, day date.Date) error
	Summary(ctx context.Context) (api.Summary, error)
}
