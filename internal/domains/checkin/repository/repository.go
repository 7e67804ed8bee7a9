package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/internal/domains/checkin/model"
	gDto "habitrack/shared/dto"
	gRepo "habitrack/shared/repository"
)

var (
	upsertConflictColumns = []string{model.FieldHabitID, model.FieldDate}
	upsertUpdateColumns   = []string{model.FieldStatus}
)

type Checkin interface {
	Upsert(ctx context.Context, checkin model.Checkin) (model.Checkin, error)
	InsertBulk(ctx context.Context, checkins []model.Checkin) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Checkin, error)
	GetAllWithHabit(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CheckinWithHabit, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Clear(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Checkin]
	joined gRepo.Repository[model.CheckinWithHabit]
}

func New(db *database.Connection, otel otel.Otel) Checkin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Checkin](model.EntityName, model.TableName, model.FieldID, db, otel),
		joined:     gRepo.NewRepository[model.CheckinWithHabit](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Upsert keeps one row per (habit, date). A repeated call only replaces the
// status, the row id and first created_at survive.
func (r *repositoryImpl) Upsert(ctx context.Context, checkin model.Checkin) (model.Checkin, error) {
	return r.Repository.Upsert(ctx, checkin, upsertConflictColumns, upsertUpdateColumns)
}

func (r *repositoryImpl) GetAllWithHabit(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.CheckinWithHabit, error) {
	return r.joined.GetAll(ctx, params, filter)
}
