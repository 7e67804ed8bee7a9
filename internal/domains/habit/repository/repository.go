package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"habitrack/infras/database"
	"habitrack/infras/otel"
	"habitrack/internal/domains/habit/model"
	gDto "habitrack/shared/dto"
	gRepo "habitrack/shared/repository"
)

type Habit interface {
	Insert(ctx context.Context, habit model.Habit) (model.Habit, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Habit, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Habit, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Clear(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Habit]
}

func New(db *database.Connection, otel otel.Otel) Habit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Habit](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
