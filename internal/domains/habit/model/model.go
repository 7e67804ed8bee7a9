package model

import "habitrack/shared/model"

const (
	TableName  = "habits"
	EntityName = "habit"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCreatedAt   = "created_at"
)

type Habit struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	model.Metadata
}
