package model

import (
	habitModel "habitrack/internal/domains/habit/model"
	"habitrack/shared/constant"
	"habitrack/shared/date"
	"habitrack/shared/model"
)

const (
	TableName  = "checkins"
	EntityName = "checkin"

	FieldID        = "id"
	FieldHabitID   = "habit_id"
	FieldDate      = "date"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
	FieldHabitName = "habit_name"
)

type Status string

const (
	StatusDone   Status = constant.CheckinStatusDone
	StatusMissed Status = constant.CheckinStatusMissed
)

func (s Status) Valid() bool {
	return s == StatusDone || s == StatusMissed
}

type Checkin struct {
	ID      int64     `db:"id"`
	HabitID int64     `db:"habit_id"`
	Date    date.Date `db:"date"`
	Status  Status    `db:"status"`
	model.Metadata
}

// CheckinWithHabit is a check-in read together with the owning habit's name.
type CheckinWithHabit struct {
	Checkin
	HabitName string `db:"habit_name" table:"habits" column:"name"`
}

func (CheckinWithHabit) GetJoinQuery() string {
	return "JOIN " + habitModel.TableName + " ON " + habitModel.TableName + "." + habitModel.FieldID + " = " + TableName + "." + FieldHabitID
}
