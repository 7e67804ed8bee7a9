package dto

import (
	"habitrack/internal/domains/checkin/model"
	"habitrack/shared/constant"
	"habitrack/shared/date"
	gDto "habitrack/shared/dto"
	"habitrack/shared/failure"
	gModel "habitrack/shared/model"
)

// ListCheckinsRequest bounds are optional and inclusive.
type ListCheckinsRequest struct {
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate"   validate:"omitempty,datetime=2006-01-02"`
}

// Range parses the bounds. A zero Date means the bound is absent.
func (r ListCheckinsRequest) Range() (start, end date.Date, err error) {
	if r.StartDate != "" {
		if start, err = date.Parse(r.StartDate); err != nil {
			return start, end, failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	if r.EndDate != "" {
		if end, err = date.Parse(r.EndDate); err != nil {
			return start, end, failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return start, end, failure.BadRequestFromString(constant.ErrDateRangeInverted) //nolint:wrapcheck
	}

	return start, end, nil
}

type UpsertCheckinRequest struct {
	Date   string `json:"date"   validate:"required" message:"Date is required"`
	Status string `json:"status" validate:"required,oneof=done missed" message:"Status must be either \"done\" or \"missed\""`
}

func (r UpsertCheckinRequest) ToModel(habitID int64) (model.Checkin, error) {
	if r.Date == "" {
		return model.Checkin{}, failure.BadRequestFromString(constant.ErrDateRequired) //nolint:wrapcheck
	}

	day, err := date.Parse(r.Date)
	if err != nil {
		return model.Checkin{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	status := model.Status(r.Status)
	if !status.Valid() {
		return model.Checkin{}, failure.BadRequestFromString(constant.ErrStatusInvalid) //nolint:wrapcheck
	}

	return model.Checkin{
		HabitID: habitID,
		Date:    day,
		Status:  status,
		Metadata: gModel.Metadata{
			CreatedAt: gModel.Now(),
		},
	}, nil
}

type CheckinResponse struct {
	ID      int64     `json:"id"`
	HabitID int64     `json:"habit_id"`
	Date    date.Date `json:"date"`
	Status  string    `json:"status"`
	gDto.Metadata
}

func (r *CheckinResponse) FromModel(model model.Checkin) {
	r.ID = model.ID
	r.HabitID = model.HabitID
	r.Date = model.Date
	r.Status = string(model.Status)
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Checkin) []CheckinResponse {
	res := make([]CheckinResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CheckinWithHabitResponse struct {
	CheckinResponse
	HabitName string `json:"habit_name"`
}

func (r *CheckinWithHabitResponse) FromModel(model model.CheckinWithHabit) {
	r.CheckinResponse.FromModel(model.Checkin)
	r.HabitName = model.HabitName
}

func FromJoinedModels(models []model.CheckinWithHabit) []CheckinWithHabitResponse {
	res := make([]CheckinWithHabitResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
