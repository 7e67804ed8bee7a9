package dto

import (
	"habitrack/internal/domains/habit/model"
	gDto "habitrack/shared/dto"
	gModel "habitrack/shared/model"
	"strings"
)

type CreateHabitRequest struct {
	Name        string `json:"name"        validate:"notblank" message:"Habit name is required"`
	Description string `json:"description"`
}

// ToModel trims the name and stamps the creation time.
func (c *CreateHabitRequest) ToModel() model.Habit {
	return model.Habit{
		Name:        strings.TrimSpace(c.Name),
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt: gModel.Now(),
		},
	}
}

type HabitResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *HabitResponse) FromModel(model model.Habit) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Habit) []HabitResponse {
	res := make([]HabitResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
