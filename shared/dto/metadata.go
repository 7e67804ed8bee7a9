package dto

import (
	"habitrack/shared/constant"
	"habitrack/shared/model"
	"habitrack/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	if model.CreatedAt.IsZero() {
		return
	}

	m.CreatedAt = timezone.Format(model.CreatedAt.Time, constant.DateFormat)
}
