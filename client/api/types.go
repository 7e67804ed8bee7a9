package api

import (
	checkinDto "habitrack/internal/domains/checkin/model/dto"
	habitDto "habitrack/internal/domains/habit/model/dto"
	summaryDto "habitrack/internal/domains/summary/model/dto"
	"habitrack/transport/http/response"
)

// The wire types are shared with the server so both sides agree on the JSON.
type (
	Habit            = habitDto.HabitResponse
	Checkin          = checkinDto.CheckinResponse
	CheckinWithHabit = checkinDto.CheckinWithHabitResponse
	Summary          = summaryDto.SummaryResponse
	PeriodStats      = summaryDto.PeriodStats
	HabitSummary     = summaryDto.HabitSummaryResponse
	HabitPeriodStats = summaryDto.HabitPeriodStats
	Health           = response.Health
	Message          = response.Message
)
