package dto

import (
	"habitrack/internal/domains/summary/model"
	"habitrack/shared/date"
)

type PeriodStats struct {
	Period           string    `json:"period"`
	StartDate        date.Date `json:"startDate"`
	EndDate          date.Date `json:"endDate"`
	TotalHabits      int       `json:"totalHabits"`
	CompletedHabits  int       `json:"completedHabits"`
	TotalCompletions int       `json:"totalCompletions"`
	TotalMisses      int       `json:"totalMisses"`
	CompletionRate   int       `json:"completionRate"`
}

func NewPeriodStats(r date.Range, totals model.PeriodTotals) PeriodStats {
	return PeriodStats{
		Period:           r.String(),
		StartDate:        r.Start,
		EndDate:          r.End,
		TotalHabits:      totals.TotalHabits,
		CompletedHabits:  totals.CompletedHabits,
		TotalCompletions: totals.TotalCompletions,
		TotalMisses:      totals.TotalMisses,
		CompletionRate:   model.CompletionRate(totals.TotalCompletions, totals.TotalMisses),
	}
}

type SummaryResponse struct {
	TotalHabits int         `json:"totalHabits"`
	Weekly      PeriodStats `json:"weekly"`
	Monthly     PeriodStats `json:"monthly"`
}

type HabitPeriodStats struct {
	Period         string    `json:"period"`
	StartDate      date.Date `json:"startDate"`
	EndDate        date.Date `json:"endDate"`
	TotalDays      int       `json:"totalDays"`
	CompletedDays  int       `json:"completedDays"`
	MissedDays     int       `json:"missedDays"`
	CompletionRate int       `json:"completionRate"`
}

func NewHabitPeriodStats(r date.Range, totals model.HabitPeriodTotals) HabitPeriodStats {
	return HabitPeriodStats{
		Period:         r.String(),
		StartDate:      r.Start,
		EndDate:        r.End,
		TotalDays:      totals.TotalDays,
		CompletedDays:  totals.CompletedDays,
		MissedDays:     totals.MissedDays,
		CompletionRate: model.CompletionRate(totals.CompletedDays, totals.MissedDays),
	}
}

type HabitSummaryResponse struct {
	HabitID int64            `json:"habitId"`
	Weekly  HabitPeriodStats `json:"weekly"`
	Monthly HabitPeriodStats `json:"monthly"`
}
