package model

const EntityName = "summary"

// PeriodTotals aggregates every habit over one date range.
type PeriodTotals struct {
	TotalHabits      int `db:"total_habits"`
	CompletedHabits  int `db:"completed_habits"`
	TotalCompletions int `db:"total_completions"`
	TotalMisses      int `db:"total_misses"`
}

// HabitPeriodTotals aggregates one habit over one date range.
type HabitPeriodTotals struct {
	TotalDays     int `db:"total_days"`
	CompletedDays int `db:"completed_days"`
	MissedDays    int `db:"missed_days"`
}

// CompletionRate is the rounded percentage of done among tracked check-ins,
// 0 when nothing was tracked. Halves round up.
func CompletionRate(done, missed int) int {
	tracked := done + missed
	if tracked <= 0 {
		return 0
	}

	return (200*done + tracked) / (2 * tracked)
}
