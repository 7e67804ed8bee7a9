package state

import (
	"strings"
	"unicode/utf8"

	"habitrack/shared/constant"
	"habitrack/shared/date"
	"habitrack/shared/failure"
)

const (
	habitNameMinLength = 2
	habitNameMaxLength = 100
)

var (
	ErrHabitNameRequired = failure.BadRequestFromString(constant.ErrHabitNameRequired)
	ErrHabitNameTooShort = failure.BadRequestFromString("Habit name must be at least 2 characters long")
	ErrHabitNameTooLong  = failure.BadRequestFromString("Habit name must be less than 100 characters")
)

// WeekDates returns Sunday..Saturday of the week containing day.
func WeekDates(day date.Date) []date.Date {
	return date.WeekOf(day).Days()
}

// WeekLabel renders the week containing day as "Jan 7 - Jan 13, 2024".
func WeekLabel(day date.Date) string {
	week := date.WeekOf(day)

	return week.Start.Format("Jan 2") + " - " + week.End.Format("Jan 2, 2006")
}

// DayLabel is "Today" for today and the short weekday name otherwise.
func DayLabel(day, today date.Date) string {
	if day.Equal(today) {
		return "Today"
	}

	return day.Format("Mon")
}

func IsPast(day, today date.Date) bool {
	return day.Before(today)
}

// CompletionPercentage rounds half up and is 0 for an empty total.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}

	return (200*completed + total) / (2 * total)
}

func ValidateHabitName(name string) error {
	name = strings.TrimSpace(name)

	switch length := utf8.RuneCountInString(name); {
	case length == 0:
		return ErrHabitNameRequired
	case length < habitNameMinLength:
		return ErrHabitNameTooShort
	case length > habitNameMaxLength:
		return ErrHabitNameTooLong
	}

	return nil
}
