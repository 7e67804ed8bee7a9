package date

import "time"

// Range is an inclusive span of calendar days.
type Range struct {
	Start Date
	End   Date
}

// WeekOf returns the Sunday..Saturday week containing d.
func WeekOf(d Date) Range {
	start := d.AddDays(-int(d.Weekday()))
	return Range{Start: start, End: start.AddDays(6)}
}

// MonthOf returns the first..last day of d's month.
func MonthOf(d Date) Range {
	start := New(d.Year(), d.Month(), 1)
	end := New(d.Year(), d.Month()+1, 1).AddDays(-1)
	return Range{Start: start, End: end}
}

func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days lists every day of the range in ascending order.
func (r Range) Days() []Date {
	if r.End.Before(r.Start) {
		return nil
	}

	days := make([]Date, 0, int(r.End.Time().Sub(r.Start.Time())/(24*time.Hour))+1)
	for d := r.Start; !d.After(r.End); d = d.AddDays(1) {
		days = append(days, d)
	}

	return days
}

func (r Range) String() string {
	return r.Start.String() + " to " + r.End.String()
}
