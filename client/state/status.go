package state

import (
	"fmt"

	"habitrack/shared/constant"
	"habitrack/shared/date"
)

// Status is the client view of a check-in. StatusUnset means no row exists.
type Status string

const (
	StatusUnset  Status = ""
	StatusDone   Status = constant.CheckinStatusDone
	StatusMissed Status = constant.CheckinStatusMissed
)

// Next follows the click cycle unset -> done -> missed -> unset.
func (s Status) Next() Status {
	switch s {
	case StatusUnset:
		return StatusDone
	case StatusDone:
		return StatusMissed
	default:
		return StatusUnset
	}
}

func (s Status) Label() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusMissed:
		return "Missed"
	default:
		return "Not tracked"
	}
}

func (s Status) Symbol() string {
	switch s {
	case StatusDone:
		return "✓"
	case StatusMissed:
		return "✗"
	default:
		return "○"
	}
}

// Key identifies a check-in in the local cache as "<habitId>-<date>".
type Key string

func NewKey(habitID int64, day date.Date) Key {
	return Key(fmt.Sprintf("%d-%s", habitID, day))
}
