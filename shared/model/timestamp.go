package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"habitrack/shared/timezone"
	"time"
)

// storageLayout sorts lexically in chronological order, so ORDER BY on the
// text column in SQLite matches ORDER BY on a real timestamp.
const storageLayout = "2006-01-02 15:04:05.000000-07:00"

var scanLayouts = []string{
	storageLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// Timestamp is an instant persisted in UTC and rendered in the application
// timezone.
type Timestamp struct {
	time.Time
}

func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC()}
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(timezone.ToAppTime(t.Time).Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}

	var parsed time.Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}

	*t = NewTimestamp(parsed)
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}

	return t.UTC().Format(storageLayout), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into model.Timestamp", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range scanLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}

	return fmt.Errorf("unrecognized timestamp %q", s)
}
