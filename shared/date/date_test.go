package date_test

import (
	"encoding/json"
	"habitrack/shared/date"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "2024-01-15", want: "2024-01-15"},
		{name: "surrounding spaces", input: " 2024-02-29 ", want: "2024-02-29"},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "wrong layout", input: "15-01-2024", wantErr: true},
		{name: "datetime", input: "2024-01-15T10:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := date.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	instant := time.Date(2024, 3, 10, 23, 30, 0, 0, jakarta)

	assert.Equal(t, "2024-03-10", date.Of(instant).String())
	assert.Equal(t, "2024-03-10", date.Of(instant.UTC()).String())
}

func TestJSON(t *testing.T) {
	type payload struct {
		Date date.Date `json:"date"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-15"}`), &p))
	assert.Equal(t, date.New(2024, time.January, 15), p.Date)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-15"}`, string(out))

	var empty payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &empty))
	assert.True(t, empty.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"date":20240115}`), &p))
}

func TestScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "text", src: "2024-01-15", want: "2024-01-15"},
		{name: "bytes", src: []byte("2024-01-15"), want: "2024-01-15"},
		{name: "timestamp text", src: "2024-01-15T00:00:00Z", want: "2024-01-15"},
		{name: "time value", src: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), want: "2024-01-15"},
		{name: "nil", src: nil, want: ""},
		{name: "integer", src: int64(20240115), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d date.Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestValue(t *testing.T) {
	v, err := date.New(2024, time.January, 15).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", v)

	v, err = date.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name  string
		day   string
		start string
		end   string
	}{
		{name: "sunday starts its own week", day: "2024-01-07", start: "2024-01-07", end: "2024-01-13"},
		{name: "wednesday", day: "2024-01-10", start: "2024-01-07", end: "2024-01-13"},
		{name: "saturday ends the week", day: "2024-01-13", start: "2024-01-07", end: "2024-01-13"},
		{name: "week spanning years", day: "2024-01-01", start: "2023-12-31", end: "2024-01-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := date.WeekOf(date.MustParse(tt.day))
			assert.Equal(t, tt.start, week.Start.String())
			assert.Equal(t, tt.end, week.End.String())
			assert.Equal(t, time.Sunday, week.Start.Weekday())
			assert.Len(t, week.Days(), 7)
		})
	}
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		day   string
		start string
		end   string
	}{
		{day: "2024-02-10", start: "2024-02-01", end: "2024-02-29"},
		{day: "2023-02-10", start: "2023-02-01", end: "2023-02-28"},
		{day: "2024-12-31", start: "2024-12-01", end: "2024-12-31"},
		{day: "2024-04-01", start: "2024-04-01", end: "2024-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			month := date.MonthOf(date.MustParse(tt.day))
			assert.Equal(t, tt.start, month.Start.String())
			assert.Equal(t, tt.end, month.End.String())
		})
	}
}

func TestRange(t *testing.T) {
	r := date.Range{Start: date.MustParse("2024-01-07"), End: date.MustParse("2024-01-13")}

	assert.True(t, r.Contains(date.MustParse("2024-01-07")))
	assert.True(t, r.Contains(date.MustParse("2024-01-13")))
	assert.False(t, r.Contains(date.MustParse("2024-01-14")))
	assert.False(t, r.Contains(date.MustParse("2024-01-06")))
	assert.Equal(t, "2024-01-07 to 2024-01-13", r.String())

	inverted := date.Range{Start: r.End, End: r.Start}
	assert.Empty(t, inverted.Days())
}
