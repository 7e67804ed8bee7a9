package dto_test

import (
	"habitrack/shared/constant"
	"habitrack/shared/dto"
	"habitrack/shared/model"
	"habitrack/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	original := timezone.GetLocation()
	defer timezone.SetLocation(original)
	timezone.SetLocation(time.UTC)

	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: model.NewTimestamp(createdAt)})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)

	empty := &dto.Metadata{}
	empty.FromModel(model.Metadata{})
	assert.Empty(t, empty.CreatedAt)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "eq with table",
			filter: dto.Filter{Field: "id", Value: int64(1), Operator: dto.FilterOperatorEq, Table: "habits"},
			where:  "habits.id = :id",
			args:   map[string]any{"id": int64(1)},
		},
		{
			name:   "greater_eq with arg name",
			filter: dto.Filter{ArgName: "start_date", Field: "date", Value: "2024-01-01", Operator: dto.FilterOperatorGreaterEq},
			where:  "date >= :start_date",
			args:   map[string]any{"start_date": "2024-01-01"},
		},
		{
			name:   "less_eq",
			filter: dto.Filter{ArgName: "end_date", Field: "date", Value: "2024-01-31", Operator: dto.FilterOperatorLessEq},
			where:  "date <= :end_date",
			args:   map[string]any{"end_date": "2024-01-31"},
		},
		{
			name:   "not_eq",
			filter: dto.Filter{Field: "status", Value: "done", Operator: dto.FilterOperatorNotEq},
			where:  "status != :status",
			args:   map[string]any{"status": "done"},
		},
		{
			name:   "unknown operator",
			filter: dto.Filter{Field: "status", Value: "done", Operator: "like"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "habit_id", Value: int64(3), Operator: dto.FilterOperatorEq},
		dto.Filter{ArgName: "start_date", Field: "date", Value: "2024-01-01", Operator: dto.FilterOperatorGreaterEq},
	)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(habit_id = :habit_id AND date >= :start_date)", where)
	assert.Equal(t, map[string]any{"habit_id": int64(3), "start_date": "2024-01-01"}, args)

	nested := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "status", Value: "done", Operator: dto.FilterOperatorEq},
			group,
		},
	}

	where, _ = nested.GetWhereClause()
	assert.Equal(t, "(status = :status OR (habit_id = :habit_id AND date >= :start_date))", where)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_GetOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{
			name:     "no sorts",
			params:   dto.QueryParams{},
			expected: "",
		},
		{
			name:     "single descending",
			params:   dto.OrderBy(dto.Sort{Field: "date", Dir: dto.SortDirDesc}),
			expected: "ORDER BY date DESC",
		},
		{
			name: "multiple with lowercase and default direction",
			params: dto.OrderBy(
				dto.Sort{Field: "created_at", Dir: "desc"},
				dto.Sort{Field: "id"},
			),
			expected: "ORDER BY created_at DESC, id ASC",
		},
		{
			name:     "blank field skipped",
			params:   dto.OrderBy(dto.Sort{Dir: dto.SortDirDesc}),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.GetOrderClause())
		})
	}
}
