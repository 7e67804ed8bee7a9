package shared

import (
	"habitrack/shared/constant"
	"habitrack/shared/dto"
	"habitrack/shared/failure"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID parses a positive integer path parameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(constant.ErrHabitIDRequired) //nolint:wrapcheck
	}

	return id, nil
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}
