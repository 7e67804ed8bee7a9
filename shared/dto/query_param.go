package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type Sort struct {
	Field string `validate:"required"`
	Dir   string `validate:"omitempty,oneof=ASC DESC"`
}

// QueryParams carries the ordering of a list query. Listing is never
// paginated, every row of the filtered set is returned.
type QueryParams struct {
	Sorts []Sort
}

func OrderBy(sorts ...Sort) QueryParams {
	return QueryParams{Sorts: sorts}
}

// GetOrderClause renders "ORDER BY ..." or an empty string. Unknown
// directions fall back to ascending.
func (q QueryParams) GetOrderClause() string {
	if len(q.Sorts) == 0 {
		return ""
	}

	parts := make([]string, 0, len(q.Sorts))
	for _, sort := range q.Sorts {
		if sort.Field == "" {
			continue
		}

		dir := strings.ToUpper(sort.Dir)
		if dir != SortDirDesc {
			dir = SortDirAsc
		}

		parts = append(parts, fmt.Sprintf("%s %s", sort.Field, dir))
	}

	if len(parts) == 0 {
		return ""
	}

	return "ORDER BY " + strings.Join(parts, ", ")
}
