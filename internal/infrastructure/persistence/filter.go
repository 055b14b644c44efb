package persistence

import (
	"strings"

	"github.com/estoque/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies page/page size offsets to the query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyOrdering applies the filter's ordering, restricted to a whitelist of
// sortable columns so user input never reaches the ORDER BY clause raw.
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed map[string]bool, fallback string) *gorm.DB {
	column := filter.OrderBy
	if column == "" || !allowed[column] {
		column = fallback
	}
	direction := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		direction = "DESC"
	}
	return query.Order(column + " " + direction)
}
