package dataset

import (
	"github.com/google/uuid"

	"diascope/domain/health"
)

// NewTable builds a Table directly from records, bypassing file parsing.
// Used by the data generator pipeline and by tests; Load goes through the
// same indexing path.
func NewTable(records []health.Record) *Table {
	table := &Table{
		LoadID:   uuid.NewString(),
		Source:   "memory",
		Records:  records,
		distinct: make(map[string][]string, len(health.FilterableFields)),
	}

	seen := make(map[string]map[string]bool, len(health.FilterableFields))
	for _, field := range health.FilterableFields {
		seen[field] = make(map[string]bool)
	}

	for i := range records {
		for _, field := range health.FilterableFields {
			val := table.CategoricalValue(i, field)
			if !seen[field][val] {
				seen[field][val] = true
				table.distinct[field] = append(table.distinct[field], val)
			}
		}
	}

	return table
}
