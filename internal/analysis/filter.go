// Package analysis implements the filtering-and-aggregation pipeline behind
// the dashboard: row filtering by categorical selections, the comorbidity
// classifier, the per-chart aggregations, and the single recompute function
// that turns a table plus a selection into every chart payload.
package analysis

import (
	"diascope/domain/health"
	"diascope/internal/dataset"
)

// FilterRows returns the indices of records matching the selection. Fields
// are AND-combined; values within a field's set are OR-combined. Fields
// absent from the selection are unconstrained.
//
// A field present with an empty set matches no record, so the result is
// empty. That is the documented outcome of deselecting every option, not an
// error.
func FilterRows(table *dataset.Table, selection health.FilterSelection) []int {
	n := table.Len()

	if selection.IsEmpty() {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	for _, set := range selection {
		if len(set) == 0 {
			return []int{}
		}
	}

	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for field, set := range selection {
			if !set[table.CategoricalValue(i, field)] {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}
	return indices
}
