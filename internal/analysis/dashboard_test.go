package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diascope/domain/health"
)

func TestComputeDashboardUnfiltered(t *testing.T) {
	table := generatedTable(t, 400)

	view := ComputeDashboard(table, health.NewFilterSelection())

	assert.Equal(t, 400, view.TotalRecords)
	assert.Equal(t, 400, view.FilteredRecords)
	assert.NotEmpty(t, view.PrevalenceByAgeGroup.Rows)
	assert.NotEmpty(t, view.PrevalenceByGender.Rows)
	assert.NotEmpty(t, view.PrevalenceBySmoking.Rows)
	assert.NotEmpty(t, view.PrevalenceByComorbidity.Rows)
	assert.NotEmpty(t, view.GenderAgeHeatmap.Rows)
	assert.NotEmpty(t, view.AgeSmokingHeatmap.Rows)
	assert.Equal(t, 400, len(view.HbA1cByOutcome.Negative)+len(view.HbA1cByOutcome.Positive))
	assert.Equal(t, health.NumericFields, view.Correlation.Fields)
}

func TestComputeDashboardEmptyGenderSelection(t *testing.T) {
	table := generatedTable(t, 400)

	selection := health.NewFilterSelection()
	selection.Set(health.FieldGender) // empty set

	view := ComputeDashboard(table, selection)

	assert.Equal(t, 0, view.FilteredRecords)
	assert.Empty(t, view.PrevalenceByAgeGroup.Rows)
	assert.Empty(t, view.PrevalenceByGender.Rows)
	assert.Empty(t, view.PrevalenceByComorbidity.Rows)
	assert.Empty(t, view.GenderAgeHeatmap.Rows)
	assert.Empty(t, view.HbA1cByOutcome.Negative)
	assert.Empty(t, view.HbA1cByOutcome.Positive)

	for i := range view.Correlation.Cells {
		for j := range view.Correlation.Cells[i] {
			assert.True(t, math.IsNaN(view.Correlation.Cells[i][j]))
		}
	}
}

func TestComputeDashboardIsPure(t *testing.T) {
	table := generatedTable(t, 300)

	selection := health.NewFilterSelection()
	selection.Set(health.FieldSmoking, "never", "former")

	first := ComputeDashboard(table, selection)
	second := ComputeDashboard(table, selection)

	require.Equal(t, first, second)

	// A later unfiltered pass still sees the full table; nothing was mutated.
	full := ComputeDashboard(table, health.NewFilterSelection())
	assert.Equal(t, 300, full.FilteredRecords)
}
