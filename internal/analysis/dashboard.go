package analysis

import (
	"diascope/domain/health"
	"diascope/internal/dataset"
)

// DashboardView is the full set of derived tables behind the ten chart
// panels. It is recomputed from scratch on every interaction; nothing in it
// survives a filter change.
type DashboardView struct {
	TotalRecords    int `json:"total_records"`
	FilteredRecords int `json:"filtered_records"`

	PrevalenceByAgeGroup    AggregateTable `json:"prevalence_by_age_group"`
	PrevalenceByGender      AggregateTable `json:"prevalence_by_gender"`
	PrevalenceBySmoking     AggregateTable `json:"prevalence_by_smoking"`
	PrevalenceByComorbidity AggregateTable `json:"prevalence_by_comorbidity"`

	HbA1cByOutcome   Distribution `json:"hba1c_by_outcome"`
	BMIByOutcome     Distribution `json:"bmi_by_outcome"`
	GlucoseByOutcome Distribution `json:"glucose_by_outcome"`

	GenderAgeHeatmap  CrossTab `json:"gender_age_heatmap"`
	AgeSmokingHeatmap CrossTab `json:"age_smoking_heatmap"`

	Correlation CorrelationMatrix `json:"correlation"`
}

// ComputeDashboard is the single recompute entry point: filter once, then
// derive every chart independently from the same filtered index set. Pure
// function of its inputs; the table is never mutated and no result is cached.
func ComputeDashboard(table *dataset.Table, selection health.FilterSelection) *DashboardView {
	rows := FilterRows(table, selection)

	return &DashboardView{
		TotalRecords:    table.Len(),
		FilteredRecords: len(rows),

		PrevalenceByAgeGroup:    MeanByField(table, rows, health.FieldAgeGroup),
		PrevalenceByGender:      MeanByField(table, rows, health.FieldGender),
		PrevalenceBySmoking:     MeanByField(table, rows, health.FieldSmoking),
		PrevalenceByComorbidity: MeanByField(table, rows, health.FieldComorbidity),

		HbA1cByOutcome:   DistributionByOutcome(table, rows, health.FieldHbA1c),
		BMIByOutcome:     DistributionByOutcome(table, rows, health.FieldBMI),
		GlucoseByOutcome: DistributionByOutcome(table, rows, health.FieldGlucose),

		GenderAgeHeatmap:  MeanByFieldPair(table, rows, health.FieldGender, health.FieldAgeGroup),
		AgeSmokingHeatmap: MeanByFieldPair(table, rows, health.FieldAgeGroup, health.FieldSmoking),

		Correlation: ComputeCorrelationMatrix(table, rows, health.NumericFields),
	}
}
