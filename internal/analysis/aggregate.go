package analysis

import (
	"encoding/json"
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"diascope/domain/health"
	"diascope/internal/dataset"
)

// AggregateRow is one group of a group-by-mean: the group key, the mean of
// the diabetes flag within the group (its prevalence), and the member count.
type AggregateRow struct {
	Key        string  `json:"key"`
	Prevalence float64 `json:"prevalence"`
	Count      int     `json:"count"`
}

// AggregateTable is the output of MeanByField: one row per group that has at
// least one member. Groups with zero members after filtering are absent.
type AggregateTable struct {
	Field string         `json:"field"`
	Rows  []AggregateRow `json:"rows"`
}

// CrossTabRow is one cell of a two-field cross tabulation.
type CrossTabRow struct {
	KeyA       string  `json:"key_a"`
	KeyB       string  `json:"key_b"`
	Prevalence float64 `json:"prevalence"`
	Count      int     `json:"count"`
}

// CrossTab is the output of MeanByFieldPair.
type CrossTab struct {
	FieldA string        `json:"field_a"`
	FieldB string        `json:"field_b"`
	Rows   []CrossTabRow `json:"rows"`
}

// CorrelationMatrix is a symmetric Pearson matrix over numeric fields. Cells
// are NaN when undefined (empty row set or a constant column); the renderer
// shows those as blanks.
type CorrelationMatrix struct {
	Fields []string
	Cells  [][]float64
}

// MarshalJSON emits NaN cells as null; encoding/json rejects NaN and the
// undefined cells of an empty-selection matrix must still reach the renderer.
func (m CorrelationMatrix) MarshalJSON() ([]byte, error) {
	cells := make([][]*float64, len(m.Cells))
	for i, row := range m.Cells {
		cells[i] = make([]*float64, len(row))
		for j := range row {
			if !math.IsNaN(row[j]) {
				v := row[j]
				cells[i][j] = &v
			}
		}
	}
	return json.Marshal(struct {
		Fields []string     `json:"fields"`
		Cells  [][]*float64 `json:"cells"`
	}{Fields: m.Fields, Cells: cells})
}

// DistributionSummary carries the five-number summary plus mean for one side
// of a distribution panel. Count zero means the side is empty and every other
// value is meaningless.
type DistributionSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// Distribution holds a numeric field's raw values partitioned by the outcome
// flag, for the box and violin panels. The plots compute their own quartiles
// client-side; the summaries feed the table next to each plot.
type Distribution struct {
	Field           string              `json:"field"`
	Negative        []float64           `json:"negative"`
	Positive        []float64           `json:"positive"`
	NegativeSummary DistributionSummary `json:"negative_summary"`
	PositiveSummary DistributionSummary `json:"positive_summary"`
}

// categoricalValue resolves a grouping field for row i, routing the virtual
// comorbidity field through the classifier. Comorbidity is derived per call,
// never cached across render passes.
func categoricalValue(table *dataset.Table, i int, field string) string {
	if field == health.FieldComorbidity {
		r := table.Records[i]
		return ComorbidityLabel(r.Hypertension, r.HeartDisease)
	}
	return table.CategoricalValue(i, field)
}

// MeanByField groups the given rows by a categorical field and returns the
// diabetes prevalence per group, in first-appearance order.
func MeanByField(table *dataset.Table, rows []int, field string) AggregateTable {
	sums := make(map[string]int)
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, i := range rows {
		key := categoricalValue(table, i, field)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		sums[key] += table.Records[i].Diabetes
	}

	out := AggregateTable{Field: field, Rows: make([]AggregateRow, 0, len(order))}
	for _, key := range order {
		out.Rows = append(out.Rows, AggregateRow{
			Key:        key,
			Prevalence: float64(sums[key]) / float64(counts[key]),
			Count:      counts[key],
		})
	}
	return out
}

// MeanByFieldPair groups rows by the combination of two categorical fields
// and returns prevalence per combination. Combinations with no members are
// absent, mirroring MeanByField.
func MeanByFieldPair(table *dataset.Table, rows []int, fieldA, fieldB string) CrossTab {
	type pair struct{ a, b string }

	sums := make(map[pair]int)
	counts := make(map[pair]int)
	order := make([]pair, 0)

	for _, i := range rows {
		key := pair{
			a: categoricalValue(table, i, fieldA),
			b: categoricalValue(table, i, fieldB),
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
		sums[key] += table.Records[i].Diabetes
	}

	out := CrossTab{FieldA: fieldA, FieldB: fieldB, Rows: make([]CrossTabRow, 0, len(order))}
	for _, key := range order {
		out.Rows = append(out.Rows, CrossTabRow{
			KeyA:       key.a,
			KeyB:       key.b,
			Prevalence: float64(sums[key]) / float64(counts[key]),
			Count:      counts[key],
		})
	}
	return out
}

// ComputeCorrelationMatrix returns the pairwise Pearson correlation across
// the listed numeric fields. The matrix is symmetric with 1.0 on the diagonal
// for any non-empty input. An empty row set yields an all-NaN matrix so the
// heatmap still renders, just blank.
func ComputeCorrelationMatrix(table *dataset.Table, rows []int, fields []string) CorrelationMatrix {
	out := CorrelationMatrix{
		Fields: fields,
		Cells:  make([][]float64, len(fields)),
	}
	for i := range out.Cells {
		out.Cells[i] = make([]float64, len(fields))
	}

	if len(rows) == 0 {
		for i := range out.Cells {
			for j := range out.Cells[i] {
				out.Cells[i][j] = math.NaN()
			}
		}
		return out
	}

	columns := make([][]float64, len(fields))
	for fi, field := range fields {
		col := make([]float64, len(rows))
		for ri, rowIdx := range rows {
			col[ri] = table.NumericValue(rowIdx, field)
		}
		columns[fi] = col
	}

	for i := range fields {
		out.Cells[i][i] = 1.0
		for j := i + 1; j < len(fields); j++ {
			r := stat.Correlation(columns[i], columns[j], nil)
			out.Cells[i][j] = r
			out.Cells[j][i] = r
		}
	}
	return out
}

// DistributionByOutcome splits a numeric field's raw values by the diabetes
// flag and summarizes each side.
func DistributionByOutcome(table *dataset.Table, rows []int, field string) Distribution {
	out := Distribution{
		Field:    field,
		Negative: make([]float64, 0, len(rows)),
		Positive: make([]float64, 0),
	}

	for _, i := range rows {
		v := table.NumericValue(i, field)
		if table.Records[i].Diabetes == 1 {
			out.Positive = append(out.Positive, v)
		} else {
			out.Negative = append(out.Negative, v)
		}
	}

	out.NegativeSummary = SummarizeDistribution(out.Negative)
	out.PositiveSummary = SummarizeDistribution(out.Positive)
	return out
}

// SummarizeDistribution computes the five-number summary plus mean. An empty
// input returns a zero summary rather than an error; the panel shows a dash.
func SummarizeDistribution(values []float64) DistributionSummary {
	if len(values) == 0 {
		return DistributionSummary{}
	}

	data := mstats.Float64Data(values)
	min, _ := mstats.Min(data)
	max, _ := mstats.Max(data)
	mean, _ := mstats.Mean(data)
	median, _ := mstats.Median(data)
	q1, _ := mstats.Percentile(data, 25)
	q3, _ := mstats.Percentile(data, 75)

	return DistributionSummary{
		Count:  len(values),
		Min:    min,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    max,
		Mean:   mean,
	}
}
