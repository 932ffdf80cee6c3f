package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diascope/internal/dataset"
	"diascope/internal/testkit"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	gen := testkit.NewPatientGenerator(testkit.GeneratorConfig{RecordCount: 300, Seed: 11})
	table := dataset.NewTable(gen.Generate())

	app, err := NewApp(table, Config{Port: "0", ExportRowLimit: 1000})
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func decodeDashboard(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var view map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestIndexPageRenders(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Exploring Diabetes Risk")
	assert.Contains(t, body, "Select Gender")
	assert.Contains(t, body, "chart-correlation")
	assert.Contains(t, body, "Interpretation")
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, float64(300), payload["records"])
}

func TestDashboardUnfiltered(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeDashboard(t, rec)

	var filtered int
	require.NoError(t, json.Unmarshal(view["filtered_records"], &filtered))
	assert.Equal(t, 300, filtered)
}

func TestDashboardRepeatedParamsAccumulate(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/dashboard?gender=Female&gender=Male")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeDashboard(t, rec)

	var agg struct {
		Rows []struct {
			Key string `json:"key"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(view["prevalence_by_gender"], &agg))
	for _, row := range agg.Rows {
		assert.Contains(t, []string{"Female", "Male"}, row.Key)
	}
}

func TestDashboardEmptyMarkerYieldsEmptyResult(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/dashboard?gender=__none__")

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeDashboard(t, rec)

	var filtered int
	require.NoError(t, json.Unmarshal(view["filtered_records"], &filtered))
	assert.Equal(t, 0, filtered)

	// Correlation over zero rows arrives as nulls, not an error.
	var corr struct {
		Cells [][]*float64 `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(view["correlation"], &corr))
	for _, row := range corr.Cells {
		for _, cell := range row {
			assert.Nil(t, cell)
		}
	}
}

func TestDashboardIgnoresUnknownValues(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/dashboard?gender=Martian")

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeDashboard(t, rec)

	// All provided values were unknown: the field is constrained to an empty
	// set, so nothing matches.
	var filtered int
	require.NoError(t, json.Unmarshal(view["filtered_records"], &filtered))
	assert.Equal(t, 0, filtered)
}

func TestExportProducesWorkbook(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/export?gender=Female")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotZero(t, rec.Body.Len())
}
