package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"diascope/domain/health"
	"diascope/internal/analysis"
)

// emptySelectionMarker is what the page sends when every option of a control
// is deselected. It keeps "no values chosen" distinguishable from "parameter
// omitted", which means unconstrained.
const emptySelectionMarker = "__none__"

// FilterControl backs one multi-select on the page.
type FilterControl struct {
	Field   string
	Label   string
	Options []string
}

var filterLabels = map[string]string{
	health.FieldGender:       "Select Gender",
	health.FieldAgeGroup:     "Select Age Group",
	health.FieldSmoking:      "Select Smoking History",
	health.FieldHeartDisease: "Select Heart Disease",
	health.FieldHypertension: "Select Hypertension",
}

const projectOverview = `This dashboard is built on a synthetic healthcare dataset of anonymized patient records. The dataset includes key demographic variables (age group, gender), lifestyle indicators (smoking history), and clinical features such as Body Mass Index (BMI), HbA1c levels, blood glucose levels, hypertension status, and presence of heart disease.

Leveraging interactive visual analytics, this dashboard explores the prevalence and distribution of diabetes across these variables. The goal is to help healthcare stakeholders identify risk factors, guide preventive strategies, and enable data-informed decisions to improve chronic disease management and population health outcomes.`

type indexPage struct {
	Title       string
	Overview    template.HTML
	Filters     []FilterControl
	Tabs        []Tab
	RecordCount int
	LoadID      string
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	filters := make([]FilterControl, 0, len(health.FilterableFields))
	for _, field := range health.FilterableFields {
		filters = append(filters, FilterControl{
			Field:   field,
			Label:   filterLabels[field],
			Options: a.table.DistinctValues(field),
		})
	}

	a.renderTemplate(w, "dashboard.html", indexPage{
		Title:       "Exploring Diabetes Risk Across Demographics and Clinical Indicators",
		Overview:    renderMarkdown(projectOverview),
		Filters:     filters,
		Tabs:        dashboardTabs(),
		RecordCount: a.table.Len(),
		LoadID:      a.table.LoadID,
	})
}

// handleDashboard recomputes every chart payload for the selection carried in
// the query string and returns them as one JSON document.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	selection := a.parseSelection(r)
	view := analysis.ComputeDashboard(a.table, selection)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("[UI] Failed to encode dashboard view: %v", err)
	}
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"records": a.table.Len(),
		"load_id": a.table.LoadID,
	})
}

// parseSelection turns repeated query parameters into a FilterSelection.
// An omitted field is unconstrained. The empty-selection marker produces an
// empty set for that field. Values not present in the dataset are dropped,
// which keeps every selection a subset of the field's distinct values; a
// field whose provided values were all unknown ends up as an empty set.
func (a *App) parseSelection(r *http.Request) health.FilterSelection {
	query := r.URL.Query()
	selection := health.NewFilterSelection()

	for _, field := range health.FilterableFields {
		raw, present := query[field]
		if !present {
			continue
		}

		known := make(map[string]bool, len(a.table.DistinctValues(field)))
		for _, v := range a.table.DistinctValues(field) {
			known[v] = true
		}

		values := make([]string, 0, len(raw))
		for _, v := range raw {
			if v == emptySelectionMarker {
				continue
			}
			if known[v] {
				values = append(values, v)
			}
		}
		selection.Set(field, values...)
	}

	return selection
}
