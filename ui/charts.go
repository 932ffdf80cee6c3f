package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
)

// ChartPanel describes one chart slot on the page: which tab it sits in,
// which payload key in the dashboard JSON feeds it, what shape the renderer
// should draw, and the interpretation block shown under it.
type ChartPanel struct {
	ID             string
	Title          string
	Kind           string // bar | pie | box | violin | heatmap | matrix
	DataKey        string
	Interpretation template.HTML
}

// Tab groups chart panels under a named tab header.
type Tab struct {
	Name   string
	Panels []ChartPanel
}

// dashboardTabs returns the fixed five-tab, ten-panel layout. Interpretation
// text is authored as markdown and rendered once per page load.
func dashboardTabs() []Tab {
	return []Tab{
		{
			Name: "Demographics",
			Panels: []ChartPanel{
				{
					ID:             "chart-age-group",
					Title:          "Diabetes Prevalence by Age Group",
					Kind:           "bar",
					DataKey:        "prevalence_by_age_group",
					Interpretation: renderMarkdown(interpretationAgeGroup),
				},
				{
					ID:             "chart-gender",
					Title:          "Diabetes Rates by Gender",
					Kind:           "pie",
					DataKey:        "prevalence_by_gender",
					Interpretation: renderMarkdown(interpretationGender),
				},
			},
		},
		{
			Name: "Smoking & HbA1c",
			Panels: []ChartPanel{
				{
					ID:             "chart-smoking",
					Title:          "Diabetes Rate by Smoking History",
					Kind:           "bar",
					DataKey:        "prevalence_by_smoking",
					Interpretation: renderMarkdown(interpretationSmoking),
				},
				{
					ID:             "chart-hba1c",
					Title:          "HbA1c Levels by Diabetes Status",
					Kind:           "box",
					DataKey:        "hba1c_by_outcome",
					Interpretation: renderMarkdown(interpretationHbA1c),
				},
			},
		},
		{
			Name: "Comorbidities",
			Panels: []ChartPanel{
				{
					ID:             "chart-comorbidity",
					Title:          "Diabetes Rate by Comorbidity Type",
					Kind:           "bar",
					DataKey:        "prevalence_by_comorbidity",
					Interpretation: renderMarkdown(interpretationComorbidity),
				},
			},
		},
		{
			Name: "Glucose & BMI",
			Panels: []ChartPanel{
				{
					ID:             "chart-bmi",
					Title:          "BMI Distribution by Diabetes Status",
					Kind:           "violin",
					DataKey:        "bmi_by_outcome",
					Interpretation: renderMarkdown(interpretationBMI),
				},
				{
					ID:             "chart-glucose",
					Title:          "Blood Glucose Level by Diabetes Status",
					Kind:           "box",
					DataKey:        "glucose_by_outcome",
					Interpretation: renderMarkdown(interpretationGlucose),
				},
			},
		},
		{
			Name: "Heatmaps & Correlation",
			Panels: []ChartPanel{
				{
					ID:             "chart-gender-age",
					Title:          "Diabetes Rate by Gender and Age Group",
					Kind:           "heatmap",
					DataKey:        "gender_age_heatmap",
					Interpretation: renderMarkdown(interpretationGenderAge),
				},
				{
					ID:             "chart-correlation",
					Title:          "Correlation Between Clinical Indicators",
					Kind:           "matrix",
					DataKey:        "correlation",
					Interpretation: renderMarkdown(interpretationCorrelation),
				},
				{
					ID:             "chart-age-smoking",
					Title:          "Diabetes Rate by Age Group and Smoking History",
					Kind:           "heatmap",
					DataKey:        "age_smoking_heatmap",
					Interpretation: renderMarkdown(interpretationAgeSmoking),
				},
			},
		},
	}
}

func renderMarkdown(source string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(source), nil, nil))
}
