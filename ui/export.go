package ui

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"diascope/internal/analysis"
)

// handleExport writes the aggregate tables for the current selection to an
// xlsx workbook, one sheet per aggregate. The raw distribution vectors are
// not exported; only the derived tables the charts consume.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	selection := a.parseSelection(r)
	view := analysis.ComputeDashboard(a.table, selection)

	f, err := buildWorkbook(view, a.config.ExportRowLimit)
	if err != nil {
		log.Printf("[UI] Export failed: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("diabetes_dashboard_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(w); err != nil {
		log.Printf("[UI] Failed to stream workbook: %v", err)
	}
}

func buildWorkbook(view *analysis.DashboardView, rowLimit int) (*excelize.File, error) {
	f := excelize.NewFile()

	aggregates := []struct {
		sheet string
		table analysis.AggregateTable
	}{
		{"Age Group", view.PrevalenceByAgeGroup},
		{"Gender", view.PrevalenceByGender},
		{"Smoking History", view.PrevalenceBySmoking},
		{"Comorbidity", view.PrevalenceByComorbidity},
	}
	for _, agg := range aggregates {
		if err := writeAggregateSheet(f, agg.sheet, agg.table, rowLimit); err != nil {
			return nil, err
		}
	}

	if err := writeCrossTabSheet(f, "Gender x Age Group", view.GenderAgeHeatmap, rowLimit); err != nil {
		return nil, err
	}
	if err := writeCrossTabSheet(f, "Age Group x Smoking", view.AgeSmokingHeatmap, rowLimit); err != nil {
		return nil, err
	}
	if err := writeCorrelationSheet(f, "Correlation", view.Correlation); err != nil {
		return nil, err
	}

	// The default sheet is replaced by the first aggregate sheet.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func writeAggregateSheet(f *excelize.File, sheet string, table analysis.AggregateTable, rowLimit int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{table.Field, "diabetes_prevalence", "records"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, row := range table.Rows {
		if i >= rowLimit {
			break
		}
		if err := setRow(f, sheet, i+2, []interface{}{row.Key, row.Prevalence, row.Count}); err != nil {
			return err
		}
	}
	return nil
}

func writeCrossTabSheet(f *excelize.File, sheet string, crosstab analysis.CrossTab, rowLimit int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{crosstab.FieldA, crosstab.FieldB, "diabetes_prevalence", "records"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, row := range crosstab.Rows {
		if i >= rowLimit {
			break
		}
		if err := setRow(f, sheet, i+2, []interface{}{row.KeyA, row.KeyB, row.Prevalence, row.Count}); err != nil {
			return err
		}
	}
	return nil
}

func writeCorrelationSheet(f *excelize.File, sheet string, matrix analysis.CorrelationMatrix) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := make([]interface{}, 0, len(matrix.Fields)+1)
	headers = append(headers, "")
	for _, field := range matrix.Fields {
		headers = append(headers, field)
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, field := range matrix.Fields {
		row := make([]interface{}, 0, len(matrix.Fields)+1)
		row = append(row, field)
		for j := range matrix.Fields {
			cell := matrix.Cells[i][j]
			if math.IsNaN(cell) {
				row = append(row, "")
			} else {
				row = append(row, cell)
			}
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
