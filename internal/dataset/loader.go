// Package dataset loads the diabetes source file into an immutable in-memory
// table. The load happens exactly once at process start; there is no
// incremental or partial-load path. A failed load is fatal to the caller.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"diascope/domain/health"
	"diascope/internal/errors"
)

// requiredColumns are the columns the source file must carry. Order here only
// controls the error message; lookup is by header name.
var requiredColumns = []string{
	health.FieldGender,
	health.FieldAge,
	health.FieldAgeGroup,
	health.FieldSmoking,
	health.FieldHypertension,
	health.FieldHeartDisease,
	health.FieldBMI,
	health.FieldHbA1c,
	health.FieldGlucose,
	health.FieldDiabetes,
}

// Table is the loaded dataset. It is never mutated after Load returns, which
// makes it safe to share across request goroutines without locking.
type Table struct {
	LoadID  string
	Source  string
	Records []health.Record

	distinct map[string][]string
}

// Load reads the dataset at path into a Table. The extension picks the
// reader: .xlsx goes through excelize, everything else is treated as CSV.
func Load(path string) (*Table, error) {
	var (
		headers []string
		rows    [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		headers, rows, err = readXLSX(path)
	default:
		headers, rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	table, err := buildTable(headers, rows)
	if err != nil {
		return nil, err
	}

	table.Source = path
	log.Printf("[DatasetLoader] Loaded %d records from %s (load %s)", len(table.Records), path, table.LoadID)
	return table, nil
}

// Len returns the number of loaded records.
func (t *Table) Len() int {
	return len(t.Records)
}

// DistinctValues returns the distinct values of a filterable field in
// first-appearance order. The returned slice is shared; callers must not
// mutate it.
func (t *Table) DistinctValues(field string) []string {
	return t.distinct[field]
}

// CategoricalValue returns the string form of a filterable field for row i.
// The boolean-as-integer fields render as "0"/"1", matching their distinct
// value index.
func (t *Table) CategoricalValue(i int, field string) string {
	r := t.Records[i]
	switch field {
	case health.FieldGender:
		return r.Gender
	case health.FieldAgeGroup:
		return r.AgeGroup
	case health.FieldSmoking:
		return r.Smoking
	case health.FieldHypertension:
		return strconv.Itoa(r.Hypertension)
	case health.FieldHeartDisease:
		return strconv.Itoa(r.HeartDisease)
	}
	return ""
}

// NumericValue returns a continuous field for row i.
func (t *Table) NumericValue(i int, field string) float64 {
	r := t.Records[i]
	switch field {
	case health.FieldAge:
		return r.Age
	case health.FieldBMI:
		return r.BMI
	case health.FieldHbA1c:
		return r.HbA1c
	case health.FieldGlucose:
		return r.Glucose
	}
	return 0
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("cannot open dataset %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("cannot parse CSV %s", path), err)
	}
	if len(records) == 0 {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("dataset %s is empty", path), nil)
	}

	return records[0], records[1:], nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("cannot open workbook %s", path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("workbook %s has no sheets", path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("cannot read sheet %s", sheets[0]), err)
	}
	if len(rows) == 0 {
		return nil, nil, errors.DataLoadError(fmt.Sprintf("workbook %s is empty", path), nil)
	}

	return rows[0], rows[1:], nil
}

func buildTable(headers []string, rows [][]string) (*Table, error) {
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[strings.TrimSpace(h)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, errors.DataLoadError(fmt.Sprintf("required column %q is missing", col), nil)
		}
	}

	records := make([]health.Record, 0, len(rows))
	for rowNum, row := range rows {
		record, err := parseRecord(row, colIndex)
		if err != nil {
			// Row numbering is 1-based and counts the header.
			return nil, errors.DataLoadError(fmt.Sprintf("malformed row %d", rowNum+2), err)
		}
		records = append(records, record)
	}

	return NewTable(records), nil
}

func parseRecord(row []string, colIndex map[string]int) (health.Record, error) {
	cell := func(col string) string {
		i := colIndex[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var record health.Record
	var err error

	record.Gender = cell(health.FieldGender)
	record.AgeGroup = cell(health.FieldAgeGroup)
	record.Smoking = cell(health.FieldSmoking)

	if record.Age, err = parseFloat(cell(health.FieldAge), health.FieldAge); err != nil {
		return record, err
	}
	if record.BMI, err = parseFloat(cell(health.FieldBMI), health.FieldBMI); err != nil {
		return record, err
	}
	if record.HbA1c, err = parseFloat(cell(health.FieldHbA1c), health.FieldHbA1c); err != nil {
		return record, err
	}
	if record.Glucose, err = parseFloat(cell(health.FieldGlucose), health.FieldGlucose); err != nil {
		return record, err
	}
	if record.Hypertension, err = parseFlag(cell(health.FieldHypertension), health.FieldHypertension); err != nil {
		return record, err
	}
	if record.HeartDisease, err = parseFlag(cell(health.FieldHeartDisease), health.FieldHeartDisease); err != nil {
		return record, err
	}
	if record.Diabetes, err = parseFlag(cell(health.FieldDiabetes), health.FieldDiabetes); err != nil {
		return record, err
	}

	return record, nil
}

func parseFloat(value, field string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %q is not numeric", field, value)
	}
	return f, nil
}

// parseFlag parses a boolean-as-integer cell. Workbook round-trips sometimes
// render 0/1 as 0.0/1.0, so a float form is accepted as long as it is exactly
// zero or one.
func parseFlag(value, field string) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || (f != 0 && f != 1) {
		return 0, fmt.Errorf("field %s: %q is not a 0/1 flag", field, value)
	}
	return int(f), nil
}
