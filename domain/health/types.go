// Package health defines the record model for the diabetes dataset and the
// filter selection that drives every dashboard recompute.
package health

// Field names as they appear in the source file. The loader requires all of
// them to be present; the aggregator addresses columns through these constants.
const (
	FieldGender       = "gender"
	FieldAge          = "age"
	FieldAgeGroup     = "age_group"
	FieldSmoking      = "smoking_history"
	FieldHypertension = "hypertension"
	FieldHeartDisease = "heart_disease"
	FieldBMI          = "bmi"
	FieldHbA1c        = "HbA1c_level"
	FieldGlucose      = "blood_glucose_level"
	FieldDiabetes     = "diabetes"

	// Virtual categorical field derived per render pass, never stored.
	FieldComorbidity = "comorbidity"
)

// FilterableFields lists the categorical fields exposed as multi-select
// controls, in display order.
var FilterableFields = []string{
	FieldGender,
	FieldAgeGroup,
	FieldSmoking,
	FieldHeartDisease,
	FieldHypertension,
}

// NumericFields lists the continuous clinical indicators that feed the
// correlation matrix.
var NumericFields = []string{FieldHbA1c, FieldGlucose, FieldBMI, FieldAge}

// Record is one row of the loaded dataset. hypertension, heart_disease and
// diabetes are boolean-as-integer columns {0,1}; the mean of diabetes within
// a group is that group's prevalence.
type Record struct {
	Gender       string  `json:"gender"`
	Age          float64 `json:"age"`
	AgeGroup     string  `json:"age_group"`
	Smoking      string  `json:"smoking_history"`
	Hypertension int     `json:"hypertension"`
	HeartDisease int     `json:"heart_disease"`
	BMI          float64 `json:"bmi"`
	HbA1c        float64 `json:"HbA1c_level"`
	Glucose      float64 `json:"blood_glucose_level"`
	Diabetes     int     `json:"diabetes"`
}

// Comorbidity labels, ordered by evaluation priority: Both is checked before
// either single-condition case.
const (
	ComorbidityBoth             = "Both"
	ComorbidityHypertensionOnly = "Hypertension Only"
	ComorbidityHeartDiseaseOnly = "Heart Disease Only"
	ComorbidityNone             = "None"
)

// FilterSelection maps a filterable field to the set of values the user left
// selected. A field missing from the map is unconstrained. A field present
// with an empty set matches nothing; that is the documented result of a user
// deselecting every option, not an error.
type FilterSelection map[string]map[string]bool

// NewFilterSelection builds a selection from explicit value lists.
func NewFilterSelection() FilterSelection {
	return make(FilterSelection)
}

// Set replaces a field's selection with the given values.
func (s FilterSelection) Set(field string, values ...string) {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	s[field] = set
}

// Allows reports whether the field/value combination passes this selection.
// Unconstrained fields pass everything.
func (s FilterSelection) Allows(field, value string) bool {
	set, ok := s[field]
	if !ok {
		return true
	}
	return set[value]
}

// IsEmpty reports whether no field is constrained.
func (s FilterSelection) IsEmpty() bool {
	return len(s) == 0
}
