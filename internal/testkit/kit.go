// Package testkit generates synthetic patient records so the dashboard and
// its tests can run without the real source file. The generator is seeded and
// deterministic; fixtures stay stable across runs.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"diascope/domain/health"
)

// GeneratorConfig configures the synthetic patient generator
type GeneratorConfig struct {
	RecordCount int   `json:"record_count"`
	Seed        int64 `json:"seed"`
}

// DefaultConfig returns sensible defaults for synthetic patient generation
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		RecordCount: 2000,
		Seed:        42,
	}
}

// PatientGenerator generates synthetic patient records with plausible
// clinical correlations: diabetes risk rises with age, BMI, smoking and
// cardiovascular comorbidities, and diabetic patients draw higher HbA1c and
// glucose values.
type PatientGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewPatientGenerator creates a new patient generator
func NewPatientGenerator(config GeneratorConfig) *PatientGenerator {
	return &PatientGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var genders = []string{"Female", "Male", "Other"}

var smokingHistories = []string{"never", "former", "current", "not current", "ever", "No Info"}

// Generate produces the configured number of records.
func (g *PatientGenerator) Generate() []health.Record {
	records := make([]health.Record, 0, g.config.RecordCount)
	for i := 0; i < g.config.RecordCount; i++ {
		records = append(records, g.generateRecord())
	}
	return records
}

func (g *PatientGenerator) generateRecord() health.Record {
	age := 1 + g.rng.Float64()*89

	gender := genders[0]
	roll := g.rng.Float64()
	switch {
	case roll < 0.50:
		gender = genders[0]
	case roll < 0.98:
		gender = genders[1]
	default:
		gender = genders[2]
	}

	smoking := smokingHistories[g.rng.Intn(len(smokingHistories))]

	hypertension := 0
	if g.rng.Float64() < 0.02+age/400 {
		hypertension = 1
	}
	heartDisease := 0
	if g.rng.Float64() < 0.01+age/500 {
		heartDisease = 1
	}

	bmi := 18 + g.rng.NormFloat64()*5 + 9
	if bmi < 11 {
		bmi = 11
	}

	risk := 0.02
	risk += age / 300
	risk += (bmi - 25) / 200
	if hypertension == 1 {
		risk += 0.15
	}
	if heartDisease == 1 {
		risk += 0.12
	}
	if smoking == "current" || smoking == "former" {
		risk += 0.05
	}

	diabetes := 0
	if g.rng.Float64() < risk {
		diabetes = 1
	}

	hba1c := 5.0 + g.rng.NormFloat64()*0.5
	glucose := 100 + g.rng.NormFloat64()*20
	if diabetes == 1 {
		hba1c += 1.8 + g.rng.Float64()
		glucose += 60 + g.rng.Float64()*80
	}
	if hba1c < 3.5 {
		hba1c = 3.5
	}
	if glucose < 60 {
		glucose = 60
	}

	return health.Record{
		Gender:       gender,
		Age:          round1(age),
		AgeGroup:     AgeGroupOf(age),
		Smoking:      smoking,
		Hypertension: hypertension,
		HeartDisease: heartDisease,
		BMI:          round2(bmi),
		HbA1c:        round1(hba1c),
		Glucose:      round1(glucose),
		Diabetes:     diabetes,
	}
}

// AgeGroupOf buckets an age the way the cleaned source file does. The
// dashboard itself never re-derives buckets; this exists only so generated
// fixtures carry a consistent age_group column.
func AgeGroupOf(age float64) string {
	switch {
	case age < 18:
		return "<18"
	case age < 35:
		return "18-35"
	case age < 50:
		return "35-50"
	case age < 65:
		return "50-65"
	default:
		return "65+"
	}
}

// WriteCSV writes records to path with the exact column set the loader
// requires.
func WriteCSV(path string, records []health.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
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
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Gender,
			formatFloat(r.Age),
			r.AgeGroup,
			r.Smoking,
			strconv.Itoa(r.Hypertension),
			strconv.Itoa(r.HeartDisease),
			formatFloat(r.BMI),
			formatFloat(r.HbA1c),
			formatFloat(r.Glucose),
			strconv.Itoa(r.Diabetes),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
