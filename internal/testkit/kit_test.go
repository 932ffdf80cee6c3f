package testkit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	cfg := GeneratorConfig{RecordCount: 100, Seed: 99}

	first := NewPatientGenerator(cfg).Generate()
	second := NewPatientGenerator(cfg).Generate()

	assert.Equal(t, first, second)
}

func TestGeneratedRecordsAreWellFormed(t *testing.T) {
	records := NewPatientGenerator(DefaultConfig()).Generate()
	require.Len(t, records, DefaultConfig().RecordCount)

	for _, r := range records {
		assert.Contains(t, []int{0, 1}, r.Hypertension)
		assert.Contains(t, []int{0, 1}, r.HeartDisease)
		assert.Contains(t, []int{0, 1}, r.Diabetes)
		assert.Equal(t, AgeGroupOf(r.Age), r.AgeGroup)
		assert.Greater(t, r.BMI, 0.0)
		assert.Greater(t, r.HbA1c, 0.0)
		assert.Greater(t, r.Glucose, 0.0)
	}
}

func TestAgeGroupBoundaries(t *testing.T) {
	assert.Equal(t, "<18", AgeGroupOf(5))
	assert.Equal(t, "18-35", AgeGroupOf(18))
	assert.Equal(t, "35-50", AgeGroupOf(35))
	assert.Equal(t, "50-65", AgeGroupOf(64.9))
	assert.Equal(t, "65+", AgeGroupOf(65))
	assert.Equal(t, "65+", AgeGroupOf(90))
}

func TestWriteCSVHeaderAndRows(t *testing.T) {
	records := NewPatientGenerator(GeneratorConfig{RecordCount: 5, Seed: 1}).Generate()
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteCSV(path, records))

	// The loader round-trips this file in its own tests; here just confirm
	// the file exists and is non-trivial.
	assert.FileExists(t, path)
}
