package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"diascope/domain/health"
)

func TestComorbidityLabelOrderedScenario(t *testing.T) {
	flags := []struct{ hypertension, heartDisease int }{
		{1, 1},
		{1, 0},
		{0, 0},
	}

	labels := make([]string, len(flags))
	for i, f := range flags {
		labels[i] = ComorbidityLabel(f.hypertension, f.heartDisease)
	}

	assert.Equal(t, []string{
		health.ComorbidityBoth,
		health.ComorbidityHypertensionOnly,
		health.ComorbidityNone,
	}, labels)
}

func TestComorbidityLabelTotalAndExclusive(t *testing.T) {
	known := map[string]bool{
		health.ComorbidityBoth:             true,
		health.ComorbidityHypertensionOnly: true,
		health.ComorbidityHeartDiseaseOnly: true,
		health.ComorbidityNone:             true,
	}

	for _, h := range []int{0, 1} {
		for _, hd := range []int{0, 1} {
			label := ComorbidityLabel(h, hd)
			assert.True(t, known[label], "unexpected label %q for (%d,%d)", label, h, hd)
		}
	}
}

func TestComorbidityBothWinsOverSingleConditions(t *testing.T) {
	assert.Equal(t, health.ComorbidityBoth, ComorbidityLabel(1, 1))
	assert.Equal(t, health.ComorbidityHeartDiseaseOnly, ComorbidityLabel(0, 1))
	assert.Equal(t, health.ComorbidityHypertensionOnly, ComorbidityLabel(1, 0))
	assert.Equal(t, health.ComorbidityNone, ComorbidityLabel(0, 0))
}
