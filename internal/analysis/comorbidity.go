package analysis

import (
	"diascope/domain/health"
)

// comorbidityPredicate pairs an ordered condition with its label. Evaluation
// is first-match-wins, so Both must precede either single-condition case.
type comorbidityPredicate struct {
	matches func(hypertension, heartDisease int) bool
	label   string
}

var comorbidityPredicates = []comorbidityPredicate{
	{func(h, hd int) bool { return h == 1 && hd == 1 }, health.ComorbidityBoth},
	{func(h, hd int) bool { return h == 1 }, health.ComorbidityHypertensionOnly},
	{func(h, hd int) bool { return hd == 1 }, health.ComorbidityHeartDiseaseOnly},
}

// ComorbidityLabel classifies a record's hypertension/heart-disease flags
// into exactly one of the four comorbidity labels.
func ComorbidityLabel(hypertension, heartDisease int) string {
	for _, p := range comorbidityPredicates {
		if p.matches(hypertension, heartDisease) {
			return p.label
		}
	}
	return health.ComorbidityNone
}
