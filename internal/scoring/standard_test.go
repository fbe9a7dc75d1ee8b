package scoring

import (
	"testing"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

func TestReverseScoreInvolutive(t *testing.T) {
	def := &catalog.Definition{
		Options: []catalog.Option{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}},
	}
	for v := 1.0; v <= 4; v++ {
		if got := def.ReverseScore(def.ReverseScore(v)); got != v {
			t.Errorf("double reverse of %v = %v", v, got)
		}
	}
	// On a 1-4 scale the transform is 5-v.
	if got := def.ReverseScore(1); got != 4 {
		t.Errorf("ReverseScore(1) = %v, want 4", got)
	}
}

func TestScoreStandard_ReverseItemsShiftTotal(t *testing.T) {
	def := &catalog.Definition{
		ID: "rev",
		Questions: []catalog.Question{
			{ID: 1}, {ID: 2}, {ID: 3},
		},
		Options: []catalog.Option{{Value: 0}, {Value: 1}, {Value: 2}, {Value: 3}},
		Scoring: catalog.ScoringRules{
			ReverseScoredQuestions: []int{2},
			Interpretation: []catalog.InterpretationRange{
				{Min: 0, Max: 9, Level: "low", Severity: i18n.Text{"en": "fine"}},
			},
		},
	}
	answers := Answers{"1": 0, "2": 0, "3": 0}
	res := scoreStandard(def, answers, "en")
	// Only the reversed item contributes: 3+0-0 = 3.
	if res.RawScore != 3 {
		t.Errorf("rawScore = %v, want 3", res.RawScore)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		score, max float64
		want       int
	}{
		{0, 27, 0},
		{27, 27, 100},
		{7, 9, 78},
		{13, 27, 48},
		{5, 0, 0},
	}
	for _, tc := range tests {
		if got := percentile(tc.score, tc.max); got != tc.want {
			t.Errorf("percentile(%v, %v) = %d, want %d", tc.score, tc.max, got, tc.want)
		}
	}
}
