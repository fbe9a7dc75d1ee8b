package scoring

import (
	"math"
	"strconv"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
)

// scoreStandard sums the (possibly reverse-transformed) answer values and
// resolves severity against the test's interpretation table. The percentile
// is a simplified linear transform of raw over max, not a normative one;
// by construction it cannot leave [0,100] for a valid answer set.
func scoreStandard(def *catalog.Definition, answers Answers, lang string) *StandardResult {
	var total float64
	for key, v := range answers {
		n, _ := strconv.Atoi(key)
		if def.IsReverseScored(n) {
			v = def.ReverseScore(v)
		}
		total += v
	}

	maxScore := def.MaxPossibleScore()
	in := Interpret(def.Scoring.Interpretation, total, lang)

	return &StandardResult{
		RawScore:         total,
		MaxPossibleScore: maxScore,
		Percentile:       percentile(total, maxScore),
		Severity:         in.Severity,
		Interpretation:   in,
		Recommendations:  recommendationsFor(in, lang),
	}
}

func percentile(score, maxScore float64) int {
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(score / maxScore * 100))
}
