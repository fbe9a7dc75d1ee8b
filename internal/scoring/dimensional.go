package scoring

import (
	"strconv"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
)

// Fixed joint thresholds for the composite burnout risk. High requires all
// three dimensions to cross their high-risk threshold at once; moderate
// requires exhaustion or cynicism alone to cross a lower bar.
const (
	exhaustionHigh     = 10
	exhaustionModerate = 6
	cynicismHigh       = 6
	cynicismModerate   = 4
	efficacyLow        = 6
)

// Dimension names the burnout thresholds are keyed on.
const (
	dimExhaustion = "emotionalExhaustion"
	dimCynicism   = "cynicism"
	dimEfficacy   = "academicEfficacy"
)

// scoreDimensional sums each dimension's listed answers independently and
// interprets each sum against that dimension's own range table. Unanswered
// ids contribute zero; answers outside every dimension never affect a
// dimension's score.
func scoreDimensional(def *catalog.Definition, answers Answers, lang string) *DimensionalResult {
	scores := make(map[string]float64, len(def.Dimensions))
	interpretations := make(map[string]Interpretation, len(def.Dimensions))

	for name, dim := range def.Dimensions {
		var sum float64
		for _, id := range dim.Questions {
			if v, ok := answers[strconv.Itoa(id)]; ok {
				sum += v
			}
		}
		scores[name] = sum
		interpretations[name] = Interpret(dim.Scoring.Interpretation, sum, lang)
	}

	return &DimensionalResult{
		DimensionScores: scores,
		Interpretations: interpretations,
		OverallRisk:     burnoutRisk(scores, lang),
		Recommendations: burnoutRecommendations(scores, lang),
	}
}

var riskLabels = map[string]map[string]string{
	"en": {"low": "Low risk", "moderate": "Moderate risk", "high": "High risk"},
	"ks": {"low": "کم خطرہ", "moderate": "درمیانہ خطرہ", "high": "زیادہ خطرہ"},
}

func burnoutRisk(scores map[string]float64, lang string) RiskLevel {
	ee := scores[dimExhaustion]
	cy := scores[dimCynicism]
	ae := scores[dimEfficacy]

	level := "low"
	switch {
	case ee >= exhaustionHigh && cy >= cynicismHigh && ae <= efficacyLow:
		level = "high"
	case ee >= exhaustionModerate || cy >= cynicismModerate:
		level = "moderate"
	}

	label := riskLabels[lang][level]
	if label == "" {
		label = riskLabels["en"][level]
	}
	return RiskLevel{Level: level, Label: label}
}

// burnoutRecommendations emits one localized suggestion per dimension whose
// value crosses its trigger threshold.
func burnoutRecommendations(scores map[string]float64, lang string) []string {
	ks := lang == "ks"
	var recs []string
	if scores[dimExhaustion] > exhaustionHigh {
		if ks {
			recs = append(recs, "جذباتی تھکاوٹ کم کرنے کے لیے آرام کی تکنیک آزمائیں")
		} else {
			recs = append(recs, "Practice relaxation techniques to reduce emotional exhaustion")
		}
	}
	if scores[dimCynicism] > cynicismHigh {
		if ks {
			recs = append(recs, "مثبت سوچ اور حوصلہ افزائی پر توجہ دیں")
		} else {
			recs = append(recs, "Focus on positive thinking and motivation")
		}
	}
	if scores[dimEfficacy] < efficacyLow {
		if ks {
			recs = append(recs, "تعلیمی اہداف مقرر کریں اور کامیابیاں منائیں")
		} else {
			recs = append(recs, "Set achievable academic goals and celebrate successes")
		}
	}
	return recs
}
