package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

// This test family uses a fixed 1-5 agreement scale, so the complement of an
// answer is 6-value rather than being derived from the option set.
const axisScaleComplement = 6

// scoreCategorical tallies four independent pole pairs. Each question's axis
// comes from its trait tag ("I/E" names the two poles); its 1-based id's
// parity decides which pole receives the answer directly and which receives
// the complement. Odd ids favor the first-named pole, even ids the second.
// The type code concatenates the higher-scoring pole per axis, in the order
// axes first appear in the question list; ties go to the second-named pole.
func scoreCategorical(def *catalog.Definition, answers Answers, lang string) *CategoricalResult {
	type pole struct{ first, second string }
	axes := map[string]pole{}
	var order []string
	tallies := map[string]map[string]float64{}

	for _, q := range def.Questions {
		parts := strings.SplitN(q.Trait, "/", 2)
		if len(parts) != 2 {
			continue
		}
		axis := q.Trait
		if _, seen := axes[axis]; !seen {
			axes[axis] = pole{first: parts[0], second: parts[1]}
			order = append(order, axis)
			tallies[axis] = map[string]float64{parts[0]: 0, parts[1]: 0}
		}
		answer := answers[strconv.Itoa(q.ID)]
		p := axes[axis]
		if q.ID%2 == 0 {
			tallies[axis][p.second] += answer
			tallies[axis][p.first] += axisScaleComplement - answer
		} else {
			tallies[axis][p.first] += answer
			tallies[axis][p.second] += axisScaleComplement - answer
		}
	}

	var code strings.Builder
	for _, axis := range order {
		p := axes[axis]
		if tallies[axis][p.first] > tallies[axis][p.second] {
			code.WriteString(p.first)
		} else {
			code.WriteString(p.second)
		}
	}
	personalityType := code.String()

	return &CategoricalResult{
		PersonalityType:  personalityType,
		TraitScores:      tallies,
		TraitPercentages: traitPercentages(tallies),
		Description:      typeDescription(personalityType, lang),
		Recommendations:  typeRecommendations(personalityType, lang),
	}
}

// traitPercentages reports each pole's share of its axis total, rounded.
func traitPercentages(tallies map[string]map[string]float64) map[string]map[string]int {
	out := make(map[string]map[string]int, len(tallies))
	for axis, poles := range tallies {
		var total float64
		for _, s := range poles {
			total += s
		}
		out[axis] = make(map[string]int, len(poles))
		for name, s := range poles {
			if total == 0 {
				out[axis][name] = 0
				continue
			}
			out[axis][name] = int(math.Round(s / total * 100))
		}
	}
	return out
}

var typeDescriptions = map[string]map[string]string{
	"en": {
		"INTJ": "The Architect - Imaginative and strategic thinkers",
		"INTP": "The Thinker - Innovative inventors with an unquenchable thirst for knowledge",
		"INFJ": "The Advocate - Quiet idealists with a deep sense of purpose",
		"ISTJ": "The Logistician - Practical and fact-minded organizers",
		"ENTJ": "The Commander - Bold and strong-willed leaders",
		"ENFP": "The Campaigner - Enthusiastic, creative free spirits",
		"ESFJ": "The Consul - Caring, social, community-minded helpers",
		"ESTP": "The Entrepreneur - Energetic doers who live on the edge",
	},
	"ks": {
		"INTJ": "معمار - تخیلاتی اور حکمت عملی سوچنے والے",
		"INTP": "مفکر - علم کی لاتعداد پیاس کے ساتھ نوآور موجد",
	},
}

func typeDescription(personalityType, lang string) string {
	if byType, ok := typeDescriptions[lang]; ok {
		if d, ok := byType[personalityType]; ok {
			return d
		}
	}
	if d, ok := typeDescriptions[i18n.DefaultLang][personalityType]; ok {
		return d
	}
	return fmt.Sprintf("%s personality type", personalityType)
}

func typeRecommendations(personalityType, lang string) []string {
	recs := map[string][]string{
		"en": {fmt.Sprintf("Recommendations for %s personality type coming soon", personalityType)},
		"ks": {fmt.Sprintf("%s شخصیت کی قسم کے لیے تجاویز جلد آرہی ہیں", personalityType)},
	}
	if r, ok := recs[lang]; ok {
		return r
	}
	return recs[i18n.DefaultLang]
}
