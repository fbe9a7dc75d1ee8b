package scoring

import (
	"strings"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

// Interpret scans the ordered range list and returns the first range
// containing score. Out-of-range scores and missing tables degrade to a
// sentinel result rather than an error, so a submission always produces a
// returnable result.
func Interpret(ranges []catalog.InterpretationRange, score float64, lang string) Interpretation {
	if len(ranges) == 0 {
		return Interpretation{Severity: i18n.Text{lang: "No interpretation available"}}
	}
	for i := range ranges {
		r := ranges[i]
		if score >= r.Min && score <= r.Max {
			return Interpretation{Severity: r.Severity, Level: severityLevel(r), Range: &r}
		}
	}
	return Interpretation{Severity: i18n.Text{lang: "Score out of range"}}
}

// severityLevel buckets a range into low/moderate/high. The structured
// Level field wins; ranges without one fall back to keyword-matching the
// English label, which only works for English keywords.
func severityLevel(r catalog.InterpretationRange) string {
	switch r.Level {
	case "low", "moderate", "high":
		return r.Level
	}
	label := strings.ToLower(i18n.Resolve(r.Severity, i18n.DefaultLang))
	switch {
	case strings.Contains(label, "low") || strings.Contains(label, "minimal") || strings.Contains(label, "good"):
		return "low"
	case strings.Contains(label, "high") || strings.Contains(label, "severe"):
		return "high"
	default:
		return "moderate"
	}
}

// Generic recommendations bucketed by coarse severity level.
var basicRecommendations = map[string]map[string][]string{
	"en": {
		"low":      {"Continue maintaining good mental health habits", "Regular exercise and healthy sleep"},
		"moderate": {"Consider stress management techniques", "Seek support from friends or family"},
		"high":     {"Consider professional counseling", "Practice mindfulness and relaxation techniques"},
	},
	"ks": {
		"low":      {"اچھی ذہنی صحت کی عادات برقرار رکھیں", "باقاعدہ ورزش اور صحت مند نیند"},
		"moderate": {"دباؤ کو کنٹرول کرنے کی تکنیک آزمائیں", "دوستوں یا خاندان سے مدد لیں"},
		"high":     {"پیشہ ورانہ مشورہ لینے پر غور کریں", "ذہن سازی اور آرام کی تکنیک آزمائیں"},
	},
}

// recommendationsFor returns the generic advice list for an interpretation's
// severity level, falling back to English for unpopulated languages.
func recommendationsFor(in Interpretation, lang string) []string {
	level := in.Level
	if level == "" {
		level = "moderate"
	}
	if byLevel, ok := basicRecommendations[lang]; ok {
		if recs, ok := byLevel[level]; ok {
			return recs
		}
	}
	if recs, ok := basicRecommendations[i18n.DefaultLang][level]; ok {
		return recs
	}
	return []string{}
}
