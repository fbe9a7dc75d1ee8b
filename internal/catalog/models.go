package catalog

import (
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

// Category selects the scoring algorithm for a test. It is declared in the
// test's data file and resolved once at load time, so the engine dispatches
// on data rather than on a hard-coded identifier list.
type Category string

const (
	CategoryStandard    Category = "standard"
	CategoryCategorical Category = "categorical"
	CategoryDimensional Category = "dimensional"
)

// Question is one item of a questionnaire. IDs are stable and 1-based.
// Trait is set only for categorical tests (e.g. "I/E").
type Question struct {
	ID    int       `json:"id"`
	Text  i18n.Text `json:"text"`
	Trait string    `json:"trait,omitempty"`
}

// Option is one selectable answer. The option set defines the valid
// answer-value domain and, via min/max, the reverse-scoring transform.
type Option struct {
	Value float64   `json:"value"`
	Label i18n.Text `json:"label"`
}

// InterpretationRange maps a score interval to a localized severity label.
// Level is the coarse bucket (low|moderate|high) used to pick generic
// recommendations; when absent the engine falls back to keyword-matching
// the English label.
type InterpretationRange struct {
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Level    string    `json:"level,omitempty"`
	Severity i18n.Text `json:"severity"`
}

// ScoringRules holds a test's (or a single dimension's) scoring table.
type ScoringRules struct {
	ReverseScoredQuestions []int                 `json:"reverseScoredQuestions,omitempty"`
	Interpretation         []InterpretationRange `json:"interpretation,omitempty"`
}

// Dimension groups the question IDs contributing to one sub-scale of a
// dimensional test, with that sub-scale's own interpretation table.
type Dimension struct {
	Questions []int        `json:"questions"`
	Scoring   ScoringRules `json:"scoring"`
}

// Definition is the immutable, fully parsed description of one test.
// Exactly one Definition exists per test id for the process lifetime;
// aliased tests (16per/mbti) load from separate files and never share an
// instance.
type Definition struct {
	ID          string               `json:"-"`
	TestType    string               `json:"testType"`
	Category    Category             `json:"category,omitempty"`
	Title       i18n.Text            `json:"title"`
	Description i18n.Text            `json:"description,omitempty"`
	Questions   []Question           `json:"questions"`
	Options     []Option             `json:"options"`
	Scoring     ScoringRules         `json:"scoring"`
	Dimensions  map[string]Dimension `json:"dimensions,omitempty"`
}

// TotalQuestions returns the number of questions in the definition.
func (d *Definition) TotalQuestions() int { return len(d.Questions) }

// MaxOptionValue returns the highest selectable answer value.
func (d *Definition) MaxOptionValue() float64 {
	if len(d.Options) == 0 {
		return 0
	}
	max := d.Options[0].Value
	for _, o := range d.Options[1:] {
		if o.Value > max {
			max = o.Value
		}
	}
	return max
}

// MinOptionValue returns the lowest selectable answer value.
func (d *Definition) MinOptionValue() float64 {
	if len(d.Options) == 0 {
		return 0
	}
	min := d.Options[0].Value
	for _, o := range d.Options[1:] {
		if o.Value < min {
			min = o.Value
		}
	}
	return min
}

// ReverseScore transforms v via max+min-v over the option-value domain.
// Applying it twice returns the original value.
func (d *Definition) ReverseScore(v float64) float64 {
	return d.MaxOptionValue() + d.MinOptionValue() - v
}

// IsReverseScored reports whether question id is in the reverse-scored set.
func (d *Definition) IsReverseScored(id int) bool {
	for _, q := range d.Scoring.ReverseScoredQuestions {
		if q == id {
			return true
		}
	}
	return false
}

// MaxPossibleScore is totalQuestions times the highest option value.
func (d *Definition) MaxPossibleScore() float64 {
	return float64(d.TotalQuestions()) * d.MaxOptionValue()
}

// HasReversedItems reports whether any question is reverse-scored.
func (d *Definition) HasReversedItems() bool {
	return len(d.Scoring.ReverseScoredQuestions) > 0
}
