package scoring

import (
	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

// Answers maps a question-ID string to the submitted numeric response.
type Answers map[string]float64

// Meta is the common metadata attached to every result after scoring.
type Meta struct {
	TestName       string `json:"testName"`
	Language       string `json:"language"`
	CompletedAt    string `json:"completedAt"`
	TotalQuestions int    `json:"totalQuestions"`
}

// Result is implemented by the three result shapes. meta exposes the
// embedded Meta so the engine can fill it in after dispatch.
type Result interface {
	meta() *Meta
}

func (m *Meta) meta() *Meta { return m }

// Interpretation is a resolved severity for a score. Range is nil on the
// sentinel paths (score outside every range, or no table declared).
type Interpretation struct {
	Severity i18n.Text                    `json:"severity"`
	Level    string                       `json:"level,omitempty"`
	Range    *catalog.InterpretationRange `json:"range,omitempty"`
}

// StandardResult is the outcome of a summed-score test such as PHQ-9.
type StandardResult struct {
	RawScore         float64        `json:"rawScore"`
	MaxPossibleScore float64        `json:"maxPossibleScore"`
	Percentile       int            `json:"percentile"`
	Severity         i18n.Text      `json:"severity"`
	Interpretation   Interpretation `json:"interpretation"`
	Recommendations  []string       `json:"recommendations"`
	Meta
}

// CategoricalResult is the outcome of a four-axis type-indicator test.
type CategoricalResult struct {
	PersonalityType  string                        `json:"personalityType"`
	TraitScores      map[string]map[string]float64 `json:"traitScores"`
	TraitPercentages map[string]map[string]int     `json:"traitPercentages"`
	Description      string                        `json:"description"`
	Recommendations  []string                      `json:"recommendations"`
	Meta
}

// RiskLevel is the composite risk of a dimensional test.
type RiskLevel struct {
	Level string `json:"level"`
	Label string `json:"label"`
}

// DimensionalResult is the outcome of a multi-dimensional test such as
// MBI-SS: independent sub-scale scores plus a composite risk label.
type DimensionalResult struct {
	DimensionScores map[string]float64        `json:"dimensionScores"`
	Interpretations map[string]Interpretation `json:"interpretations"`
	OverallRisk     RiskLevel                 `json:"overallBurnoutRisk"`
	Recommendations []string                  `json:"recommendations"`
	Meta
}
