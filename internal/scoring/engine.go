// Package scoring implements the assessment scoring engine: answer-set
// validation, per-category score computation, severity interpretation and
// recommendation lookup. Scoring is synchronous, stateless and side-effect
// free; the engine reads only from the injected read-only catalog, so it is
// safe for arbitrarily many concurrent calls.
package scoring

import (
	"fmt"
	"time"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
	"github.com/Akhand0ps/SIH-tests/internal/i18n"
)

// Engine scores submitted answer sets against catalog definitions.
type Engine struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewEngine returns an Engine backed by c.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c, now: time.Now}
}

// Score validates answers for testID and computes the result for the test's
// category. It fails with ErrTestNotFound for unknown ids and with a
// *ValidationError for malformed answer sets; interpretation edge cases
// (score outside all ranges, missing table) are not errors.
func (e *Engine) Score(testID string, answers Answers, lang string) (Result, error) {
	def, ok := e.catalog.Get(testID)
	if !ok {
		return nil, fmt.Errorf("test %q: %w", testID, ErrTestNotFound)
	}
	if lang == "" {
		lang = i18n.DefaultLang
	}

	if err := Validate(def, answers); err != nil {
		return nil, err
	}

	var res Result
	switch def.Category {
	case catalog.CategoryCategorical:
		res = scoreCategorical(def, answers, lang)
	case catalog.CategoryDimensional:
		res = scoreDimensional(def, answers, lang)
	default:
		res = scoreStandard(def, answers, lang)
	}

	m := res.meta()
	m.TestName = def.ID
	m.Language = lang
	m.CompletedAt = e.now().UTC().Format(time.RFC3339)
	m.TotalQuestions = def.TotalQuestions()
	return res, nil
}
