package scoring

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
)

const toyTest = `{
  "testType": "TOY",
  "title": {"en": "Toy Test"},
  "questions": [
    {"id": 1, "text": {"en": "q1"}},
    {"id": 2, "text": {"en": "q2"}},
    {"id": 3, "text": {"en": "q3"}}
  ],
  "options": [
    {"value": 0, "label": {"en": "0"}},
    {"value": 1, "label": {"en": "1"}},
    {"value": 2, "label": {"en": "2"}},
    {"value": 3, "label": {"en": "3"}}
  ],
  "scoring": {
    "reverseScoredQuestions": [2],
    "interpretation": [
      {"min": 0, "max": 9, "level": "low", "severity": {"en": "low"}}
    ]
  }
}`

const gappyTest = `{
  "testType": "GAPPY",
  "title": {"en": "Gappy Ranges"},
  "questions": [
    {"id": 1, "text": {"en": "q1"}},
    {"id": 2, "text": {"en": "q2"}},
    {"id": 3, "text": {"en": "q3"}}
  ],
  "options": [
    {"value": 0, "label": {"en": "0"}},
    {"value": 10, "label": {"en": "10"}},
    {"value": 5, "label": {"en": "5"}}
  ],
  "scoring": {
    "interpretation": [
      {"min": 0, "max": 10, "severity": {"en": "fine"}},
      {"min": 11, "max": 20, "severity": {"en": "elevated"}}
    ]
  }
}`

func toyEngine(t *testing.T) *Engine {
	t.Helper()
	fsys := fstest.MapFS{
		"data/toy.json":   &fstest.MapFile{Data: []byte(toyTest)},
		"data/gappy.json": &fstest.MapFile{Data: []byte(gappyTest)},
	}
	cat, err := catalog.LoadFS(fsys, "data")
	if err != nil {
		t.Fatalf("load fixture catalog: %v", err)
	}
	return NewEngine(cat)
}

func TestScore_StandardToy(t *testing.T) {
	eng := toyEngine(t)

	// Question 2 is reverse-scored: 3+0-1 = 2, so raw = 2+2+3 = 7.
	res, err := eng.Score("toy", Answers{"1": 2, "2": 1, "3": 3}, "en")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	sr, ok := res.(*StandardResult)
	if !ok {
		t.Fatalf("expected *StandardResult, got %T", res)
	}
	if sr.RawScore != 7 {
		t.Errorf("rawScore = %v, want 7", sr.RawScore)
	}
	if sr.MaxPossibleScore != 9 {
		t.Errorf("maxPossibleScore = %v, want 9", sr.MaxPossibleScore)
	}
	if sr.Percentile != 78 {
		t.Errorf("percentile = %d, want 78", sr.Percentile)
	}
	if sr.Severity["en"] != "low" {
		t.Errorf("severity = %q, want \"low\"", sr.Severity["en"])
	}
	if sr.TestName != "toy" || sr.TotalQuestions != 3 || sr.Language != "en" {
		t.Errorf("metadata = %q/%d/%q", sr.TestName, sr.TotalQuestions, sr.Language)
	}
	if sr.CompletedAt == "" {
		t.Error("expected completedAt to be set")
	}
}

func TestScore_CaseInsensitiveLookup(t *testing.T) {
	eng := toyEngine(t)
	if _, err := eng.Score("ToY", Answers{"1": 0, "2": 0, "3": 0}, "en"); err != nil {
		t.Fatalf("Score with mixed-case id: %v", err)
	}
}

func TestScore_UnknownTest(t *testing.T) {
	eng := toyEngine(t)
	_, err := eng.Score("xyz", Answers{"1": 1}, "en")
	if !errors.Is(err, ErrTestNotFound) {
		t.Fatalf("expected ErrTestNotFound, got %v", err)
	}
}

func TestScore_CountMismatchBeforeScoring(t *testing.T) {
	eng := toyEngine(t)
	_, err := eng.Score("toy", Answers{"1": 1, "2": 1}, "en")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Kind != KindAnswerCountMismatch {
		t.Errorf("kind = %q, want %q", ve.Kind, KindAnswerCountMismatch)
	}
}

func TestScore_OutOfRangeIsSentinelNotError(t *testing.T) {
	eng := toyEngine(t)

	// 10+10+5 = 25 lies outside both declared ranges.
	res, err := eng.Score("gappy", Answers{"1": 10, "2": 10, "3": 5}, "en")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	sr := res.(*StandardResult)
	if sr.Severity["en"] != "Score out of range" {
		t.Errorf("severity = %q, want out-of-range sentinel", sr.Severity["en"])
	}
	if sr.Interpretation.Range != nil {
		t.Error("sentinel interpretation should carry no range")
	}
}

func TestScore_RawScoreBounds(t *testing.T) {
	eng := toyEngine(t)
	cases := []Answers{
		{"1": 0, "2": 0, "3": 0},
		{"1": 3, "2": 3, "3": 3},
		{"1": 1, "2": 2, "3": 0},
	}
	for _, answers := range cases {
		res, err := eng.Score("toy", answers, "en")
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		sr := res.(*StandardResult)
		if sr.RawScore < 0 || sr.RawScore > sr.MaxPossibleScore {
			t.Errorf("rawScore %v outside [0,%v]", sr.RawScore, sr.MaxPossibleScore)
		}
	}
}
