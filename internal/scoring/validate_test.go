package scoring

import (
	"errors"
	"testing"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
)

func threeQuestionDef() *catalog.Definition {
	return &catalog.Definition{
		ID:       "demo",
		TestType: "DEMO",
		Questions: []catalog.Question{
			{ID: 1}, {ID: 2}, {ID: 3},
		},
		Options: []catalog.Option{
			{Value: 0}, {Value: 1}, {Value: 2},
		},
	}
}

func TestValidate(t *testing.T) {
	def := threeQuestionDef()

	tests := []struct {
		name     string
		answers  Answers
		wantKind string
	}{
		{"valid", Answers{"1": 0, "2": 2, "3": 1}, ""},
		{"too few", Answers{"1": 0, "2": 2}, KindAnswerCountMismatch},
		{"too many", Answers{"1": 0, "2": 2, "3": 1, "4": 0}, KindAnswerCountMismatch},
		{"non-numeric key", Answers{"1": 0, "two": 2, "3": 1}, KindInvalidQuestionID},
		{"zero key", Answers{"0": 0, "2": 2, "3": 1}, KindInvalidQuestionID},
		{"key beyond range", Answers{"1": 0, "2": 2, "7": 1}, KindInvalidQuestionID},
		{"negative value", Answers{"1": 0, "2": -1, "3": 1}, KindInvalidAnswerValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(def, tc.answers)
			if tc.wantKind == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Kind != tc.wantKind {
				t.Errorf("kind = %q, want %q", ve.Kind, tc.wantKind)
			}
		})
	}
}
