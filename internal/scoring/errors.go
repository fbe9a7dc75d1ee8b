package scoring

import (
	"errors"
	"fmt"
)

// ErrTestNotFound signals an unknown test id. Handlers map it to 404.
var ErrTestNotFound = errors.New("test not found")

// Validation failure kinds.
const (
	KindAnswerCountMismatch = "answer_count_mismatch"
	KindInvalidQuestionID   = "invalid_question_id"
	KindInvalidAnswerValue  = "invalid_answer_value"
)

// ValidationError reports a malformed or incomplete answer set. These are
// caller errors, never retried and never logged as server faults.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func countMismatch(want, got int) *ValidationError {
	return &ValidationError{
		Kind:    KindAnswerCountMismatch,
		Message: fmt.Sprintf("expected %d answers, got %d", want, got),
	}
}

func invalidQuestionID(key string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidQuestionID,
		Message: fmt.Sprintf("invalid question ID: %s", key),
	}
}

func invalidAnswerValue(key string, v float64) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidAnswerValue,
		Message: fmt.Sprintf("invalid answer value for question %s: %v", key, v),
	}
}
