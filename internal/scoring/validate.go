package scoring

import (
	"strconv"

	"github.com/Akhand0ps/SIH-tests/internal/catalog"
)

// Validate checks an answer set against the definition's shape: the answer
// count must match the question count, every key must parse to an integer in
// [1, totalQuestions], and every value must be non-negative. Pure check, no
// side effects.
func Validate(def *catalog.Definition, answers Answers) error {
	want := def.TotalQuestions()
	if len(answers) != want {
		return countMismatch(want, len(answers))
	}
	for key, v := range answers {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > want {
			return invalidQuestionID(key)
		}
		if v < 0 {
			return invalidAnswerValue(key, v)
		}
	}
	return nil
}
