package compass

import (
	"errors"
	"fmt"
	"math"
	"time"

	"crypto_compass_backend/internal/model"
)

// Likert scale bounds.
const (
	MinValue = 1
	MaxValue = 5
)

var ErrInvalidValue = errors.New("answer value out of range")

// InvalidValueError reports an answer outside [MinValue, MaxValue].
type InvalidValueError struct {
	QuestionID string
	Value      int
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid answer %d for question %q: must be between %d and %d",
		e.Value, e.QuestionID, MinValue, MaxValue)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// ValidValue reports whether v is on the Likert scale.
func ValidValue(v int) bool {
	return v >= MinValue && v <= MaxValue
}

// RecordAnswer returns a copy of answers with questionID set to value.
// An existing answer for the same question is overwritten.
func RecordAnswer(answers model.AnswerSet, questionID string, value int, now time.Time) (model.AnswerSet, model.Answer, error) {
	if !ValidValue(value) {
		return answers, model.Answer{}, &InvalidValueError{QuestionID: questionID, Value: value}
	}
	a := model.Answer{Value: value, Timestamp: now.UnixMilli()}
	next := answers.Clone()
	next[questionID] = a
	return next, a, nil
}

func answered(answers model.AnswerSet, id string) bool {
	a, ok := answers[id]
	return ok && ValidValue(a.Value)
}

// IsComplete is true when every question of the set has a valid answer.
// An empty set is never complete.
func IsComplete(answers model.AnswerSet, set []model.Question) bool {
	if len(set) == 0 {
		return false
	}
	for _, q := range set {
		if !answered(answers, q.ID) {
			return false
		}
	}
	return true
}

// Progress is the rounded percentage of the set that has a valid answer.
func Progress(answers model.AnswerSet, set []model.Question) int {
	if len(set) == 0 {
		return 0
	}
	n := 0
	for _, q := range set {
		if answered(answers, q.ID) {
			n++
		}
	}
	return percent(n, len(set))
}

// NextUnansweredIndex returns the index of the first question without a
// valid answer, or -1.
func NextUnansweredIndex(answers model.AnswerSet, set []model.Question) int {
	for i, q := range set {
		if !answered(answers, q.ID) {
			return i
		}
	}
	return -1
}

type TestStatistics struct {
	Total                  int `json:"total"`
	Answered               int `json:"answered"`
	Remaining              int `json:"remaining"`
	CentralizationAnswered int `json:"centralizationAnswered"`
	PrivatePublicAnswered  int `json:"privatePublicAnswered"`
	ProgressPercentage     int `json:"progressPercentage"`
}

// ProgressStatistics summarizes how far a test has got.
func ProgressStatistics(answers model.AnswerSet, set []model.Question) TestStatistics {
	st := TestStatistics{Total: len(set)}
	for _, q := range set {
		if !answered(answers, q.ID) {
			continue
		}
		st.Answered++
		switch q.Dimension {
		case model.DimensionCentralization:
			st.CentralizationAnswered++
		case model.DimensionPrivatePublic:
			st.PrivatePublicAnswered++
		}
	}
	st.Remaining = st.Total - st.Answered
	if st.Total > 0 {
		st.ProgressPercentage = percent(st.Answered, st.Total)
	}
	return st
}

func percent(n, total int) int {
	return int(math.Floor(100*float64(n)/float64(total) + 0.5))
}
