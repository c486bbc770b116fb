package compass

import (
	"time"

	"crypto_compass_backend/internal/model"
)

// Session is the state of one test attempt. Transitions return a new
// Session and never modify the receiver.
type Session struct {
	Questions       []model.Question `json:"questions"`
	CurrentQuestion int              `json:"currentQuestion"`
	Answers         model.AnswerSet  `json:"answers"`
	Result          *model.Result    `json:"result,omitempty"`
	Completed       bool             `json:"completed"`
}

// Start begins a fresh attempt over questions.
func (s Session) Start(questions []model.Question) Session {
	qs := make([]model.Question, len(questions))
	copy(qs, questions)
	return Session{Questions: qs, Answers: model.AnswerSet{}}
}

// Restore rebuilds a session from saved progress.
func Restore(p model.TestProgress) Session {
	s := Session{}.Start(p.Questions)
	s.Answers = p.Answers.Clone()
	s.CurrentQuestion = clampIndex(p.CurrentQuestion, len(s.Questions))
	return s
}

// Answer records value for questionID.
func (s Session) Answer(questionID string, value int, now time.Time) (Session, error) {
	answers, _, err := RecordAnswer(s.Answers, questionID, value, now)
	if err != nil {
		return s, err
	}
	s.Answers = answers
	return s, nil
}

// GoTo moves to index; out of range indexes leave the session unchanged.
func (s Session) GoTo(index int) Session {
	if index >= 0 && index < len(s.Questions) {
		s.CurrentQuestion = index
	}
	return s
}

func (s Session) Next() Session {
	return s.GoTo(s.CurrentQuestion + 1)
}

func (s Session) Previous() Session {
	return s.GoTo(s.CurrentQuestion - 1)
}

// Reset drops questions, answers and result.
func (s Session) Reset() Session {
	return Session{Answers: model.AnswerSet{}}
}

// Complete attaches the computed result.
func (s Session) Complete(r model.Result) Session {
	s.Result = &r
	s.Completed = true
	return s
}

// Current returns the question at CurrentQuestion.
func (s Session) Current() (model.Question, bool) {
	if s.CurrentQuestion < 0 || s.CurrentQuestion >= len(s.Questions) {
		return model.Question{}, false
	}
	return s.Questions[s.CurrentQuestion], true
}

// CanProceed is true when the current question has a valid answer.
func (s Session) CanProceed() bool {
	q, ok := s.Current()
	return ok && answered(s.Answers, q.ID)
}

func (s Session) CanComplete() bool {
	return IsComplete(s.Answers, s.Questions)
}

// Progress snapshots the session for persistence.
func (s Session) Progress(now time.Time) model.TestProgress {
	return model.TestProgress{
		CurrentQuestion: s.CurrentQuestion,
		Answers:         s.Answers,
		Questions:       s.Questions,
		Timestamp:       now.UnixMilli(),
		Version:         model.ProgressVersion,
	}
}

func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
