package compass

import (
	"math/rand/v2"
	"testing"
	"time"

	"crypto_compass_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFlow(t *testing.T) {
	set := GenerateQuestionSet(rand.New(rand.NewPCG(3, 4)))
	now := time.UnixMilli(1700000000000)

	s := Session{}.Start(set)
	require.Len(t, s.Questions, QuestionsPerDimension*2)
	assert.Equal(t, 0, s.CurrentQuestion)
	assert.False(t, s.CanProceed())
	assert.False(t, s.CanComplete())

	for i := range s.Questions {
		q, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, set[i].ID, q.ID)

		var err error
		s, err = s.Answer(q.ID, 3, now)
		require.NoError(t, err)
		assert.True(t, s.CanProceed())
		s = s.Next()
	}
	assert.Equal(t, len(set)-1, s.CurrentQuestion, "Next stops at the last question")
	require.True(t, s.CanComplete())

	done := s.Complete(CalculateResults(s.Answers, s.Questions))
	assert.True(t, done.Completed)
	require.NotNil(t, done.Result)
	assert.Equal(t, "Cooperativistul Digital", done.Result.Archetype.Name)
	assert.False(t, s.Completed, "receiver is untouched")
}

func TestSessionTransitionsDoNotShareAnswers(t *testing.T) {
	s := Session{}.Start(sampleSet(3))
	a, err := s.Answer(s.Questions[0].ID, 5, time.Now())
	require.NoError(t, err)
	assert.Empty(t, s.Answers)
	assert.Len(t, a.Answers, 1)

	_, err = a.Answer(s.Questions[1].ID, 9, time.Now())
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestSessionNavigation(t *testing.T) {
	s := Session{}.Start(sampleSet(4))
	assert.Equal(t, 0, s.Previous().CurrentQuestion)
	assert.Equal(t, 2, s.GoTo(2).CurrentQuestion)
	assert.Equal(t, 0, s.GoTo(4).CurrentQuestion)
	assert.Equal(t, 0, s.GoTo(-1).CurrentQuestion)
	assert.Equal(t, 1, s.GoTo(2).Previous().CurrentQuestion)
}

func TestSessionReset(t *testing.T) {
	s := Session{}.Start(sampleSet(2))
	s, _ = s.Answer(s.Questions[0].ID, 2, time.Now())
	s = s.Complete(model.Result{})

	r := s.Reset()
	assert.Empty(t, r.Questions)
	assert.Empty(t, r.Answers)
	assert.Nil(t, r.Result)
	assert.False(t, r.Completed)
	_, ok := r.Current()
	assert.False(t, ok)
}

func TestSessionProgressRoundTrip(t *testing.T) {
	set := sampleSet(6)
	s := Session{}.Start(set).GoTo(3)
	s, _ = s.Answer(set[0].ID, 4, time.UnixMilli(5))

	p := s.Progress(time.UnixMilli(99))
	assert.Equal(t, int64(99), p.Timestamp)
	assert.Equal(t, model.ProgressVersion, p.Version)

	restored := Restore(p)
	assert.Equal(t, 3, restored.CurrentQuestion)
	assert.Equal(t, s.Answers, restored.Answers)
	assert.Equal(t, set, restored.Questions)

	p.CurrentQuestion = 40
	assert.Equal(t, 5, Restore(p).CurrentQuestion)
	p.CurrentQuestion = -2
	assert.Equal(t, 0, Restore(p).CurrentQuestion)
}
