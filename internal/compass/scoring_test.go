package compass

import (
	"math/rand/v2"
	"testing"
	"time"

	"crypto_compass_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	want := map[int]float64{1: -100, 2: -50, 3: 0, 4: 50, 5: 100}
	for v, n := range want {
		assert.Equal(t, n, Normalize(v), "value %d", v)
	}
}

func TestRoundScore(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{33.333333, 33.3},
		{-33.333333, -33.3},
		{16.66666, 16.7},
		{0.25, 0.3},
		{-0.25, -0.2},
		{100, 100},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, RoundScore(c.in), 1e-9, "RoundScore(%v)", c.in)
	}
}

func answersOf(values map[string]int) model.AnswerSet {
	out := model.AnswerSet{}
	for id, v := range values {
		out[id] = model.Answer{Value: v, Timestamp: 1}
	}
	return out
}

func TestScoringSignConvention(t *testing.T) {
	centralized := []model.Question{{ID: "c1", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized}}
	decentralized := []model.Question{{ID: "c2", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized}}
	private := []model.Question{{ID: "p2", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPrivate}}
	public := []model.Question{{ID: "p1", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic}}

	r := CalculateResults(answersOf(map[string]int{"c1": 5}), centralized)
	assert.Equal(t, -100.0, r.Scores.Centralization)

	r = CalculateResults(answersOf(map[string]int{"c2": 5}), decentralized)
	assert.Equal(t, 100.0, r.Scores.Centralization)

	r = CalculateResults(answersOf(map[string]int{"p2": 5}), private)
	assert.Equal(t, -100.0, r.Scores.PrivatePublic)

	r = CalculateResults(answersOf(map[string]int{"p1": 5}), public)
	assert.Equal(t, 100.0, r.Scores.PrivatePublic)
}

func TestScoringMeanAggregation(t *testing.T) {
	qs := []model.Question{
		{ID: "c2", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized},
		{ID: "c3", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized},
	}
	r := CalculateResults(answersOf(map[string]int{"c2": 5, "c3": 1}), qs)
	assert.Equal(t, 0.0, r.Scores.Centralization)
	assert.Equal(t, 2, r.Metadata.QuestionsAnswered.Centralization)
	assert.Equal(t, "Moderat Descentralizat", r.Levels.Centralization)
}

func TestScoringRoundsForDisplayOnly(t *testing.T) {
	qs := []model.Question{
		{ID: "c2", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized},
		{ID: "c3", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized},
		{ID: "c5", Dimension: model.DimensionCentralization, Direction: model.DirectionDecentralized},
	}
	r := CalculateResults(answersOf(map[string]int{"c2": 1, "c3": 3, "c5": 3}), qs)
	assert.InDelta(t, -100.0/3, r.Scores.Raw.Centralization, 1e-9)
	assert.Equal(t, -33.3, r.Scores.Centralization)
	assert.Equal(t, "Puternic Centralizat", r.Levels.Centralization)
	assert.Equal(t, "puternic-centralizat-moderat-public", r.Archetype.ID)
}

func TestScoringSkipsUnknownAndInvalid(t *testing.T) {
	qs := []model.Question{
		{ID: "c1", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized},
		{ID: "p1", Dimension: model.DimensionPrivatePublic, Direction: model.DirectionPublic},
	}
	answers := answersOf(map[string]int{"c1": 0, "p1": 4, "zz": 5})
	answers["c1"] = model.Answer{Value: 9}

	r := CalculateResults(answers, qs)
	assert.Equal(t, 0.0, r.Scores.Centralization)
	assert.Equal(t, 50.0, r.Scores.PrivatePublic)
	assert.Equal(t, model.AnsweredCounts{Centralization: 0, PrivatePublic: 1, Total: 1}, r.Metadata.QuestionsAnswered)
}

func TestScoringEmptyInput(t *testing.T) {
	r := CalculateResults(nil, nil)
	assert.Equal(t, 0.0, r.Scores.Centralization)
	assert.Equal(t, 0.0, r.Scores.PrivatePublic)
	assert.Equal(t, "Moderat Descentralizat-Moderat Bun Public", r.Orientation)
	assert.Equal(t, model.ResultVersion, r.Metadata.Version)
}

func TestScoringIgnoresDuplicateQuestions(t *testing.T) {
	q := model.Question{ID: "c1", Dimension: model.DimensionCentralization, Direction: model.DirectionCentralized}
	r := CalculateResults(answersOf(map[string]int{"c1": 4}), []model.Question{q, q})
	assert.Equal(t, 1, r.Metadata.QuestionsAnswered.Centralization)
	assert.Equal(t, -50.0, r.Scores.Centralization)
}

func TestCalculateResultsNeutralEndToEnd(t *testing.T) {
	set := GenerateQuestionSet(rand.New(rand.NewPCG(1, 1)))
	answers := model.AnswerSet{}
	for _, q := range set {
		answers[q.ID] = model.Answer{Value: 3}
	}
	require.True(t, IsComplete(answers, set))

	r := CalculateResults(answers, set)
	assert.Equal(t, 0.0, r.Scores.Centralization)
	assert.Equal(t, 0.0, r.Scores.PrivatePublic)
	assert.Equal(t, "Moderat Descentralizat", r.Levels.Centralization)
	assert.Equal(t, "Moderat Bun Public", r.Levels.PrivatePublic)
	assert.Equal(t, "Moderat Descentralizat-Moderat Bun Public", r.Orientation)
	assert.NotEqual(t, UnknownOrientation, r.Description)
	assert.Equal(t, "moderat-descentralizat-moderat-public", r.Archetype.ID)
	assert.Equal(t, "Cooperativistul Digital", r.Archetype.Name)
	assert.Equal(t, model.AnsweredCounts{Centralization: 15, PrivatePublic: 15, Total: 30}, r.Metadata.QuestionsAnswered)
}

func TestCalculateResultsIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	set := GenerateQuestionSet(r)
	answers := model.AnswerSet{}
	for _, q := range set {
		answers[q.ID] = model.Answer{Value: 1 + r.IntN(5)}
	}

	first := calculateAt(answers, set, time.UnixMilli(1000))
	second := calculateAt(answers, set, time.UnixMilli(2000))
	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.Orientation, second.Orientation)
	assert.Equal(t, first.Archetype, second.Archetype)
	assert.NotEqual(t, first.Metadata.Timestamp, second.Metadata.Timestamp)
}

func TestCalculateResultsExtremes(t *testing.T) {
	set := Bank()
	answers := model.AnswerSet{}
	for _, q := range set {
		v := 5
		if q.Direction == model.DirectionCentralized || q.Direction == model.DirectionPublic {
			v = 1
		}
		answers[q.ID] = model.Answer{Value: v}
	}

	r := CalculateResults(answers, set)
	assert.Equal(t, 100.0, r.Scores.Centralization)
	assert.Equal(t, -100.0, r.Scores.PrivatePublic)
	assert.Equal(t, "Puternic Descentralizat-Puternic Bun Privat", r.Orientation)
	assert.Equal(t, "Crypto-Anarhist", r.Archetype.Name)
}
