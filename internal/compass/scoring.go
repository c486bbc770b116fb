package compass

import (
	"math"
	"time"

	"crypto_compass_backend/internal/model"
)

// Normalize maps a Likert value onto [-100, 100]: 1→-100, 3→0, 5→100.
func Normalize(value int) float64 {
	return (float64(value) - 3) / 2 * 100
}

// RoundScore rounds to one decimal, halves towards +Inf.
func RoundScore(score float64) float64 {
	return math.Floor(score*10+0.5) / 10
}

type axisTotal struct {
	sum   float64
	count int
}

func (t axisTotal) mean() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / float64(t.count)
}

// CalculateResults reduces answers to both axis scores, levels, orientation
// and archetype. Answers to unknown questions and values off the Likert
// scale are skipped. Each axis score is the mean of its contributions and
// 0 when the axis has none, so partial sets still score.
func CalculateResults(answers model.AnswerSet, questions []model.Question) model.Result {
	return calculateAt(answers, questions, time.Now())
}

func calculateAt(answers model.AnswerSet, questions []model.Question, now time.Time) model.Result {
	var central, privatePublic axisTotal
	seen := make(map[string]struct{}, len(questions))

	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}

		a, ok := answers[q.ID]
		if !ok || !ValidValue(a.Value) {
			continue
		}
		contribution := q.Direction.Sign() * Normalize(a.Value)

		switch q.Dimension {
		case model.DimensionCentralization:
			central.sum += contribution
			central.count++
		case model.DimensionPrivatePublic:
			privatePublic.sum += contribution
			privatePublic.count++
		}
	}

	c := central.mean()
	p := privatePublic.mean()
	cLevel := ClassifyAxis(model.DimensionCentralization, c)
	pLevel := ClassifyAxis(model.DimensionPrivatePublic, p)
	orientation := Orientation(cLevel, pLevel)

	return model.Result{
		Scores: model.Scores{
			Centralization: RoundScore(c),
			PrivatePublic:  RoundScore(p),
			Raw: model.RawScores{
				Centralization: c,
				PrivatePublic:  p,
			},
		},
		Levels: model.Levels{
			Centralization: cLevel.Label(),
			PrivatePublic:  pLevel.Label(),
		},
		Orientation: orientation,
		Description: Describe(orientation),
		Archetype:   ArchetypeFor(cLevel, pLevel),
		Metadata: model.ResultMetadata{
			QuestionsAnswered: model.AnsweredCounts{
				Centralization: central.count,
				PrivatePublic:  privatePublic.count,
				Total:          central.count + privatePublic.count,
			},
			Timestamp: now.UnixMilli(),
			Version:   model.ResultVersion,
		},
	}
}
