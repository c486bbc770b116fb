package compass

import (
	"math/rand/v2"

	"crypto_compass_backend/internal/model"
)

// QuestionsPerDimension is how many statements of each axis a test uses.
const QuestionsPerDimension = 15

// Source yields uniform integers in [0,n). *rand.Rand satisfies it, which
// lets tests pass a seeded generator.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// GenerateQuestionSet samples QuestionsPerDimension statements from each
// axis without replacement and shuffles the combined set.
func GenerateQuestionSet(src Source) []model.Question {
	return GenerateQuestionSetN(src, QuestionsPerDimension)
}

// GenerateQuestionSetN is GenerateQuestionSet with a custom per-axis size.
// n is clamped to the size of each pool.
func GenerateQuestionSetN(src Source, n int) []model.Question {
	if src == nil {
		src = globalSource{}
	}
	if n < 0 {
		n = 0
	}

	central := take(Shuffle(src, centralizationQuestions), n)
	private := take(Shuffle(src, privatePublicQuestions), n)

	set := make([]model.Question, 0, len(central)+len(private))
	set = append(set, central...)
	set = append(set, private...)
	return Shuffle(src, set)
}

// Shuffle returns a Fisher-Yates shuffled copy of items.
func Shuffle[T any](src Source, items []T) []T {
	if src == nil {
		src = globalSource{}
	}
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func take[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
