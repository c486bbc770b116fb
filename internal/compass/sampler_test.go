package compass

import (
	"math/rand/v2"
	"strings"
	"testing"

	"crypto_compass_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuestionSetProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	appearances := map[string]int{}

	for i := 0; i < 1000; i++ {
		set := GenerateQuestionSet(r)
		require.Len(t, set, 30)

		seen := map[string]bool{}
		var central, privatePublic int
		for _, q := range set {
			require.False(t, seen[q.ID], "question %s repeated in one set", q.ID)
			seen[q.ID] = true
			appearances[q.ID]++

			bankQ, ok := QuestionByID(q.ID)
			require.True(t, ok)
			require.Equal(t, bankQ, q)

			switch {
			case strings.HasPrefix(q.ID, "c"):
				central++
			case strings.HasPrefix(q.ID, "p"):
				privatePublic++
			}
		}
		require.Equal(t, 15, central)
		require.Equal(t, 15, privatePublic)
	}

	// every statement of both pools gets drawn at some point
	assert.Len(t, appearances, 38)
}

func TestGenerateQuestionSetIsSeedable(t *testing.T) {
	a := GenerateQuestionSet(rand.New(rand.NewPCG(42, 42)))
	b := GenerateQuestionSet(rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, a, b)

	c := GenerateQuestionSet(rand.New(rand.NewPCG(43, 42)))
	assert.NotEqual(t, a, c)
}

func TestGenerateQuestionSetMixesAxes(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		set := GenerateQuestionSet(r)
		dims := map[model.Dimension]bool{}
		for _, q := range set[:15] {
			dims[q.Dimension] = true
		}
		require.Len(t, dims, 2, "first half of set %d drawn from a single axis", i)
	}
}

func TestGenerateQuestionSetNClamps(t *testing.T) {
	set := GenerateQuestionSetN(rand.New(rand.NewPCG(1, 1)), 50)
	assert.Len(t, set, 38)

	assert.Empty(t, GenerateQuestionSetN(nil, -1))
}

func TestGenerateQuestionSetDefaultSource(t *testing.T) {
	set := GenerateQuestionSet(nil)
	assert.Len(t, set, 30)
}

func TestShuffleIsUniform(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	counts := map[[3]int]int{}
	const rounds = 60000
	for i := 0; i < rounds; i++ {
		s := Shuffle(r, []int{0, 1, 2})
		counts[[3]int{s[0], s[1], s[2]}]++
	}
	require.Len(t, counts, 6)
	for perm, n := range counts {
		assert.InDelta(t, rounds/6, n, 600, "permutation %v", perm)
	}
}

func TestShuffleLeavesInputIntact(t *testing.T) {
	in := []model.Question{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	_ = Shuffle(rand.New(rand.NewPCG(1, 2)), in)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{in[0].ID, in[1].ID, in[2].ID, in[3].ID})
}
