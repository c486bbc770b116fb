package compass

import (
	"testing"

	"crypto_compass_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyScoreBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  Bucket
	}{
		{-100, StronglyNegative},
		{-33.01, StronglyNegative},
		{-33, ModeratelyNegative},
		{-0.001, ModeratelyNegative},
		{0, ModeratelyPositive},
		{32.99, ModeratelyPositive},
		{33, StronglyPositive},
		{100, StronglyPositive},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyScore(c.score), "score %v", c.score)
	}
}

func TestClassifyAxisLabels(t *testing.T) {
	cent := func(s float64) string { return ClassifyAxis(model.DimensionCentralization, s).Label() }
	pp := func(s float64) string { return ClassifyAxis(model.DimensionPrivatePublic, s).Label() }

	assert.Equal(t, "Moderat Centralizat", cent(-33))
	assert.Equal(t, "Puternic Descentralizat", cent(33))
	assert.Equal(t, "Moderat Descentralizat", cent(0))
	assert.Equal(t, "Puternic Centralizat", cent(-80))

	assert.Equal(t, "Puternic Bun Privat", pp(-50))
	assert.Equal(t, "Moderat Bun Privat", pp(-10))
	assert.Equal(t, "Moderat Bun Public", pp(0))
	assert.Equal(t, "Puternic Bun Public", pp(90))
}

func TestInvalidBucketHasNoLabel(t *testing.T) {
	l := Level{Dimension: model.DimensionCentralization, Bucket: Bucket(7)}
	assert.Empty(t, l.Label())
	assert.Empty(t, l.Slug())
	assert.Equal(t, UnknownArchetype(), ArchetypeFor(l, l))
}

func TestOrientationAndArchetypeNeverUnknown(t *testing.T) {
	for c := -100.0; c <= 100.0; c += 0.5 {
		for p := -100.0; p <= 100.0; p += 0.5 {
			cl := ClassifyAxis(model.DimensionCentralization, c)
			pl := ClassifyAxis(model.DimensionPrivatePublic, p)

			orientation := Orientation(cl, pl)
			require.True(t, KnownOrientation(orientation), "orientation %q for (%v, %v)", orientation, c, p)
			require.NotEqual(t, UnknownOrientation, Describe(orientation))

			a := ArchetypeFromScores(c, p)
			require.NotEqual(t, UnknownArchetype().ID, a.ID, "archetype for (%v, %v)", c, p)
			require.Equal(t, ArchetypeKey(cl, pl), a.ID)
		}
	}
}

func TestDescribeUnknown(t *testing.T) {
	assert.Equal(t, UnknownOrientation, Describe("Neutru-Neutru"))
	assert.False(t, KnownOrientation(""))
}

func TestArchetypeCatalog(t *testing.T) {
	all := Archetypes()
	require.Len(t, all, 16)
	assert.Equal(t, "puternic-centralizat-puternic-privat", all[0].ID)
	assert.Equal(t, "puternic-descentralizat-puternic-public", all[15].ID)

	seen := map[string]bool{}
	for _, a := range all {
		assert.False(t, seen[a.ID], "duplicate %s", a.ID)
		seen[a.ID] = true
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Color)

		got, ok := ArchetypeByID(a.ID)
		require.True(t, ok)
		assert.Equal(t, a, got)
	}

	_, ok := ArchetypeByID(UnknownArchetype().ID)
	assert.False(t, ok)
}

func TestArchetypeFromScores(t *testing.T) {
	a := ArchetypeFromScores(0, 0)
	assert.Equal(t, "moderat-descentralizat-moderat-public", a.ID)
	assert.Equal(t, "Cooperativistul Digital", a.Name)

	a = ArchetypeFromScores(100, -100)
	assert.Equal(t, "Crypto-Anarhist", a.Name)
}
