package compass

import (
	"strings"
	"testing"
	"unicode/utf8"

	"crypto_compass_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultAt(c, p float64) model.Result {
	cl := ClassifyAxis(model.DimensionCentralization, c)
	pl := ClassifyAxis(model.DimensionPrivatePublic, p)
	o := Orientation(cl, pl)
	return model.Result{
		Scores:      model.Scores{Centralization: c, PrivatePublic: p, Raw: model.RawScores{Centralization: c, PrivatePublic: p}},
		Levels:      model.Levels{Centralization: cl.Label(), PrivatePublic: pl.Label()},
		Orientation: o,
		Description: Describe(o),
		Archetype:   ArchetypeFor(cl, pl),
	}
}

func TestValidateResult(t *testing.T) {
	r := resultAt(10, -20)
	assert.True(t, ValidateResult(&r))
	assert.False(t, ValidateResult(nil))

	bad := r
	bad.Orientation = "Altceva"
	assert.False(t, ValidateResult(&bad))

	bad = r
	bad.Scores.PrivatePublic = 150
	assert.False(t, ValidateResult(&bad))

	bad = r
	bad.Levels.Centralization = ""
	assert.False(t, ValidateResult(&bad))
}

func TestCompareResults(t *testing.T) {
	a := resultAt(20, 20)
	b := resultAt(20, 20)
	cmp := CompareResults(&a, &b)
	assert.Equal(t, 100.0, cmp.Similarity)
	assert.True(t, cmp.Differences.SameOrientation)
	assert.True(t, cmp.Analysis.SameQuadrant)
	assert.Equal(t, ClosenessVeryClose, cmp.Analysis.Closeness)

	c := resultAt(-60, -40)
	cmp = CompareResults(&a, &c)
	assert.Equal(t, 80.0, cmp.Differences.Centralization)
	assert.Equal(t, 60.0, cmp.Differences.PrivatePublic)
	assert.Equal(t, 30.0, cmp.Similarity)
	assert.False(t, cmp.Differences.SameOrientation)
	assert.False(t, cmp.Analysis.SameQuadrant)
	assert.Equal(t, ClosenessVeryDistant, cmp.Analysis.Closeness)

	d := resultAt(-10, 10)
	cmp = CompareResults(&a, &d)
	assert.Equal(t, 80.0, cmp.Similarity)
	assert.Equal(t, ClosenessClose, cmp.Analysis.Closeness)
}

func TestCompareResultsOnAxis(t *testing.T) {
	neutral := resultAt(0, 0)
	privateSide := resultAt(10, -10)
	assert.True(t, CompareResults(&neutral, &privateSide).Analysis.SameQuadrant)

	publicSide := resultAt(10, 10)
	assert.False(t, CompareResults(&neutral, &publicSide).Analysis.SameQuadrant)
}

func TestCompareResultsInvalid(t *testing.T) {
	a := resultAt(0, 0)
	cmp := CompareResults(&a, nil)
	assert.Zero(t, cmp.Similarity)
	assert.Equal(t, ClosenessVeryDistant, cmp.Analysis.Closeness)
}

func TestResultStatistics(t *testing.T) {
	results := []model.Result{
		resultAt(10, 10),
		resultAt(-50, 60),
		resultAt(20, 30),
		resultAt(-40, 70),
		{Orientation: "invalid"},
	}

	st := ResultStatistics(results)
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, model.RawScores{Centralization: -15, PrivatePublic: 42.5}, st.AverageScores)
	require.NotNil(t, st.MostCommon)
	assert.Equal(t, "Moderat Descentralizat-Moderat Bun Public", st.MostCommon.Orientation)
	assert.Equal(t, 2, st.MostCommon.Count)
	assert.Equal(t, 50, st.MostCommon.Percentage)
	assert.Equal(t, 2, st.Distributions["Puternic Centralizat-Puternic Bun Public"])
}

func TestResultStatisticsEmpty(t *testing.T) {
	st := ResultStatistics(nil)
	assert.Zero(t, st.Total)
	assert.Nil(t, st.MostCommon)
	assert.Empty(t, st.Distributions)
}

func TestRecommendations(t *testing.T) {
	neutral := resultAt(0, 0)
	assert.Empty(t, Recommendations(&neutral))

	r := resultAt(-60, 60)
	recs := Recommendations(&r)
	require.Len(t, recs, 4)
	assert.Contains(t, recs[0], "Coinbase")
	assert.Contains(t, recs[3], "Algorand")

	r = resultAt(51, -51)
	recs = Recommendations(&r)
	require.Len(t, recs, 4)
	assert.Contains(t, recs[0], "Uniswap")
	assert.Contains(t, recs[2], "Bitcoin")

	assert.Empty(t, Recommendations(nil))
}

func TestShare(t *testing.T) {
	r := resultAt(0, 0)
	s := Share(&r, "https://example.org/r/1")
	require.NotNil(t, s)
	assert.Equal(t, r.Orientation, s.Orientation)
	assert.Equal(t, "https://example.org/r/1", s.URL)
	assert.Equal(t, ShareHashtags, s.Hashtags)
	assert.True(t, strings.HasSuffix(s.Description, "..."))
	assert.Equal(t, 203, utf8.RuneCountInString(s.Description))
	assert.Contains(t, s.ShareText, r.Orientation)

	s.Hashtags[0] = "#changed"
	assert.Equal(t, "#CryptoCompass", ShareHashtags[0])

	assert.Nil(t, Share(nil, ""))
}

func TestExcerptIsRuneSafe(t *testing.T) {
	assert.Equal(t, "ăîș", excerpt("ăîșțâ", 3))
	assert.Equal(t, "abc", excerpt("abc", 10))
}
