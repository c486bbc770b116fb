package compass

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompassPosition(t *testing.T) {
	assert.Equal(t, Position{X: 200, Y: 200}, CompassPosition(0, 0, DefaultCompassSize))
	assert.Equal(t, Position{X: 400, Y: 0}, CompassPosition(100, 100, DefaultCompassSize))
	assert.Equal(t, Position{X: 0, Y: 400}, CompassPosition(-100, -100, DefaultCompassSize))
	assert.Equal(t, Position{X: 75, Y: 25}, CompassPosition(50, 50, 100))
}

func TestQuadrantFor(t *testing.T) {
	cases := []struct {
		c, p float64
		want string
	}{
		{-10, 10, "topLeft"},
		{10, 10, "topRight"},
		{-10, -10, "bottomLeft"},
		{10, -10, "bottomRight"},
		{0, 0, "topRight"},
		{0, 50, "topRight"},
		{-10, 0, "topLeft"},
		{0, -10, "bottomRight"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, QuadrantFor(c.c, c.p).ID, "(%v, %v)", c.c, c.p)
	}
}

func TestQuadrantForMatchesArchetype(t *testing.T) {
	scores := []float64{-100, -33.4, -0.1, 0, 0.1, 33, 100}
	for _, c := range scores {
		for _, p := range scores {
			id := ArchetypeFromScores(c, p).ID
			q := QuadrantFor(c, p).ID
			right := q == "topRight" || q == "bottomRight"
			top := q == "topLeft" || q == "topRight"
			assert.Equal(t, strings.Contains(id, "descentralizat"), right, "(%v, %v) %s in %s", c, p, id, q)
			assert.Equal(t, strings.HasSuffix(id, "-public"), top, "(%v, %v) %s in %s", c, p, id, q)
		}
	}
}

func TestComparisonQuadrantOnAxis(t *testing.T) {
	assert.Equal(t, "bottomRight", comparisonQuadrant(0, 0))
	assert.Equal(t, "bottomRight", comparisonQuadrant(0, 50))
	assert.Equal(t, "topRight", comparisonQuadrant(10, 10))
	assert.Equal(t, "bottomLeft", comparisonQuadrant(-1, -1))
}
