package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"crypto_compass_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestQuestionsSeeded(t *testing.T) {
	a, _, err := run(t, "", "questions", "--seed", "7", "--json")
	require.NoError(t, err)
	b, _, err := run(t, "", "questions", "--seed", "7", "--json")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var set []model.Question
	require.NoError(t, json.Unmarshal([]byte(a), &set))
	assert.Len(t, set, 30)

	small, _, err := run(t, "", "questions", "--per-dimension", "2")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(small), "\n"), 4)
}

func TestScorePairs(t *testing.T) {
	out, errOut, err := run(t, "", "score", "--answers", "c1=1,c2=5,zz=3", "--json")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	var rep scoreReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 100.0, rep.Result.Scores.Centralization)
	assert.Equal(t, 0.0, rep.Result.Scores.PrivatePublic)
	assert.Equal(t, 2, rep.Result.Metadata.QuestionsAnswered.Total)
	assert.Equal(t, []string{"zz"}, rep.Unknown)
}

func TestScoreStdin(t *testing.T) {
	out, errOut, err := run(t, `{"c1": {"value": 5}, "c2": 1, "nope": 2}`, "score", "-f", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "centralization -100.0")
	assert.Contains(t, errOut, "nope")

	_, _, err = run(t, "", "score")
	assert.Error(t, err)
	_, _, err = run(t, "", "score", "--answers", "c1")
	assert.Error(t, err)
}

func TestScoreInvalidValues(t *testing.T) {
	out, _, err := run(t, "", "score", "--answers", "c1=9,c2=5,p1=0", "--json")
	require.NoError(t, err)
	var rep scoreReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []string{"c1=9", "p1=0"}, rep.Invalid)
	assert.Equal(t, 1, rep.Result.Metadata.QuestionsAnswered.Total)

	_, errOut, err := run(t, "", "score", "--answers", "c1=9,c2=5")
	require.NoError(t, err)
	assert.Contains(t, errOut, "ignored answers outside 1-5: c1=9")
}

func TestArchetypes(t *testing.T) {
	out, _, err := run(t, "", "archetypes", "--json")
	require.NoError(t, err)
	var list []model.Archetype
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 16)

	one, _, err := run(t, "", "archetypes", list[0].ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(one, list[0].Name))

	_, _, err = run(t, "", "archetypes", "missing")
	assert.Error(t, err)
}
