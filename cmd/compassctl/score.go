package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/model"

	"github.com/spf13/cobra"
)

type scoreReport struct {
	Result          model.Result     `json:"result"`
	Position        compass.Position `json:"position"`
	Quadrant        compass.Quadrant `json:"quadrant"`
	Recommendations []string         `json:"recommendations"`
	Unknown         []string         `json:"unknownQuestions,omitempty"`
	Invalid         []string         `json:"invalidAnswers,omitempty"`
}

// readAnswers accepts either {"id": 3} or {"id": {"value": 3}}.
func readAnswers(r io.Reader) (map[string]int, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	out := make(map[string]int, len(raw))
	for id, msg := range raw {
		var v int
		if err := json.Unmarshal(msg, &v); err == nil {
			out[id] = v
			continue
		}
		var a model.Answer
		if err := json.Unmarshal(msg, &a); err != nil {
			return nil, fmt.Errorf("answer %q: %w", id, err)
		}
		out[id] = a.Value
	}
	return out, nil
}

// parsePairs reads "id=value" pairs separated by commas.
func parsePairs(s string) (map[string]int, error) {
	out := map[string]int{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected id=value, got %q", pair)
		}
		v, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", id, err)
		}
		out[strings.TrimSpace(id)] = v
	}
	return out, nil
}

func score(values map[string]int) scoreReport {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		set     []model.Question
		unknown []string
		invalid []string
	)
	answers := model.AnswerSet{}
	for _, id := range ids {
		q, ok := compass.QuestionByID(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		if !compass.ValidValue(values[id]) {
			invalid = append(invalid, fmt.Sprintf("%s=%d", id, values[id]))
			continue
		}
		set = append(set, q)
		answers[id] = model.Answer{Value: values[id]}
	}

	r := compass.CalculateResults(answers, set)
	return scoreReport{
		Result:          r,
		Position:        compass.CompassPosition(r.Scores.Raw.Centralization, r.Scores.Raw.PrivatePublic, compass.DefaultCompassSize),
		Quadrant:        compass.QuadrantFor(r.Scores.Raw.Centralization, r.Scores.Raw.PrivatePublic),
		Recommendations: compass.Recommendations(&r),
		Unknown:         unknown,
		Invalid:         invalid,
	}
}

func newScoreCmd() *cobra.Command {
	var (
		file   string
		pairs  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score answers read from a JSON file or id=value pairs",
		Example: `  compassctl score --file answers.json
  compassctl score --answers c1=5,c2=1,p1=3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				values map[string]int
				err    error
			)
			switch {
			case pairs != "":
				values, err = parsePairs(pairs)
			case file == "-":
				values, err = readAnswers(cmd.InOrStdin())
			case file != "":
				f, openErr := os.Open(file)
				if openErr != nil {
					return openErr
				}
				defer f.Close()
				values, err = readAnswers(f)
			default:
				return fmt.Errorf("one of --file or --answers is required")
			}
			if err != nil {
				return err
			}

			rep := score(values)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, rep)
			}
			r := rep.Result
			fmt.Fprintf(out, "Orientation: %s\n", r.Orientation)
			fmt.Fprintf(out, "Archetype:   %s\n", r.Archetype.Name)
			fmt.Fprintf(out, "Scores:      centralization %.1f, private/public %.1f\n", r.Scores.Centralization, r.Scores.PrivatePublic)
			fmt.Fprintf(out, "Answered:    %d (%d + %d)\n", r.Metadata.QuestionsAnswered.Total,
				r.Metadata.QuestionsAnswered.Centralization, r.Metadata.QuestionsAnswered.PrivatePublic)
			fmt.Fprintf(out, "Quadrant:    %s\n", rep.Quadrant.Name)
			for _, rec := range rep.Recommendations {
				fmt.Fprintf(out, "  - %s\n", rec)
			}
			if len(rep.Unknown) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "ignored unknown questions: %s\n", strings.Join(rep.Unknown, ", "))
			}
			if len(rep.Invalid) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "ignored answers outside %d-%d: %s\n",
					compass.MinValue, compass.MaxValue, strings.Join(rep.Invalid, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON answers file, - for stdin")
	cmd.Flags().StringVar(&pairs, "answers", "", "comma separated id=value pairs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
