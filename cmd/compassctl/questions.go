package main

import (
	"fmt"
	"math/rand/v2"

	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/model"

	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var (
		seed   uint64
		perDim int
		all    bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print a sampled question set or the full bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			var set []model.Question
			switch {
			case all:
				set = compass.Bank()
			case cmd.Flags().Changed("seed"):
				set = compass.GenerateQuestionSetN(rand.New(rand.NewPCG(seed, seed)), perDim)
			default:
				set = compass.GenerateQuestionSetN(nil, perDim)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, set)
			}
			for i, q := range set {
				fmt.Fprintf(out, "%2d. [%s/%s] %s  %s\n", i+1, q.Dimension, q.Direction, q.ID, q.Text)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible set")
	cmd.Flags().IntVar(&perDim, "per-dimension", compass.QuestionsPerDimension, "questions drawn from each dimension")
	cmd.Flags().BoolVar(&all, "all", false, "print the whole bank instead of a sample")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
