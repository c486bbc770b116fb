package main

import (
	"fmt"

	"crypto_compass_backend/internal/compass"

	"github.com/spf13/cobra"
)

func newArchetypesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "archetypes [id]",
		Short: "List the archetype catalog or show one archetype",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				a, ok := compass.ArchetypeByID(args[0])
				if !ok {
					return fmt.Errorf("unknown archetype %q", args[0])
				}
				if asJSON {
					return writeJSON(out, a)
				}
				fmt.Fprintf(out, "%s\n%s\n\n%s\n", a.Name, a.Tagline, a.Philosophy)
				return nil
			}

			list := compass.Archetypes()
			if asJSON {
				return writeJSON(out, list)
			}
			for _, a := range list {
				fmt.Fprintf(out, "%-50s %s\n", a.ID, a.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
