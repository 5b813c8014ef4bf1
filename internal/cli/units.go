package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/conversor/internal/domain"
)

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List categories and their unit codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := domain.Categories()
			if len(args) == 1 {
				c, err := domain.ParseCategory(args[0])
				if err != nil {
					return err
				}
				cats = []domain.Category{c}
			}
			printUnits(cmd.OutOrStdout(), cats)
			return nil
		},
	}
}

func printUnits(w io.Writer, cats []domain.Category) {
	for i, c := range cats {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", c.Label(), c)
		for _, u := range domain.Units(c) {
			fmt.Fprintf(w, "  - %-3s %s\n", u.Code, u.Label)
		}
	}
}
