package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dwhensley/subdiag/diagnostic"
	"github.com/spf13/cobra"
)

func newExplainCmd(a *app) *cobra.Command {
	var rating string

	cmd := &cobra.Command{
		Use:   "explain [name]",
		Short: "Show every step of a life-support filter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := diagnostic.ParseRating(rating)
			if err != nil {
				return err
			}
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}

			lines, err := a.lines(cmd, name)
			if err != nil {
				return err
			}
			exp, err := a.analyzer.Explain(cmd.Context(), lines, r)
			if exp != nil {
				writeExplanation(cmd.OutOrStdout(), exp, errors.Is(err, diagnostic.ErrNotConverged))
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&rating, "rating", "r", "oxygen", "rating to explain: oxygen or co2")
	return cmd
}

func writeExplanation(w io.Writer, exp *diagnostic.Explanation, failed bool) {
	for i, s := range exp.Steps {
		note := ""
		if s.Unanimous {
			note = " (unanimous, nothing removed)"
		}
		fmt.Fprintf(w, "step %d: column %d, %d readings, %d ones -> keep %d, %d remain, removed %v%s\n",
			i+1, s.Column, s.Rows, s.Ones, s.Kept,
			s.Survivors.GetCardinality(), exp.Eliminated(i).ToArray(), note)
	}
	if failed {
		return
	}
	fmt.Fprintf(w, "%s rating: %s = %d (reading %d, %d steps)\n",
		exp.Rating, exp.Reading, exp.Value, exp.Row, exp.Iterations)
}
