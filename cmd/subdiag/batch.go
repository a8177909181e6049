package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dwhensley/subdiag"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "batch [name...]",
		Short: "Analyze many reports concurrently",
		Long: `Analyze many reports concurrently.

Without names, every blob under --prefix is analyzed. The command fails
if any report fails, after printing all results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				results []subdiag.BatchResult
				err     error
			)
			if len(args) > 0 {
				results, err = a.analyzer.AnalyzeBatch(cmd.Context(), a.store, args)
			} else {
				results, err = a.analyzer.AnalyzePrefix(cmd.Context(), a.store, prefix)
			}
			if results != nil {
				if werr := writeBatch(cmd.OutOrStdout(), results); werr != nil && err == nil {
					err = werr
				}
			}
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d reports failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "analyze every report whose name starts with this prefix")
	return cmd
}

func writeBatch(w io.Writer, results []subdiag.BatchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tGAMMA\tEPSILON\tPOWER\tOXYGEN\tCO2\tLIFE SUPPORT")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", r.Source, r.Err)
			continue
		}
		rep := r.Report
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.Source, rep.Gamma, rep.Epsilon, rep.PowerConsumption,
			rep.OxygenGenerator, rep.CO2Scrubber, rep.LifeSupport)
	}
	return tw.Flush()
}
