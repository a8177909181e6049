package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dwhensley/subdiag"
	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/codec"
	"github.com/dwhensley/subdiag/internal/config"
	"github.com/dwhensley/subdiag/readings"
	"github.com/spf13/cobra"
)

const stdinName = "-"

func newReportCmd(a *app) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "report [name]",
		Short: "Compute power consumption and life-support ratings of one report",
		Long: `Compute power consumption and life-support ratings of one report.

name is a blob in the configured store, an absolute file path with the local
store, or "-" to read standard input. Compressed reports (gzip, zstd, lz4) are
detected automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}

			report, err := a.analyze(cmd, name)
			if err != nil {
				return err
			}

			if out != "" {
				if err := a.analyzer.Save(cmd.Context(), a.store, out, report); err != nil {
					return err
				}
			}
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", fmt.Sprintf("output format: text or one of %v", codec.Names()))
	cmd.Flags().StringVar(&out, "out", "", "also save the encoded report to the store under this name")
	return cmd
}

func (a *app) analyze(cmd *cobra.Command, name string) (*subdiag.Report, error) {
	ctx := cmd.Context()
	if name == stdinName {
		return a.analyzer.AnalyzeReader(ctx, cmd.InOrStdin())
	}
	store, name := a.resolve(name)
	return a.analyzer.AnalyzeBlob(ctx, store, name)
}

// lines returns the raw readings of name, for commands that work below the Report level.
func (a *app) lines(cmd *cobra.Command, name string) ([]string, error) {
	if name == stdinName {
		return readings.Decode(cmd.InOrStdin())
	}
	store, name := a.resolve(name)
	return readings.Load(cmd.Context(), store, name)
}

// resolve maps absolute paths onto a local store rooted at their directory.
func (a *app) resolve(name string) (blobstore.BlobStore, string) {
	if a.cfg.Store.Kind == config.StoreLocal && filepath.IsAbs(name) {
		return blobstore.NewLocalStore(filepath.Dir(name)), filepath.Base(name)
	}
	return a.store, name
}

func writeReport(w io.Writer, format string, r *subdiag.Report) error {
	if format == "text" {
		_, err := fmt.Fprintf(w,
			"Part one | (gamma, epsilon) (%d, %d); multiplication: %d\n"+
				"Part two | oxygen generator rating: %d, CO2 scrubber rating: %d; multiplication: %d\n",
			r.Gamma, r.Epsilon, r.PowerConsumption,
			r.OxygenGenerator, r.CO2Scrubber, r.LifeSupport)
		return err
	}

	c, ok := codec.ByName(format)
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}
	data, err := c.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if c.Name() == "json" {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

