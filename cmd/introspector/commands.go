package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reflectkit/introspector/caller"
	"github.com/reflectkit/introspector/internal/config"
	"github.com/reflectkit/introspector/logging"
)

func newCalibrationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calibration",
		Short: "Print availability and frame offset of every caller strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range a.resolver.Calibrations() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newTraceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the callers of this command from depth 0 up to --depth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.trace(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&a.cfg.TraceDepth, "depth", a.cfg.TraceDepth, "deepest caller to print")

	return cmd
}

// trace prints the identities above its caller until the depth limit or the
// bottom of the stack.
//
//go:noinline
func (a *app) trace(w io.Writer) error {
	for depth := 0; depth <= a.cfg.TraceDepth; depth++ {
		id, err := a.resolver.IdentifyAt(depth)
		if errors.Is(err, caller.ErrOutOfBounds) {
			a.log.Debug("bottom of stack", logging.Int("depth", depth))
			break
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%d\t%s\n", depth, id)
	}

	return nil
}

// report is what dump renders.
type report struct {
	Config       config.Config
	Calibrations []caller.Calibration
}

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Render the effective configuration and calibrations as a field map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fm, diags, err := a.reader.Read(report{
				Config:       a.cfg,
				Calibrations: a.resolver.Calibrations(),
			})
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}

			for _, d := range diags.Warnings {
				a.log.Warn(d.String())
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, fm)
		},
	}
	cmd.Flags().StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format: yaml, json or spew")

	return cmd
}
