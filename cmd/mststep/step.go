package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mststep/console"
)

func newStepCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "step",
		Short: "Drive the algorithm interactively (next, continue, pause, reset, start, state, quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := console.SyncWriter(cmd.OutOrStdout())
			s, g, r, err := opts.setup(cmd, out)
			if err != nil {
				return err
			}
			defer r.Reset()

			sopts := []console.SessionOption{
				console.WithOutput(out),
				console.WithSessionLogger(opts.logger(cmd.ErrOrStderr())),
				console.WithStartPaused(true),
			}
			if in := cmd.InOrStdin(); in != os.Stdin {
				sopts = append(sopts, console.WithInput(io.NopCloser(in)))
			}
			_, _ = fmt.Fprintf(out, "%s on %d vertices and %d edges; type help for commands\n", r, g.Order(), g.Size())
			if s.StartPaused {
				if err = r.StartAlgorithm(true); err != nil {
					return err
				}
			}

			return console.NewSession(r, sopts...).Run(cmd.Context())
		},
	}
}
