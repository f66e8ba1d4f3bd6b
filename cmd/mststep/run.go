package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mststep/engine"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the algorithm to completion, passing breakpoints after they are shown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _, r, err := opts.setup(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer r.Reset()

			// Nobody is at the keyboard: a breakpoint is shown, then passed.
			r.Subscribe(engine.ObserverFuncs{
				OnState: func(_ uuid.UUID, st engine.State) {
					if st == engine.StatePaused {
						r.Resume()
					}
				},
			})
			if err = r.StartAlgorithm(s.StartPaused); err != nil {
				return err
			}

			var res *engine.Result
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.Go(func() error {
				var werr error
				res, werr = r.Wait(ctx)
				return werr
			})
			if err = eg.Wait(); err != nil {
				if errors.Is(err, context.Canceled) {
					return errors.Wrap(err, "interrupted")
				}
				return err
			}
			if res.Abnormal() {
				return errors.Wrap(res.Err, "run could not complete")
			}

			return nil
		},
	}
}
