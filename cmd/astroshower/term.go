package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/astroshower/internal/config"
	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/termhost"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTermCmd(a *app) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the shower in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("fps") {
				a.cfg.Term.FPS = fps
			}
			if a.cfg.Term.FPS <= 0 {
				return fmt.Errorf("%w: fps must be positive, got %d", config.ErrInvalid, a.cfg.Term.FPS)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize screen: %w", err)
			}
			defer screen.Fini()

			host := termhost.New(screen, a.log)
			sim := shower.New(host, shower.WithRand(a.newRand()), shower.WithLogger(a.log))
			sim.Mount()
			defer sim.Teardown()

			err = host.Run(cmd.Context(), a.cfg.Term.FPS)
			a.log.Debug("terminal run finished", zap.Int64("frames", sim.Stats().Frames))
			return err
		},
	}

	cmd.Flags().IntVar(&fps, "fps", config.DefaultConfig().Term.FPS, "frames per second")
	return cmd
}
