package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/astroshower/internal/config"
	"github.com/plus3/astroshower/shower"
	"github.com/plus3/astroshower/shower/debugui"
	debugui_ebiten "github.com/plus3/astroshower/shower/debugui/ebiten"
	"github.com/plus3/astroshower/shower/ebitenhost"
	"github.com/spf13/cobra"
)

func newWindowCmd(a *app) *cobra.Command {
	defaults := config.DefaultConfig().Window
	var width, height, tps int
	var hero, debug bool

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run the shower in an Ebitengine window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Window
			flags := cmd.Flags()
			if flags.Changed("width") {
				cfg.Width = width
			}
			if flags.Changed("height") {
				cfg.Height = height
			}
			if flags.Changed("tps") {
				cfg.TPS = tps
			}
			if flags.Changed("hero") {
				cfg.Hero = hero
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}
			return runWindow(a, cfg)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaults.Width, "window width in logical pixels")
	cmd.Flags().IntVar(&height, "height", defaults.Height, "window height in logical pixels")
	cmd.Flags().IntVar(&tps, "tps", defaults.TPS, "simulation ticks per second")
	cmd.Flags().BoolVar(&hero, "hero", defaults.Hero, "print the title over the shower")
	cmd.Flags().BoolVar(&debug, "debug", defaults.Debug, "show the ImGui inspector")
	return cmd
}

func runWindow(a *app, cfg config.WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.TPS <= 0 {
		return fmt.Errorf("%w: window %dx%d at %d tps", config.ErrInvalid, cfg.Width, cfg.Height, cfg.TPS)
	}

	opts := []ebitenhost.Option{ebitenhost.WithLogger(a.log)}

	var overlay *debugui_ebiten.Overlay
	if cfg.Debug {
		overlay = debugui_ebiten.NewOverlay(cfg.Title, cfg.Width, cfg.Height)
		opts = append(opts, ebitenhost.WithOverlay(overlay))
	}
	if cfg.Hero {
		opts = append(opts, ebitenhost.WithOverlay(&ebitenhost.Hero{
			Title:    cfg.Title,
			Subtitle: "press q to quit",
		}))
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	game := ebitenhost.New(cfg.Width, cfg.Height, opts...)
	sim := shower.New(game, shower.WithRand(a.newRand()), shower.WithLogger(a.log))
	if overlay != nil {
		overlay.Add(debugui.NewPanel(sim, 120).Items()...)
	}

	sim.Mount()
	defer sim.Teardown()

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("failed to run window: %w", err)
	}
	return nil
}
