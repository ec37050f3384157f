// Command astroshower runs the asteroid shower in a window, in a terminal,
// or headless as a benchmark.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/astroshower/internal/config"
	"github.com/plus3/astroshower/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the persistent pre-run resolves for every subcommand.
type app struct {
	configPath string
	logLevel   string
	seed       uint64

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.DefaultConfig()

	root := &cobra.Command{
		Use:   "astroshower",
		Short: "Ambient asteroid shower simulator",
		Long: `astroshower animates bodies falling from above the viewport. Each one
that reaches the bottom edge bursts into debris and a flattened shockwave.

Run it in an Ebitengine window, in the terminal, or headless to benchmark
the frame pipeline.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "random seed; 0 seeds from the clock")

	root.AddCommand(newWindowCmd(a), newTermCmd(a), newBenchCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	a.cfg = cfg

	a.log, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log.Debug("config loaded", zap.String("path", a.configPath), zap.Uint64("seed", cfg.Seed))
	return nil
}

// newRand returns the simulator's random source for the configured seed.
func (a *app) newRand() *rand.Rand {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
