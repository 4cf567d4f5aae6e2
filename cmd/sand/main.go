//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sand-ca/internal/app"
	"sand-ca/internal/sims/sand"
)

var (
	width      int
	height     int
	scale      int
	tps        int
	seed       int64
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "sand",
	Short: "Interactive falling-sand pixel simulation",
	RunE:  run,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&width, "width", 400, "grid width in cells")
	flags.IntVar(&height, "height", 300, "grid height in cells")
	flags.IntVar(&scale, "scale", 2, "pixel scale multiplier")
	flags.IntVar(&tps, "tps", 60, "simulation ticks per second")
	flags.Int64Var(&seed, "seed", 0, "seed for simulation reset (0 uses the config seed)")
	flags.StringVar(&configPath, "config", "", "optional YAML config file")
	flags.StringVar(&logLevel, "log-level", "info", "log verbosity level")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	cfg := sand.DefaultConfig()
	if configPath != "" {
		cfg, err = sand.LoadFile(configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	world := sand.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	logrus.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"seed":   cfg.Seed,
		"scale":  scale,
		"tps":    tps,
	}).Info("starting simulation")

	game := app.New(world, scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("sand-ca")
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*scale, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
