package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GauBen/le-pire-cube/internal/config"
	"github.com/GauBen/le-pire-cube/internal/platform/tui"
	"github.com/GauBen/le-pire-cube/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Watch a recorded run",
	Long: `Play back a run recorded with 'pirecube play --record'.

The replay drives the simulation with the recorded inputs and seed, so it
reproduces the original run exactly. Use the same --config the run was
recorded with. Replayed runs are not saved to the leaderboard.

Examples:
  pirecube replay run.yaml
  pirecube replay run.yaml --config ./my-cube.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runReplay(cmd *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading replay: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, runErr := tui.Run(tui.ModelOptions{
		Config: cfg,
		Replay: rec,
		Width:  width,
		Height: height,
		FPS:    flagFPS,
	}); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", runErr)
		os.Exit(1)
	}
}
