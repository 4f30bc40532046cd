package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GauBen/le-pire-cube/internal/config"
	"github.com/GauBen/le-pire-cube/internal/platform/tui"
	"github.com/GauBen/le-pire-cube/internal/storage"
)

var (
	flagConfig string
	flagRecord string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run directly, without going through the menu.

Controls:
  Arrows/WASD - Steer the cube
  Space       - Jump
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  pirecube play
  pirecube play --seed 0.42
  pirecube play --config ./my-cube.yaml
  pirecube play --record run.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session's inputs to a replay file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	final, runErr := tui.Run(tui.ModelOptions{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Record: flagRecord != "",
		Width:  width,
		Height: height,
		FPS:    flagFPS,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if flagRecord != "" {
		rec := final.Recording()
		if rec == nil {
			return
		}
		rec.Seal()
		if saveErr := rec.Save(flagRecord); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", saveErr)
			os.Exit(1)
		}
		fmt.Printf("Saved replay (%.1fs) to %s\n", rec.Duration(), flagRecord)
	}
}
