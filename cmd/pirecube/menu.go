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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the cube runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a run ends,
press B to come back to the menu or Q to leave.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  pirecube menu
  pirecube menu --fps 30
  pirecube menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if result.Quit {
			break
		}

		// Scoreboard, from the Tab shortcut or the menu entry
		if result.WantsScoreboard || result.Choice == tui.ChoiceScores {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break // User quit from the scoreboard
		}

		if result.Choice != tui.ChoicePlay {
			break
		}

		final, runErr := tui.Run(tui.ModelOptions{
			Config: cfg,
			Seed:   flagSeed,
			Store:  store,
			Width:  width,
			Height: height,
			FPS:    flagFPS,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}

		// B comes back to the menu, Q leaves for good
		if !final.BackToMenu() {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
