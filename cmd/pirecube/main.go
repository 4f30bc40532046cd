// pirecube is a terminal cube runner: roll an ever-accelerating cube along
// a diagonal road of tiles, grab power-ups, and stay ahead of the death line.
//
// Usage:
//
//	pirecube play            - Start a run directly
//	pirecube menu            - Start the interactive menu
//	pirecube replay <file>   - Watch a recorded run
//	pirecube scores          - Show the local leaderboard
//	pirecube serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set world seed in [0, 1) for reproducible runs
//	--db <path>     - Set database path (default: ~/.pirecube/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   float64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pirecube",
	Short: "Le Pire Cube - Roll a cube down an endless diagonal road",
	Long: `Le Pire Cube is a terminal endless runner. Steer a rolling cube along
a procedurally generated diagonal road, jump over gaps, and collect
power-ups that speed the cube up while the camera accelerates behind you.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with the leaderboard
  replay   - Watch a recorded run
  scores   - View the local leaderboard
  serve    - Start SSH server for remote play

Examples:
  pirecube play
  pirecube play --seed 0.42
  pirecube play --record run.yaml
  pirecube replay run.yaml
  pirecube serve --ssh :2222
  pirecube scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Float64Var(&flagSeed, "seed", -1, "World seed in [0, 1) (negative = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pirecube/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
