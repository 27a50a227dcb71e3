// starblitz is a terminal space shooter.
//
// Usage:
//
//	starblitz play            - Play locally
//	starblitz serve           - Start SSH server for remote play
//	starblitz scores          - Show high scores
//
// Global flags:
//
//	--config <path> - Load a custom config YAML
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.starblitz/scores.db)
//	--debug         - Draw collision rectangles
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starblitz",
	Short: "Starblitz - a space shooter in your terminal",
	Long: `Starblitz is a terminal-based space shooter. Dodge the rocks, shoot
them down, and chase the high score.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  starblitz play
  starblitz play --difficulty hard
  starblitz serve --ssh :2222
  starblitz scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starblitz/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw collision rectangles")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
