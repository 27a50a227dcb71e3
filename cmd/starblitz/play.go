package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmgolubev/starblitz/internal/config"
	"github.com/dmgolubev/starblitz/internal/platform/tui"
	"github.com/dmgolubev/starblitz/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local session in the current terminal.

Controls:
  A/D, Left/Right - Move ship
  W/S, Up/Down    - Move ship
  Space           - Fire beam
  M               - Fire missile (consumes ammunition)
  X               - Special attack (clears the field)
  P               - Pause
  F5 / F9         - Save / load snapshot
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Fewer rocks, more power-ups
  normal - The intended balance
  hard   - More rocks, fewer power-ups

Examples:
  starblitz play
  starblitz play --difficulty hard
  starblitz play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyGlobalFlags(&cfg)
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Size the playfield to the terminal when available
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.Screen.Width = w
		cfg.Screen.Height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starblitz",
	})

	runErr := tui.Run(logger, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGlobalFlags overlays root-level flag values onto the loaded config.
func applyGlobalFlags(cfg *config.Shooter) {
	if flagFPS > 0 {
		cfg.Engine.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Gameplay.Seed = flagSeed
	}
	if flagDebug {
		cfg.Debug = true
	}
}
