package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/game/duel"
	"github.com/vovakirdan/tui-lightcycle/internal/platform/tui"
	"github.com/vovakirdan/tui-lightcycle/internal/registry"
	"github.com/vovakirdan/tui-lightcycle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBestOf     int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows     - Steer (player 1)
  M          - Fire pulse (player 1)
  WASD       - Steer (player 2, versus mode)
  F          - Fire pulse (player 2, versus mode)
  Enter      - Next round (after a round ends)
  P          - Pause
  R          - Restart (after match over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - AI avoids walls but plans one cell ahead
  medium - AI flood-fills for open space
  hard   - AI plans deeper and hunts the player

Examples:
  lightcycle play duel
  lightcycle play duel --difficulty hard
  lightcycle play versus
  lightcycle play tournament --best-of 7
  lightcycle play duel --config ./my-duel.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "AI difficulty: easy, medium, hard")
	playCmd.Flags().IntVar(&flagBestOf, "best-of", 0, "Tournament length (odd number of rounds)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lightcycle list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	duel.SetConfigPath(flagConfig)
	duel.SetDifficulty(flagDifficulty)
	duel.SetBestOf(flagBestOf)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
