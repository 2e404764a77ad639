// lightcycle is a terminal lightcycle duel: two cycles leave solid trails on
// a grid and the last one alive wins the round.
//
// Usage:
//
//	lightcycle list              - List available modes
//	lightcycle play <mode>       - Play a mode (duel, versus, tournament)
//	lightcycle menu              - Start menu to pick modes interactively
//	lightcycle serve             - Start SSH server for remote play
//	lightcycle scores            - Show ranked match history
//	lightcycle replays           - List and dump stored round replays
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.lightcycle/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-lightcycle/internal/game/duel"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightcycle",
	Short: "Lightcycle - Grid duels in your terminal",
	Long: `Lightcycle is a terminal duel game. Two cycles move across a grid,
leaving solid trails behind them. Hitting a wall or any trail destroys a
cycle; the last one alive wins the round.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View ranked match history
  replays  - Inspect stored round replays

Examples:
  lightcycle list
  lightcycle play duel
  lightcycle play tournament --difficulty hard --best-of 7
  lightcycle menu
  lightcycle serve --ssh :2222
  lightcycle scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightcycle/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replaysCmd)
}
