package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lightcycle/internal/storage"
)

var flagReplaysLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays [replay-id]",
	Short: "List or dump stored round replays",
	Long: `Without arguments, lists the most recently stored round replays.
With a replay ID, dumps that replay's head positions tick by tick.

Examples:
  lightcycle replays
  lightcycle replays 12`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "How many replays to list")
}

func runReplays(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		dumpReplay(store, args[0])
		return
	}

	replays, err := store.ListReplays(flagReplaysLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Stored replays")
	fmt.Println()

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-6s  %-6s  %-7s  %s\n", "ID", "Match", "Round", "Frames", "Date")
	fmt.Printf("  %-6s  %-6s  %-6s  %-7s  %s\n", "--", "-----", "-----", "------", "----")

	for _, e := range replays {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-6d  %-6d  %-7d  %s\n", e.ID, e.MatchID, e.Round, e.Frames, dateStr)
	}

	fmt.Println()
	fmt.Println("Run 'lightcycle replays <id>' to dump a replay.")
}

func dumpReplay(store *storage.Store, arg string) {
	var replayID int64
	if _, err := fmt.Sscanf(arg, "%d", &replayID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", arg)
		os.Exit(1)
	}

	frames, err := store.ReplayFrames(replayID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replay: %v\n", err)
		os.Exit(1)
	}

	if len(frames) == 0 {
		fmt.Printf("Replay %d has no frames.\n", replayID)
		return
	}

	fmt.Printf("Replay %d (%d frames)\n", replayID, len(frames))
	fmt.Println()
	fmt.Printf("  %-6s  %-12s  %s\n", "Tick", "Player 1", "Player 2")

	for _, f := range frames {
		fmt.Printf("  %-6d  %-12s  %s\n", f.Tick,
			fmt.Sprintf("(%d,%d)", f.P1.X, f.P1.Y),
			fmt.Sprintf("(%d,%d)", f.P2.X, f.P2.Y))
	}
}
