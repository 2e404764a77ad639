package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created as needed
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveMatchAndRanking(t *testing.T) {
	store := openTestStore(t)

	summaries := []struct {
		score1, score2 int
		duration       float64
	}{
		{1, 0, 30},
		{3, 2, 90},
		{3, 1, 45},
		{3, 2, 60}, // Same score as the 90s match, shorter
	}
	for _, s := range summaries {
		sum := arena.MatchSummary{
			Mode:         arena.ModeTournament,
			Rounds:       s.score1 + s.score2,
			Score1:       s.score1,
			Score2:       s.score2,
			Winner:       1,
			WinnerName:   "Player 1",
			DurationSecs: s.duration,
		}
		if _, err := store.SaveMatch(sum, "medium"); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	matches, err := store.TopMatches(10)
	if err != nil {
		t.Fatalf("TopMatches() failed: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("Expected 4 matches, got %d", len(matches))
	}

	// score1 desc, then score2 desc, then duration asc
	wantOrder := []struct {
		score1, score2 int
		duration       float64
	}{
		{3, 2, 60},
		{3, 2, 90},
		{3, 1, 45},
		{1, 0, 30},
	}
	for i, want := range wantOrder {
		got := matches[i]
		if got.Score1 != want.score1 || got.Score2 != want.score2 || got.DurationSecs != want.duration {
			t.Errorf("Rank %d: got %d:%d in %.0fs, want %d:%d in %.0fs",
				i+1, got.Score1, got.Score2, got.DurationSecs,
				want.score1, want.score2, want.duration)
		}
	}

	if matches[0].Mode != "tournament" || matches[0].Difficulty != "medium" {
		t.Errorf("Mode/difficulty = %q/%q, want tournament/medium",
			matches[0].Mode, matches[0].Difficulty)
	}
}

func TestReplayRoundTrip(t *testing.T) {
	store := openTestStore(t)

	matchID, err := store.SaveMatch(arena.MatchSummary{
		Mode: arena.ModeDuel, Rounds: 1, Score1: 1, WinnerName: "Player 1",
	}, "easy")
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	replay := arena.RoundReplay{
		Round: 1,
		Frames: []arena.ReplayFrame{
			{Tick: 0, P1: core.Position{X: 4, Y: 6}, P2: core.Position{X: 12, Y: 6}},
			{Tick: 1, P1: core.Position{X: 5, Y: 6}, P2: core.Position{X: 11, Y: 6}},
			{Tick: 2, P1: core.Position{X: 6, Y: 6}, P2: core.Position{X: 10, Y: 6}},
		},
	}
	replayID, err := store.SaveReplay(matchID, replay)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	frames, err := store.ReplayFrames(replayID)
	if err != nil {
		t.Fatalf("ReplayFrames() failed: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f != replay.Frames[i] {
			t.Errorf("Frame %d = %+v, want %+v", i, f, replay.Frames[i])
		}
	}

	replays, err := store.ListReplays(10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(replays) != 1 {
		t.Fatalf("Expected 1 replay, got %d", len(replays))
	}
	if replays[0].MatchID != matchID || replays[0].Round != 1 || replays[0].Frames != 3 {
		t.Errorf("Replay entry = %+v, want match %d round 1 with 3 frames", replays[0], matchID)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	matchID, err := store.SaveMatch(arena.MatchSummary{
		Mode: arena.ModeDuel, Rounds: 1, Score1: 1,
	}, "")
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveReplay(matchID, arena.RoundReplay{
		Round:  1,
		Frames: []arena.ReplayFrame{{Tick: 0}},
	}); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, err := store.TopMatches(10)
	if err != nil {
		t.Fatalf("TopMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(matches))
	}

	replays, err := store.ListReplays(10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(replays) != 0 {
		t.Errorf("Expected 0 replays after clear, got %d", len(replays))
	}
}
