package duel

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/registry"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"duel", "versus", "tournament"} {
		if !registry.Exists(id) {
			t.Errorf("Mode %q not registered", id)
		}
	}

	g, err := registry.Create("duel")
	if err != nil {
		t.Fatalf("Create(duel) failed: %v", err)
	}
	if g.ID() != "duel" {
		t.Errorf("ID = %q, want duel", g.ID())
	}
	if _, ok := g.(registry.TimedGame); !ok {
		t.Error("Duel game should implement StepTimed")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs stay in lockstep
	cfg := testRuntimeConfig()

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i == 30 {
			input.Set(core.ActionDown)
		}
		if i == 60 {
			input.Set(core.ActionLeft)
		}
		g1.Step(input)
		g2.Step(input)
	}

	s1 := g1.engine.Snapshot()
	s2 := g2.engine.Snapshot()
	if s1.Tick != s2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", s1.Tick, s2.Tick)
	}
	if s1.State != s2.State {
		t.Errorf("State mismatch: %v vs %v", s1.State, s2.State)
	}
	for i := range s1.Cycles {
		if s1.Cycles[i].Pos != s2.Cycles[i].Pos {
			t.Errorf("Cycle %d position mismatch: %v vs %v",
				i+1, s1.Cycles[i].Pos, s2.Cycles[i].Pos)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}

	tickBefore := g.engine.Snapshot().Tick
	input.Clear()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	if g.engine.Snapshot().Tick != tickBefore {
		t.Error("Simulation advanced while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("Game should be unpaused")
	}
}

func TestVersusRoutesAltActions(t *testing.T) {
	g := NewVersus()
	g.Reset(testRuntimeConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionAltDown)
	g.Step(input)

	// Several frames accumulate into at least one simulation tick
	input.Clear()
	for i := 0; i < 10; i++ {
		g.Step(input)
	}

	if g.engine.Cycle(2).Dir != core.DirDown {
		t.Errorf("Player 2 dir = %v, want down", g.engine.Cycle(2).Dir)
	}
}

func TestDuelIgnoresAltActions(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	before := g.engine.Cycle(2).Dir
	input := core.NewInputFrame()
	input.Set(core.ActionAltDown)
	g.applyInput(input)

	if d, has := g.engine.Cycle(2).PendingDir(); has && d == core.DirDown {
		t.Errorf("AI cycle accepted human input (dir was %v)", before)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testRuntimeConfig()
	cfg.ScreenW = 5
	cfg.ScreenH = 5
	g.Reset(cfg)

	if g.engine != nil {
		t.Error("Engine should not be created for a tiny screen")
	}

	// Step and render must not panic without an engine
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
}

func TestVersusRoundEndsMatch(t *testing.T) {
	g := NewVersus()
	g.Reset(testRuntimeConfig())

	// Drive player 1 into the top wall; versus is a single round.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	input.Clear()
	for i := 0; i < 100 && !g.State().GameOver; i++ {
		g.Step(input)
	}

	if !g.State().GameOver {
		t.Fatal("Versus match should end after one round")
	}
	sum := g.Summary()
	if sum == nil {
		t.Fatal("Summary is nil after game over")
	}
	if sum.Mode != arena.ModeVersus {
		t.Errorf("Mode = %v, want versus", sum.Mode)
	}
	if len(g.Replays()) != 1 {
		t.Errorf("Replays = %d, want 1", len(g.Replays()))
	}
}

func TestRoundOverlayShowsDuration(t *testing.T) {
	g := NewTournament()
	g.Reset(testRuntimeConfig())

	// Drive player 1 into the top wall; the first round of a tournament
	// leaves the match at round-over rather than game-over.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	input.Clear()
	for i := 0; i < 400 && g.engine.State() == arena.StatePlaying; i++ {
		g.Step(input)
	}
	if g.engine.State() != arena.StateRoundOver {
		t.Fatalf("State = %v, want round over", g.engine.State())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	text := screen.String()

	if !strings.Contains(text, "Round time:") {
		t.Error("Round overlay should show the round duration")
	}
	out := g.engine.Outcome()
	if out == nil {
		t.Fatal("Outcome is nil at round over")
	}
	wantTrails := fmt.Sprintf("trails %d : %d", out.TrailLen1, out.TrailLen2)
	if !strings.Contains(text, wantTrails) {
		t.Errorf("Round overlay should show trail counts %q", wantTrails)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := NewVersus()
	g.Reset(testRuntimeConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)
	input.Clear()
	for i := 0; i < 100 && !g.State().GameOver; i++ {
		g.Step(input)
	}
	if !g.State().GameOver {
		t.Fatal("Match did not end")
	}

	input.Set(core.ActionRestart)
	g.Step(input)

	if g.State().GameOver {
		t.Error("Restart should start a fresh match")
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d after restart, want 0", g.State().Score)
	}
}
