// Package duel adapts the arena simulation to the platform game interface.
// It registers three modes: duel (one round vs the AI), versus (one round,
// two local players), and tournament (best-of-N vs the AI).
package duel

import (
	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/registry"
)

const hudHeight = 2

// Package-level knobs set by the CLI before game creation, following the
// platform convention for per-game flags.
var (
	configPath       string
	difficultyPreset string
	selectedBestOf   int
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty overrides the AI difficulty tier (easy, medium, hard).
func SetDifficulty(preset string) {
	difficultyPreset = preset
}

// SetBestOf overrides the tournament length. 0 keeps the configured value.
func SetBestOf(n int) {
	selectedBestOf = n
}

// Game wraps an arena engine behind the registry.Game interface and owns
// frame-level concerns: pause, restart, input mapping, and rendering.
type Game struct {
	mode    arena.Mode
	engine  *arena.Engine
	cfg     core.RuntimeConfig
	duelCfg config.DuelConfig
	frameMS float64

	paused   bool
	tooSmall bool
	initErr  error
}

// New creates a single-round game against the AI.
func New() *Game {
	return &Game{mode: arena.ModeDuel}
}

// NewVersus creates a single-round game for two local players.
func NewVersus() *Game {
	return &Game{mode: arena.ModeVersus}
}

// NewTournament creates a best-of-N game against the AI.
func NewTournament() *Game {
	return &Game{mode: arena.ModeTournament}
}

func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
	registry.Register("versus", func() registry.Game {
		return NewVersus()
	})
	registry.Register("tournament", func() registry.Game {
		return NewTournament()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case arena.ModeVersus:
		return "Lightcycle Versus"
	case arena.ModeTournament:
		return "Lightcycle Tournament"
	default:
		return "Lightcycle Duel"
	}
}

// Reset initializes/restarts the game. The playfield is sized from the
// screen; the remaining simulation constants come from the duel config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false
	g.initErr = nil
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.frameMS = 1000 / float64(cfg.TickRate)

	duelCfg, err := config.LoadDuel(configPath)
	if err != nil {
		g.initErr = err
		return
	}
	if err := config.ApplyDifficultyPreset(&duelCfg, difficultyPreset); err != nil {
		g.initErr = err
		return
	}
	if g.mode == arena.ModeTournament && selectedBestOf > 0 {
		duelCfg.Match.BestOf = selectedBestOf
	}

	// Fit the grid to the screen below the HUD.
	cell := duelCfg.Grid.CellSize
	duelCfg.Grid.Cols = cfg.ScreenW / cell
	duelCfg.Grid.Rows = (cfg.ScreenH - hudHeight) / cell

	if duelCfg.Grid.Cols < 8 || duelCfg.Grid.Rows < 8 {
		g.tooSmall = true
		g.engine = nil
		return
	}
	g.tooSmall = false
	g.duelCfg = duelCfg

	engine, err := arena.New(duelCfg, g.mode, cfg.Seed)
	if err != nil {
		g.initErr = err
		return
	}
	g.engine = engine
}

// Step advances by one nominal platform frame. Deterministic: the elapsed
// time is always 1000/TickRate ms.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	return g.StepTimed(input, g.frameMS)
}

// StepTimed advances the simulation with real elapsed frame time, feeding
// the engine's fixed-timestep accumulator.
func (g *Game) StepTimed(input core.InputFrame, elapsedMS float64) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.engine.State() == arena.StateGameOver {
		g.engine.ResetMatch()
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.engine.State() {
	case arena.StateRoundOver:
		if input.Has(core.ActionConfirm) {
			g.engine.NextRound()
		}
	case arena.StatePlaying:
		g.applyInput(input)
		g.engine.Advance(elapsedMS)
	}

	return core.StepResult{State: g.State()}
}

// applyInput maps semantic actions onto engine calls. Player 1 always uses
// the primary actions; the Alt actions steer player 2 in versus mode and
// are ignored when the AI is driving.
func (g *Game) applyInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.engine.QueueTurn(1, core.DirUp)
	case input.Has(core.ActionDown):
		g.engine.QueueTurn(1, core.DirDown)
	case input.Has(core.ActionLeft):
		g.engine.QueueTurn(1, core.DirLeft)
	case input.Has(core.ActionRight):
		g.engine.QueueTurn(1, core.DirRight)
	}
	if input.Has(core.ActionFire) {
		g.engine.Fire(1)
	}

	if g.mode != arena.ModeVersus {
		return
	}
	switch {
	case input.Has(core.ActionAltUp):
		g.engine.QueueTurn(2, core.DirUp)
	case input.Has(core.ActionAltDown):
		g.engine.QueueTurn(2, core.DirDown)
	case input.Has(core.ActionAltLeft):
		g.engine.QueueTurn(2, core.DirLeft)
	case input.Has(core.ActionAltRight):
		g.engine.QueueTurn(2, core.DirRight)
	}
	if input.Has(core.ActionAltFire) {
		g.engine.Fire(2)
	}
}

// State returns the platform-level game state. Score is player 1's round
// wins; the full match summary is exposed separately for persistence.
func (g *Game) State() core.GameState {
	s := core.GameState{Paused: g.paused}
	if g.engine == nil {
		s.GameOver = g.initErr != nil
		return s
	}
	snap := g.engine.Snapshot()
	s.Score = snap.Cycles[0].Score
	s.GameOver = snap.State == arena.StateGameOver
	return s
}

// Summary returns the completed match summary, or nil while the match is
// still running. Consumed by the platform for score persistence.
func (g *Game) Summary() *arena.MatchSummary {
	if g.engine == nil {
		return nil
	}
	return g.engine.Summary()
}

// Difficulty returns the AI tier the engine was built with.
func (g *Game) Difficulty() string {
	return string(g.duelCfg.AI.Difficulty)
}

// Replays returns the per-round replay frame logs recorded so far.
func (g *Game) Replays() []arena.RoundReplay {
	if g.engine == nil {
		return nil
	}
	return g.engine.Replays()
}
