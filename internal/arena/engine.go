package arena

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// Mode selects how a match is decided.
type Mode int

const (
	// ModeDuel is a single round against the AI.
	ModeDuel Mode = iota
	// ModeVersus is a single round between two local players.
	ModeVersus
	// ModeTournament is best-of-N against the AI.
	ModeTournament
)

// String returns the storage identifier for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDuel:
		return "duel"
	case ModeVersus:
		return "versus"
	case ModeTournament:
		return "tournament"
	default:
		return "unknown"
	}
}

// State is the round/match state machine.
type State int

const (
	StatePlaying State = iota
	StateRoundOver
	StateGameOver
)

// CrashKind describes which cycle(s) died to end a round.
type CrashKind int

const (
	DoubleCrash CrashKind = iota
	Player1Crashed
	Player2Crashed
)

// String returns the crash description shown in the round overlay.
func (k CrashKind) String() string {
	switch k {
	case DoubleCrash:
		return "Double crash"
	case Player1Crashed:
		return "Player 1 collided"
	default:
		return "Player 2 collided"
	}
}

// RoundOutcome is produced exactly once per round, when a death ends it.
type RoundOutcome struct {
	Crash        CrashKind
	Winner       int // Cycle ID, 0 on a double crash
	Ticks        uint64
	DurationSecs float64
	TrailLen1    int
	TrailLen2    int
}

// MatchSummary is produced once, when the match completes.
type MatchSummary struct {
	Mode         Mode
	Rounds       int
	Score1       int
	Score2       int
	Winner       int // Cycle ID, 0 on a drawn single-round match
	WinnerName   string
	DurationSecs float64
}

// ReplayFrame records both head positions at one tick.
type ReplayFrame struct {
	Tick uint64
	P1   core.Position
	P2   core.Position
}

// RoundReplay is the append-only frame log of one completed round.
type RoundReplay struct {
	Round  int
	Frames []ReplayFrame
}

// Engine advances the duel world by discrete ticks in a fixed order that
// guarantees determinism. It exclusively owns all cycle, projectile, and
// power-up state; nothing else mutates them. There is no parallelism: a tick
// is a synchronous, total function of the pre-tick world state, and the
// seeded random source is the only non-deterministic input.
type Engine struct {
	cfg  config.DuelConfig
	grid core.Grid
	mode Mode
	rng  *rand.Rand

	cycles      [2]*Cycle
	projectiles []Projectile
	powerups    []PowerUp
	spawner     *Spawner
	pilot       *Pilot // nil in versus mode

	state        State
	tick         uint64
	roundTicks   uint64
	roundsPlayed int

	accumulatorMS float64
	roundMS       float64
	matchMS       float64

	replay  []ReplayFrame
	archive []RoundReplay

	outcome *RoundOutcome
	summary *MatchSummary

	flash      string
	flashTicks int
}

// New builds an engine for one match. Malformed configuration is rejected
// here, before any simulation runs; it is never re-validated mid-tick.
func New(cfg config.DuelConfig, mode Mode, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}

	grid := core.Grid{CellSize: cfg.Grid.CellSize, Cols: cfg.Grid.Cols, Rows: cfg.Grid.Rows}
	rng := rand.New(rand.NewSource(seed))

	p2Name := "AI"
	if mode == ModeVersus {
		p2Name = "Player 2"
	}

	e := &Engine{
		cfg:  cfg,
		grid: grid,
		mode: mode,
		rng:  rng,
	}
	e.cycles[0] = NewCycle(1, "Player 1", core.ColorBrightCyan,
		grid.CellPos(grid.Cols/4, grid.Rows/2), core.DirRight)
	e.cycles[1] = NewCycle(2, p2Name, core.ColorBrightMagenta,
		grid.CellPos(grid.Cols*3/4, grid.Rows/2), core.DirLeft)
	e.spawner = NewSpawner(cfg.PowerUps, grid, rng)
	if mode != ModeVersus {
		e.pilot = NewPilot(cfg.AI, rng)
	}
	e.ResetRound()
	return e, nil
}

// Grid returns the playfield geometry.
func (e *Engine) Grid() core.Grid {
	return e.grid
}

// Mode returns the match mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// State returns the current state machine position.
func (e *Engine) State() State {
	return e.state
}

// Outcome returns the last finished round's outcome, or nil mid-round.
func (e *Engine) Outcome() *RoundOutcome {
	return e.outcome
}

// Summary returns the match summary once the match is complete, else nil.
func (e *Engine) Summary() *MatchSummary {
	return e.summary
}

// Replays returns the frame logs of all completed rounds.
func (e *Engine) Replays() []RoundReplay {
	return e.archive
}

// FlashMessage returns the current HUD flash, or "" when none is active.
func (e *Engine) FlashMessage() string {
	if e.flashTicks <= 0 {
		return ""
	}
	return e.flash
}

// ResetRound resets round-scoped state but preserves match score state.
// Projectiles and power-ups never persist across a round reset.
func (e *Engine) ResetRound() {
	for _, c := range e.cycles {
		c.ResetRound()
	}
	e.projectiles = e.projectiles[:0]
	e.powerups = e.powerups[:0]
	e.spawner.Reset()
	e.replay = e.replay[:0]
	e.roundTicks = 0
	e.roundMS = 0
	e.accumulatorMS = 0
	e.outcome = nil
	e.flashTicks = 0
	e.state = StatePlaying
}

// ResetMatch resets everything, including scores, for a fresh match.
func (e *Engine) ResetMatch() {
	e.cycles[0].Score = 0
	e.cycles[1].Score = 0
	e.roundsPlayed = 0
	e.matchMS = 0
	e.archive = e.archive[:0]
	e.summary = nil
	e.ResetRound()
}

// NextRound starts the next round after a RoundOver. It is a no-op in any
// other state, including GameOver.
func (e *Engine) NextRound() {
	if e.state != StateRoundOver {
		return
	}
	e.ResetRound()
}

// QueueTurn queues a heading for a cycle. Reversals are silently dropped,
// for human and AI input alike.
func (e *Engine) QueueTurn(id int, d core.Direction) {
	if e.state != StatePlaying {
		return
	}
	if c := e.cycle(id); c != nil && c.Alive {
		c.QueueTurn(d)
	}
}

// Fire spends one ammo to launch a projectile from a cycle's position along
// its heading. Returns false when the cycle cannot fire.
func (e *Engine) Fire(id int) bool {
	if e.state != StatePlaying {
		return false
	}
	c := e.cycle(id)
	if c == nil || !c.Alive || c.Ammo <= 0 {
		return false
	}
	c.Ammo--
	e.projectiles = append(e.projectiles, Projectile{Owner: c.ID, Pos: c.Pos, Dir: c.Dir})
	return true
}

// StepInterval returns the current tick interval in milliseconds. It
// shortens while any cycle has an active speed boost, so a speed effect
// changes the simulation's own clock. Callers must not cache it.
func (e *Engine) StepInterval() float64 {
	interval := e.cfg.Timing.StepIntervalMS
	if e.cycles[0].SpeedActive() || e.cycles[1].SpeedActive() {
		interval *= e.cfg.Timing.SpeedScale
	}
	return interval
}

// Advance feeds elapsed wall time into the fixed-timestep accumulator and
// runs however many whole ticks fit. A slow frame runs several ticks, a
// fast one may run none. The interval is reevaluated before every tick
// because speed boosts change it mid-frame.
func (e *Engine) Advance(elapsedMS float64) {
	if e.state != StatePlaying {
		return
	}
	e.accumulatorMS += elapsedMS
	e.roundMS += elapsedMS
	e.matchMS += elapsedMS

	for {
		interval := e.StepInterval()
		if e.accumulatorMS < interval {
			return
		}
		e.accumulatorMS -= interval
		e.Step()
		if e.state != StatePlaying {
			return
		}
	}
}

// Step runs exactly one simulation tick. The order is fixed and is what
// makes the engine deterministic and fair:
//
//  1. AI proposes a heading and a shoot decision from a snapshot.
//  2. Pending headings are applied (reversals rejected uniformly).
//  3. Projectiles advance, are culled, and cut opposing trail cells.
//  4. The occupied set is rebuilt and the spawn policy evaluated.
//  5. Status timers tick down.
//  6. Next positions are computed.
//  7. Collisions are resolved against the pre-move occupied set.
//  8. Survivors move, extend their trails, and pick up power-ups. Turn
//     application precedes movement so a queued turn takes effect exactly
//     one tick after being issued, the same latency a human experiences,
//     and pickups only reach cycles already confirmed alive this tick.
//  9. A replay frame is recorded.
//  10. Any death ends the round.
func (e *Engine) Step() {
	if e.state != StatePlaying {
		return
	}
	p1, p2 := e.cycles[0], e.cycles[1]

	// 1. AI decision from an immutable snapshot.
	if e.pilot != nil {
		view := PilotView{
			Pos:      p2.Pos,
			Dir:      p2.Dir,
			Opponent: p1.Pos,
			Occupied: occupiedCells(e.cycles[:]),
			Grid:     e.grid,
		}
		p2.QueueTurn(e.pilot.ChooseDirection(view))
		if e.pilot.ShouldShoot(view, p2.Ammo) {
			p2.Ammo--
			e.projectiles = append(e.projectiles, Projectile{Owner: p2.ID, Pos: p2.Pos, Dir: p2.Dir})
		}
	}

	// 2. Turn application.
	for _, c := range e.cycles {
		c.applyPendingTurn()
	}

	// 3. Projectiles.
	kept := e.projectiles[:0]
	for _, pr := range e.projectiles {
		pr.Step(e.grid)
		if !e.grid.Contains(pr.Pos) {
			continue
		}
		victim := p2
		if pr.Owner == p2.ID {
			victim = p1
		}
		if victim.CutTrail(pr.Pos) {
			continue
		}
		kept = append(kept, pr)
	}
	e.projectiles = kept

	// 4. Power-up spawning against the rebuilt occupied set.
	occupied := occupiedCells(e.cycles[:])
	if pu := e.spawner.MaybeSpawn(len(e.powerups), occupied); pu != nil {
		e.powerups = append(e.powerups, *pu)
	}

	// 5. Effect timers.
	for _, c := range e.cycles {
		c.TickEffects()
	}

	// 6-7. Movement intent and collision resolution.
	intents := []MoveIntent{
		{Current: p1.Pos, Next: p1.NextPosition(e.grid), Shield: p1.HasShield()},
		{Current: p2.Pos, Next: p2.NextPosition(e.grid), Shield: p2.HasShield()},
	}
	dead := Resolve(intents, occupied, e.grid)

	// 8. Survivors move and pick up.
	for i, c := range e.cycles {
		if dead[i] {
			c.Alive = false
			continue
		}
		c.pushTrail(c.Pos)
		c.Pos = intents[i].Next
		e.pickupAt(c)
	}

	// 9. Replay frame.
	e.replay = append(e.replay, ReplayFrame{Tick: e.roundTicks, P1: p1.Pos, P2: p2.Pos})
	e.roundTicks++
	e.tick++
	if e.flashTicks > 0 {
		e.flashTicks--
	}

	// 10. Round end.
	if dead[0] || dead[1] {
		e.finishRound(dead[0], dead[1])
	}
}

// pickupAt applies and removes a power-up under a surviving cycle.
func (e *Engine) pickupAt(c *Cycle) {
	for i, pu := range e.powerups {
		if pu.Pos != c.Pos {
			continue
		}
		e.flash = ApplyPowerUp(c, pu.Kind, e.cfg.PowerUps)
		e.flashTicks = e.cfg.PowerUps.FlashTicks
		e.powerups = append(e.powerups[:i], e.powerups[i+1:]...)
		return
	}
}

func (e *Engine) finishRound(p1Dead, p2Dead bool) {
	p1, p2 := e.cycles[0], e.cycles[1]
	e.state = StateRoundOver

	outcome := RoundOutcome{
		Ticks:        e.roundTicks,
		DurationSecs: e.roundMS / 1000,
		TrailLen1:    p1.TrailLen(),
		TrailLen2:    p2.TrailLen(),
	}
	switch {
	case p1Dead && p2Dead:
		outcome.Crash = DoubleCrash
	case p1Dead:
		outcome.Crash = Player1Crashed
		outcome.Winner = p2.ID
		p2.Score++
	default:
		outcome.Crash = Player2Crashed
		outcome.Winner = p1.ID
		p1.Score++
	}

	e.roundsPlayed++
	e.outcome = &outcome

	frames := make([]ReplayFrame, len(e.replay))
	copy(frames, e.replay)
	e.archive = append(e.archive, RoundReplay{Round: e.roundsPlayed, Frames: frames})

	if e.matchComplete() {
		e.summary = e.buildSummary()
		e.state = StateGameOver
	}
}

func (e *Engine) matchComplete() bool {
	if e.mode == ModeTournament {
		target := e.cfg.Match.RoundsToWin()
		return e.cycles[0].Score >= target || e.cycles[1].Score >= target
	}
	return e.roundsPlayed >= 1
}

func (e *Engine) buildSummary() *MatchSummary {
	p1, p2 := e.cycles[0], e.cycles[1]
	s := &MatchSummary{
		Mode:         e.mode,
		Rounds:       e.roundsPlayed,
		Score1:       p1.Score,
		Score2:       p2.Score,
		DurationSecs: e.matchMS / 1000,
	}
	switch {
	case p1.Score > p2.Score:
		s.Winner = p1.ID
		s.WinnerName = p1.Name
	case p2.Score > p1.Score:
		s.Winner = p2.ID
		s.WinnerName = p2.Name
	default:
		s.WinnerName = "Draw"
	}
	return s
}

func (e *Engine) cycle(id int) *Cycle {
	for _, c := range e.cycles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Cycle returns a cycle by ID for tests and rendering helpers.
func (e *Engine) Cycle(id int) *Cycle {
	return e.cycle(id)
}

// RoundsPlayed returns how many rounds have finished this match.
func (e *Engine) RoundsPlayed() int {
	return e.roundsPlayed
}
