// Package arena implements the lightcycle duel simulation: cycle entities,
// the tick-based step engine, collision resolution, power-ups, and the AI
// pilot. It contains pure logic with no rendering or platform dependencies.
package arena

import "github.com/vovakirdan/tui-lightcycle/internal/core"

// Cycle is one combatant: a head position, a heading, and the impassable
// trail it leaves behind. A cycle is constructed once per match and reset at
// the start of every round; it is never destroyed mid-match.
//
// The trail is kept as an ordered sequence (insertion order = time order)
// plus a membership set for O(1) occupancy tests. Every mutation touches
// both; the two must never drift.
type Cycle struct {
	ID    int // 1 or 2
	Name  string
	Color core.Color

	Pos   core.Position
	Dir   core.Direction
	Alive bool
	Score int // Round wins, survives round resets
	Ammo  int

	// Status timers, in ticks. Zero means inactive.
	SpeedTimer  int
	ShieldTimer int

	pending    core.Direction
	hasPending bool

	trail    []core.Position
	trailSet map[core.Position]struct{}

	startPos core.Position
	startDir core.Direction
}

// NewCycle creates a cycle with its per-round spawn state.
func NewCycle(id int, name string, color core.Color, startPos core.Position, startDir core.Direction) *Cycle {
	c := &Cycle{
		ID:       id,
		Name:     name,
		Color:    color,
		startPos: startPos,
		startDir: startDir,
		trailSet: make(map[core.Position]struct{}),
	}
	c.ResetRound()
	return c
}

// ResetRound restores spawn state for a new round. Score is match-level
// state and survives. Resetting twice yields the same state as resetting
// once.
func (c *Cycle) ResetRound() {
	c.Pos = c.startPos
	c.Dir = c.startDir
	c.hasPending = false
	c.trail = c.trail[:0]
	for p := range c.trailSet {
		delete(c.trailSet, p)
	}
	c.Alive = true
	c.Ammo = 0
	c.SpeedTimer = 0
	c.ShieldTimer = 0
}

// QueueTurn records a heading request to be applied on the next tick.
// Requests for the current heading or its exact reverse are silently
// dropped; reversal is never an error.
func (c *Cycle) QueueTurn(d core.Direction) {
	if d == c.Dir || core.IsOpposite(d, c.Dir) {
		return
	}
	c.pending = d
	c.hasPending = true
}

// applyPendingTurn commits the queued heading, rejecting reversals again in
// case the current heading changed since the request was queued.
func (c *Cycle) applyPendingTurn() {
	if !c.hasPending {
		return
	}
	if !core.IsOpposite(c.pending, c.Dir) {
		c.Dir = c.pending
	}
	c.hasPending = false
}

// NextPosition computes the cell the cycle moves into this tick.
func (c *Cycle) NextPosition(grid core.Grid) core.Position {
	return grid.Step(c.Pos, c.Dir)
}

// pushTrail appends a cell to the trail, keeping sequence and set in sync.
func (c *Cycle) pushTrail(p core.Position) {
	if _, ok := c.trailSet[p]; ok {
		return
	}
	c.trail = append(c.trail, p)
	c.trailSet[p] = struct{}{}
}

// CutTrail removes one specific trail cell (a projectile hit). Returns
// false when the cell is not part of the trail.
func (c *Cycle) CutTrail(p core.Position) bool {
	if _, ok := c.trailSet[p]; !ok {
		return false
	}
	delete(c.trailSet, p)
	for i, cell := range c.trail {
		if cell == p {
			c.trail = append(c.trail[:i], c.trail[i+1:]...)
			break
		}
	}
	return true
}

// EraseOldest removes up to n of the oldest trail cells and returns how many
// were removed.
func (c *Cycle) EraseOldest(n int) int {
	count := core.Min(n, len(c.trail))
	for i := 0; i < count; i++ {
		delete(c.trailSet, c.trail[i])
	}
	c.trail = c.trail[count:]
	return count
}

// TickEffects advances status timers by one tick, flooring at zero.
func (c *Cycle) TickEffects() {
	c.SpeedTimer = core.Max(0, c.SpeedTimer-1)
	c.ShieldTimer = core.Max(0, c.ShieldTimer-1)
}

// HasShield reports whether the shield effect is currently active.
func (c *Cycle) HasShield() bool {
	return c.ShieldTimer > 0
}

// SpeedActive reports whether the speed boost is currently active.
func (c *Cycle) SpeedActive() bool {
	return c.SpeedTimer > 0
}

// OnTrail reports whether a cell is part of this cycle's trail.
func (c *Cycle) OnTrail(p core.Position) bool {
	_, ok := c.trailSet[p]
	return ok
}

// TrailLen returns the trail length in cells.
func (c *Cycle) TrailLen() int {
	return len(c.trail)
}

// Trail returns a copy of the ordered trail.
func (c *Cycle) Trail() []core.Position {
	out := make([]core.Position, len(c.trail))
	copy(out, c.trail)
	return out
}

// PendingDir returns the queued heading, if any.
func (c *Cycle) PendingDir() (core.Direction, bool) {
	return c.pending, c.hasPending
}

// occupiedCells returns the union of all cycles' current positions and
// trail cells, used as the obstacle set for collisions and the AI.
func occupiedCells(cycles []*Cycle) map[core.Position]struct{} {
	cells := make(map[core.Position]struct{})
	for _, c := range cycles {
		cells[c.Pos] = struct{}{}
		for p := range c.trailSet {
			cells[p] = struct{}{}
		}
	}
	return cells
}
