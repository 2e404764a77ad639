package arena

import (
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

func newTestCycle() *Cycle {
	return NewCycle(1, "Player 1", core.ColorBrightCyan,
		core.Position{X: 5, Y: 5}, core.DirRight)
}

func TestQueueTurnRejectsReversal(t *testing.T) {
	c := newTestCycle()

	// Exact reverse is dropped
	c.QueueTurn(core.DirLeft)
	if _, has := c.PendingDir(); has {
		t.Error("Reversal should not be queued")
	}

	// Same heading is dropped
	c.QueueTurn(core.DirRight)
	if _, has := c.PendingDir(); has {
		t.Error("Current heading should not be queued")
	}

	// Perpendicular turn is queued and applied
	c.QueueTurn(core.DirUp)
	if d, has := c.PendingDir(); !has || d != core.DirUp {
		t.Fatalf("Expected pending up, got %v (has=%v)", d, has)
	}
	c.applyPendingTurn()
	if c.Dir != core.DirUp {
		t.Errorf("Dir = %v, want up", c.Dir)
	}
}

func TestApplyPendingRechecksReversal(t *testing.T) {
	c := newTestCycle()

	// Queue a legal turn, then change heading so the queued turn became a
	// reversal. It must not be applied.
	c.QueueTurn(core.DirUp)
	c.Dir = core.DirDown
	c.applyPendingTurn()
	if c.Dir != core.DirDown {
		t.Errorf("Dir = %v, reversal must not be applied", c.Dir)
	}
	if _, has := c.PendingDir(); has {
		t.Error("Pending turn should be consumed either way")
	}
}

func TestTrailOrderAndEraseOldest(t *testing.T) {
	c := newTestCycle()
	cells := []core.Position{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1},
	}
	for _, p := range cells {
		c.pushTrail(p)
	}

	removed := c.EraseOldest(3)
	if removed != 3 {
		t.Errorf("EraseOldest removed %d, want 3", removed)
	}
	if c.TrailLen() != 2 {
		t.Errorf("TrailLen = %d, want 2", c.TrailLen())
	}
	for _, p := range cells[:3] {
		if c.OnTrail(p) {
			t.Errorf("Cell %v should have been erased", p)
		}
	}
	for _, p := range cells[3:] {
		if !c.OnTrail(p) {
			t.Errorf("Cell %v should survive the erase", p)
		}
	}

	// Asking for more than the trail holds removes everything
	removed = c.EraseOldest(10)
	if removed != 2 {
		t.Errorf("EraseOldest removed %d, want 2", removed)
	}
	if c.TrailLen() != 0 {
		t.Errorf("TrailLen = %d, want 0", c.TrailLen())
	}
}

func TestCutTrail(t *testing.T) {
	c := newTestCycle()
	p := core.Position{X: 3, Y: 3}
	c.pushTrail(p)
	c.pushTrail(core.Position{X: 4, Y: 3})

	if !c.CutTrail(p) {
		t.Fatal("CutTrail should report a hit for a trail cell")
	}
	if c.OnTrail(p) {
		t.Error("Cut cell still reported on trail")
	}
	if c.TrailLen() != 1 {
		t.Errorf("TrailLen = %d, want 1", c.TrailLen())
	}
	if c.CutTrail(p) {
		t.Error("CutTrail should miss on an already-cut cell")
	}
}

func TestResetRoundPreservesScore(t *testing.T) {
	c := newTestCycle()
	c.Score = 2
	c.Ammo = 3
	c.SpeedTimer = 10
	c.ShieldTimer = 10
	c.Alive = false
	c.pushTrail(core.Position{X: 1, Y: 1})
	c.QueueTurn(core.DirUp)

	c.ResetRound()

	if c.Score != 2 {
		t.Errorf("Score = %d, want 2 (match state survives round resets)", c.Score)
	}
	if !c.Alive || c.Ammo != 0 || c.SpeedTimer != 0 || c.ShieldTimer != 0 {
		t.Error("Round state not fully reset")
	}
	if c.TrailLen() != 0 {
		t.Errorf("TrailLen = %d, want 0", c.TrailLen())
	}
	if _, has := c.PendingDir(); has {
		t.Error("Pending turn should be cleared")
	}
	if c.Pos != (core.Position{X: 5, Y: 5}) || c.Dir != core.DirRight {
		t.Error("Spawn position and heading not restored")
	}

	// Idempotent
	before := *c
	c.ResetRound()
	if c.Pos != before.Pos || c.Dir != before.Dir || c.TrailLen() != 0 {
		t.Error("Second reset should be a no-op")
	}
}
