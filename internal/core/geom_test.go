package core

import "testing"

func TestOppositeInvolutive(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite of opposite of %v is %v, want %v", d, d.Opposite().Opposite(), d)
		}
		if !IsOpposite(d, d.Opposite()) {
			t.Errorf("IsOpposite(%v, %v) = false, want true", d, d.Opposite())
		}
		if IsOpposite(d, d) {
			t.Errorf("IsOpposite(%v, %v) = true, want false", d, d)
		}
	}
}

func TestGridStepAndContains(t *testing.T) {
	g := Grid{CellSize: 2, Cols: 10, Rows: 5}

	p := Position{X: 0, Y: 0}
	if !g.Contains(p) {
		t.Error("Origin should be inside the grid")
	}

	// Step left from origin leaves the grid
	left := g.Step(p, DirLeft)
	if g.Contains(left) {
		t.Errorf("Position %v should be outside the grid", left)
	}

	// Step right moves one cell, i.e. CellSize units
	right := g.Step(p, DirRight)
	if right.X != 2 || right.Y != 0 {
		t.Errorf("Step right from origin = %v, want (2,0)", right)
	}

	// Last valid cell
	last := g.CellPos(9, 4)
	if !g.Contains(last) {
		t.Errorf("Last cell %v should be inside the grid", last)
	}
	if g.Contains(g.Step(last, DirDown)) {
		t.Error("Stepping down from the last row should leave the grid")
	}
}

func TestStepN(t *testing.T) {
	g := Grid{CellSize: 1, Cols: 20, Rows: 20}
	p := Position{X: 5, Y: 5}

	jumped := g.StepN(p, DirRight, 2)
	if jumped.X != 7 || jumped.Y != 5 {
		t.Errorf("StepN right 2 = %v, want (7,5)", jumped)
	}

	single := g.Step(g.Step(p, DirRight), DirRight)
	if jumped != single {
		t.Errorf("StepN 2 = %v, two Steps = %v, want equal", jumped, single)
	}
}

func TestCellRoundTrip(t *testing.T) {
	g := Grid{CellSize: 3, Cols: 8, Rows: 8}

	p := g.CellPos(4, 6)
	cx, cy := g.Cell(p)
	if cx != 4 || cy != 6 {
		t.Errorf("Cell(CellPos(4,6)) = (%d,%d), want (4,6)", cx, cy)
	}
}

func TestManhattan(t *testing.T) {
	a := Position{X: 2, Y: 3}
	b := Position{X: 7, Y: 1}
	if d := Manhattan(a, b); d != 7 {
		t.Errorf("Manhattan(%v, %v) = %d, want 7", a, b, d)
	}
	if d := Manhattan(a, a); d != 0 {
		t.Errorf("Manhattan(%v, %v) = %d, want 0", a, a, d)
	}
	if Manhattan(a, b) != Manhattan(b, a) {
		t.Error("Manhattan should be symmetric")
	}
}
