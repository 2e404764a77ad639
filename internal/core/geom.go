// Package core provides fundamental types and utilities for the lightcycle
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Position is a grid-aligned point. Coordinates are always multiples of the
// owning Grid's cell size; equality is exact.
type Position struct {
	X, Y int
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all headings in a fixed evaluation order.
// AI tie-breaking depends on this order being stable.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit vector for the heading.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. Opposite is involutive:
// d.Opposite().Opposite() == d for every valid heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether two headings are exact reverses of each other.
func IsOpposite(a, b Direction) bool {
	return a.Opposite() == b
}

// String returns a human-readable name for the heading.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the playfield: Cols x Rows cells, each CellSize units wide.
// Positions live in unit coordinates, so valid positions span
// [0, Cols*CellSize) x [0, Rows*CellSize) in CellSize increments.
type Grid struct {
	CellSize int
	Cols     int
	Rows     int
}

// Width returns the playfield width in position units.
func (g Grid) Width() int {
	return g.Cols * g.CellSize
}

// Height returns the playfield height in position units.
func (g Grid) Height() int {
	return g.Rows * g.CellSize
}

// Contains reports whether a position lies inside the playfield.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}

// Step moves a position one cell in the given heading.
func (g Grid) Step(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*g.CellSize, Y: p.Y + dy*g.CellSize}
}

// StepN moves a position n cells in the given heading.
func (g Grid) StepN(p Position, d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx*g.CellSize*n, Y: p.Y + dy*g.CellSize*n}
}

// Cell converts a position to cell coordinates.
func (g Grid) Cell(p Position) (cx, cy int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// CellPos converts cell coordinates to a position.
func (g Grid) CellPos(cx, cy int) Position {
	return Position{X: cx * g.CellSize, Y: cy * g.CellSize}
}

// Center returns the cell-aligned center of the playfield.
func (g Grid) Center() Position {
	return g.CellPos(g.Cols/2, g.Rows/2)
}

// Manhattan returns the L1 distance between two positions in position units.
func Manhattan(a, b Position) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
