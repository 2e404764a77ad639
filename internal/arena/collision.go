package arena

import "github.com/vovakirdan/tui-lightcycle/internal/core"

// MoveIntent describes one cycle's proposed move for collision resolution.
type MoveIntent struct {
	Current core.Position
	Next    core.Position
	Shield  bool
}

// Resolve computes which cycles die this tick. It is a pure function of the
// move intents, the occupied-cell set computed before any of this tick's
// moves, and the playfield bounds; it is the single most safety-critical
// piece of logic in the engine and must stay side-effect free.
//
// Rules:
//   - Swap/head-on: two intents with the same next cell, or with next cells
//     that exactly exchange current cells, kill both parties.
//   - Boundary: a next cell outside the grid kills the cycle. The shield
//     does not help here.
//   - Trail: a next cell in the pre-move occupied set kills the cycle
//     unless its shield is active.
//
// A cycle may die for several reasons at once; the result is one boolean
// per intent, in input order.
func Resolve(intents []MoveIntent, occupied map[core.Position]struct{}, grid core.Grid) []bool {
	dead := make([]bool, len(intents))

	for i := 0; i < len(intents); i++ {
		for j := i + 1; j < len(intents); j++ {
			headOn := intents[i].Next == intents[j].Next
			swap := intents[i].Next == intents[j].Current && intents[j].Next == intents[i].Current
			if headOn || swap {
				dead[i] = true
				dead[j] = true
			}
		}
	}

	for i, in := range intents {
		if !grid.Contains(in.Next) {
			dead[i] = true
			continue
		}
		if _, hit := occupied[in.Next]; hit && !in.Shield {
			dead[i] = true
		}
	}

	return dead
}
