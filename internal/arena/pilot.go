package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// blockedScore is the flood-fill sentinel for a heading whose first cell is
// already fatal. It is below any reachable real score, so a blocked heading
// never wins a comparison against one with open space.
const blockedScore = -9999

// floodBudgetPerDepth scales the flood-fill node budget: a search at depth d
// visits at most d*40 nodes.
const floodBudgetPerDepth = 40

// PilotView is the read-only board snapshot the pilot decides from. It is
// copied out of live state at the top of a tick so the AI can neither mutate
// the simulation nor observe partial in-tick updates.
type PilotView struct {
	Pos      core.Position
	Dir      core.Direction
	Opponent core.Position
	Occupied map[core.Position]struct{}
	Grid     core.Grid
}

// Pilot is the difficulty-scaled steering and shooting policy. Apart from the
// injected random source it is stateless: every decision is a pure function
// of the snapshot.
type Pilot struct {
	cfg config.AIConfig
	rng *rand.Rand
}

// NewPilot creates a pilot for the configured tier. The random source is
// injectable so tests can seed it.
func NewPilot(cfg config.AIConfig, rng *rand.Rand) *Pilot {
	return &Pilot{cfg: cfg, rng: rng}
}

// Difficulty returns the configured tier.
func (p *Pilot) Difficulty() config.Difficulty {
	return p.cfg.Difficulty
}

// ChooseDirection picks the next heading. It never proposes the exact
// reverse of the current heading; when nothing is safe it keeps the current
// heading and accepts the crash.
func (p *Pilot) ChooseDirection(v PilotView) core.Direction {
	switch p.cfg.Difficulty {
	case config.DifficultyEasy:
		return p.easy(v)
	case config.DifficultyMedium:
		return p.medium(v)
	default:
		return p.hard(v)
	}
}

// ShouldShoot reports whether the pilot fires this tick. Requires ammo and
// row/column alignment with the opponent; hard always takes the shot,
// medium takes it opportunistically, easy never shoots.
func (p *Pilot) ShouldShoot(v PilotView, ammo int) bool {
	if ammo <= 0 {
		return false
	}
	aligned := v.Pos.X == v.Opponent.X || v.Pos.Y == v.Opponent.Y
	switch p.cfg.Difficulty {
	case config.DifficultyHard:
		return aligned
	case config.DifficultyMedium:
		return aligned && p.rng.Float64() < p.cfg.MediumShootChance
	default:
		return false
	}
}

func (p *Pilot) easy(v PilotView) core.Direction {
	safe := p.safeDirections(v, 1)
	if len(safe) == 0 {
		return v.Dir
	}
	for _, d := range safe {
		if d == v.Dir && p.rng.Float64() < p.cfg.KeepHeadingChance {
			return v.Dir
		}
	}
	return safe[p.rng.Intn(len(safe))]
}

func (p *Pilot) medium(v PilotView) core.Direction {
	options := p.safeDirections(v, 3)
	if len(options) == 0 {
		return v.Dir
	}
	best := options[0]
	bestScore := p.spaceScore(v, best, 4)
	for _, d := range options[1:] {
		if score := p.spaceScore(v, d, 4); score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

func (p *Pilot) hard(v PilotView) core.Direction {
	options := p.safeDirections(v, 4)
	if len(options) == 0 {
		return v.Dir
	}
	best := options[0]
	bestScore := p.hardScore(v, best)
	for _, d := range options[1:] {
		if score := p.hardScore(v, d); score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// hardScore prefers open space but weights toward closing distance on the
// opponent. Distance is measured in grid cells so the aggression term is
// commensurate with the flood-fill cell count.
func (p *Pilot) hardScore(v PilotView, d core.Direction) float64 {
	space := float64(p.spaceScore(v, d, 6))
	next := v.Grid.Step(v.Pos, d)
	cells := float64(core.Manhattan(next, v.Opponent) / v.Grid.CellSize)
	return space - p.cfg.AggressionWeight*cells
}

// safeDirections returns the non-reverse headings whose next lookAhead cells
// are all free and in bounds.
func (p *Pilot) safeDirections(v PilotView, lookAhead int) []core.Direction {
	safe := make([]core.Direction, 0, 3)
	for _, d := range core.Directions {
		if core.IsOpposite(d, v.Dir) {
			continue
		}
		pos := v.Pos
		blocked := false
		for i := 0; i < lookAhead; i++ {
			pos = v.Grid.Step(pos, d)
			if _, hit := v.Occupied[pos]; hit || !v.Grid.Contains(pos) {
				blocked = true
				break
			}
		}
		if !blocked {
			safe = append(safe, d)
		}
	}
	return safe
}

// spaceScore counts free cells reachable from the first step in the given
// heading, breadth first, never revisiting a cell, bounded by a node budget
// of depth*40. A start cell that is already fatal returns blockedScore.
func (p *Pilot) spaceScore(v PilotView, d core.Direction, depth int) int {
	start := v.Grid.Step(v.Pos, d)
	if _, hit := v.Occupied[start]; hit || !v.Grid.Contains(start) {
		return blockedScore
	}

	frontier := []core.Position{start}
	visited := map[core.Position]struct{}{start: {}}
	score := 0
	budget := depth * floodBudgetPerDepth

	for len(frontier) > 0 && budget > 0 {
		current := frontier[0]
		frontier = frontier[1:]
		score++
		budget--

		for _, nd := range core.Directions {
			next := v.Grid.Step(current, nd)
			if _, seen := visited[next]; seen {
				continue
			}
			if _, hit := v.Occupied[next]; hit || !v.Grid.Contains(next) {
				continue
			}
			visited[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}
	return score
}
