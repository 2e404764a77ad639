package arena

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

func testAIConfig(d config.Difficulty) config.AIConfig {
	return config.AIConfig{
		Difficulty:        d,
		KeepHeadingChance: 0.65,
		MediumShootChance: 0.4,
		AggressionWeight:  0.35,
	}
}

func openView(grid core.Grid) PilotView {
	return PilotView{
		Pos:      grid.CellPos(grid.Cols/2, grid.Rows/2),
		Dir:      core.DirRight,
		Opponent: grid.CellPos(2, 2),
		Occupied: map[core.Position]struct{}{},
		Grid:     grid,
	}
}

func TestPilotNeverReverses(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 30, Rows: 30}
	tiers := []config.Difficulty{
		config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard,
	}

	for _, tier := range tiers {
		for seed := int64(0); seed < 20; seed++ {
			p := NewPilot(testAIConfig(tier), rand.New(rand.NewSource(seed)))
			for _, dir := range core.Directions {
				v := openView(grid)
				v.Dir = dir
				got := p.ChooseDirection(v)
				if core.IsOpposite(got, dir) {
					t.Fatalf("%s pilot (seed %d) reversed from %v to %v", tier, seed, dir, got)
				}
			}
		}
	}
}

func TestPilotKeepsHeadingWhenDoomed(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 10, Rows: 10}

	// Box the pilot in completely: every non-reverse heading is blocked.
	pos := grid.CellPos(5, 5)
	occupied := map[core.Position]struct{}{
		grid.Step(pos, core.DirUp):    {},
		grid.Step(pos, core.DirDown):  {},
		grid.Step(pos, core.DirRight): {},
	}
	v := PilotView{
		Pos: pos, Dir: core.DirRight,
		Opponent: grid.CellPos(1, 1),
		Occupied: occupied, Grid: grid,
	}

	for _, tier := range []config.Difficulty{
		config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard,
	} {
		p := NewPilot(testAIConfig(tier), rand.New(rand.NewSource(1)))
		if got := p.ChooseDirection(v); got != core.DirRight {
			t.Errorf("%s pilot should keep heading when boxed in, got %v", tier, got)
		}
	}
}

func TestSpaceScoreBlockedSentinel(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 20, Rows: 20}
	p := NewPilot(testAIConfig(config.DifficultyMedium), rand.New(rand.NewSource(1)))

	v := openView(grid)
	v.Occupied[grid.Step(v.Pos, core.DirRight)] = struct{}{}

	if got := p.spaceScore(v, core.DirRight, 4); got != blockedScore {
		t.Errorf("Blocked heading scored %d, want sentinel %d", got, blockedScore)
	}
	if got := p.spaceScore(v, core.DirUp, 4); got <= 0 {
		t.Errorf("Open heading scored %d, want positive", got)
	}
}

func TestSpaceScoreBudget(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 100, Rows: 100}
	p := NewPilot(testAIConfig(config.DifficultyMedium), rand.New(rand.NewSource(1)))

	v := openView(grid)
	// On an open board the flood fill is capped by the node budget, not the
	// board size.
	if got := p.spaceScore(v, core.DirUp, 4); got != 4*floodBudgetPerDepth {
		t.Errorf("Open-board score = %d, want budget %d", got, 4*floodBudgetPerDepth)
	}
}

func TestMediumPrefersOpenSpace(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 20, Rows: 20}
	p := NewPilot(testAIConfig(config.DifficultyMedium), rand.New(rand.NewSource(1)))

	// Going up leads into a dead-end corridor; down and right stay open.
	v := openView(grid)
	v.Occupied[v.Pos] = struct{}{}
	for y := 4; y <= 9; y++ {
		v.Occupied[grid.CellPos(9, y)] = struct{}{}
		v.Occupied[grid.CellPos(11, y)] = struct{}{}
	}
	v.Occupied[grid.CellPos(10, 3)] = struct{}{}

	if got := p.ChooseDirection(v); got == core.DirUp {
		t.Errorf("Medium pilot chose the dead-end corridor, got %v", got)
	}
}

func TestShouldShoot(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 20, Rows: 20}
	aligned := openView(grid)
	aligned.Opponent = core.Position{X: aligned.Pos.X, Y: 2} // Same column

	offAxis := openView(grid)
	offAxis.Opponent = core.Position{X: aligned.Pos.X + 3, Y: aligned.Pos.Y + 4}

	hard := NewPilot(testAIConfig(config.DifficultyHard), rand.New(rand.NewSource(1)))
	if !hard.ShouldShoot(aligned, 1) {
		t.Error("Hard pilot should always shoot when aligned with ammo")
	}
	if hard.ShouldShoot(aligned, 0) {
		t.Error("No pilot shoots without ammo")
	}
	if hard.ShouldShoot(offAxis, 1) {
		t.Error("No pilot shoots without alignment")
	}

	easy := NewPilot(testAIConfig(config.DifficultyEasy), rand.New(rand.NewSource(1)))
	if easy.ShouldShoot(aligned, 5) {
		t.Error("Easy pilot never shoots")
	}

	// Medium shoots with its configured probability; over many aligned
	// opportunities it must fire sometimes and hold sometimes.
	medium := NewPilot(testAIConfig(config.DifficultyMedium), rand.New(rand.NewSource(7)))
	fired, held := 0, 0
	for i := 0; i < 200; i++ {
		if medium.ShouldShoot(aligned, 1) {
			fired++
		} else {
			held++
		}
	}
	if fired == 0 || held == 0 {
		t.Errorf("Medium pilot fired %d/200, want a mix", fired)
	}
}
