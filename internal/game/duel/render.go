package duel

import (
	"fmt"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

const (
	headRune       = '█'
	trailRune      = '▓'
	projectileRune = '·'
)

// Render draws the HUD, the playfield, and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.initErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "Config error: "+g.initErr.Error(), core.ColorBrightRed)
		return
	}
	if g.tooSmall || g.engine == nil {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small for the arena", core.ColorBrightRed)
		return
	}

	snap := g.engine.Snapshot()
	g.renderHUD(dst, snap)
	g.renderArena(dst, snap)

	if snap.Flash != "" {
		dst.DrawTextCentered(hudHeight, snap.Flash, core.ColorBrightYellow)
	}

	switch snap.State {
	case arena.StateRoundOver:
		g.renderRoundOverlay(dst)
	case arena.StateGameOver:
		g.renderMatchOverlay(dst)
	}
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap arena.Snapshot) {
	p1, p2 := snap.Cycles[0], snap.Cycles[1]
	left := fmt.Sprintf(" %s %d  ammo:%d", p1.Name, p1.Score, p1.Ammo)
	dst.DrawText(0, 0, left, p1.Color)

	mid := fmt.Sprintf("vs  %s %d  ammo:%d", p2.Name, p2.Score, p2.Ammo)
	dst.DrawText(len(left)+2, 0, mid, p2.Color)

	info := fmt.Sprintf("%s  ai:%s ", snap.Mode, g.duelCfg.AI.Difficulty)
	dst.DrawText(dst.Width()-len(info), 0, info, core.ColorGray)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderArena(dst *core.Screen, snap arena.Snapshot) {
	grid := g.engine.Grid()

	for _, c := range snap.Cycles {
		for _, p := range c.Trail {
			x, y := grid.Cell(p)
			dst.SetCell(x, y+hudHeight, trailRune, c.Color)
		}
	}

	for _, pu := range snap.PowerUps {
		x, y := grid.Cell(pu.Pos)
		dst.SetCell(x, y+hudHeight, pu.Kind.Glyph(), core.ColorBrightGreen)
	}

	for _, pr := range snap.Projectiles {
		x, y := grid.Cell(pr.Pos)
		dst.SetCell(x, y+hudHeight, projectileRune, core.ColorBrightWhite)
	}

	// Heads last so they stay visible; shielded heads flip to yellow.
	for _, c := range snap.Cycles {
		if !c.Alive {
			continue
		}
		color := c.Color
		if c.ShieldTimer > 0 {
			color = core.ColorBrightYellow
		}
		x, y := grid.Cell(c.Pos)
		dst.SetCell(x, y+hudHeight, headRune, color)
	}
}

func (g *Game) renderRoundOverlay(dst *core.Screen) {
	out := g.engine.Outcome()
	if out == nil {
		return
	}
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, fmt.Sprintf(" %s ", out.Crash), core.ColorBrightWhite)
	if out.Winner != 0 {
		name := g.engine.Cycle(out.Winner).Name
		dst.DrawTextCentered(cy, fmt.Sprintf(" %s wins the round ", name), core.ColorBrightGreen)
	} else {
		dst.DrawTextCentered(cy, " Round drawn ", core.ColorBrightYellow)
	}
	detail := fmt.Sprintf(" Round time: %.1fs  trails %d : %d ",
		out.DurationSecs, out.TrailLen1, out.TrailLen2)
	dst.DrawTextCentered(cy+1, detail, core.ColorGray)
	dst.DrawTextCentered(cy+2, " Press Enter for the next round ", core.ColorGray)
}

func (g *Game) renderMatchOverlay(dst *core.Screen) {
	sum := g.engine.Summary()
	if sum == nil {
		return
	}
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, " MATCH OVER ", core.ColorBrightWhite)
	dst.DrawTextCentered(cy, fmt.Sprintf(" %s  %d : %d ", sum.WinnerName, sum.Score1, sum.Score2), core.ColorBrightGreen)
	dst.DrawTextCentered(cy+1, " R to restart, Q to quit ", core.ColorGray)
}
