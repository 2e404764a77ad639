package arena

import "github.com/vovakirdan/tui-lightcycle/internal/core"

// projectileStepCells is how many cells a projectile covers per tick.
// Twice cycle speed, so a shot always outruns its shooter.
const projectileStepCells = 2

// Projectile is a short-lived shot that cuts one cell out of the opposing
// trail. Projectiles never survive a round reset.
type Projectile struct {
	Owner int // Cycle ID that fired it
	Pos   core.Position
	Dir   core.Direction
}

// Step advances the projectile by its full step distance in one jump.
// Only the landing cell is tested against trails, matching the punchy
// feel of the effect rather than a raycast.
func (p *Projectile) Step(grid core.Grid) {
	p.Pos = grid.StepN(p.Pos, p.Dir, projectileStepCells)
}
