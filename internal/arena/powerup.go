package arena

import (
	"math/rand"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

// PowerUpKind enumerates the collectible effects. The set is closed;
// effect application dispatches over it with a switch.
type PowerUpKind int

const (
	PowerSpeed PowerUpKind = iota
	PowerShield
	PowerEraser
	PowerWeapon
	powerKindCount // Sentinel for uniform sampling
)

// Glyph returns the display character for the power-up.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerSpeed:
		return '»'
	case PowerShield:
		return '◊'
	case PowerEraser:
		return '~'
	case PowerWeapon:
		return '+'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerShield:
		return "shield"
	case PowerEraser:
		return "eraser"
	case PowerWeapon:
		return "weapon"
	default:
		return "unknown"
	}
}

// PowerUp is a collectible placed on a free cell. Removed on pickup and
// never carried across a round reset.
type PowerUp struct {
	Kind PowerUpKind
	Pos  core.Position
}

// Spawner owns the spawn cooldown counter and placement sampling.
// The counter is engine-owned state, reset explicitly with the round.
type Spawner struct {
	cfg             config.PowerUpsConfig
	grid            core.Grid
	rng             *rand.Rand
	ticksSinceSpawn int
}

// NewSpawner creates a spawner with the given policy and random source.
func NewSpawner(cfg config.PowerUpsConfig, grid core.Grid, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, grid: grid, rng: rng}
}

// Reset clears the spawn cooldown for a new round.
func (s *Spawner) Reset() {
	s.ticksSinceSpawn = 0
}

// MaybeSpawn advances the cooldown by one tick and returns a new power-up
// when the cooldown expired and fewer than the configured maximum are live.
// Returns nil otherwise.
func (s *Spawner) MaybeSpawn(live int, occupied map[core.Position]struct{}) *PowerUp {
	s.ticksSinceSpawn++
	if s.ticksSinceSpawn < s.cfg.SpawnIntervalTicks {
		return nil
	}
	s.ticksSinceSpawn = 0
	if live >= s.cfg.MaxActive {
		return nil
	}
	kind := PowerUpKind(s.rng.Intn(int(powerKindCount)))
	return &PowerUp{Kind: kind, Pos: s.randomFreeCell(occupied)}
}

// randomFreeCell rejection-samples a free cell. If the attempt budget runs
// out the grid center is used rather than failing the tick.
func (s *Spawner) randomFreeCell(occupied map[core.Position]struct{}) core.Position {
	for i := 0; i < s.cfg.PlaceAttempts; i++ {
		p := s.grid.CellPos(s.rng.Intn(s.grid.Cols), s.rng.Intn(s.grid.Rows))
		if _, taken := occupied[p]; !taken {
			return p
		}
	}
	return s.grid.Center()
}

// ApplyPowerUp applies a picked-up effect to a cycle and returns the
// user-facing message for the HUD flash.
func ApplyPowerUp(c *Cycle, kind PowerUpKind, cfg config.PowerUpsConfig) string {
	switch kind {
	case PowerSpeed:
		c.SpeedTimer = cfg.SpeedTicks
		return "Speed boost activated"
	case PowerShield:
		c.ShieldTimer = cfg.ShieldTicks
		return "Shield online"
	case PowerEraser:
		c.EraseOldest(cfg.EraserCells)
		return "Trail section erased"
	default:
		c.Ammo += cfg.WeaponAmmo
		return "Pulse weapon loaded"
	}
}
