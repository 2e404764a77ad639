package arena

import "github.com/vovakirdan/tui-lightcycle/internal/core"

// CycleSnapshot is a read-only copy of one cycle's visible state.
type CycleSnapshot struct {
	ID          int
	Name        string
	Color       core.Color
	Pos         core.Position
	Dir         core.Direction
	Alive       bool
	Score       int
	Ammo        int
	SpeedTimer  int
	ShieldTimer int
	Trail       []core.Position
}

// Snapshot is a deep copy of the world for rendering and determinism
// testing. Mutating it never affects the simulation.
type Snapshot struct {
	Tick         uint64
	State        State
	Mode         Mode
	RoundsPlayed int
	Cycles       [2]CycleSnapshot
	Projectiles  []Projectile
	PowerUps     []PowerUp
	Flash        string
}

// Snapshot captures the current world state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         e.tick,
		State:        e.state,
		Mode:         e.mode,
		RoundsPlayed: e.roundsPlayed,
		Projectiles:  append([]Projectile(nil), e.projectiles...),
		PowerUps:     append([]PowerUp(nil), e.powerups...),
		Flash:        e.FlashMessage(),
	}
	for i, c := range e.cycles {
		s.Cycles[i] = CycleSnapshot{
			ID:          c.ID,
			Name:        c.Name,
			Color:       c.Color,
			Pos:         c.Pos,
			Dir:         c.Dir,
			Alive:       c.Alive,
			Score:       c.Score,
			Ammo:        c.Ammo,
			SpeedTimer:  c.SpeedTimer,
			ShieldTimer: c.ShieldTimer,
			Trail:       c.Trail(),
		}
	}
	return s
}
