// Package config provides YAML-based configuration loading and validation
// for the lightcycle duel. Every simulation constant lives here; the engine
// itself hard-codes nothing.
package config

import "fmt"

// Difficulty is a named AI tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the difficulty names a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DuelConfig contains all configuration for the duel simulation.
type DuelConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Timing   TimingConfig   `yaml:"timing"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	AI       AIConfig       `yaml:"ai"`
	Match    MatchConfig    `yaml:"match"`
}

// GridConfig defines the playfield geometry.
// Cols and Rows are defaults; the platform overrides them from the terminal
// size when running interactively.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
}

// TimingConfig defines the fixed-timestep simulation clock.
type TimingConfig struct {
	StepIntervalMS float64 `yaml:"step_interval_ms"` // Base tick interval
	SpeedScale     float64 `yaml:"speed_scale"`      // Interval multiplier while a speed boost is active
}

// PowerUpsConfig defines spawn policy and effect magnitudes.
type PowerUpsConfig struct {
	SpawnIntervalTicks int `yaml:"spawn_interval_ticks"`
	MaxActive          int `yaml:"max_active"`
	PlaceAttempts      int `yaml:"place_attempts"` // Rejection sampling budget for free cells
	SpeedTicks         int `yaml:"speed_ticks"`    // Speed boost duration
	ShieldTicks        int `yaml:"shield_ticks"`   // Shield duration
	EraserCells        int `yaml:"eraser_cells"`   // Oldest own-trail cells removed
	WeaponAmmo         int `yaml:"weapon_ammo"`    // Ammo granted per weapon pickup
	FlashTicks         int `yaml:"flash_ticks"`    // HUD pickup message duration; 0 disables the flash
}

// AIConfig defines AI tier and tuning constants.
// The probability constants come from play testing, not derivation; keep them
// configurable rather than second-guessing them.
type AIConfig struct {
	Difficulty        Difficulty `yaml:"difficulty"`
	KeepHeadingChance float64    `yaml:"keep_heading_chance"` // Easy tier: chance to keep a safe current heading
	MediumShootChance float64    `yaml:"medium_shoot_chance"` // Medium tier: chance to fire when aligned
	AggressionWeight  float64    `yaml:"aggression_weight"`   // Hard tier: weight on closing distance, measured in grid cells (not position units)
}

// MatchConfig defines round/match completion policy.
type MatchConfig struct {
	BestOf int `yaml:"best_of"` // Tournament length; a match ends at floor(best_of/2)+1 round wins
}

// RoundsToWin returns the round wins needed to take a tournament match.
func (m MatchConfig) RoundsToWin() int {
	n := m.BestOf/2 + 1
	if n < 1 {
		n = 1
	}
	return n
}

// Validate checks the configuration for values the simulation cannot run
// with. It is called once at engine construction; the simulation never
// re-validates mid-run.
func (c DuelConfig) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: grid cell_size must be positive, got %d", c.Grid.CellSize)
	}
	if c.Grid.Cols < 8 || c.Grid.Rows < 8 {
		return fmt.Errorf("config: grid must be at least 8x8 cells, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Timing.StepIntervalMS <= 0 {
		return fmt.Errorf("config: step_interval_ms must be positive, got %v", c.Timing.StepIntervalMS)
	}
	if c.Timing.SpeedScale <= 0 || c.Timing.SpeedScale > 1 {
		return fmt.Errorf("config: speed_scale must be in (0, 1], got %v", c.Timing.SpeedScale)
	}
	if c.PowerUps.SpawnIntervalTicks <= 0 {
		return fmt.Errorf("config: spawn_interval_ticks must be positive, got %d", c.PowerUps.SpawnIntervalTicks)
	}
	if c.PowerUps.MaxActive < 0 {
		return fmt.Errorf("config: max_active must be non-negative, got %d", c.PowerUps.MaxActive)
	}
	if c.PowerUps.PlaceAttempts <= 0 {
		return fmt.Errorf("config: place_attempts must be positive, got %d", c.PowerUps.PlaceAttempts)
	}
	if c.PowerUps.SpeedTicks < 0 || c.PowerUps.ShieldTicks < 0 {
		return fmt.Errorf("config: effect durations must be non-negative")
	}
	if c.PowerUps.EraserCells < 0 || c.PowerUps.WeaponAmmo < 0 {
		return fmt.Errorf("config: eraser_cells and weapon_ammo must be non-negative")
	}
	if c.PowerUps.FlashTicks < 0 {
		return fmt.Errorf("config: flash_ticks must be non-negative, got %d", c.PowerUps.FlashTicks)
	}
	if !c.AI.Difficulty.Valid() {
		return fmt.Errorf("config: unknown ai difficulty %q", c.AI.Difficulty)
	}
	if c.AI.KeepHeadingChance < 0 || c.AI.KeepHeadingChance > 1 {
		return fmt.Errorf("config: keep_heading_chance must be in [0, 1], got %v", c.AI.KeepHeadingChance)
	}
	if c.AI.MediumShootChance < 0 || c.AI.MediumShootChance > 1 {
		return fmt.Errorf("config: medium_shoot_chance must be in [0, 1], got %v", c.AI.MediumShootChance)
	}
	if c.AI.AggressionWeight < 0 {
		return fmt.Errorf("config: aggression_weight must be non-negative, got %v", c.AI.AggressionWeight)
	}
	if c.Match.BestOf < 1 {
		return fmt.Errorf("config: best_of must be at least 1, got %d", c.Match.BestOf)
	}
	return nil
}
