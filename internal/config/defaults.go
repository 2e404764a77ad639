package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the default duel configuration.
// Values mirror defaults/duel.yaml and serve as a fallback if the embedded
// YAML fails to parse.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Grid: GridConfig{
			CellSize: 1,
			Cols:     120,
			Rows:     48,
		},
		Timing: TimingConfig{
			StepIntervalMS: 60,
			SpeedScale:     0.75,
		},
		PowerUps: PowerUpsConfig{
			SpawnIntervalTicks: 170,
			MaxActive:          3,
			PlaceAttempts:      2000,
			SpeedTicks:         80,
			ShieldTicks:        70,
			EraserCells:        35,
			WeaponAmmo:         3,
			FlashTicks:         33,
		},
		AI: AIConfig{
			Difficulty:        DifficultyMedium,
			KeepHeadingChance: 0.65,
			MediumShootChance: 0.4,
			AggressionWeight:  0.35,
		},
		Match: MatchConfig{
			BestOf: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDuelYAML
}
