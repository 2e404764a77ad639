package arena

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
)

func testPowerUpsConfig() config.PowerUpsConfig {
	return config.PowerUpsConfig{
		SpawnIntervalTicks: 5,
		MaxActive:          3,
		PlaceAttempts:      100,
		SpeedTicks:         80,
		ShieldTicks:        70,
		EraserCells:        35,
		WeaponAmmo:         3,
	}
}

func TestSpawnerInterval(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 10, Rows: 10}
	s := NewSpawner(testPowerUpsConfig(), grid, rand.New(rand.NewSource(1)))
	empty := map[core.Position]struct{}{}

	for i := 0; i < 4; i++ {
		if pu := s.MaybeSpawn(0, empty); pu != nil {
			t.Fatalf("Spawned on tick %d, before the interval elapsed", i+1)
		}
	}
	pu := s.MaybeSpawn(0, empty)
	if pu == nil {
		t.Fatal("Expected a spawn once the interval elapsed")
	}
	if !grid.Contains(pu.Pos) {
		t.Errorf("Power-up spawned out of bounds at %v", pu.Pos)
	}

	// Counter restarts after a spawn
	if s.MaybeSpawn(0, empty) != nil {
		t.Error("Spawned immediately after a spawn; cooldown should restart")
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 10, Rows: 10}
	cfg := testPowerUpsConfig()
	s := NewSpawner(cfg, grid, rand.New(rand.NewSource(1)))
	empty := map[core.Position]struct{}{}

	for i := 0; i < cfg.SpawnIntervalTicks-1; i++ {
		s.MaybeSpawn(cfg.MaxActive, empty)
	}
	if pu := s.MaybeSpawn(cfg.MaxActive, empty); pu != nil {
		t.Error("Spawned past the live cap")
	}
}

func TestSpawnerAvoidsOccupied(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 8, Rows: 8}
	s := NewSpawner(testPowerUpsConfig(), grid, rand.New(rand.NewSource(3)))

	// Occupy the left half; a sampled cell must land on the right half.
	occupied := make(map[core.Position]struct{})
	for x := 0; x < 4; x++ {
		for y := 0; y < 8; y++ {
			occupied[grid.CellPos(x, y)] = struct{}{}
		}
	}

	for i := 0; i < 20; i++ {
		p := s.randomFreeCell(occupied)
		if _, taken := occupied[p]; taken {
			t.Fatalf("randomFreeCell returned occupied cell %v", p)
		}
	}
}

func TestSpawnerCenterFallback(t *testing.T) {
	grid := core.Grid{CellSize: 1, Cols: 8, Rows: 8}
	s := NewSpawner(testPowerUpsConfig(), grid, rand.New(rand.NewSource(1)))

	// Every cell taken: sampling must give up and fall back to the center.
	occupied := make(map[core.Position]struct{})
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			occupied[grid.CellPos(x, y)] = struct{}{}
		}
	}

	if p := s.randomFreeCell(occupied); p != grid.Center() {
		t.Errorf("Fallback position = %v, want center %v", p, grid.Center())
	}
}

func TestApplyPowerUpEffects(t *testing.T) {
	cfg := testPowerUpsConfig()

	c := newTestCycle()
	ApplyPowerUp(c, PowerSpeed, cfg)
	if c.SpeedTimer != cfg.SpeedTicks || !c.SpeedActive() {
		t.Errorf("SpeedTimer = %d, want %d", c.SpeedTimer, cfg.SpeedTicks)
	}

	ApplyPowerUp(c, PowerShield, cfg)
	if c.ShieldTimer != cfg.ShieldTicks || !c.HasShield() {
		t.Errorf("ShieldTimer = %d, want %d", c.ShieldTimer, cfg.ShieldTicks)
	}

	ApplyPowerUp(c, PowerWeapon, cfg)
	if c.Ammo != cfg.WeaponAmmo {
		t.Errorf("Ammo = %d, want %d", c.Ammo, cfg.WeaponAmmo)
	}
	ApplyPowerUp(c, PowerWeapon, cfg)
	if c.Ammo != 2*cfg.WeaponAmmo {
		t.Errorf("Ammo = %d, want %d (pickups stack)", c.Ammo, 2*cfg.WeaponAmmo)
	}

	for i := 0; i < 10; i++ {
		c.pushTrail(core.Position{X: i, Y: 0})
	}
	ApplyPowerUp(c, PowerEraser, cfg)
	if c.TrailLen() != 0 {
		t.Errorf("TrailLen = %d after eraser, want 0 (eraser_cells > trail)", c.TrailLen())
	}
}

func TestTimersFloorAtZero(t *testing.T) {
	c := newTestCycle()
	c.SpeedTimer = 1
	c.TickEffects()
	if c.SpeedTimer != 0 || c.SpeedActive() {
		t.Errorf("SpeedTimer = %d, want 0", c.SpeedTimer)
	}
	c.TickEffects()
	if c.SpeedTimer != 0 {
		t.Errorf("SpeedTimer = %d, timers must not go negative", c.SpeedTimer)
	}
}
