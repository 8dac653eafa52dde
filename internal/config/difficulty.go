package config

import "math"

// DifficultyManager turns score or elapsed ticks into a difficulty level in
// [0, 1] and scales gravity with it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, 1)
}

// IsEnabled reports whether difficulty grows during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress returns how far the run is towards max_at, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score":
		return clampF(float64(score)/maxAt, 0, 1)
	case "time":
		return clampF(float64(ticks)/maxAt, 0, 1)
	default:
		return 0
	}
}

// Level interpolates from the initial level to 1.0 as the run progresses.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + d.progress(score, ticks)*(1-d.initialLevel)
}

// Speed scales baseSpeed up to baseSpeed * (1 + speed_multiplier) at full difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// DropInterval divides a gravity interval by the current speed, never going below 1 ms.
func (d *DifficultyManager) DropInterval(ms, score, ticks int) int {
	speed := d.Speed(1, score, ticks)
	if speed <= 0 {
		return ms
	}
	return max(1, int(float64(ms)/speed))
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
