package core

import "math"

// Rules holds the tunable scoring and speed curve.
type Rules struct {
	BaseDropMs      int     // gravity interval at level 1
	MinDropMs       int     // fastest gravity interval
	DropStepMs      int     // interval reduction per level
	LinesToLevel    int     // lines needed to leave level 1
	MaxLinesToLevel int     // cap on lines per level
	ComboGrowth     float64 // multiplier added per consecutive clear
	ComboMax        float64 // cap on the combo multiplier
	LevelGrowth     float64 // multiplier added per level above 1
	GoldPerLevel    int     // gold per level reached, times the level
}

// DefaultRules returns the standard scoring curve.
func DefaultRules() Rules {
	return Rules{
		BaseDropMs:      500,
		MinDropMs:       100,
		DropStepMs:      50,
		LinesToLevel:    10,
		MaxLinesToLevel: 20,
		ComboGrowth:     0.1,
		ComboMax:        2.0,
		LevelGrowth:     0.1,
		GoldPerLevel:    10,
	}
}

// ComboMultiplier returns the bonus factor for the nth consecutive clear.
func (r Rules) ComboMultiplier(combo int) float64 {
	if combo <= 1 {
		return 1
	}
	return math.Min(r.ComboMax, 1+float64(combo-1)*r.ComboGrowth)
}

// LevelMultiplier returns the bonus factor for the current level.
func (r Rules) LevelMultiplier(level int) float64 {
	if level <= 1 {
		return 1
	}
	return 1 + float64(level-1)*r.LevelGrowth
}

// LinePoints scores a clear. values holds each cleared row's block value sum.
func (r Rules) LinePoints(values []int, level, combo int) int {
	if len(values) == 0 {
		return 0
	}
	base := 0
	for _, v := range values {
		base += v * level
	}
	points := float64(base) * r.ComboMultiplier(combo) * r.LevelMultiplier(level)
	// 1e-9 absorbs float error on exact tenths
	return int(math.Floor(points + 1e-9))
}

// LinesToLevelUp returns how many lines must be cleared while at level to advance.
func (r Rules) LinesToLevelUp(level int) int {
	return min(r.MaxLinesToLevel, r.LinesToLevel+level/2)
}

// DropInterval returns the gravity interval in milliseconds at level.
func (r Rules) DropInterval(level int) int {
	if level < 1 {
		level = 1
	}
	return max(r.MinDropMs, r.BaseDropMs-(level-1)*r.DropStepMs)
}

// GoldForLevel returns the gold awarded on reaching level.
func (r Rules) GoldForLevel(level int) int {
	return level * r.GoldPerLevel
}
