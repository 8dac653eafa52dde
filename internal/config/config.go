// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// TarotConfig contains all configuration for the Tarot Tetromino game.
type TarotConfig struct {
	Board      TarotBoard       `yaml:"board"`
	Timing     TarotTiming      `yaml:"timing"`
	Scoring    TarotScoring     `yaml:"scoring"`
	Pieces     TarotPieces      `yaml:"pieces"`
	Hold       TarotHold        `yaml:"hold"`
	Ghost      TarotGhost       `yaml:"ghost"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TarotBoard defines the playfield size in cells.
type TarotBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TarotTiming defines the gravity curve in milliseconds.
type TarotTiming struct {
	BaseDropMs int `yaml:"base_drop_ms"` // Interval at level 1
	MinDropMs  int `yaml:"min_drop_ms"`  // Fastest interval
	DropStepMs int `yaml:"drop_step_ms"` // Reduction per level
}

// TarotScoring defines line scoring and level progression.
type TarotScoring struct {
	StartLevel      int     `yaml:"start_level"`
	LinesToLevel    int     `yaml:"lines_to_level"`
	MaxLinesToLevel int     `yaml:"max_lines_to_level"`
	ComboGrowth     float64 `yaml:"combo_growth"`
	ComboMax        float64 `yaml:"combo_max"`
	LevelGrowth     float64 `yaml:"level_growth"`
	GoldPerLevel    int     `yaml:"gold_per_level"`
}

// TarotPieces defines the spawn pool and preview queue.
type TarotPieces struct {
	Unlocked []string `yaml:"unlocked"` // Piece names, e.g. "T" or "SIGIL"
	Preview  int      `yaml:"preview"`
}

// TarotHold defines the hold slots.
type TarotHold struct {
	Slots int `yaml:"slots"`
}

// TarotGhost defines the landing preview.
type TarotGhost struct {
	Enabled bool `yaml:"enabled"`
	Phase   bool `yaml:"phase"` // Project through locked blocks, stop only at the floor
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name yields DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
