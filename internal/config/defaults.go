package config

import (
	_ "embed"
)

//go:embed defaults/tarot.yaml
var defaultTarotYAML []byte

// DefaultTarotConfig returns the default Tarot Tetromino configuration.
func DefaultTarotConfig() TarotConfig {
	return TarotConfig{
		Board: TarotBoard{
			Width:  10,
			Height: 20,
		},
		Timing: TarotTiming{
			BaseDropMs: 500,
			MinDropMs:  100,
			DropStepMs: 50,
		},
		Scoring: TarotScoring{
			StartLevel:      1,
			LinesToLevel:    10,
			MaxLinesToLevel: 20,
			ComboGrowth:     0.1,
			ComboMax:        2.0,
			LevelGrowth:     0.1,
			GoldPerLevel:    10,
		},
		Pieces: TarotPieces{
			Unlocked: []string{"I", "O", "T", "S", "Z", "J", "L"},
			Preview:  3,
		},
		Hold: TarotHold{
			Slots: 3,
		},
		Ghost: TarotGhost{
			Enabled: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tarot", "tarot_esoteric":
		return defaultTarotYAML
	default:
		return nil
	}
}
