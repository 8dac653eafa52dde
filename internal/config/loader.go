package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	tarotcore "github.com/vovakirdan/tarot-arcade/internal/games/tarot/core"
)

// LoadTarot loads Tarot Tetromino configuration.
// Search order: customPath -> ~/.arcade/configs/tarot.yaml -> ./configs/tarot.yaml -> embedded default
// Files are layered over the defaults, so a partial file only overrides what it sets.
func LoadTarot(customPath string) (TarotConfig, error) {
	cfg := DefaultTarotConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("tarot.yaml"),
		filepath.Join("configs", "tarot.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := DefaultTarotConfig()
		if err := yaml.Unmarshal(data, &layered); err == nil && layered.Validate() == nil {
			return layered, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultTarotConfig()
	if err := yaml.Unmarshal(defaultTarotYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultTarotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTarotPreset modifies the config based on a difficulty preset.
func ApplyTarotPreset(cfg *TarotConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Hard games hide the hold rack, easy games widen the preview
	switch preset {
	case DifficultyEasy:
		cfg.Pieces.Preview = max(cfg.Pieces.Preview, 5)
	case DifficultyHard:
		cfg.Hold.Slots = min(cfg.Hold.Slots, 1)
	}
}

// Validation errors returned by TarotConfig.Validate.
var (
	ErrBoardTooSmall   = errors.New("board must be at least 4x4")
	ErrBadTiming       = errors.New("drop intervals must be positive")
	ErrBadScoring      = errors.New("scoring values out of range")
	ErrNoPieces        = errors.New("no unlocked pieces")
	ErrUnknownPiece    = errors.New("unknown piece")
	ErrQueueOutOfRange = errors.New("preview and hold sizes must be within 0..6")
)

// Validate rejects settings the game cannot run with.
func (c TarotConfig) Validate() error {
	if c.Board.Width < 4 || c.Board.Height < 4 {
		return fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, c.Board.Width, c.Board.Height)
	}
	if c.Timing.BaseDropMs <= 0 || c.Timing.MinDropMs <= 0 || c.Timing.DropStepMs < 0 {
		return ErrBadTiming
	}
	s := c.Scoring
	if s.StartLevel < 1 || s.LinesToLevel < 1 || s.MaxLinesToLevel < s.LinesToLevel ||
		s.ComboGrowth < 0 || s.ComboMax < 1 || s.LevelGrowth < 0 || s.GoldPerLevel < 0 {
		return ErrBadScoring
	}
	if len(c.Pieces.Unlocked) == 0 {
		return ErrNoPieces
	}
	if _, err := c.PieceTypes(); err != nil {
		return err
	}
	if c.Pieces.Preview < 0 || c.Pieces.Preview > 6 || c.Hold.Slots < 0 || c.Hold.Slots > 6 {
		return ErrQueueOutOfRange
	}
	return nil
}

// PieceTypes resolves the unlocked piece names.
func (c TarotConfig) PieceTypes() ([]tarotcore.Type, error) {
	out := make([]tarotcore.Type, 0, len(c.Pieces.Unlocked))
	for _, name := range c.Pieces.Unlocked {
		t, ok := tarotcore.ParseType(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, name)
		}
		out = append(out, t)
	}
	return out, nil
}

// Rules converts the timing and scoring sections into core rules.
func (c TarotConfig) Rules() tarotcore.Rules {
	return tarotcore.Rules{
		BaseDropMs:      c.Timing.BaseDropMs,
		MinDropMs:       c.Timing.MinDropMs,
		DropStepMs:      c.Timing.DropStepMs,
		LinesToLevel:    c.Scoring.LinesToLevel,
		MaxLinesToLevel: c.Scoring.MaxLinesToLevel,
		ComboGrowth:     c.Scoring.ComboGrowth,
		ComboMax:        c.Scoring.ComboMax,
		LevelGrowth:     c.Scoring.LevelGrowth,
		GoldPerLevel:    c.Scoring.GoldPerLevel,
	}
}
