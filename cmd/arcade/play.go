package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tarot-arcade/internal/core"
	"github.com/vovakirdan/tarot-arcade/internal/games/tarot"
	"github.com/vovakirdan/tarot-arcade/internal/platform/tui"
	"github.com/vovakirdan/tarot-arcade/internal/registry"
	"github.com/vovakirdan/tarot-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, W, X         - Rotate clockwise
  Z                - Rotate counter-clockwise
  Space            - Hard drop
  C                - Hold piece
  1/2/3            - Swap with held piece
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, five-piece preview
  normal - Starts at 30% of the speed curve
  hard   - Starts at 70%, a single hold slot
  fixed  - No speed-up beyond the level curve

Examples:
  arcade play tarot
  arcade play tarot --difficulty easy
  arcade play tarot_esoteric --difficulty hard
  arcade play tarot --config ./my-tarot.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	applyGameFlags()

	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	store := openStore()
	defer store.Close()

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}

// applyGameFlags hands --config and --difficulty to the games before they are created.
func applyGameFlags() {
	tarot.SetConfigPath(flagConfig)
	tarot.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The arcade still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
