package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tarot-arcade/internal/platform/tui"
	"github.com/vovakirdan/tarot-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leave a paused or finished game with Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Best runs
  Q            - Quit

Examples:
  arcade menu
  arcade menu --difficulty hard
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	store := openStore()
	defer store.Close()

	applyGameFlags()
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				log.Error("scoreboard failed", "err", sbErr)
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				log.Error("cannot create game", "game", result.GameID, "err", err)
				continue
			}
			cfg.Seed = time.Now().UnixNano()
			if err := tui.Run(game, store, cfg); err != nil {
				log.Error("game failed", "game", result.GameID, "err", err)
			}
		}
	}
}
