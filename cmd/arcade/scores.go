package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tarot-arcade/internal/registry"
	"github.com/vovakirdan/tarot-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and best runs for a game",
	Long: `Display the top high scores for the specified game, followed by
the best level and line count reached and the gold in the wallet.

Examples:
  arcade scores tarot
  arcade scores tarot_esoteric --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	return printScores(os.Stdout, store, game.ID(), game.Title())
}

var scoresHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func printScores(w io.Writer, store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintf(w, "No scores recorded yet.\n\nPlay 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return scoresHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for i, e := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w, t.Render())

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	gold, err := store.Gold()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nGames: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	fmt.Fprintf(w, "Best level: %d  Most lines: %d\n", stats.BestLevel, stats.BestLines)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Local().Format(time.DateTime))
	}
	fmt.Fprintf(w, "Gold: %d\n", gold)
	return nil
}
