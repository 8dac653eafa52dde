package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished game in the scores table.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

const selectScores = `SELECT id, game_id, score, created_at FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC`

// SaveScore appends a score for gameID and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (game_id, score) VALUES (?, ?)`, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: save score for %s: %w", gameID, err)
	}
	return res.LastInsertId()
}

// TopScores returns at most limit scores, best first. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scores(selectScores+` LIMIT ?`, gameID, limit)
}

// AllScores returns every score of gameID, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.scores(selectScores, gameID)
}

func (s *Store) scores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(at)
		out = append(out, e)
	}
	return out, rows.Err()
}

// HighScore is the best score of gameID, or 0 when nothing was played.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score for %s: %w", gameID, err)
	}
	return int(best.Int64), nil
}

// ClearScores removes the scores and run history of gameID in one transaction.
// The wallet is shared by all games and is left alone.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin clear: %w", err)
	}
	for _, table := range []string{"scores", "runs"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE game_id = ?`, gameID); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: clear %s for %s: %w", table, gameID, err)
		}
	}
	return tx.Commit()
}

// GameStats aggregates the scores and runs of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestLevel  int
	BestLines  int
	LastPlayed time.Time // zero when never played
}

// GetGameStats computes GameStats for gameID.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		       (SELECT COALESCE(MAX(level), 0) FROM runs WHERE game_id = ?),
		       (SELECT COALESCE(MAX(lines), 0) FROM runs WHERE game_id = ?),
		       MAX(created_at)
		FROM scores WHERE game_id = ?`,
		gameID, gameID, gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.BestLevel, &stats.BestLines, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: stats for %s: %w", gameID, err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}
