package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tarot-arcade/internal/registry"
)

// RunRecord is one finished game with its detailed stats.
type RunRecord struct {
	ID        int64
	GameID    string
	Score     int
	Level     int
	Lines     int
	TSpins    int
	Pieces    int
	Gold      int
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// SaveRun records the stats of a finished run.
func (s *Store) SaveRun(gameID string, stats registry.RunStats) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, score, level, lines, tspins, pieces, gold, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		gameID,
		stats.Score,
		stats.Level,
		stats.Lines,
		stats.TSpins,
		stats.Pieces,
		stats.GoldEarned,
		int(stats.Duration/time.Second),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs for a game, highest score first.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, lines, tspins, pieces, gold, duration_secs, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, lines DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Score,
			&r.Level,
			&r.Lines,
			&r.TSpins,
			&r.Pieces,
			&r.Gold,
			&r.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
