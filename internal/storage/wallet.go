package storage

import "fmt"

// Gold returns the wallet balance.
func (s *Store) Gold() (int, error) {
	var gold int
	if err := s.db.QueryRow("SELECT gold FROM wallet WHERE id = 1").Scan(&gold); err != nil {
		return 0, fmt.Errorf("storage: cannot read wallet: %w", err)
	}
	return gold, nil
}

// AddGold adjusts the wallet by amount and returns the new balance.
// The balance never drops below zero.
func (s *Store) AddGold(amount int) (int, error) {
	_, err := s.db.Exec(
		"UPDATE wallet SET gold = MAX(0, gold + ?) WHERE id = 1",
		amount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update wallet: %w", err)
	}
	return s.Gold()
}
