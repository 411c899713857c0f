// Package store keeps game results in memory for the lifetime of the
// process. Results are gone on restart, by contract there is no persistence.
package store

import (
	"sort"
	"sync"
	"time"
)

type GameResult struct {
	ID       int64     `json:"id"`
	Player   string    `json:"player"`
	Game     string    `json:"game"`
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"playedAt"`
}

type Store struct {
	mutex   sync.Mutex
	nextID  int64
	results []GameResult
}

func New() *Store {
	return &Store{nextID: 1}
}

// Add stores the result under a freshly assigned id and returns the stored
// copy.
func (s *Store) Add(result GameResult) GameResult {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result.ID = s.nextID
	s.nextID++
	if result.PlayedAt.IsZero() {
		result.PlayedAt = time.Now()
	}
	s.results = append(s.results, result)

	return result
}

// List returns all results in insertion order.
func (s *Store) List() []GameResult {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	list := make([]GameResult, len(s.results))
	copy(list, s.results)

	return list
}

// Get returns the result with the given id.
func (s *Store) Get(id int64) (GameResult, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, result := range s.results {
		if result.ID == id {
			return result, true
		}
	}

	return GameResult{}, false
}

// Update replaces the fields of the result with the given id, keeping the id.
func (s *Store) Update(id int64, update GameResult) (GameResult, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, result := range s.results {
		if result.ID == id {
			update.ID = id
			if update.PlayedAt.IsZero() {
				update.PlayedAt = result.PlayedAt
			}
			s.results[i] = update

			return update, true
		}
	}

	return GameResult{}, false
}

// Delete removes the result with the given id and reports whether it existed.
func (s *Store) Delete(id int64) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, result := range s.results {
		if result.ID == id {
			s.results = append(s.results[:i], s.results[i+1:]...)

			return true
		}
	}

	return false
}

// Leaderboard returns all results ordered by score descending, ties broken
// by player name ascending.
func (s *Store) Leaderboard() []GameResult {
	board := s.List()

	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Score != board[j].Score {
			return board[i].Score > board[j].Score
		}

		return board[i].Player < board[j].Player
	})

	return board
}
