/*
Package store implements the local authoritative state store of the BloxClone platform.

This file holds the in-memory game directory. Games are produced by the idea
generator, shown for the lifetime of the process, and never persisted.
*/
package store

import "bloxclone/internal/app/platform"

// Games returns a snapshot of the current game directory.
func (s *Store) Games() []platform.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]platform.Game(nil), s.games...)
}

// SetGames replaces the game directory and clears the generating flag.
func (s *Store) SetGames(games []platform.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = games
	s.generating = false
}

// BeginGenerating marks the game directory as refreshing. It reports false
// when a refresh is already in flight, so only one generation runs at a time.
func (s *Store) BeginGenerating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generating {
		return false
	}
	s.generating = true
	return true
}

// IsGenerating reports whether a directory refresh is in flight.
func (s *Store) IsGenerating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating
}
