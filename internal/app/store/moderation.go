/*
Package store implements the local authoritative state store of the BloxClone platform.

This file contains the moderation transitions. Banning never force-logs-out a
live session: the flag lands on the shared record and the UI observes it
reactively the next time the session renders.
*/
package store

import "context"

// BanUser marks the directory record for username as banned and records the
// reason. An unknown username is a silent no-op.
func (s *Store) BanUser(ctx context.Context, username, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.directory[username]
	if !ok {
		return
	}

	target.IsBanned = true
	target.BanReason = reason
	s.persist(ctx, keyUsers, s.directory)

	s.logger.Warn().Str("username", username).Str("reason", reason).Msg("User banned.")
}

// UnbanUser clears the ban flag and reason for username. An unknown username
// is a silent no-op.
func (s *Store) UnbanUser(ctx context.Context, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.directory[username]
	if !ok {
		return
	}

	target.IsBanned = false
	target.BanReason = ""
	s.persist(ctx, keyUsers, s.directory)

	s.logger.Info().Str("username", username).Msg("User unbanned.")
}
